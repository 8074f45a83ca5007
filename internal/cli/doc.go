// Package cli implements the interactive terminal client: a line-oriented REPL
// that drives the transfer controller, the beneficiary registry and the
// history view.
package cli
