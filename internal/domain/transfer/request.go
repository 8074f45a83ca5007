package domain_transfer

import "strings"

// Request is the transient payload of one submit attempt.
type Request struct {
	Account string
	Amount  string
	OTP     string
}

// Normalized returns a copy with surrounding whitespace removed from every field.
func (r Request) Normalized() Request {
	return Request{
		Account: strings.TrimSpace(r.Account),
		Amount:  strings.TrimSpace(r.Amount),
		OTP:     strings.TrimSpace(r.OTP),
	}
}
