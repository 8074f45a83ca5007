package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PedroCamargo-dev/funds-transfer-client/internal/cli"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/config"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/impl/gateway/httpbank"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/logging"
)

func main() {
	cfg, err := config.Load("transfer", os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bank := httpbank.NewClient(cfg.BaseURL, cfg.RequestTimeout)

	app, err := cli.Build(bank, log, os.Stdin, os.Stdout)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	log.Debug(ctx, "transfer client started", "base_url", cfg.BaseURL, "timeout", cfg.RequestTimeout)

	app.Run(ctx)
}
