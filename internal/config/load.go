package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type flagValues struct {
	envFile   string
	baseURL   string
	timeout   time.Duration
	logLevel  string
	logFormat string
	addr      string
}

// Load builds a Config for the named program from args (without the program
// name). A missing default .env file is ignored; an explicitly named one must
// exist. Variables already present in the environment win over the file.
func Load(name string, args []string, out io.Writer) (*Config, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(out)

	var fv flagValues
	flags.StringVar(&fv.envFile, "env-file", DefaultEnvFile, "path to a .env file")
	flags.StringVar(&fv.baseURL, "base-url", "", "remote banking service base url")
	flags.DurationVar(&fv.timeout, "timeout", 0, "request timeout, e.g. 10s")
	flags.StringVar(&fv.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&fv.logFormat, "log-format", "", "log format: text or json")
	flags.StringVar(&fv.addr, "addr", "", "listen address for the stub server")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := loadEnvFile(fv.envFile, set["env-file"]); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if set["base-url"] {
		cfg.BaseURL = fv.baseURL
	}
	if set["timeout"] {
		cfg.RequestTimeout = fv.timeout
	}
	if set["log-level"] {
		cfg.LogLevel = fv.logLevel
	}
	if set["log-format"] {
		cfg.LogFormat = fv.logFormat
	}
	if set["addr"] {
		cfg.StubAddr = fv.addr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load env file %s: %w", path, err)
}
