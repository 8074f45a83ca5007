package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{"BANK_BASE_URL", "BANK_REQUEST_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT", "BANKSTUB_ADDR"}

// clearEnv unsets every variable Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("transfer", []string{"-env-file", ""}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "https://my-bank-backend.onrender.com/api", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "127.0.0.1:8080", cfg.StubAddr)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"BANK_BASE_URL=http://from-file:9000/api\nLOG_LEVEL=debug\nLOG_FORMAT=json\n",
	), 0o600))

	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("transfer", []string{"-env-file", path, "-log-format", "text", "-timeout", "3s"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "http://from-file:9000/api", cfg.BaseURL, "file beats default")
	assert.Equal(t, "warn", cfg.LogLevel, "environment beats file")
	assert.Equal(t, "text", cfg.LogFormat, "flag beats file")
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout, "flag beats default")
}

func TestLoad_EnvFile(t *testing.T) {
	t.Run("missing default file is ignored", func(t *testing.T) {
		clearEnv(t)
		chdir(t, t.TempDir())

		_, err := Load("transfer", nil, io.Discard)
		assert.NoError(t, err)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		clearEnv(t)

		_, err := Load("transfer", []string{"-env-file", filepath.Join(t.TempDir(), "nope.env")}, io.Discard)
		assert.Error(t, err)
	})
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "relative url", args: []string{"-base-url", "/api"}, wantErr: ErrInvalidBaseURL},
		{name: "unsupported scheme", args: []string{"-base-url", "ftp://bank/api"}, wantErr: ErrInvalidBaseURL},
		{name: "zero timeout", args: []string{"-timeout", "0s"}, wantErr: ErrInvalidTimeout},
		{name: "negative timeout", args: []string{"-timeout", "-1s"}, wantErr: ErrInvalidTimeout},
		{name: "stub address", args: []string{"-addr", ":9999"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)

			args := append([]string{"-env-file", ""}, tc.args...)
			_, err := Load("transfer", args, io.Discard)

			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLoad_BadEnvValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("BANK_REQUEST_TIMEOUT", "soon")

	_, err := Load("transfer", []string{"-env-file", ""}, io.Discard)
	assert.Error(t, err)
}

func TestLoad_UnknownFlag(t *testing.T) {
	clearEnv(t)

	_, err := Load("transfer", []string{"-nope"}, io.Discard)
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
