// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/H0llyW00dzZ/check-openssl-ca/src/cli"
	"github.com/H0llyW00dzZ/check-openssl-ca/src/internal/config"
	"github.com/H0llyW00dzZ/check-openssl-ca/src/internal/nagios"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const version = "1.3.3.7-testing"

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

type harness struct {
	runner *cli.Runner
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")

	h := &harness{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	h.runner = &cli.Runner{
		Version: version,
		Name:    "check_ca",
		Stdout:  h.stdout,
		Stderr:  h.stderr,
		Now:     func() time.Time { return now },
	}
	return h
}

func (h *harness) run(args ...string) nagios.State {
	return h.runner.Run(context.Background(), args)
}

// line formats one ledger line expiring at now+offset.
func line(status, serial, dn string, offset time.Duration) string {
	return fmt.Sprintf("%s\t%s\t\t%s\tunknown\t%s\n", status, now.Add(offset).Format("060102150405Z"), serial, dn)
}

func writeLedger(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "")), 0o644))
	return path
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"No arguments", nil},
		{"Empty arguments", []string{}},
		{"Two arguments", []string{"a.txt", "b.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			state := h.runner.Run(context.Background(), tt.args)

			assert.Equal(t, nagios.Unknown, state)
			assert.Equal(t, 3, state.ExitCode())
			assert.Empty(t, h.stdout.String())
			assert.Equal(t, "Usage: check_ca /path/to/CA/index.txt\n", h.stderr.String())
		})
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	h := newHarness(t)

	state := h.run("--no-such-flag", "index.txt")

	assert.Equal(t, nagios.Unknown, state)
	assert.Contains(t, h.stderr.String(), "unknown flag: --no-such-flag")
	assert.Contains(t, h.stderr.String(), "Usage: check_ca /path/to/CA/index.txt")
	assert.Empty(t, h.stdout.String())
}

func TestRun_NonExistentFile(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "nonexistent-index.txt")

	state := h.run(path)

	assert.Equal(t, nagios.Unknown, state)
	assert.Equal(t, path+": no such file or directory\n", h.stderr.String())
	assert.Empty(t, h.stdout.String())
}

func TestRun_Reports(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		state  nagios.State
		stdout string
	}{
		{
			name:   "Single warning",
			lines:  []string{line("V", "1000", "/C=US/CN=example.com/O=Org/", 10*day)},
			state:  nagios.Warning,
			stdout: "WARNING - (EXPIRES in 10 days) example.com \n",
		},
		{
			name:   "Fallback common name",
			lines:  []string{line("V", "1000", "plain-subject-text", 10*day)},
			state:  nagios.Warning,
			stdout: "WARNING - (EXPIRES in 10 days) plain-subject-text \n",
		},
		{
			name: "Critical lists warnings afterwards",
			lines: []string{
				line("V", "01", "/CN=soon.example.com/", 5*day),
				line("V", "02", "/CN=gone.example.com/", -3*day),
			},
			state:  nagios.Critical,
			stdout: "CRITICAL - (EXPIRED 3 days ago) gone.example.com (EXPIRES in 5 days) soon.example.com \n",
		},
		{
			name: "Revoked and ancient certificates are ignored",
			lines: []string{
				line("R", "01", "/CN=revoked.example.com/", 2*day),
				line("E", "02", "/CN=ancient.example.com/", -31*day),
				line("V", "03", "/CN=boundary.example.com/", -30*day),
				line("V", "04", "/CN=healthy.example.com/", 400*day),
			},
			state:  nagios.OK,
			stdout: "OK\n",
		},
		{
			name:   "Empty ledger",
			lines:  nil,
			state:  nagios.OK,
			stdout: "OK\n",
		},
		{
			name: "Windows line endings",
			lines: []string{
				strings.TrimSuffix(line("V", "01", "/CN=crlf.example.com/", day), "\n") + "\r\n",
			},
			state:  nagios.Warning,
			stdout: "WARNING - (EXPIRES in 1 days) crlf.example.com \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			path := writeLedger(t, tt.lines...)

			state := h.run(path)

			assert.Equal(t, tt.state, state)
			assert.Equal(t, tt.stdout, h.stdout.String())
			assert.Empty(t, h.stderr.String(), "stderr is reserved for UNKNOWN diagnostics")
		})
	}
}

func TestRun_MalformedLedger(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		stderr string
	}{
		{
			name: "Wrong field count",
			lines: []string{
				line("V", "01", "/CN=a/", 5*day),
				"V\t270101000000Z\t1000\n",
			},
			stderr: ":2: ledger: wrong number of fields: expected 6, got 3",
		},
		{
			name:   "Unparseable expiry",
			lines:  []string{"V\tyesterday\t\t01\tunknown\t/CN=a/\n"},
			stderr: ":1: ledger: invalid timestamp: \"yesterday\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			path := writeLedger(t, tt.lines...)

			state := h.run(path)

			assert.Equal(t, nagios.Unknown, state)
			assert.Empty(t, h.stdout.String())
			assert.Equal(t, path+tt.stderr+"\n", h.stderr.String())
		})
	}
}

func TestRun_Thresholds(t *testing.T) {
	lines := []string{
		line("V", "01", "/CN=in-45/", 45*day),
		line("V", "02", "/CN=ago-40/", -40*day),
	}

	t.Run("Defaults", func(t *testing.T) {
		h := newHarness(t)
		assert.Equal(t, nagios.OK, h.run(writeLedger(t, lines...)))
		assert.Equal(t, "OK\n", h.stdout.String())
	})

	t.Run("Flags", func(t *testing.T) {
		h := newHarness(t)
		state := h.run("-w", "60", "--expired-window", "50", writeLedger(t, lines...))

		assert.Equal(t, nagios.Critical, state)
		assert.Equal(t, "CRITICAL - (EXPIRED 40 days ago) ago-40 (EXPIRES in 45 days) in-45 \n", h.stdout.String())
	})

	t.Run("Config file", func(t *testing.T) {
		h := newHarness(t)
		cfgPath := filepath.Join(t.TempDir(), "check.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("thresholds:\n  warningDays: 60\n"), 0o644))

		state := h.run("--config", cfgPath, writeLedger(t, lines...))

		assert.Equal(t, nagios.Warning, state)
		assert.Equal(t, "WARNING - (EXPIRES in 45 days) in-45 \n", h.stdout.String())
	})

	t.Run("Flag overrides config file", func(t *testing.T) {
		h := newHarness(t)
		cfgPath := filepath.Join(t.TempDir(), "check.json")
		require.NoError(t, os.WriteFile(cfgPath, []byte(`{"thresholds":{"warningDays":60}}`), 0o644))

		state := h.run("--config", cfgPath, "--warning-days", "10", writeLedger(t, lines...))

		assert.Equal(t, nagios.OK, state)
		assert.Equal(t, "OK\n", h.stdout.String())
	})

	t.Run("Config file from environment", func(t *testing.T) {
		h := newHarness(t)
		cfgPath := filepath.Join(t.TempDir(), "check.yml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("thresholds:\n  expiredWindowDays: 41\n"), 0o644))
		t.Setenv(config.EnvConfigFile, cfgPath)

		state := h.run(writeLedger(t, lines...))

		assert.Equal(t, nagios.Critical, state)
		assert.Equal(t, "CRITICAL - (EXPIRED 40 days ago) ago-40 \n", h.stdout.String())
	})
}

func TestRun_BadConfig(t *testing.T) {
	h := newHarness(t)
	cfgPath := filepath.Join(t.TempDir(), "check.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("thresholds: [broken"), 0o644))

	state := h.run("--config", cfgPath, writeLedger(t))

	assert.Equal(t, nagios.Unknown, state)
	assert.Contains(t, h.stderr.String(), "failed to parse YAML config file")
	assert.Empty(t, h.stdout.String())
}

func TestRun_BadLogFormat(t *testing.T) {
	h := newHarness(t)

	state := h.run("--log-format", "xml", writeLedger(t))

	assert.Equal(t, nagios.Unknown, state)
	assert.Contains(t, h.stderr.String(), "config: unsupported log format: \"xml\"")
}

func TestRun_LongOutput(t *testing.T) {
	h := newHarness(t)
	path := writeLedger(t,
		line("V", "AA01", "/CN=soon.example.com/", 5*day),
		line("V", "BB02", "/CN=gone.example.com/", -3*day),
	)

	state := h.run("--long", path)

	assert.Equal(t, nagios.Critical, state)
	out := h.stdout.String()
	first, rest, found := strings.Cut(out, "\n")
	require.True(t, found)
	assert.Equal(t, "CRITICAL - (EXPIRED 3 days ago) gone.example.com (EXPIRES in 5 days) soon.example.com ", first)
	assert.Contains(t, rest, "AA01")
	assert.Contains(t, rest, "BB02")
	assert.Contains(t, rest, "soon.example.com")
	assert.Contains(t, rest, "gone.example.com")
}

func TestRun_LongOutputOK(t *testing.T) {
	h := newHarness(t)

	state := h.run("-l", writeLedger(t, line("V", "01", "/CN=fine/", 100*day)))

	assert.Equal(t, nagios.OK, state)
	assert.Equal(t, "OK\n", h.stdout.String())
}

func TestRun_Verbose(t *testing.T) {
	h := newHarness(t)
	path := writeLedger(t,
		line("R", "01", "/CN=revoked/", day),
		line("V", "02", "/CN=dup/", -2*day),
		line("V", "03", "/CN=dup/", 300*day),
	)

	state := h.run("--verbose", path)

	assert.Equal(t, nagios.OK, state)
	assert.Equal(t, "OK\n", h.stdout.String())
	assert.Contains(t, h.stderr.String(), "serial 01: revoked, skipped")
	assert.Contains(t, h.stderr.String(), `serial 03: common name "dup" already seen on serial 02, replacing`)
}

func TestRun_JSONLogs(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "missing.txt")

	state := h.run("--log-format", "json", path)

	assert.Equal(t, nagios.Unknown, state)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(h.stderr.Bytes()), &entry), h.stderr.String())
	assert.Equal(t, path+": no such file or directory", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestRun_VersionAndHelp(t *testing.T) {
	t.Run("Version", func(t *testing.T) {
		h := newHarness(t)

		state := h.run("--version")

		assert.Equal(t, nagios.Unknown, state)
		assert.Contains(t, h.stdout.String(), version)
	})

	t.Run("Help", func(t *testing.T) {
		h := newHarness(t)

		state := h.run("--help")

		assert.Equal(t, nagios.Unknown, state)
		assert.Contains(t, h.stdout.String(), "check_ca /path/to/CA/index.txt")
		assert.Contains(t, h.stdout.String(), "--warning-days")
	})
}

func TestRun_Cancelled(t *testing.T) {
	h := newHarness(t)
	path := writeLedger(t, line("V", "01", "/CN=a/", day))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state := h.runner.Run(ctx, []string{path})

	assert.Equal(t, nagios.Unknown, state)
	assert.Contains(t, h.stderr.String(), "scan interrupted: context canceled")
	assert.Empty(t, h.stdout.String())
}

func TestRun_DefaultsOnZeroRunner(t *testing.T) {
	t.Setenv(config.EnvConfigFile, "")

	// A zero Runner must not panic; it falls back to the process streams.
	r := &cli.Runner{Stderr: &bytes.Buffer{}}
	assert.Equal(t, nagios.Unknown, r.Run(context.Background(), nil))
}
