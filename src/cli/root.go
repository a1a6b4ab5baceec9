// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/H0llyW00dzZ/check-openssl-ca/src/internal/config"
	"github.com/H0llyW00dzZ/check-openssl-ca/src/internal/expiry"
	"github.com/H0llyW00dzZ/check-openssl-ca/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/check-openssl-ca/src/internal/ledger"
	"github.com/H0llyW00dzZ/check-openssl-ca/src/internal/nagios"
	"github.com/H0llyW00dzZ/check-openssl-ca/src/logger"
	"github.com/spf13/cobra"
)

// ErrLedgerPathRequired indicates that the command was not given exactly one ledger path.
var ErrLedgerPathRequired = errors.New("cli: exactly one ledger path is required")

// Runner executes the check. Its fields let tests replace the process
// streams and the clock.
type Runner struct {
	// Version is reported by --version.
	Version string
	// Name is the program name shown in the usage line.
	Name string
	// Stdout receives the status line and optional long output.
	Stdout io.Writer
	// Stderr receives diagnostics.
	Stderr io.Writer
	// Now returns the reference instant for day computations.
	Now func() time.Time
}

// Execute runs the check against the process arguments and returns the
// plugin state. The caller is expected to exit with [nagios.State.ExitCode].
func Execute(ctx context.Context, version string) nagios.State {
	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}

	r := &Runner{
		Version: version,
		Name:    posix.GetExecutableName(),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Now:     time.Now,
	}
	return r.Run(ctx, args)
}

// Run parses args and performs the check. Every failure to produce a verdict,
// including --help and --version, yields [nagios.Unknown].
func (r *Runner) Run(ctx context.Context, args []string) nagios.State {
	start := r.now()
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}

	var log logger.Logger = logger.NewCLILogger()
	log.SetOutput(r.stderr())

	var (
		configFile    string
		warningDays   int
		expiredWindow int
		long          bool
		verbose       bool
		logFormat     string

		state = nagios.Unknown
		ran   bool
	)

	rootCmd := &cobra.Command{
		Use:   r.name() + " /path/to/CA/index.txt",
		Short: "Report expiring certificates from an OpenSSL CA index",
		Long: `Scans the index.txt ledger of an OpenSSL certificate authority and prints a
single monitoring status line. Exit codes: 0 OK, 1 WARNING, 2 CRITICAL, 3 UNKNOWN.`,
		Version:       r.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return ErrLedgerPathRequired
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true

			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("warning-days") {
				cfg.Thresholds.WarningDays = warningDays
			}
			if flags.Changed("expired-window") {
				cfg.Thresholds.ExpiredWindowDays = expiredWindow
			}
			if flags.Changed("long") {
				cfg.Output.Long = long
			}
			if flags.Changed("verbose") {
				cfg.Output.Verbose = verbose
			}
			if flags.Changed("log-format") {
				cfg.Log.Format = logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.Log.Format == config.LogFormatJSON {
				log = logger.NewJSONLogger(r.stderr(), false)
			}

			st, err := r.check(cmd.Context(), args[0], cfg, start, log)
			if err != nil {
				return err
			}
			state = st
			return nil
		},
	}

	rootCmd.SetArgs(args)
	rootCmd.SetOut(r.stdout())
	rootCmd.SetErr(r.stderr())

	rootCmd.Flags().StringVar(&configFile, "config", "", "path to a JSON or YAML config file (default: $"+config.EnvConfigFile+")")
	rootCmd.Flags().IntVarP(&warningDays, "warning-days", "w", config.DefaultWarningDays, "warn about certificates expiring within this many days")
	rootCmd.Flags().IntVarP(&expiredWindow, "expired-window", "e", config.DefaultExpiredWindowDays, "report certificates expired for fewer than this many days")
	rootCmd.Flags().BoolVarP(&long, "long", "l", false, "append a markdown table of reported certificates")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace skipped and replaced records on stderr")
	rootCmd.Flags().StringVar(&logFormat, "log-format", config.LogFormatText, "diagnostics format: text or json")

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, ErrLedgerPathRequired) {
			log.Println(err)
		}
		if !ran {
			log.Printf("Usage: %s /path/to/CA/index.txt", r.name())
		}
		return nagios.Unknown
	}

	if !ran {
		return nagios.Unknown
	}
	return state
}

// check scans the ledger at path and writes the report.
func (r *Runner) check(ctx context.Context, path string, cfg *config.Config, now time.Time, log logger.Logger) (nagios.State, error) {
	f, err := ledger.Open(path)
	if err != nil {
		return nagios.Unknown, err
	}
	defer f.Close()

	trace := logger.Discard()
	if cfg.Output.Verbose {
		trace = log
	}

	tracker := expiry.NewTracker(expiry.Thresholds{
		WarningDays:       cfg.Thresholds.WarningDays,
		ExpiredWindowDays: cfg.Thresholds.ExpiredWindowDays,
	}, now, trace)

	sc := ledger.NewScanner(f, path)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nagios.Unknown, fmt.Errorf("%s: scan interrupted: %w", path, err)
		}
		if err := tracker.Observe(sc.Record()); err != nil {
			sc.Fail(err)
		}
	}
	if err := sc.Err(); err != nil {
		return nagios.Unknown, err
	}

	report := tracker.Report()

	var table string
	if cfg.Output.Long {
		if table, err = report.Table(); err != nil {
			return nagios.Unknown, err
		}
	}

	if _, err := fmt.Fprintln(r.stdout(), report.String()); err != nil {
		return nagios.Unknown, fmt.Errorf("failed to write status line: %w", err)
	}
	if table != "" {
		if _, err := io.WriteString(r.stdout(), table); err != nil {
			return nagios.Unknown, fmt.Errorf("failed to write long output: %w", err)
		}
	}

	return report.State(), nil
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func (r *Runner) name() string {
	if r.Name == "" {
		return posix.DefaultName
	}
	return r.Name
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}
