package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"ics-diff/core/config"
	"ics-diff/core/logger"
	"ics-diff/core/reconcile"
	"ics-diff/core/report"
	"ics-diff/core/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X ics-diff/cmd.Version=...".
var Version = "0.1.0"

var (
	// Flags for the root diff command
	ignoreDTStamp bool
	showVersion   bool
	outputFormat  string
	colorOutput   bool
	showStats     bool
	saveReport    bool
)

var (
	// Replaced in tests
	exit = os.Exit
	// Restores default signal handling; set by Execute
	stopSignals = func() {}
)

// RootCmd compares two calendars when called without a subcommand.
var RootCmd = &cobra.Command{
	Use:   "ics-diff [flags] <left> <right>",
	Short: "Report differences between two iCalendar files",
	Long: `ics-diff compares the events and to-dos of two iCalendar documents and
prints the items that exist on one side only, plus the differing fields of
items present on both sides.

Calendars may be local files, - for stdin, s3://bucket/key objects or
git:<rev>:<path> revisions of the configured repository.

Examples:
  ics-diff old.ics new.ics
  ics-diff --ignore-dtstamp git:HEAD~1:team.ics team.ics
  ics-diff -f json s3://calendars/team.ics team.ics`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			return nil
		}
		if len(args) != 2 {
			return fmt.Errorf("expected two calendars, got %d arguments", len(args))
		}
		return nil
	},
	RunE: runDiff,
}

// Execute runs the CLI. An interrupt cancels the running command, prints
// "Aborted" and exits 0.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	stopSignals = stop

	err := RootCmd.ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Println("Aborted")
		return
	}
	if err != nil {
		// Console format with the development config gives ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.Flags()
	flags.BoolVarP(&ignoreDTStamp, "ignore-dtstamp", "i", false, "Ignore DTSTAMP properties")
	flags.BoolVarP(&showVersion, "version", "V", false, "Print the version and exit")
	flags.StringVarP(&outputFormat, "format", "f", "text", "Output format (text, json)")
	flags.BoolVar(&colorOutput, "color", false, "Colour text output")
	flags.BoolVar(&showStats, "stats", false, "Print a summary line to stderr")
	flags.BoolVar(&saveReport, "save", false, "Store the result in the report history")
}

func checkFormat(format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q, want text or json", format)
	}
	return nil
}

// abortOnInterrupt exits with "Aborted" as soon as ctx is canceled, even when
// the command is blocked in a read that never looks at ctx. The returned
// release func stops the watcher once the command has finished.
func abortOnInterrupt(ctx context.Context, out io.Writer) (release func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-done:
		case <-ctx.Done():
			select {
			case <-done:
				return
			default:
			}
			stopSignals()
			fmt.Fprintln(out, "Aborted")
			exit(0)
		}
	}()
	return func() {
		close(done)
		wg.Wait()
	}
}

func runDiff(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), Version)
		return nil
	}
	if err := checkFormat(outputFormat); err != nil {
		return err
	}

	ctx := cmd.Context()
	defer abortOnInterrupt(ctx, cmd.OutOrStdout())()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if ignoreDTStamp {
		cfg.Diff.IgnoreDTStamp = true
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	loader, err := newSourceLoader(cfg, l, source.WithStdin(cmd.InOrStdin()))
	if err != nil {
		return err
	}

	left, err := loader.Load(ctx, args[0])
	if err != nil {
		return err
	}
	right, err := loader.Load(ctx, args[1])
	if err != nil {
		return err
	}

	pairs, err := reconcile.New(cfg.Diff, reconcile.WithLogger(l)).Diff(left, right)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case "json":
		data, err := report.JSON(pairs)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	default:
		if err := report.Text(out, pairs, colorOutput); err != nil {
			return err
		}
	}

	if showStats {
		fmt.Fprint(cmd.ErrOrStderr(), report.FormatStats(reconcile.Summarize(pairs), colorOutput))
	}

	if saveReport {
		store, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		rec, err := report.NewRecord(args[0], args[1], cfg.Diff.IgnoreDTStamp, pairs)
		if err != nil {
			return err
		}
		if err := store.Save(ctx, rec); err != nil {
			return err
		}
		l.Info("Report saved", zap.String("id", rec.ID))
	}

	return nil
}
