// Command resilog is a small driver for exercising a logging session
// against a real directory: it emits one record per severity, then
// optionally keeps logging on an interval so an operator can pull the
// directory out from under it and watch the failover in the OS event
// log.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/weedfreer/resilog"
	"github.com/weedfreer/resilog/core"
)

var (
	flagDir      string
	flagBase     string
	flagName     string
	flagLevel    string
	flagConsole  bool
	flagDatetime bool
	flagCount    int
	flagInterval time.Duration
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resilog",
		Short: "Exercise a failover logging session",
		Long: `resilog constructs a logging session pointed at a directory and
emits records through it. Make the directory unreadable while it runs
and the session switches to the OS event log; restore access and it
switches back, appending to the same file.`,
		RunE: run,
	}

	cmd.Flags().StringVar(&flagDir, "dir", "logs", "output directory for the log file")
	cmd.Flags().StringVar(&flagBase, "base", "resilog", "base file name (.log assumed if no extension)")
	cmd.Flags().StringVar(&flagName, "name", "resilog", "session name")
	cmd.Flags().StringVar(&flagLevel, "level", "d", "minimum severity: d, i, w, e or c")
	cmd.Flags().BoolVar(&flagConsole, "console", true, "mirror all records to stderr")
	cmd.Flags().BoolVar(&flagDatetime, "datetime", false, "append a date-time suffix to the file name")
	cmd.Flags().IntVar(&flagCount, "count", 0, "extra info records to emit after the level sweep")
	cmd.Flags().DurationVar(&flagInterval, "interval", time.Second, "pause between extra records")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	sess, err := resilog.New(resilog.Config{
		Dir:            flagDir,
		BaseName:       flagBase,
		Name:           flagName,
		Level:          flagLevel,
		Console:        flagConsole,
		DatetimeSuffix: flagDatetime,
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "logging to %s (state %s)\n", sess.Filename(), sess.State())

	sess.Debug("this is a debug message")
	sess.Info("this is an info message")
	sess.Warn("this is a warning message")
	sess.Error("this is an error message")
	sess.Critical("this is a critical message")

	for i := 0; i < flagCount; i++ {
		sess.Info("interval record", core.Int("n", i), core.String("state", sess.State().String()))
		time.Sleep(flagInterval)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
