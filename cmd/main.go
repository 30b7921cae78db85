package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// eventBuffer sizes engine subscriptions. Slow observers drop events past it.
const eventBuffer = 256

type rootOptions struct {
	configPath string
	logPath    string
	logFile    io.Closer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "zenfocus",
		Short: "A small focus timer widget",
		Long: `ZenFocus counts down a focus session in a small always-available window,
plays a chime and posts a notification when the session ends.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closer, err := setupLogging(opts.logPath)
			if err != nil {
				return err
			}
			opts.logFile = closer
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logFile != nil {
				_ = opts.logFile.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesktop(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ./config.yaml or ~/.config/zenfocus/config.yaml)")
	flags.StringVar(&opts.logPath, "log", "", "append log output to this file instead of stderr")

	cmd.AddCommand(newTerminalCmd(opts), newHistoryCmd(opts))
	return cmd
}
