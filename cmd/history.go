package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"zenfocus/internal/config"
	"zenfocus/internal/core/focustimer"
	"zenfocus/internal/storage"
	"zenfocus/internal/storage/sqlite"
)

const defaultHistoryLimit = 20

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent focus sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			store := sqlite.NewHistoryStore(manager.Config().History.DatabasePath)
			if err := store.Init(cmd.Context()); err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printHistory(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "number of entries to show")
	return cmd
}

func printHistory(out io.Writer, entries []storage.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(out, "No sessions recorded yet.")
		return err
	}
	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "TIME\tEVENT\tPRESET\tREMAINING")
	for _, entry := range entries {
		fmt.Fprintf(writer, "%s\t%s\t%d min\t%s\n",
			entry.At.Local().Format(time.DateTime),
			entry.Kind,
			entry.PresetMinutes,
			focustimer.FormatClock(entry.RemainingSeconds),
		)
	}
	return writer.Flush()
}
