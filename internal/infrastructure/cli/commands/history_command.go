package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/app"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
)

// NewHistoryCommand creates the history command with all subcommands.
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect execution history",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
	)

	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var (
		limit  int
		search string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent executions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return fmt.Errorf(ErrHistoryUnavailable)
			}
			summaries, err := container.HistoryStore.Records(limit, search)
			if err != nil {
				return fmt.Errorf("retrieve history: %w", err)
			}
			renderHistory(cmd.OutOrStdout(), summaries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", DefaultHistoryLimit, "Max entries to show")
	cmd.Flags().StringVar(&search, "search", "", "Filter by command name or id")
	return cmd
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded executions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return fmt.Errorf(ErrHistoryUnavailable)
			}
			if err := container.HistoryStore.Clear(); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgHistoryCleared)
			return nil
		},
	}
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export history to a JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return fmt.Errorf(ErrHistoryUnavailable)
			}
			if err := container.HistoryStore.ExportJSON(args[0]); err != nil {
				return fmt.Errorf("export history to %s: %w", args[0], err)
			}
			return nil
		},
	}
}

func renderHistory(out io.Writer, summaries []domain.ExecutionSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return
	}
	for _, s := range summaries {
		status := "failed"
		if s.Result.Success {
			status = "ok"
		}
		fmt.Fprintf(out, "%s | %s | %s | %s | %dms\n",
			s.RecordedAt.Format(TimestampFormat),
			s.Command.ID,
			s.Command.Name,
			status,
			s.Result.DurationMS)
	}
}
