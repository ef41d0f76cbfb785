package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/app"
)

// NewCleanupCommand creates the cleanup command. With an id it removes
// one tracked command file; without arguments it removes them all.
func NewCleanupCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup [command-id]",
		Short: "Remove tracked command files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ExecutorService == nil {
				return fmt.Errorf(ErrExecutorUnavailable)
			}
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			container.ExecutorService.Cleanup(id)
			fmt.Fprintln(cmd.OutOrStdout(), MsgCleanupDone)
			return nil
		},
	}
}
