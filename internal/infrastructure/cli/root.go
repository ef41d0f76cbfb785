// Package cli assembles the cobra command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/app"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "docgen",
		Short: "docgen - documentation generator",
		Long: "docgen renders documentation commands from templates, hands them to " +
			"Claude Code through its commands directory, and waits for the output artifact.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(commands.NewGenerateCommand(container))
	root.AddCommand(commands.NewPreviewCommand(container))
	root.AddCommand(commands.NewListCommand(container))
	root.AddCommand(commands.NewCleanupCommand(container))
	root.AddCommand(commands.NewDiagnoseCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	return root, nil
}
