package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/app"
)

// NewPreviewCommand creates the preview command: render without
// writing anything to disk.
func NewPreviewCommand(container *app.Container) *cobra.Command {
	var vars []string

	cmd := &cobra.Command{
		Use:   "preview <template>",
		Short: "Render a command without writing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ExecutorService == nil {
				return fmt.Errorf(ErrExecutorUnavailable)
			}
			ctx := cmd.Context()
			gen, err := buildGenerationContext(ctx, container, args[0], vars)
			if err != nil {
				return err
			}
			rendered, err := container.ExecutorService.Preview(ctx, gen)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# file: %s\n", rendered.Filename)
			fmt.Fprintf(out, "# output: %s\n\n", rendered.OutputPath)
			fmt.Fprintln(out, rendered.Content)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "Template variable as key=value (repeatable)")
	return cmd
}
