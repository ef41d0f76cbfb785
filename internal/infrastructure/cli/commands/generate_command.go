// Package commands implements the docgen subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/app"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
)

// NewGenerateCommand creates the generate command: render a template,
// place the command file, and wait for Claude's output.
func NewGenerateCommand(container *app.Container) *cobra.Command {
	var (
		vars          []string
		skipExecution bool
		timeout       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "generate <template>",
		Short: "Generate documentation from a template",
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
			// Passed through to the watcher deadline rather than a
			// context cancel, so an expiry reports as timed out.
			res, err := container.ExecutorService.Execute(ctx, gen, domain.ExecuteOptions{
				SkipExecution: skipExecution,
				Timeout:       timeout,
			})
			if err != nil {
				return err
			}
			renderResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "Template variable as key=value (repeatable)")
	cmd.Flags().BoolVar(&skipExecution, "skip-execution", false, "Write the command file but do not wait for output")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Override wait deadline (0 uses configuration)")

	return cmd
}

// buildGenerationContext resolves the named template and parses --var flags.
func buildGenerationContext(ctx context.Context, container *app.Container, name string, vars []string) (domain.GenerationContext, error) {
	if container.TemplateManager == nil {
		return domain.GenerationContext{}, fmt.Errorf(ErrTemplateManagerMissing)
	}
	if name == "" {
		return domain.GenerationContext{}, fmt.Errorf(ErrTemplateNameRequired)
	}
	tpl, err := container.TemplateManager.Get(ctx, name)
	if err != nil {
		return domain.GenerationContext{}, err
	}
	parsed, err := parseVariables(vars)
	if err != nil {
		return domain.GenerationContext{}, err
	}
	return domain.GenerationContext{Template: tpl, Variables: parsed}, nil
}

func parseVariables(vars []string) (map[string]string, error) {
	out := make(map[string]string, len(vars))
	for _, raw := range vars {
		key, value, found := strings.Cut(raw, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%s: %q", ErrMalformedVariableAssign, raw)
		}
		out[key] = value
	}
	return out, nil
}

func renderResult(out io.Writer, res domain.CommandResult) {
	status := "FAILED"
	if res.Success {
		status = "OK"
	}
	fmt.Fprintf(out, "[%s] command %s (%dms)\n", status, res.CommandID, res.DurationMS)
	if res.OutputPath != "" {
		fmt.Fprintf(out, "  output: %s\n", res.OutputPath)
	}
	if res.Error != "" {
		fmt.Fprintf(out, "  error: %s\n", res.Error)
	}
}
