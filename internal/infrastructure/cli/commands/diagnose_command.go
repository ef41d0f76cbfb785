package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/app"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
)

// NewDiagnoseCommand creates the diagnose command. With a command id
// it snapshots that command's filesystem state; without arguments it
// runs the environment health checks.
func NewDiagnoseCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose [command-id]",
		Short: "Inspect a command or the environment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				if container.ExecutorService == nil {
					return fmt.Errorf(ErrExecutorUnavailable)
				}
				diag, err := container.ExecutorService.Diagnostics(args[0])
				if err != nil {
					return err
				}
				renderDiagnostics(out, diag)
				return nil
			}
			if container.DoctorService == nil {
				return fmt.Errorf(ErrDoctorUnavailable)
			}
			report, err := container.DoctorService.Run(cmd.Context())
			renderHealthReport(out, report)
			if err != nil {
				return fmt.Errorf("diagnostics completed with errors: %w", err)
			}
			return nil
		},
	}
}

func renderDiagnostics(out io.Writer, diag domain.Diagnostics) {
	fmt.Fprintf(out, "command: %s\n", diag.CommandID)
	fmt.Fprintf(out, "  file: %s\n", diag.CommandPath)
	fmt.Fprintf(out, "  created: %s\n", diag.CreatedAt.Format(TimestampFormat))
	if diag.Version != "" {
		fmt.Fprintf(out, "  version: %s\n", diag.Version)
	}
	fmt.Fprintf(out, "  output: %s\n", diag.OutputPath)
	if diag.OutputExists {
		fmt.Fprintf(out, "  output exists: yes (%s, modified %s)\n",
			humanize.Bytes(uint64(diag.OutputSize)),
			diag.OutputModTime.Format(TimestampFormat))
	} else {
		fmt.Fprintln(out, "  output exists: no")
	}
}

func renderHealthReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}
