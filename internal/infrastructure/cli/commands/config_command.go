package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/app"
)

// NewConfigCommand creates the config command.
func NewConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	configCmd.AddCommand(newConfigShowCommand(container))
	return configCmd
}

func newConfigShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := container.ConfigLoader.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			raw, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			cmd.OutOrStdout().Write(raw)
			return nil
		},
	}
}
