package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/app"
)

// NewListCommand creates the list command showing templates and
// active commands.
func NewListCommand(container *app.Container) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List templates and active commands",
	}

	listCmd.AddCommand(
		newListTemplatesCommand(container),
		newListActiveCommand(container),
	)

	return listCmd
}

func newListTemplatesCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.TemplateManager == nil {
				return fmt.Errorf(ErrTemplateManagerMissing)
			}
			templates, err := container.TemplateManager.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(templates) == 0 {
				fmt.Fprintln(out, MsgNoTemplatesFound)
				return nil
			}
			for _, tpl := range templates {
				fmt.Fprintf(out, "%s - %s\n", tpl.Name, tpl.Description)
				for _, v := range tpl.Variables {
					marker := "optional"
					if v.Required {
						marker = "required"
					}
					fmt.Fprintf(out, "  %s (%s): %s\n", v.Name, marker, v.Description)
				}
			}
			return nil
		},
	}
}

func newListActiveCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "List tracked command files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.CommandManager == nil {
				return fmt.Errorf(ErrCommandManagerMissing)
			}
			active := container.CommandManager.ListActive()
			out := cmd.OutOrStdout()
			if len(active) == 0 {
				fmt.Fprintln(out, MsgNoActiveCommands)
				return nil
			}
			for _, c := range active {
				fmt.Fprintf(out, "%s | %s | %s\n",
					c.ID,
					c.CreatedAt.Format(TimestampFormat),
					c.FilePath)
			}
			return nil
		},
	}
}
