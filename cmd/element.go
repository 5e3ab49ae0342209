package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gocomb/internal/project"
	"github.com/spf13/cobra"
)

var elementCmd = &cobra.Command{
	Use:   "element",
	Short: "Add or remove the elements of a group",
	Long: `Add or remove group elements, by name. Elements of a level 0 group are
actions; elements of a level n group are groups of level n-1.

Subcommands:
  add     - Add elements to a group
  remove  - Remove elements from a group (elements it does not hold are ignored)`,
}

var elementAddCmd = &cobra.Command{
	Use:     "add GROUP ELEMENT...",
	Short:   "Add elements to a group",
	Example: "  gocomb element add climatic S W",
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		group, names := args[0], args[1:]
		return editProject(fmt.Sprintf("%s += %s", group, strings.Join(names, ", ")), func(p *project.Project) error {
			for _, name := range names {
				if err := p.AddElement(group, name); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var elementRemoveCmd = &cobra.Command{
	Use:   "remove GROUP ELEMENT...",
	Short: "Remove elements from a group",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		group, names := args[0], args[1:]
		return editProject(fmt.Sprintf("%s -= %s", group, strings.Join(names, ", ")), func(p *project.Project) error {
			for _, name := range names {
				if err := p.RemoveElement(group, name); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(elementCmd)
	elementCmd.AddCommand(elementAddCmd, elementRemoveCmd)
}
