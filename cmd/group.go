package cmd

import (
	"fmt"
	"strconv"

	"github.com/alexiusacademia/gocomb/internal/hierarchy"
	"github.com/alexiusacademia/gocomb/internal/project"
	"github.com/spf13/cobra"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Edit the groups of the hierarchy",
	Long: `Add, remove and modify groups. Group names are unique across the
hierarchy; modes are or, xor and and.

Subcommands:
  add     - Create a group on a level
  remove  - Remove a group and the references its parents hold
  mode    - Change the mode of a group
  rename  - Rename a group`,
}

var groupAddCmd = &cobra.Command{
	Use:     "add LEVEL NAME MODE",
	Short:   "Create a group on a level",
	Example: "  gocomb group add 0 climatic xor",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid level %q", args[0])
		}
		mode, err := hierarchy.ParseMode(args[2])
		if err != nil {
			return err
		}
		return editProject(fmt.Sprintf("added %s group %s on level %d", mode, args[1], level), func(p *project.Project) error {
			_, err := p.AddGroup(level, mode, args[1])
			return err
		})
	},
}

var groupRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editProject("removed group "+args[0], func(p *project.Project) error {
			return p.DeleteGroup(args[0])
		})
	},
}

var groupModeCmd = &cobra.Command{
	Use:   "mode NAME MODE",
	Short: "Change the mode of a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := hierarchy.ParseMode(args[1])
		if err != nil {
			return err
		}
		return editProject(fmt.Sprintf("group %s is now %s", args[0], mode), func(p *project.Project) error {
			return p.SetMode(args[0], mode)
		})
	},
}

var groupRenameCmd = &cobra.Command{
	Use:   "rename NAME NEW_NAME",
	Short: "Rename a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editProject(fmt.Sprintf("renamed group %s to %s", args[0], args[1]), func(p *project.Project) error {
			return p.RenameGroup(args[0], args[1])
		})
	},
}

func init() {
	rootCmd.AddCommand(groupCmd)
	groupCmd.AddCommand(groupAddCmd, groupRemoveCmd, groupModeCmd, groupRenameCmd)
}
