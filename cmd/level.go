package cmd

import (
	"fmt"
	"strconv"

	"github.com/alexiusacademia/gocomb/internal/project"
	"github.com/spf13/cobra"
)

var levelAllowEmpty bool

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Add or remove hierarchy levels",
	Long: `Add or remove levels of the group hierarchy. Level 0 groups actions;
level n groups the groups of level n-1.

Subcommands:
  add     - Append an empty level on top
  remove  - Remove a level and every level above it`,
}

var levelAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append an empty level on top of the hierarchy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return editProject("added level", func(p *project.Project) error {
			fmt.Printf("  Level %d created\n", p.AddLevel())
			return nil
		})
	},
}

var levelRemoveCmd = &cobra.Command{
	Use:   "remove LEVEL",
	Short: "Remove a level and every level above it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid level %q", args[0])
		}
		return editProject(fmt.Sprintf("removed levels %d and above", level), func(p *project.Project) error {
			return p.RemoveLevel(level, levelAllowEmpty)
		})
	},
}

func init() {
	rootCmd.AddCommand(levelCmd)
	levelCmd.AddCommand(levelAddCmd, levelRemoveCmd)

	levelRemoveCmd.Flags().BoolVar(&levelAllowEmpty, "allow-empty", false, "Leave no level at all when removing level 0")
}
