package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/alexiusacademia/gocomb/internal/project"
	"github.com/spf13/cobra"
)

var actionDescription string

var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Edit the actions of the project",
	Long: `Add, remove and modify the actions of the project file.

Subcommands:
  add     - Add an action of a given type
  remove  - Remove an action and every reference to it
  rename  - Rename an action
  type    - Change the type of an action (its ψ coefficients follow)
  load    - Attach a load value to an action
  unload  - Detach a load from an action
  import  - Import actions and loads from a workbook

Run 'gocomb psi' for the list of action types.`,
}

var actionAddCmd = &cobra.Command{
	Use:     "add NAME TYPE",
	Short:   "Add an action",
	Example: "  gocomb action add Q imposed-b --description \"Office floors\"",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editProject("added action "+args[0], func(p *project.Project) error {
			a, err := p.AddAction(args[0], action.Type(args[1]))
			if err != nil {
				return err
			}
			a.Description = actionDescription
			return nil
		})
	},
}

var actionRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove an action from the catalog and from every group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editProject("removed action "+args[0], func(p *project.Project) error {
			return p.DeleteAction(args[0])
		})
	},
}

var actionRenameCmd = &cobra.Command{
	Use:   "rename NAME NEW_NAME",
	Short: "Rename an action",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editProject(fmt.Sprintf("renamed action %s to %s", args[0], args[1]), func(p *project.Project) error {
			return p.RenameAction(args[0], args[1])
		})
	},
}

var actionTypeCmd = &cobra.Command{
	Use:   "type NAME TYPE",
	Short: "Change the type of an action",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editProject(fmt.Sprintf("action %s is now %s", args[0], args[1]), func(p *project.Project) error {
			return p.SetActionType(args[0], action.Type(args[1]))
		})
	},
}

var actionLoadCmd = &cobra.Command{
	Use:     "load NAME LOAD VALUE",
	Short:   "Attach a load to an action",
	Example: "  gocomb action load G \"roof finishes\" 3.5",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid load value %q", args[2])
		}
		return editProject(fmt.Sprintf("load %s added to %s", args[1], args[0]), func(p *project.Project) error {
			return p.AddLoad(args[0], action.Load{Name: args[1], Value: value})
		})
	},
}

var actionUnloadCmd = &cobra.Command{
	Use:     "unload NAME LOAD",
	Short:   "Detach a load from an action",
	Example: "  gocomb action unload G \"roof finishes\"",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editProject(fmt.Sprintf("load %s removed from %s", args[1], args[0]), func(p *project.Project) error {
			return p.RemoveLoad(args[0], args[1])
		})
	},
}

var actionImportCmd = &cobra.Command{
	Use:   "import WORKBOOK",
	Short: "Import actions and loads from an XLSX workbook",
	Long: `Import actions from the first sheet of a workbook. After a header row,
each row holds: action name, type, load name, load value and an optional
description. Loads for an existing action are appended to it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		entries, err := project.ImportXLSX(f)
		if err != nil {
			return err
		}
		return editProject(fmt.Sprintf("imported %d actions from %s", len(entries), args[0]), func(p *project.Project) error {
			_, err := p.MergeActions(entries)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(actionCmd)
	actionCmd.AddCommand(actionAddCmd, actionRemoveCmd, actionRenameCmd, actionTypeCmd, actionLoadCmd, actionUnloadCmd, actionImportCmd)

	actionAddCmd.Flags().StringVarP(&actionDescription, "description", "d", "", "Action description")
}
