package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocomb/internal/project"
	"github.com/spf13/cobra"
)

var (
	initName  string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample project file",
	Long: `Write a sample project: a building with self weight, office imposed
load, snow and wind, grouped on three levels.

Examples:
  gocomb init
  gocomb init --file bridge.yml --name bridge`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initName, "name", "n", "building", "Project name")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := settings.File
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	p, err := project.FromYAML([]byte(project.Default(initName)))
	if err != nil {
		return err
	}
	if err := applyAnnex(p); err != nil {
		return err
	}
	if err := p.Save(path); err != nil {
		return err
	}
	fmt.Printf("  Created %s\n", path)
	fmt.Println("  Next: gocomb hierarchy, then gocomb generate")
	return nil
}
