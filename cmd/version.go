package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocomb/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocomb",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Short())
		fmt.Println("Eurocode Load Combination Generator")
		fmt.Println("Based on EN 1990 (Basis of structural design), Annex A1")
		fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
