package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocomb/internal/report"
	"github.com/spf13/cobra"
)

var hierarchyCmd = &cobra.Command{
	Use:   "hierarchy",
	Short: "Show the group hierarchy and check its structure",
	Long: `Print the actions and the group tree of the project, from the top level
down, then report structural problems: empty levels, groups that never reach
the top level, elements shared by several groups and OR groups too wide to
enumerate.`,
	RunE: runHierarchy,
}

func init() {
	rootCmd.AddCommand(hierarchyCmd)
}

func runHierarchy(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	findings := p.Hierarchy.Audit(p.ActionName)
	structure := p.Hierarchy.CheckStructure()

	if settings.JSON() {
		out := struct {
			File      any      `json:"file"`
			Structure string   `json:"structure,omitempty"`
			Findings  []string `json:"findings,omitempty"`
		}{File: p.ToFile()}
		if structure != nil {
			out.Structure = structure.Error()
		}
		for _, f := range findings {
			out.Findings = append(out.Findings, f.String())
		}
		return report.JSON(os.Stdout, out)
	}

	fmt.Println()
	report.Actions(os.Stdout, p.Catalog)
	fmt.Println()
	fmt.Printf("GROUPS (%d levels):\n", p.Hierarchy.Len())
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Println(report.Tree(p))
	fmt.Println()

	if structure == nil && len(findings) == 0 {
		fmt.Println("  Structure OK")
	}
	if structure != nil {
		fmt.Printf("  Note: %v\n", structure)
	}
	for _, f := range findings {
		fmt.Printf("  Warning: %s\n", f)
	}
	fmt.Println()
	return nil
}
