package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gocomb/internal/diagram"
	"github.com/alexiusacademia/gocomb/internal/report"
	"github.com/spf13/cobra"
)

var (
	governVerification string
	governAll          bool
	governDiagram      bool
	governOutput       string
)

var governCmd = &cobra.Command{
	Use:   "govern",
	Short: "Find the governing load case of each verification category",
	Long: `Find the governing load case: the weighted case with the largest absolute
factored effect, the effect being Σ factor × characteristic value of each
action (sum of its loads).

Examples:
  # Governing case of every category
  gocomb govern

  # STR only, with every case and a terminal chart
  gocomb govern --verification ULS-STR --all --diagram

  # Export a bar chart of the STR effects
  gocomb govern --verification ULS-STR --output str.png`,
	RunE: runGovern,
}

func init() {
	rootCmd.AddCommand(governCmd)

	governCmd.Flags().StringVarP(&governVerification, "verification", "V", "", "Only this category (e.g. ULS-STR)")
	governCmd.Flags().BoolVarP(&governAll, "all", "a", false, "Show all load case results")
	governCmd.Flags().BoolVar(&governDiagram, "diagram", false, "Show ASCII effect chart")
	governCmd.Flags().StringVarP(&governOutput, "output", "o", "", "Export effect chart to file (png, svg, pdf)")
}

func runGovern(cmd *cobra.Command, args []string) error {
	_, d, err := generateProject()
	if err != nil {
		return err
	}
	selected, err := sections(d, governVerification)
	if err != nil {
		return err
	}

	if settings.JSON() {
		type governing struct {
			Verification string          `json:"verification"`
			Case         *report.CaseRow `json:"case"`
		}
		var out []governing
		for _, s := range selected {
			g := governing{Verification: s.Code}
			if c, ok := s.GoverningCase(); ok {
				g.Case = &c
			}
			out = append(out, g)
		}
		return report.JSON(os.Stdout, out)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("          GOVERNING LOAD CASES: %s\n", strings.ToUpper(d.Project))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	for _, s := range selected {
		gov, ok := s.GoverningCase()
		if !ok {
			if governVerification != "" {
				fmt.Printf("  %s: no cases\n\n", s.Code)
			}
			continue
		}
		if governAll {
			report.Cases(os.Stdout, s)
			fmt.Println()
		}
		lines := []string{
			fmt.Sprintf("Case #%d of %d", s.Governing+1, len(s.Cases)),
			gov.Label,
			fmt.Sprintf("Factored effect = %.2f", gov.Effect),
		}
		if gov.Predominant != "" {
			lines = append(lines, "Leading action: "+gov.Predominant)
		}
		fmt.Print(diagram.DrawSummaryBox(s.Code+"  "+s.Description, lines))
		fmt.Println()

		if governDiagram {
			fmt.Print(diagram.DrawEffects(effectData(s), settings.ChartWidth, settings.ChartHeight))
			fmt.Println()
		}
		if governOutput != "" {
			path := diagramPath(governOutput, s.Code, len(selected) > 1)
			written, err := diagram.ExportEffects(effectData(s), path)
			if err != nil {
				return fmt.Errorf("export %s: %w", path, err)
			}
			fmt.Printf("  Diagram exported to: %s\n\n", written)
		}
	}
	printNotes(d)
	return nil
}

// diagramPath inserts the category code before the extension when several
// charts share one --output value.
func diagramPath(path, code string, several bool) string {
	if !several {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + strings.ToLower(code) + ext
}
