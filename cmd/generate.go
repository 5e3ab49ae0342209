package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocomb/internal/report"
	"github.com/spf13/cobra"
)

var (
	generateCases        bool
	generateVerification string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and weight every load combination of the project",
	Long: `Generate the combinations of the project hierarchy and weight them for
every verification category.

One generation pass runs per action; in each pass the driving action, when
variable, is the predominant (leading) action. The top level combinations of
all passes are weighted with the partial factors and ψ coefficients of the
national annex.

Examples:
  # Summary table, one row per category
  gocomb generate

  # Every case of the STR category
  gocomb generate --cases --verification ULS-STR

  # Machine readable output
  gocomb generate --format json`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVarP(&generateCases, "cases", "c", false, "List every weighted case")
	generateCmd.Flags().StringVarP(&generateVerification, "verification", "V", "", "Only this category (e.g. ULS-STR)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_, d, err := generateProject()
	if err != nil {
		return err
	}
	selected, err := sections(d, generateVerification)
	if err != nil {
		return err
	}

	if settings.JSON() {
		if generateVerification != "" {
			return report.JSON(os.Stdout, selected)
		}
		return report.JSON(os.Stdout, d)
	}

	fmt.Println()
	report.Summary(os.Stdout, d)
	fmt.Println()
	printNotes(d)

	if generateCases {
		for _, s := range selected {
			if len(s.Cases) == 0 {
				continue
			}
			fmt.Println()
			report.Cases(os.Stdout, s)
		}
	}
	fmt.Println()
	return nil
}
