package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/alexiusacademia/gocomb/internal/ponderation"
	"github.com/alexiusacademia/gocomb/internal/report"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var psiFactors bool

var psiCmd = &cobra.Command{
	Use:   "psi",
	Short: "Print the ψ coefficients of a national annex",
	Long: `Print the combination coefficients ψ0, ψ1 and ψ2 of every action type
for the selected national annex (EN 1990 Table A1.1 for eu, the French
annex for fr), and optionally the partial factors of each category.

Examples:
  gocomb psi
  gocomb psi --annex fr --factors`,
	RunE: runPsi,
}

func init() {
	rootCmd.AddCommand(psiCmd)

	psiCmd.Flags().BoolVar(&psiFactors, "factors", false, "Also print the partial factors")
}

func runPsi(cmd *cobra.Command, args []string) error {
	annex, err := action.ParseAnnex(settings.Annex)
	if err != nil {
		return err
	}
	factors := ponderation.DefaultFactors(annex)

	if settings.JSON() {
		out := struct {
			Annex        action.Annex                          `json:"annex"`
			Coefficients []action.Coefficients                 `json:"coefficients"`
			Factors      map[string]ponderation.PartialFactors `json:"factors,omitempty"`
		}{Annex: annex, Coefficients: action.Table(annex)}
		if psiFactors {
			out.Factors = map[string]ponderation.PartialFactors{}
			for v, f := range factors {
				out.Factors[v.String()] = f
			}
		}
		return report.JSON(os.Stdout, out)
	}

	fmt.Println()
	report.Coefficients(os.Stdout, annex)
	if psiFactors {
		fmt.Println()
		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.SetStyle(table.StyleLight)
		tw.SetTitle("Partial factors")
		tw.AppendHeader(table.Row{"Verification", "γG,sup", "γG,inf", "γP", "γGw", "γQ"})
		for _, v := range ponderation.Verifications {
			f := factors[v]
			tw.AppendRow(table.Row{v, f.GSup, f.GInf, f.Prestress, f.Groundwater, f.Q})
		}
		tw.Render()
	}
	fmt.Println()
	return nil
}
