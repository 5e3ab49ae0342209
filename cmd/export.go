package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocomb/internal/report"
	"github.com/alexiusacademia/gocomb/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportXLSX   string
	exportPDF    string
	exportJSON   string
	exportAuthor string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the weighted load cases to XLSX, PDF or JSON",
	Long: `Regenerate the project and write the weighted load cases to files.

The workbook holds a summary sheet and one sheet per verification category
with one factor column per action. The PDF is a printable calculation note.

Examples:
  gocomb export --xlsx cases.xlsx
  gocomb export --pdf note.pdf --author "J. Smith"
  gocomb export --json cases.json`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportXLSX, "xlsx", "", "Workbook output path")
	exportCmd.Flags().StringVar(&exportPDF, "pdf", "", "PDF output path")
	exportCmd.Flags().StringVar(&exportJSON, "json", "", "JSON output path")
	exportCmd.Flags().StringVar(&exportAuthor, "author", version.Author, "Author printed on the PDF note")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportXLSX == "" && exportPDF == "" && exportJSON == "" {
		return fmt.Errorf("nothing to export: use --xlsx, --pdf or --json")
	}
	_, d, err := generateProject()
	if err != nil {
		return err
	}

	if exportXLSX != "" {
		if err := report.WriteXLSX(d, exportXLSX); err != nil {
			return fmt.Errorf("export %s: %w", exportXLSX, err)
		}
		exported(exportXLSX)
	}
	if exportPDF != "" {
		if err := writeFile(exportPDF, func(f *os.File) error { return report.WritePDF(d, exportAuthor, f) }); err != nil {
			return err
		}
		exported(exportPDF)
	}
	if exportJSON != "" {
		if err := writeFile(exportJSON, func(f *os.File) error { return report.JSON(f, d) }); err != nil {
			return err
		}
		exported(exportJSON)
	}
	return nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}

func exported(path string) {
	logger.Info("exported", zap.String("path", path))
	fmt.Printf("  Exported to: %s\n", path)
}
