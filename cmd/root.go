package cmd

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gocomb/internal/config"
	"github.com/alexiusacademia/gocomb/internal/logging"
	"github.com/alexiusacademia/gocomb/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	v        = config.New()
	settings config.Settings
	logger   = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gocomb",
	Short: "Eurocode load combination generator",
	Long: `gocomb - Go Eurocode Load Combinations

A CLI tool that generates the load combinations of a structure from a
hierarchy of action groups, then weights them for every EN 1990
verification category (ULS EQU/STR/GEO/FAT/ACC/SEIS, SLS CHAR/FREQ/QP).

Actions are grouped on level 0; higher levels group the groups below.
Each group combines its elements in one of three modes:
  OR   - any non-empty subset of the elements
  XOR  - exactly one element
  AND  - all elements together

Projects are YAML files. Start with 'gocomb init', then 'gocomb generate'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		s, err := config.FromViper(v)
		if err != nil {
			return err
		}
		settings = s
		logger, err = logging.New(s.Verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Println(bannerLine("gocomb v" + version.Version))
		fmt.Println(bannerLine("Go Eurocode Load Combinations"))
		fmt.Println(bannerLine(version.Author + " ©  " + version.Year))
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Generates EN 1990 load combinations from a hierarchy of")
		fmt.Println("  action groups (OR / XOR / AND).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • EU and French national annex ψ coefficients")
		fmt.Println("    • Combination generation with predominant action passes")
		fmt.Println("    • Weighted cases for nine verification categories")
		fmt.Println("    • Governing case search, charts, XLSX and PDF export")
		fmt.Println()
		fmt.Println("  Use 'gocomb --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

func bannerLine(s string) string {
	const inner = 56
	if n := utf8.RuneCountInString(s); n < inner {
		s += strings.Repeat(" ", inner-n)
	}
	return "  ║   " + s + "║"
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringP(config.KeyFile, "f", config.DefaultFile, "Project file")
	flags.String(config.KeyAnnex, "", "National annex override (eu, fr)")
	flags.BoolP(config.KeyVerbose, "v", false, "Debug logging on stderr")
	flags.String(config.KeyFormat, config.FormatTable, "Output format (table, json)")
	flags.Int(config.KeyChartWidth, 60, "Terminal chart width")
	flags.Int(config.KeyChartHeight, 12, "Terminal chart height")

	for _, key := range []string{config.KeyFile, config.KeyAnnex, config.KeyVerbose, config.KeyFormat, config.KeyChartWidth, config.KeyChartHeight} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
}
