package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocomb/internal/combination"
	"github.com/alexiusacademia/gocomb/internal/project"
	"github.com/alexiusacademia/gocomb/internal/report"
	"github.com/spf13/cobra"
)

var (
	combinationsPass  string
	combinationsGroup string
)

var combinationsCmd = &cobra.Command{
	Use:   "combinations",
	Short: "List the unweighted combinations produced by the hierarchy",
	Long: `List the combinations before weighting. Predominant actions are marked
with "*".

Without --pass, every generation pass is run and its top level combinations
are listed. With --pass, only the pass driven by that action runs, and
--group selects which group's combinations to show.

Examples:
  gocomb combinations
  gocomb combinations --pass W --group variable`,
	RunE: runCombinations,
}

func init() {
	rootCmd.AddCommand(combinationsCmd)

	combinationsCmd.Flags().StringVarP(&combinationsPass, "pass", "p", "", "Action driving the pass")
	combinationsCmd.Flags().StringVarP(&combinationsGroup, "group", "g", "", "Group to list (requires --pass)")
}

type passCombinations struct {
	Pass         string     `json:"pass"`
	Group        string     `json:"group,omitempty"`
	Combinations [][]string `json:"combinations"`

	combos []combination.Combination
}

func runCombinations(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	if combinationsGroup != "" && combinationsPass == "" {
		return fmt.Errorf("--group requires --pass")
	}

	var out []passCombinations
	if combinationsPass != "" {
		gen, pass, err := p.Pass(combinationsPass, logger)
		if err != nil {
			return err
		}
		combos := gen.Top()
		if combinationsGroup != "" {
			g, _, ok := p.Hierarchy.GroupByName(combinationsGroup)
			if !ok {
				return fmt.Errorf("unknown group %q", combinationsGroup)
			}
			combos = gen.Group(g.ID)
		}
		out = append(out, named(p, pass, combinationsGroup, combos))
	} else {
		sink := combination.SinkFunc(func(pass combination.Pass, top []combination.Combination) error {
			out = append(out, named(p, pass, "", top))
			return nil
		})
		if _, err := combination.Run(p.Catalog, p.Hierarchy, sink, logger); err != nil {
			return err
		}
	}

	if settings.JSON() {
		return report.JSON(os.Stdout, out)
	}
	fmt.Println()
	for _, pc := range out {
		title := "Pass " + pc.Pass
		if pc.Group != "" {
			title += ", group " + pc.Group
		}
		report.Combinations(os.Stdout, title, pc.combos, p.ActionName)
		fmt.Println()
	}
	return nil
}

func named(p *project.Project, pass combination.Pass, group string, combos []combination.Combination) passCombinations {
	pc := passCombinations{
		Pass:         p.ActionName(pass.Action),
		Group:        group,
		Combinations: [][]string{},
		combos:       combos,
	}
	for _, c := range combos {
		names := make([]string, len(c))
		for i, e := range c {
			names[i] = p.ActionName(e.Action)
			if e.Predominant {
				names[i] += "*"
			}
		}
		pc.Combinations = append(pc.Combinations, names)
	}
	return pc
}
