package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// EffectData holds the factored effects of one verification category.
type EffectData struct {
	Verification string
	Labels       []string  // one per case
	Effects      []float64 // factored effect of each case
	Governing    int       // index of the governing case, -1 if none
}

// Empty reports whether there is nothing to draw.
func (d EffectData) Empty() bool {
	return len(d.Effects) == 0
}

// DrawEffects plots the effect of every case, in generation order, as a
// terminal line chart.
func DrawEffects(data EffectData, width, height int) string {
	if data.Empty() {
		return fmt.Sprintf("  %s: no cases\n", data.Verification)
	}
	series := data.Effects
	// asciigraph needs two points to draw a line
	if len(series) == 1 {
		series = []float64{series[0], series[0]}
	}
	caption := fmt.Sprintf("%s factored effect per case (%d cases)", data.Verification, len(data.Effects))
	if data.Governing >= 0 {
		caption += fmt.Sprintf(", governing #%d = %.2f", data.Governing+1, data.Effects[data.Governing])
	}
	graph := asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
	return graph + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes, not runes.
func pad(s string, n int) string {
	if d := n - len([]rune(s)); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
