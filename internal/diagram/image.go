package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportEffects saves a bar chart of the factored effects of one category
// and returns the path written. The format follows the extension (.png,
// .svg, .pdf); anything else gets a .png suffix.
func ExportEffects(data EffectData, filename string) (string, error) {
	if data.Empty() {
		return "", fmt.Errorf("%s has no cases to plot", data.Verification)
	}
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s factored effects", data.Verification)
	p.X.Label.Text = "Case"
	p.Y.Label.Text = "Effect"

	bars, err := plotter.NewBarChart(plotter.Values(data.Effects), vg.Points(12))
	if err != nil {
		return "", err
	}
	bars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	bars.LineStyle.Width = vg.Points(0.5)
	p.Add(bars)

	if data.Governing >= 0 {
		gov, err := plotter.NewScatter(plotter.XYs{{X: float64(data.Governing), Y: data.Effects[data.Governing]}})
		if err != nil {
			return "", err
		}
		gov.GlyphStyle.Shape = draw.CircleGlyph{}
		gov.GlyphStyle.Radius = vg.Points(5)
		gov.GlyphStyle.Color = color.RGBA{R: 220, G: 20, B: 60, A: 255}
		p.Add(gov)
		p.Legend.Add(fmt.Sprintf("governing #%d", data.Governing+1), gov)
		p.Legend.Top = true
	}

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.Color = color.Gray{Y: 96}
	p.Add(zero)

	names := make([]string, len(data.Effects))
	for i := range names {
		names[i] = fmt.Sprintf("%d", i+1)
	}
	p.NominalX(names...)

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
