// Package snapshot renders figures to static PNG files for use outside a browser.
package snapshot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"smokestat/internal/charts"
	"smokestat/internal/errors"
)

// Image size of every snapshot
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// Exporter writes one PNG per figure into Dir
type Exporter struct {
	Dir string
}

// NewExporter returns an exporter writing into dir
func NewExporter(dir string) *Exporter {
	return &Exporter{Dir: dir}
}

// Path is where fig's snapshot is written
func (e *Exporter) Path(fig charts.Figure) string {
	return filepath.Join(e.Dir, fig.ID+".png")
}

// Export renders each figure and returns the written paths in order
func (e *Exporter) Export(figures ...charts.Figure) ([]string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return nil, errors.WriteError(e.Dir, err)
	}
	paths := make([]string, 0, len(figures))
	for _, fig := range figures {
		p, err := Plot(fig)
		if err != nil {
			return paths, err
		}
		path := e.Path(fig)
		if err := p.Save(Width, Height, path); err != nil {
			return paths, errors.WriteError(path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Plot converts a figure to a gonum plot. Series bound to the secondary axis
// are skipped since gonum plots have a single y scale.
func Plot(fig charts.Figure) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fig.Title
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.X.Label.Text = fig.XAxis.Label
	p.Y.Label.Text = fig.YAxis.Label
	p.Legend.Top = true
	p.Legend.Left = fig.Legend != charts.LegendTopRight
	p.Add(plotter.NewGrid())

	labelled := make(map[string]bool)
	for _, s := range fig.Series {
		if s.YAxis == charts.AxisSecondary {
			continue
		}
		xys := make(plotter.XYs, len(s.X))
		for i := range s.X {
			xys[i] = plotter.XY{X: s.X[i], Y: s.Y[i]}
		}
		c, err := parseHex(s.Color)
		if err != nil {
			return nil, errors.RenderError(fmt.Sprintf("series %q", s.Name), err)
		}

		var thumb plot.Thumbnailer
		switch s.Kind {
		case charts.KindLine:
			line, err := plotter.NewLine(xys)
			if err != nil {
				return nil, errors.RenderError(fmt.Sprintf("series %q", s.Name), err)
			}
			line.Color = c
			line.Width = vg.Points(s.Width)
			if s.Dash != "" {
				line.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
			}
			p.Add(line)
			thumb = line
		case charts.KindCircle:
			scatter, err := plotter.NewScatter(xys)
			if err != nil {
				return nil, errors.RenderError(fmt.Sprintf("series %q", s.Name), err)
			}
			scatter.GlyphStyle.Shape = draw.CircleGlyph{}
			scatter.GlyphStyle.Color = c
			scatter.GlyphStyle.Radius = vg.Points(3)
			p.Add(scatter)
			thumb = scatter
		default:
			return nil, errors.RenderError(fmt.Sprintf("series %q: unknown kind %q", s.Name, s.Kind), nil)
		}

		if !labelled[s.Name] {
			p.Legend.Add(s.Name, thumb)
			labelled[s.Name] = true
		}
	}

	// Adding plotters widens the axes to the data, so fixed ranges go last.
	if r := fig.YAxis.Range; r != nil {
		p.Y.Min, p.Y.Max = r.Start, r.End
	}
	return p, nil
}

func parseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
