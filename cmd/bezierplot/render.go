package main

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/bezier/curve"
	"github.com/katalvlaran/bezier/editor"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	curveColor   = color.RGBA{B: 255, A: 255}
	controlColor = color.RGBA{R: 255, A: 255}
	sampleColor  = color.RGBA{R: 255, G: 255, A: 255}
	polygonColor = color.Gray{Y: 128}
)

// Style selects what Render draws and the page size.
type Style struct {
	CurvePoints   bool
	ControlPoints bool
	Lines         bool
	Width         vg.Length
	Height        vg.Length
}

// xys converts points to plotter coordinates.
func xys(points []curve.Point) plotter.XYs {
	out := make(plotter.XYs, len(points))
	for i, p := range points {
		out[i].X, out[i].Y = p.Splat()
	}

	return out
}

// newPlot builds the figure for s. The y axis grows downwards, matching the
// screen coordinates control points are placed in.
func newPlot(s *editor.Session, st Style) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("degree %d, %d steps, %s", s.Degree(), s.Steps(), s.Kind())
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	controls := xys(s.ControlPoints())
	samples := xys(s.Points())

	if st.Lines && len(controls) > 1 {
		polygon, err := plotter.NewLine(controls)
		if err != nil {
			return nil, fmt.Errorf("control polygon: %w", err)
		}
		polygon.LineStyle.Width = vg.Points(0.5)
		polygon.LineStyle.Color = polygonColor
		p.Add(polygon)
	}

	if len(samples) > 0 {
		line, err := plotter.NewLine(samples)
		if err != nil {
			return nil, fmt.Errorf("curve: %w", err)
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = curveColor
		p.Add(line)

		if st.CurvePoints {
			dots, err := plotter.NewScatter(samples)
			if err != nil {
				return nil, fmt.Errorf("curve points: %w", err)
			}
			dots.GlyphStyle.Shape = draw.CircleGlyph{}
			dots.GlyphStyle.Color = sampleColor
			dots.GlyphStyle.Radius = vg.Points(2)
			p.Add(dots)
		}
	}

	if st.ControlPoints && len(controls) > 0 {
		marks, err := plotter.NewScatter(controls)
		if err != nil {
			return nil, fmt.Errorf("control points: %w", err)
		}
		marks.GlyphStyle.Shape = draw.CircleGlyph{}
		marks.GlyphStyle.Color = controlColor
		marks.GlyphStyle.Radius = vg.Points(4)
		p.Add(marks)
	}

	return p, nil
}

// Render draws s to path. The image format follows the file extension
// (png, svg, pdf, eps, jpg, tif, tex).
func Render(s *editor.Session, st Style, path string) error {
	p, err := newPlot(s, st)
	if err != nil {
		return err
	}
	if err = p.Save(st.Width, st.Height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}
