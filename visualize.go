package sliceline

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DebugPlot renders the per-level debug matrix collected by a Verbose run:
// enumerated vs. valid candidate counts, and the top-k score bounds, one
// point per lattice level.
func DebugPlot(rows []DebugRow, filename string) error {
	if len(rows) == 0 {
		return fmt.Errorf("sliceline: no debug rows to plot")
	}

	enumerated := make(plotter.XYs, len(rows))
	valid := make(plotter.XYs, len(rows))
	tkMax := make(plotter.XYs, len(rows))
	tkMin := make(plotter.XYs, len(rows))
	for i, r := range rows {
		enumerated[i] = plotter.XY{X: float64(r.Level), Y: float64(r.Enumerated)}
		valid[i] = plotter.XY{X: float64(r.Level), Y: float64(r.Valid)}
		tkMax[i] = plotter.XY{X: float64(r.Level), Y: r.TKMax}
		tkMin[i] = plotter.XY{X: float64(r.Level), Y: r.TKMin}
	}

	countsPlot, err := createPlot([]plotter.XYs{enumerated, valid}, []string{"enumerated", "valid"}, "candidates per level")
	if err != nil {
		return err
	}
	scorePlot, err := createPlot([]plotter.XYs{tkMax, tkMin}, []string{"top-k max", "top-k min"}, "top-k score bounds per level")
	if err != nil {
		return err
	}

	img := vgimg.New(vg.Points(900), vg.Points(400))
	dc := draw.New(img)
	t := draw.Tiles{Rows: 1, Cols: 2}
	canvases := plot.Align([][]*plot.Plot{{countsPlot, scorePlot}}, t, dc)
	countsPlot.Draw(canvases[0][0])
	scorePlot.Draw(canvases[0][1])

	w, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer w.Close()

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(w)
	return err
}

func createPlot(pts []plotter.XYs, labels []string, title string) (*plot.Plot, error) {
	if labels != nil && len(pts) != len(labels) {
		return nil, fmt.Errorf("sliceline: %d series but %d labels", len(pts), len(labels))
	}

	p, err := plot.New()
	if err != nil {
		return p, err
	}

	p.Title.Text = title
	for i := range pts {
		line, points, err := plotter.NewLinePoints(pts[i])
		if err != nil {
			return p, err
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = nil
		p.Add(line, points)
		if labels != nil {
			p.Legend.Add(labels[i], line)
		}
	}
	return p, nil
}
