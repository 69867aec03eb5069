package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RenderPNG draws temperature and pressure curves against stage index and
// saves them to an image file. The format follows the file extension
// (.png, .svg, .pdf, ...).
func RenderPNG(rows []Row, path string) error {
	if len(rows) == 0 {
		return fmt.Errorf("report: no stages to render")
	}

	p := plot.New()
	p.Title.Text = "Stage-by-Stage Temperature and Pressure"
	p.X.Label.Text = "Stage"
	p.Y.Label.Text = "Values"

	temps := make(plotter.XYs, len(rows))
	pressures := make(plotter.XYs, len(rows))
	for i, r := range rows {
		temps[i].X = float64(r.Stage)
		temps[i].Y = r.Temperature
		pressures[i].X = float64(r.Stage)
		pressures[i].Y = r.Pressure
	}

	tLine, err := plotter.NewLine(temps)
	if err != nil {
		return err
	}
	pLine, err := plotter.NewLine(pressures)
	if err != nil {
		return err
	}
	pLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(tLine, pLine)
	p.Legend.Add("Temperature", tLine)
	p.Legend.Add("Pressure", pLine)
	p.Legend.Top = true

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
