// Package output renders the assembled SED as a log-log plot.
package output

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/blazarlab/sscsed/internal/model"
)

// Fixed display ranges of the SED figure.
const (
	NuMin   = 3e8   // [Hz]
	NuMax   = 1e28  // [Hz]
	FluxMin = 8e-15 // [erg cm^-2 s^-1]
	FluxMax = 8e-10 // [erg cm^-2 s^-1]
)

// RenderSED draws the total SED and both components over frequency and
// writes the figure to path (format from the extension). overlay holds
// optional observational (nu [Hz], nuFnu) points.
func RenderSED(sed model.SED, overlay [][]float64, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "nu (Hz)  [E(eV) = 4.1357e-15 nu]"
	p.Y.Label.Text = "nuFnu (erg cm^-2 s^-1)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.X.Min, p.X.Max = NuMin, NuMax
	p.Y.Min, p.Y.Max = FluxMin, FluxMax

	nu := sed.FrequencyHz()

	total, err := plotter.NewLine(visiblePoints(nu, sed.Total))
	if err != nil {
		return fmt.Errorf("unable to build total SED line: %w", err)
	}
	total.Width = vg.Points(1.5)

	syn, err := plotter.NewLine(visiblePoints(nu, sed.Synchrotron))
	if err != nil {
		return fmt.Errorf("unable to build synchrotron line: %w", err)
	}
	syn.Color = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	syn.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	ic, err := plotter.NewLine(visiblePoints(nu, sed.Compton))
	if err != nil {
		return fmt.Errorf("unable to build inverse-Compton line: %w", err)
	}
	ic.Color = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	ic.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}

	p.Add(total, syn, ic)
	p.Legend.Add("total", total)
	p.Legend.Add("synchrotron", syn)
	p.Legend.Add("inverse Compton", ic)
	p.Legend.Top = true

	if len(overlay) > 0 {
		var pts plotter.XYs
		for _, pair := range overlay {
			if pair[0] >= NuMin && pair[0] <= NuMax && pair[1] >= FluxMin {
				pts = append(pts, plotter.XY{X: pair[0], Y: pair[1]})
			}
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("unable to build overlay points: %w", err)
		}
		p.Add(scatter)
		p.Legend.Add("data", scatter)
	}

	if err := p.Save(7*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("unable to save plot: %w", err)
	}
	return nil
}

// visiblePoints keeps the points a log-log plot with the fixed ranges can
// draw: positive flux within the display window.
func visiblePoints(nu, flux []float64) plotter.XYs {
	var pts plotter.XYs
	for i := range nu {
		if nu[i] >= NuMin && nu[i] <= NuMax && flux[i] >= FluxMin && flux[i] <= FluxMax {
			pts = append(pts, plotter.XY{X: nu[i], Y: flux[i]})
		}
	}
	return pts
}
