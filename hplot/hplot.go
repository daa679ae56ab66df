package hplot

import (
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/lvlstat/hartigan"
	"github.com/katalvlaran/lvlstat/magnitude"
)

// Hartigan draws the standard diagnostic for a selector table: one point per
// evaluated cluster count (x = k, y = statistic), a dashed horizontal
// reference line at the decision threshold, and point colors keyed to the
// AddCluster flag.
//
// The X axis gets one integer tick per row; the Y axis renders through the
// magnitude formatter when WithYUnit is set, which is where the bare
// lower-case unit tokens earn their keep.
//
// Errors: ErrEmptyTable, magnitude.ErrUnknownUnit (via WithYUnit),
// plus plotter construction errors.
func Hartigan(table hartigan.Table, opts ...Option) (*plot.Plot, error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}
	o := gatherOptions(opts...)

	pts := make(plotter.XYs, len(table))
	xticks := make([]plot.Tick, len(table))
	for i, row := range table {
		pts[i].X = float64(row.K)
		pts[i].Y = row.Statistic
		xticks[i] = plot.Tick{Value: float64(row.K), Label: strconv.Itoa(row.K)}
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Radius = vg.Points(3.5)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		style := draw.GlyphStyle{Radius: vg.Points(3.5), Shape: draw.CircleGlyph{}}
		if table[i].AddCluster {
			style.Color = o.addColor
		} else {
			style.Color = o.stopColor
		}

		return style
	}

	threshold, err := thresholdLine(table)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "clusters (k)"
	p.Y.Label.Text = "Hartigan statistic"
	p.X.Tick.Marker = plot.ConstantTicks(xticks)

	if o.yUnitSet {
		label, err := magnitude.Formatter(o.yUnit, o.yUnitOpts...)
		if err != nil {
			return nil, err
		}
		p.Y.Tick.Marker = relabeledTicks{base: plot.DefaultTicks{}, label: label}
	}

	p.Add(plotter.NewGrid(), threshold, scatter)

	return p, nil
}

// thresholdLine builds the dashed reference line at the decision constant,
// stretched half a unit past the evaluated range on both sides.
func thresholdLine(table hartigan.Table) (*plotter.Line, error) {
	lo := float64(table[0].K) - 0.5
	hi := float64(table[len(table)-1].K) + 0.5

	line, err := plotter.NewLine(plotter.XYs{
		{X: lo, Y: hartigan.HartiganThreshold},
		{X: hi, Y: hartigan.HartiganThreshold},
	})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}

	return line, nil
}

// relabeledTicks keeps the tick placement of a base Ticker but rewrites the
// labels of major ticks through a bound formatter closure.
type relabeledTicks struct {
	base  plot.Ticker
	label func(float64) string
}

// Ticks implements plot.Ticker.
func (t relabeledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.base.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = t.label(ticks[i].Value)
		}
	}

	return ticks
}
