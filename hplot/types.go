// Package hplot: configuration and sentinel errors for the diagnostic chart.
package hplot

import (
	"errors"
	"image/color"

	"github.com/katalvlaran/lvlstat/magnitude"
)

// Defaults — single source of truth for zero-option behavior.
var (
	// DefaultAddColor marks rows where another cluster is justified.
	DefaultAddColor = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}

	// DefaultStopColor marks rows below the threshold.
	DefaultStopColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// DefaultTitle is the chart title applied when WithTitle is absent.
const DefaultTitle = "Hartigan's rule"

// ErrEmptyTable is returned when there are no rows to draw.
var ErrEmptyTable = errors.New("hplot: empty selector table")

// Option mutates the internal options. Safe to apply repeatedly.
type Option func(*options)

// options is the effective configuration after applying Option setters.
type options struct {
	title     string
	addColor  color.Color
	stopColor color.Color

	yUnit     magnitude.Unit
	yUnitOpts []magnitude.Option
	yUnitSet  bool
}

// WithTitle overrides the chart title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithColors overrides the point colors for flagged (add) and unflagged
// (stop) rows.
func WithColors(add, stop color.Color) Option {
	return func(o *options) { o.addColor = add; o.stopColor = stop }
}

// WithYUnit renders Y tick labels through the magnitude formatter, bound to
// the given unit and formatter options. An unknown unit surfaces as
// magnitude.ErrUnknownUnit from Hartigan.
func WithYUnit(unit magnitude.Unit, opts ...magnitude.Option) Option {
	return func(o *options) {
		o.yUnit = unit
		o.yUnitOpts = opts
		o.yUnitSet = true
	}
}

// gatherOptions resolves defaults and applies setters in order.
func gatherOptions(opts ...Option) options {
	o := options{
		title:     DefaultTitle,
		addColor:  DefaultAddColor,
		stopColor: DefaultStopColor,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
