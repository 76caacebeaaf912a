// Package config reads chart descriptions from TOML, YAML or JSON files
// and builds the corresponding chart.SimpleChart.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/benoitkugler/okchart/axis"
	"github.com/benoitkugler/okchart/chart"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = logrus.WithField("package", "config")

// SetLogger redirects the package logs to `l`.
func SetLogger(l *logrus.Logger) { logger = l.WithField("package", "config") }

const (
	// DateLayout is the layout of date values in chart descriptions.
	DateLayout = "2006-01-02"

	// Auto is the bound value asking for bounds computed from the data.
	Auto = "auto"

	Linear    = "linear"
	Segmented = "segmented"
)

var (
	errNoData      = errors.New("auto bounds require data points")
	errMixedValues = errors.New("auto bounds require only integers or only dates")
)

// File is the content of a chart description.
type File struct {
	Title    string  `mapstructure:"title"`
	ShowGrid bool    `mapstructure:"show-grid"`
	Left     Axis    `mapstructure:"left"`
	Bottom   Axis    `mapstructure:"bottom"`
	Layers   []Layer `mapstructure:"layer"`
}

// Axis describes one axis of the chart. Values (bounds and data)
// are written as integers or dates (2006-01-02).
type Axis struct {
	Kind string `mapstructure:"kind"` // linear (default) or segmented

	Lower    string `mapstructure:"lower"` // an integer, a date, or "auto"
	Upper    string `mapstructure:"upper"`
	MaxTicks int    `mapstructure:"max-ticks"` // used with auto bounds

	MinorEvery      int  `mapstructure:"minor-every"`
	MinorLength     int  `mapstructure:"minor-length"`
	HideMinor       bool `mapstructure:"hide-minor"`
	MajorEvery      int  `mapstructure:"major-every"`
	MajorLength     int  `mapstructure:"major-length"`
	HideMajor       bool `mapstructure:"hide-major"`
	HideLabels      bool `mapstructure:"hide-labels"`
	ShowLowestValue bool `mapstructure:"show-lowest-value"`
	PxBetweenTicks  int  `mapstructure:"px-between-ticks"`

	Unit        string `mapstructure:"unit"`
	NumberStyle string `mapstructure:"number-style"`
	DateLayout  string `mapstructure:"date-layout"` // strftime format of the labels

	FontSize      int    `mapstructure:"font-size"`
	CharWidth     int    `mapstructure:"char-width"`
	Title         string `mapstructure:"title"`
	TitleFontSize int    `mapstructure:"title-font-size"`

	// segmented axis only
	Keys          []string `mapstructure:"keys"`
	SegmentWidth  int      `mapstructure:"segment-width"`
	SegmentHeight int      `mapstructure:"segment-height"`
}

// Layer is a data series, written with the `xs` and `ys` keys.
// X and Y must have the same length.
type Layer struct {
	X []string `mapstructure:"xs"`
	Y []string `mapstructure:"ys"`

	Line  string `mapstructure:"line"` // straight (default), smooth or none
	Style string `mapstructure:"style"`

	Dots      bool   `mapstructure:"dots"`
	DotRadius int    `mapstructure:"dot-radius"`
	DotStyle  string `mapstructure:"dot-style"`
}

// Load reads the chart description at `path`. The format
// is deduced from the file extension.
func Load(path string) (File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return File{}, fmt.Errorf("reading chart description: %w", err)
	}
	var out File
	if err := v.Unmarshal(&out); err != nil {
		return File{}, fmt.Errorf("invalid chart description %s: %w", path, err)
	}
	logger.WithFields(logrus.Fields{
		"file":   v.ConfigFileUsed(),
		"layers": len(out.Layers),
	}).Debug("chart description loaded")
	return out, nil
}

// ParseValue accepts an integer or a date.
func ParseValue(s string) (axis.Value, error) {
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%q is neither an integer nor a date", s)
	}
	return t, nil
}

func (a Axis) isSegmented() bool { return a.Kind == Segmented }

// value parses a data value for this axis
func (a Axis) value(s string) (axis.Value, error) {
	if a.isSegmented() {
		return s, nil
	}
	return ParseValue(s)
}

// extent returns the smallest and largest ordinals of `values`,
// and whether they are dates.
func extent(values []string) (lo, hi int, isDate bool, err error) {
	if len(values) == 0 {
		return 0, 0, false, errNoData
	}
	for i, s := range values {
		v, err := ParseValue(s)
		if err != nil {
			return 0, 0, false, err
		}
		_, date := v.(time.Time)
		if i > 0 && date != isDate {
			return 0, 0, false, fmt.Errorf("%w: %q", errMixedValues, s)
		}
		isDate = date
		o, _ := axis.Ordinal(v)
		if i == 0 || o < lo {
			lo = o
		}
		if i == 0 || o > hi {
			hi = o
		}
	}
	return lo, hi, isDate, nil
}

// bounds resolves the lower and upper bounds, computing
// the "auto" ones from `values`
func (a Axis) bounds(values []string) (lower, upper axis.Value, err error) {
	if a.Lower != "" && a.Lower != Auto {
		if lower, err = ParseValue(a.Lower); err != nil {
			return nil, nil, err
		}
	}
	if a.Upper != "" && a.Upper != Auto {
		if upper, err = ParseValue(a.Upper); err != nil {
			return nil, nil, err
		}
	}
	if a.Lower != Auto && a.Upper != Auto {
		return lower, upper, nil
	}

	lo, hi, isDate, err := extent(values)
	if err != nil {
		return nil, nil, err
	}
	if lo == hi {
		hi++
	}
	niceLo, niceHi := axis.NiceBounds(float64(lo), float64(hi), a.MaxTicks)
	logger.Debugf("auto bounds: data in [%d, %d], using [%d, %d]", lo, hi, niceLo, niceHi)
	fromOrdinal := func(o int) axis.Value {
		if isDate {
			return axis.FromJulianDay(o)
		}
		return o
	}
	if a.Lower == Auto {
		lower = fromOrdinal(niceLo)
	}
	if a.Upper == Auto {
		upper = fromOrdinal(niceHi)
	}
	return lower, upper, nil
}

func (a Axis) linear(orientation axis.Orientation, values []string) (*axis.Linear, error) {
	unit, err := axis.ParseUnit(a.Unit)
	if err != nil {
		return nil, err
	}
	opts := axis.Options{
		MinorEvery:      a.MinorEvery,
		MinorLength:     a.MinorLength,
		ShowLowestValue: a.ShowLowestValue,
		MajorEvery:      a.MajorEvery,
		MajorLength:     a.MajorLength,
		PxBetweenTicks:  a.PxBetweenTicks,
		Unit:            unit,
		NumberStyle:     axis.NumberStyle(a.NumberStyle),
		DateLayout:      a.DateLayout,
		FontSize:        a.FontSize,
		CharWidth:       a.CharWidth,
		Title:           a.Title,
		TitleFontSize:   a.TitleFontSize,
		Orientation:     orientation,
	}
	if a.HideMinor {
		opts.MinorVisible = axis.Bool(false)
	}
	if a.HideMajor {
		opts.MajorVisible = axis.Bool(false)
	}
	if a.HideLabels {
		opts.ShowMajorLabels = axis.Bool(false)
	}

	opts.LowerBound, opts.UpperBound, err = a.bounds(values)
	if err != nil {
		return nil, err
	}
	if (a.Lower == Auto || a.Upper == Auto) && a.MajorEvery == 0 && a.MinorEvery == 0 {
		lo, err := axis.Ordinal(orZero(opts.LowerBound))
		if err != nil {
			return nil, err
		}
		hi, err := axis.Ordinal(orZero(opts.UpperBound))
		if err != nil {
			return nil, err
		}
		opts.MajorEvery, opts.MinorEvery = axis.NiceSteps(lo, hi, a.MaxTicks)
	}
	return axis.NewLinear(opts)
}

func orZero(v axis.Value) axis.Value {
	if v == nil {
		return 0
	}
	return v
}

func (a Axis) segmented() (*axis.Segmented, error) {
	keys := make([]axis.Value, len(a.Keys))
	for i, k := range a.Keys {
		keys[i] = k
	}
	return axis.NewSegmented(axis.SegmentOptions{
		Keys:     keys,
		WidthPx:  a.SegmentWidth,
		HeightPx: a.SegmentHeight,
		FontSize: a.FontSize,
	})
}

func (a Axis) build(orientation axis.Orientation, values []string) (chart.Component, error) {
	switch a.Kind {
	case Linear, "":
		return a.linear(orientation, values)
	case Segmented:
		if orientation != axis.Horizontal {
			return nil, fmt.Errorf("segmented axes must be horizontal")
		}
		return a.segmented()
	default:
		return nil, fmt.Errorf("invalid axis kind %q", a.Kind)
	}
}

func (l Layer) build(index int, xAxis, yAxis Axis) (*chart.DataLayer, error) {
	if len(l.X) != len(l.Y) {
		return nil, fmt.Errorf("layer %d: %d abscissas for %d ordinates", index, len(l.X), len(l.Y))
	}
	out := new(chart.DataLayer)
	for i := range l.X {
		x, err := xAxis.value(l.X[i])
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", index, err)
		}
		y, err := yAxis.value(l.Y[i])
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", index, err)
		}
		out.Data = append(out.Data, chart.Point{X: x, Y: y})
	}

	if l.Line != "none" {
		lt, err := chart.ParseLineType(l.Line)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", index, err)
		}
		out.Renderers = append(out.Renderers, chart.LineRenderer{Type: lt, Style: l.Style})
	}
	if l.Dots {
		out.Renderers = append(out.Renderers, chart.DotRenderer{Radius: l.DotRadius, Style: l.DotStyle})
	}
	if len(out.Renderers) == 0 {
		logger.Warnf("layer %d is not drawn", index)
	}
	return out, nil
}

// Build creates the chart described by `f`.
func (f File) Build() (*chart.SimpleChart, error) {
	var xs, ys []string
	for _, l := range f.Layers {
		xs = append(xs, l.X...)
		ys = append(ys, l.Y...)
	}

	left, err := f.Left.build(axis.Vertical, ys)
	if err != nil {
		return nil, fmt.Errorf("left axis: %w", err)
	}
	bottom, err := f.Bottom.build(axis.Horizontal, xs)
	if err != nil {
		return nil, fmt.Errorf("bottom axis: %w", err)
	}

	out := &chart.SimpleChart{
		LeftAxis:   left,
		BottomAxis: bottom,
		ShowGrid:   f.ShowGrid,
		Title:      f.Title,
	}
	for i, l := range f.Layers {
		layer, err := l.build(i, f.Bottom, f.Left)
		if err != nil {
			return nil, err
		}
		out.DataLayers = append(out.DataLayers, layer)
	}
	return out, nil
}
