package axis

import (
	"math"
	"time"
)

// Bool returns a pointer to b, to fill the optional
// boolean fields of Options.
func Bool(b bool) *bool { return &b }

// Options is the user facing configuration of a linear axis.
// Zero values are replaced by the documented defaults.
type Options struct {
	MinorEvery      int   // value interval between minor ticks, default to 1
	MinorLength     int   // pixel length of minor ticks, default to 3
	MinorVisible    *bool // default to true
	ShowLowestValue bool  // emit a tick for the lower bound itself

	MajorEvery      int   // value interval between major ticks, default to 10
	MajorLength     int   // pixel length of major ticks, default to 7
	MajorVisible    *bool // if false, major ticks are drawn as minor; default to true
	ShowMajorLabels *bool // default to true

	PxBetweenTicks int // pixels per unit of value, default to 5

	// LowerBound and UpperBound are ints or time.Time,
	// and default to 0 and 100.
	LowerBound, UpperBound Value

	// Unit defaults to Integer, or Date if one of the bounds
	// is a time.Time.
	Unit Unit

	// Formatter overrides the label formatting. When nil,
	// a NumberFormatter using NumberStyle or a DateFormatter
	// using DateLayout is used, depending on Unit.
	Formatter   Formatter
	NumberStyle NumberStyle
	DateLayout  string

	FontSize  int // label font size in px, default to 13
	CharWidth int // estimated width of one label character, default to 10

	Title         string // empty for no title
	TitleFontSize int    // default to 13

	Orientation Orientation
}

// Config is the validated, immutable form of Options.
// Bounds are stored as ordinals.
type Config struct {
	MinorEvery, MinorLength       int
	MinorVisible, ShowLowestValue bool

	MajorEvery, MajorLength       int
	MajorVisible, ShowMajorLabels bool

	PxBetweenTicks int

	LowerBound, UpperBound int
	Unit                   Unit
	Formatter              Formatter

	FontSize, CharWidth int
	Title               string
	TitleFontSize       int

	Orientation Orientation
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func isDate(v Value) bool {
	switch v.(type) {
	case time.Time, *time.Time:
		return true
	}
	return false
}

// bound returns the ordinal of v, or def if v is nil
func bound(field string, v Value, def int, unit Unit) (int, error) {
	if v == nil {
		if unit == Date {
			return 0, invalidOption(field, "required for date axes")
		}
		return def, nil
	}
	out, err := Ordinal(v)
	if err != nil {
		return 0, invalidOption(field, "%s", err)
	}
	return out, nil
}

// NewConfig applies the defaults and checks the options.
// The returned error, if any, is a *ConfigError.
func NewConfig(opts Options) (Config, error) {
	out := Config{
		MinorEvery:      orDefault(opts.MinorEvery, 1),
		MinorLength:     orDefault(opts.MinorLength, 3),
		MinorVisible:    boolOr(opts.MinorVisible, true),
		ShowLowestValue: opts.ShowLowestValue,
		MajorEvery:      orDefault(opts.MajorEvery, 10),
		MajorLength:     orDefault(opts.MajorLength, 7),
		MajorVisible:    boolOr(opts.MajorVisible, true),
		ShowMajorLabels: boolOr(opts.ShowMajorLabels, true),
		PxBetweenTicks:  orDefault(opts.PxBetweenTicks, 5),
		Unit:            opts.Unit,
		Formatter:       opts.Formatter,
		FontSize:        orDefault(opts.FontSize, 13),
		CharWidth:       orDefault(opts.CharWidth, 10),
		Title:           opts.Title,
		TitleFontSize:   orDefault(opts.TitleFontSize, 13),
		Orientation:     opts.Orientation,
	}

	switch {
	case out.MinorEvery < 0:
		return Config{}, invalidOption("MinorEvery", "must be positive, got %d", out.MinorEvery)
	case out.MajorEvery < 0:
		return Config{}, invalidOption("MajorEvery", "must be positive, got %d", out.MajorEvery)
	case out.PxBetweenTicks < 0:
		return Config{}, invalidOption("PxBetweenTicks", "must be positive, got %d", out.PxBetweenTicks)
	case out.MinorLength < 0, out.MajorLength < 0:
		return Config{}, invalidOption("MinorLength", "tick lengths must not be negative")
	case out.FontSize < 0, out.CharWidth < 0, out.TitleFontSize < 0:
		return Config{}, invalidOption("FontSize", "font metrics must not be negative")
	case out.Unit != Integer && out.Unit != Date:
		return Config{}, invalidOption("Unit", "%s", out.Unit)
	case out.Orientation != Horizontal && out.Orientation != Vertical:
		return Config{}, invalidOption("Orientation", "%s", out.Orientation)
	case !opts.NumberStyle.isValid():
		return Config{}, invalidOption("NumberStyle", "%q", opts.NumberStyle)
	}

	if out.Unit == Integer && (isDate(opts.LowerBound) || isDate(opts.UpperBound)) {
		out.Unit = Date
	}

	var err error
	out.LowerBound, err = bound("LowerBound", opts.LowerBound, 0, out.Unit)
	if err != nil {
		return Config{}, err
	}
	out.UpperBound, err = bound("UpperBound", opts.UpperBound, 100, out.Unit)
	if err != nil {
		return Config{}, err
	}

	for _, b := range [2]struct {
		field string
		v     int
	}{{"LowerBound", out.LowerBound}, {"UpperBound", out.UpperBound}} {
		if !out.fitsPx(b.v) {
			return Config{}, invalidOption(b.field, "%d is too large for %d px between ticks", b.v, out.PxBetweenTicks)
		}
	}
	if out.LowerBound > out.UpperBound {
		return Config{}, boundsError(out.LowerBound, out.UpperBound)
	}
	if out.MajorEvery%out.MinorEvery != 0 {
		return Config{}, tickMultipleError(out.MajorEvery, out.MinorEvery)
	}

	if out.Formatter == nil {
		if out.Unit == Date {
			out.Formatter = DateFormatter{Layout: opts.DateLayout}
		} else {
			out.Formatter = NumberFormatter{Style: opts.NumberStyle}
		}
	}
	return out, nil
}

// labelWidth estimates the pixel width of `label`
func (c Config) labelWidth(label string) int {
	return len([]rune(label)) * c.CharWidth
}

// fitsPx reports whether the pixel offset of `v` fits in an int
// with room for the span and one more minor step.
func (c Config) fitsPx(v int) bool {
	limit := (math.MaxInt/2 - c.MinorEvery) / c.PxBetweenTicks
	return -limit <= v && v <= limit
}

// spanPx is the pixel length covered by the axis bounds
func (c Config) spanPx() int {
	return (c.UpperBound - c.LowerBound) * c.PxBetweenTicks
}
