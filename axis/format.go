package axis

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/tebeka/strftime"
)

// Formatter builds the label of a tick from its ordinal value.
type Formatter interface {
	Format(value int) string
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(value int) string

func (f FormatterFunc) Format(value int) string { return f(value) }

// NumberStyle selects how integer labels are written.
type NumberStyle string

const (
	Plain NumberStyle = "plain" // 12345
	Comma NumberStyle = "comma" // 12,345
	SI    NumberStyle = "si"    // 12.345k
)

func (s NumberStyle) isValid() bool {
	switch s {
	case "", Plain, Comma, SI:
		return true
	}
	return false
}

// NumberFormatter is the default formatter of integer axes.
type NumberFormatter struct {
	Style NumberStyle
}

func (f NumberFormatter) Format(value int) string {
	switch f.Style {
	case Comma:
		return humanize.Comma(int64(value))
	case SI:
		v, prefix := humanize.ComputeSI(float64(value))
		return strconv.FormatFloat(v, 'f', -1, 64) + prefix
	default:
		return strconv.Itoa(value)
	}
}

// DefaultDateLayout is the strftime layout used by date axes,
// as in 2019-01-31.
const DefaultDateLayout = "%Y-%m-%d"

// DateFormatter is the default formatter of date axes:
// the value is a Julian day number, written with a strftime layout.
type DateFormatter struct {
	Layout string // default to DefaultDateLayout
}

func (f DateFormatter) Format(value int) string {
	layout := f.Layout
	if layout == "" {
		layout = DefaultDateLayout
	}
	date := FromJulianDay(value)
	out, err := strftime.Format(layout, date)
	if err != nil {
		logger.Warnf("invalid date layout %q: %s", layout, err)
		return date.Format("2006-01-02")
	}
	return out
}
