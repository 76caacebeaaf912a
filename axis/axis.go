// Package axis implements the linear and segmented chart axes:
// tick generation, projection of domain values into pixel
// coordinates, and rendering of the axis on a svgcanvas.Canvas.
package axis

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("package", "axis")

// SetLogger redirects the package logs to `l`.
func SetLogger(l *logrus.Logger) { logger = l.WithField("package", "axis") }

// Orientation selects how an axis is laid out, and how
// values are projected into pixel space.
type Orientation uint8

const (
	// Horizontal axes grow from left to right.
	Horizontal Orientation = iota
	// Vertical axes grow from bottom to top, so that pixel
	// coordinates are flipped.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("<unknown Orientation %d>", uint8(o))
	}
}

// ParseOrientation accepts "horizontal" (or "bottom")
// and "vertical" (or "left").
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal", "bottom", "":
		return Horizontal, nil
	case "vertical", "left":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: orientation %q", ErrInvalidOption, s)
}

// Unit is the kind of values carried by an axis.
type Unit uint8

const (
	Integer Unit = iota
	Date
)

func (u Unit) String() string {
	switch u {
	case Integer:
		return "integer"
	case Date:
		return "date"
	default:
		return fmt.Sprintf("<unknown Unit %d>", uint8(u))
	}
}

// ParseUnit is the inverse of Unit.String
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "integer", "":
		return Integer, nil
	case "date":
		return Date, nil
	}
	return 0, fmt.Errorf("%w: unit %q", ErrInvalidOption, s)
}

// Value is a domain value: an int ordinal or a time.Time.
type Value = interface{}

// julianEpoch is the Julian day number of the unix epoch (1970-01-01)
const julianEpoch = 2440588

// JulianDay returns the day number of the date of `t`,
// counted from the Julian epoch.
// The time of day and location are ignored.
func JulianDay(t time.Time) int {
	y, m, d := t.Date()
	days := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / (24 * 3600)
	return int(days) + julianEpoch
}

// FromJulianDay is the inverse of JulianDay, returning a UTC date.
func FromJulianDay(jd int) time.Time {
	return time.Unix(int64(jd-julianEpoch)*24*3600, 0).UTC()
}

// Ordinal normalizes a domain value to its integer position:
// integers are returned as is and dates are converted
// to their Julian day number.
func Ordinal(v Value) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case time.Time:
		return JulianDay(v), nil
	case *time.Time:
		if v == nil {
			break
		}
		return JulianDay(*v), nil
	}
	return 0, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}
