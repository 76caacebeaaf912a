package axis

import (
	"errors"
	"fmt"
)

var (
	// ErrBounds is returned when the lower bound is above the upper one.
	ErrBounds = errors.New("lower bound must be less than upper")
	// ErrTickMultiple is returned when major ticks are not
	// a multiple of minor ticks.
	ErrTickMultiple = errors.New("major ticks must be a multiple of minor")
	// ErrInvalidOption is returned for any other invalid option.
	ErrInvalidOption = errors.New("invalid axis option")

	// ErrDegenerateRange is returned when projecting a value
	// on an axis whose bounds are equal.
	ErrDegenerateRange = errors.New("degenerate axis range: lower and upper bounds are equal")
	// ErrUnknownKey is returned when projecting a key
	// absent from a segmented axis.
	ErrUnknownKey = errors.New("unknown segment key")
	// ErrUnsupportedValue is returned for values which are
	// neither integers nor dates.
	ErrUnsupportedValue = errors.New("unsupported value type")
)

// ConfigError is returned when building an axis from invalid options.
type ConfigError struct {
	Field string // name of the faulty option
	Err   error  // one of ErrBounds, ErrTickMultiple, ErrInvalidOption
	msg   string
}

func (e *ConfigError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Field)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func boundsError(lower, upper int) *ConfigError {
	return &ConfigError{
		Field: "UpperBound", Err: ErrBounds,
		msg: fmt.Sprintf("%s: %d > %d", ErrBounds, lower, upper),
	}
}

func tickMultipleError(major, minor int) *ConfigError {
	return &ConfigError{
		Field: "MajorEvery", Err: ErrTickMultiple,
		msg: fmt.Sprintf("%s: %d and %d", ErrTickMultiple, major, minor),
	}
}

func invalidOption(field string, format string, args ...interface{}) *ConfigError {
	return &ConfigError{
		Field: field, Err: ErrInvalidOption,
		msg: fmt.Sprintf("%s %s: %s", ErrInvalidOption, field, fmt.Sprintf(format, args...)),
	}
}

// UnsupportedOrientationError is returned when projecting values
// on an axis with an unknown orientation.
type UnsupportedOrientationError struct {
	Orientation Orientation
}

func (e *UnsupportedOrientationError) Error() string {
	return fmt.Sprintf("unexpected axis orientation: %s", e.Orientation)
}
