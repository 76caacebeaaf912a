package axis

import (
	"github.com/aclements/go-moremath/scale"
)

// ToCoordinateSpace projects the ordinal `value` into the pixel
// range [lower, upper]: the result is the truncated proportional
// position of value between the axis bounds, shifted by lower
// for horizontal axes and by -lower for vertical ones.
func (c Config) ToCoordinateSpace(value, lower, upper int) (int, error) {
	var adjust int
	switch c.Orientation {
	case Horizontal:
		adjust = lower
	case Vertical:
		adjust = -lower
	default:
		return 0, &UnsupportedOrientationError{Orientation: c.Orientation}
	}
	if c.UpperBound == c.LowerBound {
		return 0, ErrDegenerateRange
	}

	s := scale.Linear{Min: float64(c.LowerBound), Max: float64(c.UpperBound)}
	percent := s.Map(float64(value))
	return int(float64(upper-lower)*percent) + adjust, nil
}
