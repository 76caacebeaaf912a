package axis

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

const defaultMaxTicks = 10

// NiceBounds widens [min, max] to integer bounds falling on
// round tick values, so that at most `maxTicks` major ticks
// are needed to cover it.
func NiceBounds(min, max float64, maxTicks int) (lo, hi int) {
	if maxTicks <= 0 {
		maxTicks = defaultMaxTicks
	}
	s := scale.Linear{Min: min, Max: max}
	s.Nice(scale.TickOptions{Max: maxTicks})
	return int(math.Floor(s.Min)), int(math.Ceil(s.Max))
}

// NiceSteps returns round major and minor tick intervals for
// the bounds [lo, hi], with at most `maxTicks` major ticks.
// The major interval is always a multiple of the minor one.
func NiceSteps(lo, hi int, maxTicks int) (major, minor int) {
	if maxTicks <= 0 {
		maxTicks = defaultMaxTicks
	}
	s := scale.Linear{Min: float64(lo), Max: float64(hi)}
	majors, minors := s.Ticks(scale.TickOptions{Max: maxTicks})
	major, minor = step(majors), step(minors)
	if major%minor != 0 {
		minor = 1
	}
	return major, minor
}

// step returns the (integer, at least 1) spacing of `ticks`
func step(ticks []float64) int {
	if len(ticks) < 2 {
		return 1
	}
	out := int(math.Round(ticks[1] - ticks[0]))
	if out < 1 {
		return 1
	}
	return out
}
