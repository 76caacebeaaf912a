package axis

// Tick is a marked position along an axis.
type Tick struct {
	Position int // in pixels, from the lower bound
	Major    bool
	Label    string
}

// floorMod returns a modulo b, with the sign of b
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func (c Config) format(value int) string {
	if c.Formatter == nil {
		return NumberFormatter{}.Format(value)
	}
	return c.Formatter.Format(value)
}

// Ticks returns the ticks of the axis, in increasing value order.
// Ticks are placed on every multiple of MinorEvery in the bounds,
// and are major on multiples of MajorEvery.
// The lower bound only gets a tick when ShowLowestValue is true.
func (c Config) Ticks() []Tick {
	px, minor := c.PxBetweenTicks, c.MinorEvery
	offset := c.LowerBound * px

	first := c.LowerBound - floorMod(c.LowerBound, minor)
	if first < c.LowerBound || (!c.ShowLowestValue && first == c.LowerBound) {
		first += minor
	}

	var out []Tick
	for y := first; y <= c.UpperBound; y += minor {
		isMajor := floorMod(y, c.MajorEvery) == 0
		if !isMajor && !c.MinorVisible {
			continue
		}
		out = append(out, Tick{
			Position: y*px - offset,
			Major:    isMajor && c.MajorVisible,
			Label:    c.format(y),
		})
	}
	return out
}

// widestMajorLabel returns the estimated width of the
// longest major tick label, or 0 if labels are hidden.
func (c Config) widestMajorLabel(ticks []Tick) int {
	if !c.ShowMajorLabels {
		return 0
	}
	var out int
	for _, tick := range ticks {
		if !tick.Major {
			continue
		}
		if w := c.labelWidth(tick.Label); w > out {
			out = w
		}
	}
	return out
}
