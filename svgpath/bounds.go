package svgpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// segment is one coordinate of a bezier segment: its control
// values, from 2 (line) to 4 (cubic).
type segment []float64

// at evaluates the segment with de Casteljau's algorithm.
func (s segment) at(t float64) float64 {
	var buf [4]float64
	n := copy(buf[:], s)
	for ; n > 1; n-- {
		for i := 0; i < n-1; i++ {
			buf[i] += (buf[i+1] - buf[i]) * t
		}
	}
	return buf[0]
}

// stationary returns the parameters zeroing the derivative.
// Its control values are proportional to the differences
// of consecutive control values.
func (s segment) stationary() []float64 {
	switch len(s) {
	case 3:
		d0, d1 := s[1]-s[0], s[2]-s[1]
		return quadraticRoots(0, d1-d0, d0)
	case 4:
		d0, d1, d2 := s[1]-s[0], s[2]-s[1], s[3]-s[2]
		return quadraticRoots(d0-2*d1+d2, 2*(d1-d0), d0)
	}
	return nil
}

// extent returns the range covered by the segment for t in [0, 1]
func (s segment) extent() (lo, hi float64) {
	first, last := s[0], s[len(s)-1]
	lo, hi = math.Min(first, last), math.Max(first, last)
	for _, t := range s.stationary() {
		if t <= 0 || t >= 1 {
			continue
		}
		v := s.at(t)
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	return lo, hi
}

// quadraticRoots solves at² + bt + c = 0
func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	switch {
	case d < 0:
		return nil
	case d == 0:
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// Bounds returns the smallest rectangle containing the path,
// curves included. An empty path has empty bounds.
func (p Path) Bounds() fixed.Rectangle26_6 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(points ...fixed.Point26_6) {
		xs, ys := make(segment, len(points)), make(segment, len(points))
		for i, pt := range points {
			xs[i], ys[i] = fixedTof(pt)
		}
		lo, hi := xs.extent()
		minX, maxX = math.Min(minX, lo), math.Max(maxX, hi)
		lo, hi = ys.extent()
		minY, maxY = math.Min(minY, lo), math.Max(maxY, hi)
	}

	var current fixed.Point26_6
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current = fixed.Point26_6(op)
			add(current)
		case LineTo:
			add(current, fixed.Point26_6(op))
			current = fixed.Point26_6(op)
		case QuadTo:
			add(current, op[0], op[1])
			current = op[1]
		case CubicTo:
			add(current, op[0], op[1], op[2])
			current = op[2]
		}
	}
	if math.IsInf(minX, 1) {
		return fixed.Rectangle26_6{}
	}
	return fixed.Rectangle26_6{Min: toFixedP(minX, minY), Max: toFixedP(maxX, maxY)}
}
