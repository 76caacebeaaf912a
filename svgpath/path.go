// Implements an abstract representation of
// svg paths, as drawn by the chart renderers and
// consumed by the output backends.
package svgpath

import (
	"fmt"
	"image"
	"math"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Adder is implemented by types that can accumulate path commands,
// such as the rasterx Dasher and Filler, or a PDF writer.
type Adder interface {
	// Start opens a sub-path at a.
	Start(a fixed.Point26_6)
	// Line adds a line segment to the path
	Line(b fixed.Point26_6)
	// QuadBezier continues with a quadratic curve, b being the control point.
	QuadBezier(b, c fixed.Point26_6)
	// CubeBezier continues with a cubic curve ending at d.
	CubeBezier(b, c, d fixed.Point26_6)
	// Closes the path to the start point if closeLoop is true
	Stop(closeLoop bool)
}

type pathCommand uint8

// path command kinds
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathQuadTo
	pathCubicTo
	pathClose
)

// Operation is one of MoveTo, LineTo, QuadTo, CubicTo or Close.
type Operation interface {
	command() pathCommand
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type QuadTo [2]fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (QuadTo) command() pathCommand  { return pathQuadTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }

// Path describes a sequence of basic SVG operations.
// Higher-level shapes (polylines, smoothed series) are reduced to a path.
type Path []Operation

// Pt converts integer pixel coordinates to a fixed point.
func Pt(x, y int) fixed.Point26_6 {
	return fixed.P(x, y)
}

// toFixedP rounds (x, y) to the closest 26.6 point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(math.Round(x * 64))
	p.Y = fixed.Int26_6(math.Round(y * 64))
	return
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func formatPoint(p fixed.Point26_6) string {
	x, y := fixedTof(p)
	return fmt.Sprintf("%.3f,%.3f", x, y)
}

// ToSVGPath returns the `d` attribute for the path,
// with absolute commands only.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = "M" + formatPoint(fixed.Point26_6(op))
		case LineTo:
			chunks[i] = "L" + formatPoint(fixed.Point26_6(op))
		case QuadTo:
			chunks[i] = "Q" + formatPoint(op[0]) + "," + formatPoint(op[1])
		case CubicTo:
			chunks[i] = "C" + formatPoint(op[0]) + "," + formatPoint(op[1]) + "," + formatPoint(op[2])
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String is a debug representation, with float coordinates.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear empties the path, keeping its storage.
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start opens a sub-path at a.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line continues the current sub-path to b.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// QuadBezier records a quadratic curve, see Adder.
func (p *Path) QuadBezier(b, c fixed.Point26_6) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier records a cubic curve, see Adder.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop closes the current sub-path if closeLoop is true.
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// AddTo replays the Path p on q.
func (p Path) AddTo(q Adder) {
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			q.Stop(false) // implicit close if currently in path.
			q.Start(fixed.Point26_6(op))
		case LineTo:
			q.Line(fixed.Point26_6(op))
		case QuadTo:
			q.QuadBezier(op[0], op[1])
		case CubicTo:
			q.CubeBezier(op[0], op[1], op[2])
		case Close:
			q.Stop(true)
		}
	}
	q.Stop(false)
}

// Translate returns a copy of the path moved by (dx, dy) pixels.
func (p Path) Translate(dx, dy int) Path {
	d := fixed.P(dx, dy)
	out := make(Path, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			out[i] = MoveTo(fixed.Point26_6(op).Add(d))
		case LineTo:
			out[i] = LineTo(fixed.Point26_6(op).Add(d))
		case QuadTo:
			out[i] = QuadTo{op[0].Add(d), op[1].Add(d)}
		case CubicTo:
			out[i] = CubicTo{op[0].Add(d), op[1].Add(d), op[2].Add(d)}
		default:
			out[i] = op
		}
	}
	return out
}

// Polyline returns the path joining pts with straight segments.
func Polyline(pts []image.Point) Path {
	var p Path
	for i, pt := range pts {
		if i == 0 {
			p.Start(Pt(pt.X, pt.Y))
			continue
		}
		p.Line(Pt(pt.X, pt.Y))
	}
	return p
}
