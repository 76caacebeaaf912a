package svgcanvas

import (
	"fmt"
	"image"

	"github.com/ajstarks/svgo"
	"github.com/benoitkugler/okchart/svgpath"
)

// Driver knows how to do the actual draw operations
// of a backend (rasterizer, pdf writer, ...)
// but doesn't need any SVG knowledge.
type Driver interface {
	DrawLine(l Line)
	DrawText(t Text)
	DrawRect(r Rect)
	DrawCircle(c Circle)
	DrawPath(p PathElement)
}

// Element is one recorded draw call.
type Element interface {
	drawTo(d Driver)
	writeTo(s *svg.SVG)
	// bounds returns the region covered by the element.
	// Text is reduced to its anchor point.
	bounds() image.Rectangle
}

type Line struct {
	X1, Y1, X2, Y2 int
	Style          string
}

type Text struct {
	Content  string
	X, Y     int
	Style    string
	Anchor   string // text-anchor, empty for the default (start)
	Baseline string // alignment-baseline, empty for the default
	Rotation int    // in degrees, around (X, Y)
}

type Rect struct {
	X, Y, Width, Height int
	Style               string
}

type Circle struct {
	Cx, Cy, R int
	Style     string
}

// PathElement binds a style to a path
type PathElement struct {
	Path  svgpath.Path
	Style string
}

func (l Line) drawTo(d Driver)        { d.DrawLine(l) }
func (t Text) drawTo(d Driver)        { d.DrawText(t) }
func (r Rect) drawTo(d Driver)        { d.DrawRect(r) }
func (c Circle) drawTo(d Driver)      { d.DrawCircle(c) }
func (p PathElement) drawTo(d Driver) { d.DrawPath(p) }

// styleAttrs returns the svgo variadic style argument
func styleAttrs(style string) []string {
	if style == "" {
		return nil
	}
	return []string{style}
}

func (l Line) writeTo(s *svg.SVG) {
	s.Line(l.X1, l.Y1, l.X2, l.Y2, styleAttrs(l.Style)...)
}

func (t Text) writeTo(s *svg.SVG) {
	attrs := styleAttrs(t.Style)
	if t.Anchor != "" {
		attrs = append(attrs, fmt.Sprintf(`text-anchor="%s"`, t.Anchor))
	}
	if t.Baseline != "" {
		attrs = append(attrs, fmt.Sprintf(`alignment-baseline="%s"`, t.Baseline))
	}
	if t.Rotation != 0 {
		attrs = append(attrs, fmt.Sprintf(`transform="rotate(%d,%d,%d)"`, t.Rotation, t.X, t.Y))
	}
	s.Text(t.X, t.Y, t.Content, attrs...)
}

func (r Rect) writeTo(s *svg.SVG) {
	s.Rect(r.X, r.Y, r.Width, r.Height, styleAttrs(r.Style)...)
}

func (c Circle) writeTo(s *svg.SVG) {
	s.Circle(c.Cx, c.Cy, c.R, styleAttrs(c.Style)...)
}

func (p PathElement) writeTo(s *svg.SVG) {
	s.Path(p.Path.ToSVGPath(), styleAttrs(p.Style)...)
}

// rect returns the normalized rectangle spanned by two points,
// which may be degenerate
func rect(x0, y0, x1, y1 int) image.Rectangle {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}

func (l Line) bounds() image.Rectangle { return rect(l.X1, l.Y1, l.X2, l.Y2) }

func (t Text) bounds() image.Rectangle { return rect(t.X, t.Y, t.X, t.Y) }

func (r Rect) bounds() image.Rectangle { return rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height) }

func (c Circle) bounds() image.Rectangle {
	return rect(c.Cx-c.R, c.Cy-c.R, c.Cx+c.R, c.Cy+c.R)
}

func (p PathElement) bounds() image.Rectangle {
	b := p.Path.Bounds()
	return rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}

// union merges two rectangles, keeping degenerate ones
// (image.Rectangle.Union ignores them)
func union(a, b image.Rectangle) image.Rectangle {
	if b.Min.X < a.Min.X {
		a.Min.X = b.Min.X
	}
	if b.Min.Y < a.Min.Y {
		a.Min.Y = b.Min.Y
	}
	if b.Max.X > a.Max.X {
		a.Max.X = b.Max.X
	}
	if b.Max.Y > a.Max.Y {
		a.Max.Y = b.Max.Y
	}
	return a
}
