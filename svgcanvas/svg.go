package svgcanvas

import (
	"bytes"
	"image"
	"io"

	"github.com/ajstarks/svgo"
	"github.com/benoitkugler/okchart/svgpath"
)

var _ Canvas = (*SVG)(nil) // assert interface conformance

// SVG is a Canvas recording every draw call,
// in order, so that it can be serialized or replayed.
type SVG struct {
	// Width and Height are the size of the full document.
	// When zero, the extent of the drawn elements is used.
	Width, Height int

	Titles   []string
	elements []Element
}

// NewSVG returns an empty canvas, for a document of the given size.
func NewSVG(width, height int) *SVG {
	return &SVG{Width: width, Height: height}
}

func (s *SVG) Line(x1, y1, x2, y2 int, style string) {
	s.elements = append(s.elements, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Style: style})
}

func (s *SVG) Text(content string, x, y int, style string, opts ...TextOption) {
	t := Text{Content: content, X: x, Y: y, Style: style}
	for _, opt := range opts {
		opt(&t)
	}
	s.elements = append(s.elements, t)
}

func (s *SVG) Rect(x, y, width, height int, style string) {
	s.elements = append(s.elements, Rect{X: x, Y: y, Width: width, Height: height, Style: style})
}

func (s *SVG) Circle(cx, cy, r int, style string) {
	s.elements = append(s.elements, Circle{Cx: cx, Cy: cy, R: r, Style: style})
}

func (s *SVG) Path(p svgpath.Path, style string) {
	if len(p) == 0 {
		return
	}
	s.elements = append(s.elements, PathElement{Path: append(svgpath.Path(nil), p...), Style: style})
}

// Elements returns the recorded elements, in drawing order.
func (s *SVG) Elements() []Element { return s.elements }

// Reset removes every recorded element.
func (s *SVG) Reset() { s.elements = s.elements[:0] }

// Bounds returns the region covered by the recorded elements.
// Text elements only contribute their anchor point.
func (s *SVG) Bounds() image.Rectangle {
	var out image.Rectangle
	for i, e := range s.elements {
		if i == 0 {
			out = e.bounds()
			continue
		}
		out = union(out, e.bounds())
	}
	return out
}

// Size returns the size of the document: the one given at creation,
// or the extent of the drawing if none was.
func (s *SVG) Size() Size {
	w, h := s.Width, s.Height
	if w <= 0 || h <= 0 {
		b := s.Bounds()
		if w <= 0 {
			w = b.Max.X
		}
		if h <= 0 {
			h = b.Max.Y
		}
	}
	return Size{Height: h, Width: w}
}

// Draw replays the recorded elements into the driver `d`.
func (s *SVG) Draw(d Driver) {
	for _, e := range s.elements {
		e.drawTo(d)
	}
}

// errWriter keeps the first write error, since svgo ignores them
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	var n int
	n, ew.err = ew.w.Write(p)
	return n, ew.err
}

// WriteSVG serializes the canvas to `w`, returning
// the first write error.
func (s *SVG) WriteSVG(w io.Writer, mode Mode) error {
	ew := &errWriter{w: w}
	doc := svg.New(ew)
	if mode == Full {
		size := s.Size()
		doc.Start(size.Width, size.Height)
		for _, title := range s.Titles {
			doc.Title(title)
		}
	}
	for _, e := range s.elements {
		e.writeTo(doc)
	}
	if mode == Full {
		doc.End()
	}
	return ew.err
}

// ToSVG returns the serialized canvas.
func (s *SVG) ToSVG(mode Mode) string {
	var buf bytes.Buffer
	_ = s.WriteSVG(&buf, mode) // bytes.Buffer never fails
	return buf.String()
}
