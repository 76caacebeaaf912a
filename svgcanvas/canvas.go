// Provides the drawing surface shared by the chart components.
// Draw calls are recorded as elements, which can then be
// serialized to SVG or replayed on other painting drivers.
// See for example okchart/svgraster or okchart/svgpdf .
package svgcanvas

import (
	"fmt"

	"github.com/benoitkugler/okchart/svgpath"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("package", "svgcanvas")

// SetLogger redirects the package logs to `l`.
func SetLogger(l *logrus.Logger) { logger = l.WithField("package", "svgcanvas") }

// Canvas accepts the primitive draw calls emitted by renderers.
// Coordinates are integer pixels, with y growing downward.
type Canvas interface {
	Line(x1, y1, x2, y2 int, style string)
	Text(content string, x, y int, style string, opts ...TextOption)
	Rect(x, y, width, height int, style string)
	Circle(cx, cy, r int, style string)
	Path(p svgpath.Path, style string)
}

// TextOption customizes a Text element.
type TextOption func(*Text)

// Anchor sets the `text-anchor` attribute (start, middle or end).
func Anchor(anchor string) TextOption {
	return func(t *Text) { t.Anchor = anchor }
}

// Baseline sets the `alignment-baseline` attribute.
func Baseline(baseline string) TextOption {
	return func(t *Text) { t.Baseline = baseline }
}

// Rotate rotates the text by deg degrees around its anchor point.
func Rotate(deg int) TextOption {
	return func(t *Text) { t.Rotation = deg }
}

// Size is a (height, width) pair, in pixels.
type Size struct {
	Height, Width int
}

// Viewport is the rectangular region, and the drawing sink,
// handed to a renderer for one render pass.
type Viewport struct {
	Left, Right, Top, Bottom int
	Canvas                   Canvas
}

func (v Viewport) Width() int { return v.Right - v.Left }

func (v Viewport) Height() int { return v.Bottom - v.Top }

// Mode selects the flavour of SVG output.
type Mode uint8

const (
	// Full outputs a complete document, with the <svg> root element.
	Full Mode = iota
	// Partial only outputs the drawn elements.
	Partial
)

func (m Mode) String() string {
	switch m {
	case Full:
		return "full"
	case Partial:
		return "partial"
	default:
		return "<unknown Mode>"
	}
}

// ParseMode accepts "full" and "partial".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "full", "":
		return Full, nil
	case "partial":
		return Partial, nil
	}
	return 0, fmt.Errorf("invalid svg mode %q", s)
}
