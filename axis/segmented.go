package axis

import (
	"fmt"
	"reflect"

	"github.com/benoitkugler/okchart/svgcanvas"
)

// SegmentOptions configures a Segmented axis.
type SegmentOptions struct {
	Keys     []Value
	WidthPx  int // width of one segment, default to 10
	HeightPx int // default to 10
	FontSize int // default to 13

	// Formatter returns the label of a key.
	// It defaults to fmt.Sprint.
	Formatter func(key Value) string
}

// Segmented is an horizontal axis made of equal width segments,
// one per (categorical) key, labeled in their middle.
type Segmented struct {
	opts SegmentOptions
}

// NewSegmented applies the defaults and checks the options.
func NewSegmented(opts SegmentOptions) (*Segmented, error) {
	opts.WidthPx = orDefault(opts.WidthPx, 10)
	opts.HeightPx = orDefault(opts.HeightPx, 10)
	opts.FontSize = orDefault(opts.FontSize, 13)
	if opts.WidthPx < 0 || opts.HeightPx < 0 || opts.FontSize < 0 {
		return nil, invalidOption("WidthPx", "segment dimensions must be positive")
	}
	if opts.Formatter == nil {
		opts.Formatter = func(key Value) string { return fmt.Sprint(key) }
	}
	return &Segmented{opts: opts}, nil
}

// PreferredSize returns one segment width per key.
func (s *Segmented) PreferredSize() svgcanvas.Size {
	return svgcanvas.Size{Height: s.opts.HeightPx, Width: len(s.opts.Keys) * s.opts.WidthPx}
}

// Render draws the axis line and the label of each segment.
func (s *Segmented) Render(vp svgcanvas.Viewport) error {
	o := s.opts
	vp.Canvas.Line(vp.Left, vp.Top, vp.Left+len(o.Keys)*o.WidthPx, vp.Top, tickStyle)
	for i, key := range o.Keys {
		vp.Canvas.Text(o.Formatter(key), s.center(vp, i), vp.Top+o.FontSize+1, "",
			svgcanvas.Anchor("middle"), svgcanvas.Baseline("top"))
	}
	return nil
}

func (s *Segmented) center(vp svgcanvas.Viewport, index int) int {
	return vp.Left + index*s.opts.WidthPx + s.opts.WidthPx/2
}

// Project returns the abscissa of the middle of the segment of `key`.
func (s *Segmented) Project(key Value, vp svgcanvas.Viewport) (int, error) {
	for i, k := range s.opts.Keys {
		if reflect.DeepEqual(k, key) {
			return s.center(vp, i), nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrUnknownKey, key)
}
