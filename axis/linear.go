package axis

import (
	"fmt"

	"github.com/benoitkugler/okchart/svgcanvas"
)

const (
	tickStyle  = "stroke:black;"
	titleStyle = "font: %dpx sans-serif"
	labelStyle = "font: italic %dpx sans-serif"
)

// Linear is an axis whose values are evenly spaced,
// drawn on the left (Vertical) or at the bottom (Horizontal)
// of a chart.
type Linear struct {
	cfg Config
}

// NewLinear validates the options and returns an axis.
func NewLinear(opts Options) (*Linear, error) {
	cfg, err := NewConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Linear{cfg: cfg}, nil
}

// Config returns the validated configuration of the axis.
func (l *Linear) Config() Config { return l.cfg }

// Ticks is a shortcut for l.Config().Ticks()
func (l *Linear) Ticks() []Tick { return l.cfg.Ticks() }

// labelPad is the space kept above and below a vertical axis
// so that the edge labels are not clipped
func (l *Linear) labelPad() int {
	if !l.cfg.ShowMajorLabels {
		return 0
	}
	return l.cfg.FontSize / 2
}

func (l *Linear) titleBlock() int {
	if l.cfg.Title == "" {
		return 0
	}
	return l.cfg.TitleFontSize
}

// PreferredSize returns the size required to draw the axis,
// including its labels and title.
func (l *Linear) PreferredSize() svgcanvas.Size {
	c := l.cfg
	labelWidth := c.widestMajorLabel(c.Ticks())
	switch c.Orientation {
	case Vertical:
		return svgcanvas.Size{
			Height: c.spanPx() + 2*l.labelPad(),
			Width:  l.titleBlock() + labelWidth + 1 + c.MajorLength,
		}
	default:
		height := c.MajorLength + l.titleBlock()
		if c.ShowMajorLabels {
			height += c.FontSize
		}
		return svgcanvas.Size{
			Height: height,
			Width:  c.spanPx() + labelWidth/2,
		}
	}
}

// Render draws the axis line, the ticks, the labels of
// the major ticks and the title of the axis.
func (l *Linear) Render(vp svgcanvas.Viewport) error {
	switch l.cfg.Orientation {
	case Vertical:
		l.renderVertical(vp)
	case Horizontal:
		l.renderHorizontal(vp)
	default:
		return &UnsupportedOrientationError{Orientation: l.cfg.Orientation}
	}
	return nil
}

func (l *Linear) tickLength(t Tick) int {
	if t.Major {
		return l.cfg.MajorLength
	}
	return l.cfg.MinorLength
}

// the axis line is on the right side of the viewport,
// with labels and title on its left
func (l *Linear) renderVertical(vp svgcanvas.Viewport) {
	c, canvas := l.cfg, vp.Canvas
	x := vp.Right
	top := vp.Top + l.labelPad()
	bottom := top + c.spanPx()

	canvas.Line(x, top, x, bottom, tickStyle)
	for _, tick := range c.Ticks() {
		y := bottom - tick.Position
		x1 := x - l.tickLength(tick)
		canvas.Line(x1, y, x, y, tickStyle)
		if tick.Major && c.ShowMajorLabels {
			canvas.Text(tick.Label, x1-1, y, fmt.Sprintf(labelStyle, c.FontSize),
				svgcanvas.Anchor("end"), svgcanvas.Baseline("middle"))
		}
	}

	if c.Title != "" {
		canvas.Text(c.Title, vp.Left+c.TitleFontSize, top, fmt.Sprintf(titleStyle, c.TitleFontSize),
			svgcanvas.Anchor("end"), svgcanvas.Rotate(270))
	}
	logger.Debugf("rendered vertical axis at x=%d, from y=%d to %d", x, top, bottom)
}

// the axis line is on the top side of the viewport,
// with labels and title below
func (l *Linear) renderHorizontal(vp svgcanvas.Viewport) {
	c, canvas := l.cfg, vp.Canvas
	left, top := vp.Left, vp.Top
	right := left + c.spanPx()

	canvas.Line(left, top, right, top, tickStyle)
	labelY := top + c.MajorLength + c.FontSize
	for _, tick := range c.Ticks() {
		x := left + tick.Position
		canvas.Line(x, top, x, top+l.tickLength(tick), tickStyle)
		if tick.Major && c.ShowMajorLabels {
			labelX := x - c.labelWidth(tick.Label)/2
			if labelX < left {
				labelX = left // a label on the lower bound starts with the axis
			}
			canvas.Text(tick.Label, labelX, labelY, fmt.Sprintf(labelStyle, c.FontSize))
		}
	}

	if c.Title != "" {
		titleY := top + c.MajorLength + c.TitleFontSize
		if c.ShowMajorLabels {
			titleY += c.FontSize
		}
		canvas.Text(c.Title, left+c.spanPx()/2, titleY, fmt.Sprintf(titleStyle, c.TitleFontSize),
			svgcanvas.Anchor("middle"))
	}
	logger.Debugf("rendered horizontal axis at y=%d, from x=%d to %d", top, left, right)
}

// ToCoordinateSpace is the same as Config.ToCoordinateSpace,
// for an int or a time.Time value.
func (l *Linear) ToCoordinateSpace(v Value, lower, upper int) (int, error) {
	ord, err := Ordinal(v)
	if err != nil {
		return 0, err
	}
	return l.cfg.ToCoordinateSpace(ord, lower, upper)
}

// Project returns the absolute pixel coordinate of `v`,
// for the axis rendered in `vp`: an abscissa for horizontal
// axes and an ordinate for vertical ones.
func (l *Linear) Project(v Value, vp svgcanvas.Viewport) (int, error) {
	span := l.cfg.spanPx()
	switch l.cfg.Orientation {
	case Horizontal:
		return l.ToCoordinateSpace(v, vp.Left, vp.Left+span)
	case Vertical:
		offset, err := l.ToCoordinateSpace(v, 0, span)
		if err != nil {
			return 0, err
		}
		return vp.Top + l.labelPad() + span - offset, nil
	default:
		return 0, &UnsupportedOrientationError{Orientation: l.cfg.Orientation}
	}
}

// BackgroundLines returns a renderer drawing lines across
// the plot area, at each major tick.
func (l *Linear) BackgroundLines() *BackgroundLineRenderer {
	return &BackgroundLineRenderer{axis: l, Style: "stroke: lightgray"}
}

// BackgroundLineRenderer draws the grid lines matching
// the major ticks of an axis.
type BackgroundLineRenderer struct {
	axis  *Linear
	Style string
}

// Render draws one line per major tick. For a vertical axis, the
// lines are horizontal, spanning the viewport width; the viewport
// must have the same top as the one used to render the axis.
func (b *BackgroundLineRenderer) Render(vp svgcanvas.Viewport) error {
	c := b.axis.cfg
	switch c.Orientation {
	case Vertical:
		bottom := vp.Top + b.axis.labelPad() + c.spanPx()
		for _, tick := range c.Ticks() {
			if tick.Major {
				y := bottom - tick.Position
				vp.Canvas.Line(vp.Left, y, vp.Right, y, b.Style)
			}
		}
	case Horizontal:
		for _, tick := range c.Ticks() {
			if tick.Major {
				x := vp.Left + tick.Position
				vp.Canvas.Line(x, vp.Top, x, vp.Bottom, b.Style)
			}
		}
	default:
		return &UnsupportedOrientationError{Orientation: c.Orientation}
	}
	return nil
}
