package chart

import (
	"fmt"
	"image"

	"github.com/benoitkugler/okchart/axis"
	"github.com/benoitkugler/okchart/svgcanvas"
	"github.com/benoitkugler/okchart/svgpath"
)

// Point is a data point, in domain values (int or time.Time for
// linear axes, any key for segmented axes).
type Point struct {
	X, Y axis.Value
}

// Renderer draws a series of points, already
// projected in pixel coordinates.
type Renderer interface {
	Render(points []image.Point, vp svgcanvas.Viewport) error
}

// DataLayer is a data series, drawn by one or more renderers
// (for instance a line and dots).
type DataLayer struct {
	Data      []Point
	Renderers []Renderer
}

type projection struct {
	x, y     Projector
	xVp, yVp svgcanvas.Viewport
}

func (p projection) project(pt Point) (image.Point, error) {
	x, err := p.x.Project(pt.X, p.xVp)
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid abscissa %v: %w", pt.X, err)
	}
	y, err := p.y.Project(pt.Y, p.yVp)
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid ordinate %v: %w", pt.Y, err)
	}
	return image.Pt(x, y), nil
}

func (l *DataLayer) render(proj projection, plot svgcanvas.Viewport) error {
	points := make([]image.Point, len(l.Data))
	for i, pt := range l.Data {
		var err error
		points[i], err = proj.project(pt)
		if err != nil {
			return err
		}
		if !points[i].In(image.Rect(plot.Left, plot.Top, plot.Right+1, plot.Bottom+1)) {
			logger.Warnf("data point %v is outside of the plot area", pt)
		}
	}
	for _, r := range l.Renderers {
		if err := r.Render(points, plot); err != nil {
			return err
		}
	}
	return nil
}

// LineType selects how points are joined.
type LineType uint8

const (
	Straight LineType = iota // one segment per pair of points
	Smooth                   // a cubic curve through the points
)

// ParseLineType accepts "straight" and "smooth".
func ParseLineType(s string) (LineType, error) {
	switch s {
	case "straight", "":
		return Straight, nil
	case "smooth":
		return Smooth, nil
	}
	return 0, fmt.Errorf("invalid line type %q", s)
}

const (
	defaultLineStyle = "stroke:red"
	defaultDotStyle  = "fill:red"
	defaultDotRadius = 3
)

// LineRenderer joins the points of a series.
type LineRenderer struct {
	Type  LineType
	Style string // default to red stroke
}

func (r LineRenderer) Render(points []image.Point, vp svgcanvas.Viewport) error {
	style := r.Style
	if style == "" {
		style = defaultLineStyle
	}
	switch r.Type {
	case Straight:
		for i := 1; i < len(points); i++ {
			a, b := points[i-1], points[i]
			vp.Canvas.Line(a.X, a.Y, b.X, b.Y, style)
		}
	case Smooth:
		if len(points) < 2 {
			return nil
		}
		vp.Canvas.Path(svgpath.Smooth(points), "fill:none;"+style)
	default:
		return fmt.Errorf("invalid line type %d", r.Type)
	}
	return nil
}

// DotRenderer draws a circle on each point.
type DotRenderer struct {
	Radius int    // default to 3
	Style  string // default to red fill
}

func (r DotRenderer) Render(points []image.Point, vp svgcanvas.Viewport) error {
	radius, style := r.Radius, r.Style
	if radius <= 0 {
		radius = defaultDotRadius
	}
	if style == "" {
		style = defaultDotStyle
	}
	for _, p := range points {
		vp.Canvas.Circle(p.X, p.Y, radius, style)
	}
	return nil
}
