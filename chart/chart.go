// Package chart composes axes and data layers
// into a complete drawing.
package chart

import (
	"errors"

	"github.com/benoitkugler/okchart/axis"
	"github.com/benoitkugler/okchart/svgcanvas"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("package", "chart")

// SetLogger redirects the package logs to `l`.
func SetLogger(l *logrus.Logger) { logger = l.WithField("package", "chart") }

var (
	// ErrNotProjectable is returned when a chart has data layers
	// but one of its axes can't project values.
	ErrNotProjectable = errors.New("axis does not support projecting values")
	// ErrMissingAxis is returned when rendering a chart without
	// its left or bottom axis.
	ErrMissingAxis = errors.New("chart requires both a left and a bottom axis")
)

// Component is a rectangular element of a chart, such as an axis.
type Component interface {
	PreferredSize() svgcanvas.Size
	Render(vp svgcanvas.Viewport) error
}

// Projector is implemented by the axes able to convert domain values
// to pixel coordinates, given the viewport they were rendered in.
type Projector interface {
	Project(v axis.Value, vp svgcanvas.Viewport) (int, error)
}

// gridder is implemented by axes supporting background lines
type gridder interface {
	BackgroundLines() *axis.BackgroundLineRenderer
}

var (
	_ Component = (*axis.Linear)(nil)
	_ Projector = (*axis.Linear)(nil)
	_ gridder   = (*axis.Linear)(nil)
	_ Component = (*axis.Segmented)(nil)
	_ Projector = (*axis.Segmented)(nil)
)

// SimpleChart has a vertical axis on its left, an horizontal axis
// at its bottom, and plots its data layers in the remaining area
// (at the top right).
type SimpleChart struct {
	LeftAxis, BottomAxis Component
	DataLayers           []*DataLayer

	// ShowGrid draws the background lines of the axes
	// supporting it, below the data.
	ShowGrid bool

	Title string // optional document title
}

// PreferredSize sums the sizes of both axes.
// It is empty if an axis is missing.
func (c *SimpleChart) PreferredSize() svgcanvas.Size {
	if c.LeftAxis == nil || c.BottomAxis == nil {
		return svgcanvas.Size{}
	}
	x, y := c.BottomAxis.PreferredSize(), c.LeftAxis.PreferredSize()
	return svgcanvas.Size{Height: x.Height + y.Height, Width: x.Width + y.Width}
}

// layout returns the viewports of the left axis, the bottom axis
// and the plot area
func (c *SimpleChart) layout(canvas svgcanvas.Canvas) (left, bottom, plot svgcanvas.Viewport) {
	size, ySize := c.PreferredSize(), c.LeftAxis.PreferredSize()
	left = svgcanvas.Viewport{Left: 0, Right: ySize.Width, Top: 0, Bottom: ySize.Height, Canvas: canvas}
	bottom = svgcanvas.Viewport{Left: ySize.Width, Right: size.Width, Top: ySize.Height, Bottom: size.Height, Canvas: canvas}
	plot = svgcanvas.Viewport{Left: ySize.Width, Right: size.Width, Top: 0, Bottom: ySize.Height, Canvas: canvas}
	return left, bottom, plot
}

// Render draws the chart on `canvas`, with its top left corner at (0, 0).
func (c *SimpleChart) Render(canvas svgcanvas.Canvas) error {
	if c.LeftAxis == nil || c.BottomAxis == nil {
		return ErrMissingAxis
	}
	left, bottom, plot := c.layout(canvas)
	logger.Debugf("chart layout: left axis %+v, bottom axis %+v", left, bottom)

	if c.ShowGrid {
		for _, ax := range [2]Component{c.LeftAxis, c.BottomAxis} {
			if g, ok := ax.(gridder); ok {
				if err := g.BackgroundLines().Render(plot); err != nil {
					return err
				}
			}
		}
	}

	if err := c.LeftAxis.Render(left); err != nil {
		return err
	}
	if err := c.BottomAxis.Render(bottom); err != nil {
		return err
	}

	if len(c.DataLayers) == 0 {
		return nil
	}
	xAxis, okX := c.BottomAxis.(Projector)
	yAxis, okY := c.LeftAxis.(Projector)
	if !(okX && okY) {
		return ErrNotProjectable
	}
	proj := projection{x: xAxis, y: yAxis, xVp: bottom, yVp: left}
	for _, layer := range c.DataLayers {
		if err := layer.render(proj, plot); err != nil {
			return err
		}
	}
	return nil
}

// Record draws the chart on a new svgcanvas.SVG,
// sized to the chart.
func (c *SimpleChart) Record() (*svgcanvas.SVG, error) {
	if c.LeftAxis == nil || c.BottomAxis == nil {
		return nil, ErrMissingAxis
	}
	size := c.PreferredSize()
	canvas := svgcanvas.NewSVG(size.Width, size.Height)
	if c.Title != "" {
		canvas.Titles = append(canvas.Titles, c.Title)
	}
	if err := c.Render(canvas); err != nil {
		return nil, err
	}
	return canvas, nil
}

// ToSVG renders the chart as SVG, either a full document
// or only its elements.
func (c *SimpleChart) ToSVG(mode svgcanvas.Mode) (string, error) {
	canvas, err := c.Record()
	if err != nil {
		return "", err
	}
	return canvas.ToSVG(mode), nil
}
