package svgpath

import (
	"image"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// circleKappa is the distance of the control points, as a fraction
// of the radius, for a quarter circle approximated by one cubic bezier.
const circleKappa = 0.5522847498

// smoothing is the Catmull-Rom tension used by Smooth.
const smoothing = 1. / 6

// Rect returns the closed path of the rectangle [minX, maxX] x [minY, maxY].
func Rect(minX, minY, maxX, maxY float64) Path {
	var p Path
	p.Start(toFixedP(minX, minY))
	p.Line(toFixedP(maxX, minY))
	p.Line(toFixedP(maxX, maxY))
	p.Line(toFixedP(minX, maxY))
	p.Stop(true)
	return p
}

// Circle approximates the circle of center (cx, cy) and radius r
// with four cubic bezier curves.
func Circle(cx, cy, r float64) Path {
	if r <= 0 {
		return nil
	}
	k := r * circleKappa
	var p Path
	p.Start(toFixedP(cx+r, cy))
	p.CubeBezier(toFixedP(cx+r, cy+k), toFixedP(cx+k, cy+r), toFixedP(cx, cy+r))
	p.CubeBezier(toFixedP(cx-k, cy+r), toFixedP(cx-r, cy+k), toFixedP(cx-r, cy))
	p.CubeBezier(toFixedP(cx-r, cy-k), toFixedP(cx-k, cy-r), toFixedP(cx, cy-r))
	p.CubeBezier(toFixedP(cx+k, cy-r), toFixedP(cx+r, cy-k), toFixedP(cx+r, cy))
	p.Stop(true)
	return p
}

// Smooth returns a curve going through every point of pts,
// built from Catmull-Rom splines converted to cubic beziers.
// The end points use themselves as missing neighbours.
// Less than three points give a straight Polyline.
func Smooth(pts []image.Point) Path {
	if len(pts) < 3 {
		return Polyline(pts)
	}
	at := func(i int) (float64, float64) {
		if i < 0 {
			i = 0
		} else if i >= len(pts) {
			i = len(pts) - 1
		}
		return float64(pts[i].X), float64(pts[i].Y)
	}
	var p Path
	x0, y0 := at(0)
	p.Start(toFixedP(x0, y0))
	for i := 0; i < len(pts)-1; i++ {
		xa, ya := at(i - 1)
		xb, yb := at(i)
		xc, yc := at(i + 1)
		xd, yd := at(i + 2)
		c1x, c1y := xb+(xc-xa)*smoothing, yb+(yc-ya)*smoothing
		c2x, c2y := xc-(xd-xb)*smoothing, yc-(yd-yb)*smoothing
		p.CubeBezier(toFixedP(c1x, c1y), toFixedP(c2x, c2y), toFixedP(xc, yc))
	}
	return p
}
