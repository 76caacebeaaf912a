// Implements a raster backend to render recorded charts,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/benoitkugler/okchart/svgcanvas"
	"github.com/benoitkugler/okchart/svgpath"
	"github.com/sirupsen/logrus"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var logger = logrus.WithField("package", "svgraster")

// SetLogger redirects the package logs to `l`.
func SetLogger(l *logrus.Logger) { logger = l.WithField("package", "svgraster") }

var _ svgcanvas.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer paints the elements of a canvas onto an image.
type Renderer struct {
	dst    draw.Image
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
	face   font.Face
}

// NewRenderer returns a renderer drawing into `dst`.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
// If scanner is nil, a default scanner rasterx.ScannerGV is used
func NewRenderer(dst draw.Image, scanner rasterx.Scanner) *Renderer {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if scanner == nil {
		scanner = rasterx.NewScannerGV(w, h, dst, b)
	}
	return &Renderer{
		dst:    dst,
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
		face:   basicfont.Face7x13,
	}
}

// RasterCanvas paints the canvas on a new white image
// of size width x height and returns it.
func RasterCanvas(c *svgcanvas.SVG, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	if b := c.Bounds(); !b.In(img.Bounds()) {
		logger.Warnf("drawing %v overflows the image %v", b, img.Bounds())
	}
	c.Draw(NewRenderer(img, nil))
	return img
}

// WritePNG paints the canvas, using its size, and
// writes it as PNG to `w`.
func WritePNG(c *svgcanvas.SVG, w io.Writer) error {
	size := c.Size()
	img := RasterCanvas(c, size.Width, size.Height)
	return png.Encode(w, img)
}

func (rd *Renderer) Clear() {
	rd.dasher.Clear()
	rd.filler.Clear()
}

// style returns the parsed style, falling back
// to the defaults on invalid input
func style(s string) svgcanvas.Style {
	out, err := svgcanvas.ParseStyle(s)
	if err != nil {
		logger.Warnf("ignoring style %q: %s", s, err)
		return svgcanvas.DefaultStyle
	}
	return out
}

func (rd *Renderer) stroke(p svgpath.Path, st svgcanvas.Style) {
	if st.Stroke == nil || st.StrokeWidth <= 0 {
		return
	}
	rd.dasher.Clear()
	rd.dasher.SetStroke(fixed.Int26_6(st.StrokeWidth*64), fixed.I(4),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Bevel, nil, 0)
	rd.dasher.SetColor(rasterx.ApplyOpacity(st.Stroke, st.Opacity))
	p.AddTo(rd.dasher)
	rd.dasher.Draw()
}

func (rd *Renderer) fill(p svgpath.Path, st svgcanvas.Style) {
	if st.Fill == nil {
		return
	}
	rd.filler.Clear()
	rd.filler.SetColor(rasterx.ApplyOpacity(st.Fill, st.Opacity*st.FillOpacity))
	p.AddTo(rd.filler)
	rd.filler.Draw()
}

func (rd *Renderer) DrawLine(l svgcanvas.Line) {
	var p svgpath.Path
	p.Start(svgpath.Pt(l.X1, l.Y1))
	p.Line(svgpath.Pt(l.X2, l.Y2))
	rd.stroke(p, style(l.Style))
}

func (rd *Renderer) DrawRect(r svgcanvas.Rect) {
	p := svgpath.Rect(float64(r.X), float64(r.Y), float64(r.X+r.Width), float64(r.Y+r.Height))
	st := style(r.Style)
	rd.fill(p, st)
	rd.stroke(p, st)
}

func (rd *Renderer) DrawCircle(c svgcanvas.Circle) {
	p := svgpath.Circle(float64(c.Cx), float64(c.Cy), float64(c.R))
	st := style(c.Style)
	rd.fill(p, st)
	rd.stroke(p, st)
}

func (rd *Renderer) DrawPath(p svgcanvas.PathElement) {
	st := style(p.Style)
	rd.fill(p.Path, st)
	rd.stroke(p.Path, st)
}

// DrawText uses a fixed size bitmap font.
// Rotated text is drawn horizontally.
func (rd *Renderer) DrawText(t svgcanvas.Text) {
	st := style(t.Style)
	if st.Fill == nil {
		return
	}
	if t.Rotation != 0 {
		logger.Debugf("text rotation is not supported, drawing %q horizontally", t.Content)
	}
	d := font.Drawer{
		Dst:  rd.dst,
		Src:  image.NewUniform(rasterx.ApplyOpacity(st.Fill, st.Opacity*st.FillOpacity)),
		Face: rd.face,
		Dot:  fixed.P(t.X, t.Y),
	}
	switch t.Anchor {
	case "middle":
		d.Dot.X -= d.MeasureString(t.Content) / 2
	case "end":
		d.Dot.X -= d.MeasureString(t.Content)
	}
	ascent := rd.face.Metrics().Ascent
	switch t.Baseline {
	case "middle", "central":
		d.Dot.Y += ascent / 2
	case "top", "hanging", "text-before-edge":
		d.Dot.Y += ascent
	}
	d.DrawString(t.Content)
}
