// Implements a PDF backend to render recorded charts,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"image/color"
	"io"
	"os"

	"github.com/benoitkugler/okchart/svgcanvas"
	"github.com/benoitkugler/okchart/svgpath"
	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/math/fixed"
)

var logger = logrus.WithField("package", "svgpdf")

// SetLogger redirects the package logs to `l`.
func SetLogger(l *logrus.Logger) { logger = l.WithField("package", "svgpdf") }

// assert interface conformance
var (
	_ svgcanvas.Driver = (*Renderer)(nil)
	_ svgpath.Adder    = pather{}
)

const fontFamily = "Helvetica"

// Renderer writes the elements of a canvas on
// the current page of a PDF document, using points as unit.
type Renderer struct {
	pdf *gofpdf.Fpdf
}

// implements the path commands
type pather struct {
	pdf *gofpdf.Fpdf
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	return &Renderer{pdf: pdf}
}

// NewDocument returns a one page document of size width x height points.
func NewDocument(width, height int) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

// Render writes the canvas as a PDF document
// of size width x height to `w`.
func Render(c *svgcanvas.SVG, width, height int, w io.Writer) error {
	pdf := NewDocument(width, height)
	for _, title := range c.Titles {
		pdf.SetTitle(title, true)
	}
	c.Draw(NewRenderer(pdf))
	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// RenderFile is the same as Render, using the canvas size
// and writing to the file `outFile`.
func RenderFile(c *svgcanvas.SVG, outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	size := c.Size()
	if err = Render(c, size.Width, size.Height, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.CurveTo(cx, cy, x, y)
}

func (p pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

// toRGB returns the non premultiplied components of `c`
func toRGB(c color.Color) (r, g, b int, alpha float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B), float64(n.A) / 255
}

// applyStyle sets the colors and line width, and returns
// the gofpdf style string ("F", "D", "FD"), empty if
// nothing should be drawn.
func (rd *Renderer) applyStyle(s string, fillable bool) string {
	st, err := svgcanvas.ParseStyle(s)
	if err != nil {
		logger.Warnf("ignoring style %q: %s", s, err)
		st = svgcanvas.DefaultStyle
	}
	var out string
	alpha := st.Opacity
	if fillable && st.Fill != nil {
		r, g, b, a := toRGB(st.Fill)
		rd.pdf.SetFillColor(r, g, b)
		alpha *= a * st.FillOpacity
		out += "F"
	}
	if st.Stroke != nil && st.StrokeWidth > 0 {
		r, g, b, a := toRGB(st.Stroke)
		rd.pdf.SetDrawColor(r, g, b)
		rd.pdf.SetLineWidth(st.StrokeWidth)
		if !fillable || st.Fill == nil {
			alpha *= a
		}
		out += "D"
	}
	rd.pdf.SetAlpha(alpha, "Normal")
	return out
}

func (rd *Renderer) DrawLine(l svgcanvas.Line) {
	if rd.applyStyle(l.Style, false) == "" {
		return
	}
	rd.pdf.Line(float64(l.X1), float64(l.Y1), float64(l.X2), float64(l.Y2))
}

func (rd *Renderer) DrawRect(r svgcanvas.Rect) {
	if style := rd.applyStyle(r.Style, true); style != "" {
		rd.pdf.Rect(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height), style)
	}
}

func (rd *Renderer) DrawCircle(c svgcanvas.Circle) {
	if style := rd.applyStyle(c.Style, true); style != "" {
		rd.pdf.Circle(float64(c.Cx), float64(c.Cy), float64(c.R), style)
	}
}

func (rd *Renderer) DrawPath(p svgcanvas.PathElement) {
	style := rd.applyStyle(p.Style, true)
	if style == "" {
		return
	}
	p.Path.AddTo(pather{pdf: rd.pdf})
	rd.pdf.DrawPath(style)
}

func fontStyle(st svgcanvas.Style) string {
	var out string
	if st.Bold {
		out += "B"
	}
	if st.Italic {
		out += "I"
	}
	return out
}

func (rd *Renderer) DrawText(t svgcanvas.Text) {
	st, err := svgcanvas.ParseStyle(t.Style)
	if err != nil {
		logger.Warnf("ignoring style %q: %s", t.Style, err)
		st = svgcanvas.DefaultStyle
	}
	if st.Fill == nil {
		return
	}
	r, g, b, a := toRGB(st.Fill)
	rd.pdf.SetTextColor(r, g, b)
	rd.pdf.SetAlpha(a*st.Opacity*st.FillOpacity, "Normal")
	rd.pdf.SetFont(fontFamily, fontStyle(st), st.FontSize)

	x, y := float64(t.X), float64(t.Y)
	if t.Rotation != 0 {
		rd.pdf.TransformBegin()
		// gofpdf angles are counter-clockwise
		rd.pdf.TransformRotate(float64(-t.Rotation), x, y)
		defer rd.pdf.TransformEnd()
	}

	switch t.Anchor {
	case "middle":
		x -= rd.pdf.GetStringWidth(t.Content) / 2
	case "end":
		x -= rd.pdf.GetStringWidth(t.Content)
	}
	_, fontHeight := rd.pdf.GetFontSize()
	switch t.Baseline {
	case "middle", "central":
		y += fontHeight * 0.35
	case "top", "hanging", "text-before-edge":
		y += fontHeight * 0.75
	}
	rd.pdf.Text(x, y, t.Content)
}
