package svgcanvas

import (
	"errors"
	"image"
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/benoitkugler/okchart/svgpath"
	"golang.org/x/image/colornames"
)

func TestRecordOrder(t *testing.T) {
	s := NewSVG(100, 50)
	s.Line(1, 2, 3, 4, "stroke:black;")
	s.Text("30", 20, 56, "font: italic 13px sans-serif", Anchor("end"), Baseline("middle"))
	s.Rect(0, 0, 10, 10, "")
	s.Circle(5, 5, 2, "fill: red")
	s.Path(nil, "") // ignored

	exp := []Element{
		Line{X1: 1, Y1: 2, X2: 3, Y2: 4, Style: "stroke:black;"},
		Text{Content: "30", X: 20, Y: 56, Style: "font: italic 13px sans-serif", Anchor: "end", Baseline: "middle"},
		Rect{Width: 10, Height: 10},
		Circle{Cx: 5, Cy: 5, R: 2, Style: "fill: red"},
	}
	if !reflect.DeepEqual(s.Elements(), exp) {
		t.Errorf("expected %v, got %v", exp, s.Elements())
	}

	s.Reset()
	if len(s.Elements()) != 0 {
		t.Error("expected empty canvas after Reset")
	}
}

func TestToSVG(t *testing.T) {
	s := NewSVG(40, 200)
	s.Line(16, 0, 16, 200, "stroke:black;")
	s.Text("Time", 13, 0, "font: 13px sans-serif", Anchor("end"), Rotate(270))

	partial := s.ToSVG(Partial)
	for _, exp := range []string{
		`<line x1="16" y1="0" x2="16" y2="200" style="stroke:black;"`,
		`<text x="13" y="0" style="font: 13px sans-serif" text-anchor="end" transform="rotate(270,13,0)"`,
		">Time</text>",
	} {
		if !strings.Contains(partial, exp) {
			t.Errorf("missing %s in\n%s", exp, partial)
		}
	}
	if strings.Contains(partial, "<svg") {
		t.Error("partial output should not contain the root element")
	}

	full := s.ToSVG(Full)
	if !strings.Contains(full, `<svg width="40" height="200"`) || !strings.Contains(full, "</svg>") {
		t.Errorf("unexpected full output\n%s", full)
	}
}

func TestSize(t *testing.T) {
	s := new(SVG)
	s.Line(0, 0, 30, 0, "")
	s.Circle(10, 10, 5, "")
	if got := s.Size(); got != (Size{Height: 15, Width: 30}) {
		t.Errorf("unexpected size %v", got)
	}
	if b := s.Bounds(); b != image.Rect(0, 0, 30, 15) {
		t.Errorf("unexpected bounds %v", b)
	}
	s.Width = 100
	if got := s.Size(); got != (Size{Height: 15, Width: 100}) {
		t.Errorf("unexpected size %v", got)
	}
}

type countDriver struct {
	lines, texts, rects, circles, paths int
}

func (c *countDriver) DrawLine(Line) { c.lines++ }
func (c *countDriver) DrawText(Text) { c.texts++ }
func (c *countDriver) DrawRect(Rect) { c.rects++ }
func (c *countDriver) DrawCircle(Circle) { c.circles++ }
func (c *countDriver) DrawPath(PathElement) { c.paths++ }

func TestDraw(t *testing.T) {
	s := new(SVG)
	s.Line(0, 0, 1, 1, "")
	s.Line(0, 0, 2, 2, "")
	s.Text("a", 0, 0, "")
	s.Path(svgpath.Polyline([]image.Point{{0, 0}, {1, 1}}), "")
	var d countDriver
	s.Draw(&d)
	if d != (countDriver{lines: 2, texts: 1, paths: 1}) {
		t.Errorf("unexpected draw calls %+v", d)
	}
}

func TestParseStyle(t *testing.T) {
	st, err := ParseStyle("stroke: lightgray; stroke-width: 2px")
	if err != nil {
		t.Fatal(err)
	}
	if st.Stroke != colornames.Lightgray || !st.StrokeSet || st.StrokeWidth != 2 {
		t.Errorf("unexpected style %+v", st)
	}
	if st.Fill != color.Black {
		t.Errorf("expected default black fill, got %v", st.Fill)
	}

	st, err = ParseStyle("font: italic 13px sans-serif")
	if err != nil {
		t.Fatal(err)
	}
	if !st.Italic || st.Bold || st.FontSize != 13 || st.FontFamily != "sans-serif" {
		t.Errorf("unexpected font style %+v", st)
	}

	st, err = ParseStyle("stroke:red;fill:none;")
	if err != nil {
		t.Fatal(err)
	}
	if st.Stroke != colornames.Red || st.Fill != nil || !st.FillSet {
		t.Errorf("unexpected style %+v", st)
	}

	if _, err = ParseStyle("stroke: notacolor"); err == nil {
		t.Error("expected error for invalid color")
	}
}

func TestParseColor(t *testing.T) {
	for v, exp := range map[string]color.Color{
		"#fff":             color.NRGBA{0xff, 0xff, 0xff, 0xff},
		"#102030":          color.NRGBA{0x10, 0x20, 0x30, 0xff},
		"rgb(10, 20, 30)":  color.NRGBA{10, 20, 30, 0xff},
		"rgb(100%,0%,50%)": color.NRGBA{255, 0, 128, 0xff},
		"Black":            colornames.Black,
		"none":             nil,
	} {
		got, err := ParseColor(v)
		if err != nil {
			t.Fatal(err)
		}
		if got != exp {
			t.Errorf("%s: expected %v, got %v", v, exp, got)
		}
	}
	for _, v := range []string{"#ff", "rgb(1,2)", "#zzzzzz"} {
		if _, err := ParseColor(v); err == nil {
			t.Errorf("expected error for %s", v)
		}
	}
}

var errDiskFull = errors.New("disk full")

// shortWriter accepts `room` bytes, then fails
type shortWriter struct{ room int }

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.room {
		n := w.room
		w.room = 0
		return n, errDiskFull
	}
	w.room -= len(p)
	return len(p), nil
}

func TestWriteSVGError(t *testing.T) {
	s := NewSVG(30, 20)
	s.Line(0, 0, 10, 10, "stroke:black")
	s.Rect(0, 0, 5, 5, "")

	for _, mode := range []Mode{Full, Partial} {
		for _, room := range []int{0, 20} {
			if err := s.WriteSVG(&shortWriter{room: room}, mode); err != errDiskFull {
				t.Errorf("mode %s, %d bytes: expected write error, got %v", mode, room, err)
			}
		}
		if err := s.WriteSVG(&shortWriter{room: 1 << 20}, mode); err != nil {
			t.Errorf("mode %s: unexpected error %s", mode, err)
		}
	}
}
