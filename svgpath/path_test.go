package svgpath

import (
	"image"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestToSVGPath(t *testing.T) {
	var p Path
	p.Start(Pt(1, 2))
	p.Line(Pt(3, 4))
	p.QuadBezier(Pt(5, 6), Pt(7, 8))
	p.CubeBezier(Pt(1, 1), Pt(2, 2), Pt(3, 3))
	p.Stop(true)

	exp := "M1.000,2.000 L3.000,4.000 Q5.000,6.000,7.000,8.000 C1.000,1.000,2.000,2.000,3.000,3.000 Z"
	if got := p.ToSVGPath(); got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
}

func TestParsePathRoundTrip(t *testing.T) {
	for _, pts := range [][]image.Point{
		{{0, 0}, {10, 10}},
		{{0, 50}, {100, 25}, {200, 25}, {300, 80}},
	} {
		for _, p := range []Path{Polyline(pts), Smooth(pts)} {
			got, err := ParsePath(p.ToSVGPath())
			if err != nil {
				t.Fatal(err)
			}
			if got.ToSVGPath() != p.ToSVGPath() {
				t.Errorf("round trip mismatch: %s != %s", got, p)
			}
		}
	}
}

func TestParsePathRelative(t *testing.T) {
	p, err := ParsePath("m10,10 l5,0 v5 h-5 z")
	if err != nil {
		t.Fatal(err)
	}
	exp := Path{
		MoveTo(Pt(10, 10)),
		LineTo(Pt(15, 10)),
		LineTo(Pt(15, 15)),
		LineTo(Pt(10, 15)),
		Close{},
	}
	if p.ToSVGPath() != exp.ToSVGPath() {
		t.Errorf("expected %s, got %s", exp, p)
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, d := range []string{
		"10,10 L5,5",
		"M10",
		"M0,0 C1,2,3",
		"M0,0 Lx,3",
		"M0,0 Z 4",
	} {
		if _, err := ParsePath(d); err == nil {
			t.Errorf("expected error for %q", d)
		}
	}
}

func TestSmooth(t *testing.T) {
	pts := []image.Point{{0, 0}, {10, 10}, {20, 0}}
	p := Smooth(pts)
	if len(p) != 3 {
		t.Fatalf("expected a move and two curves, got %s", p)
	}
	// the curves go through every point
	for i, op := range p[1:] {
		c, ok := op.(CubicTo)
		if !ok {
			t.Fatalf("expected cubic, got %T", op)
		}
		if c[2] != Pt(pts[i+1].X, pts[i+1].Y) {
			t.Errorf("curve %d ends at %v, expected %v", i, c[2], pts[i+1])
		}
	}

	if got := Smooth(pts[:2]); got.ToSVGPath() != Polyline(pts[:2]).ToSVGPath() {
		t.Errorf("two points should give a straight line, got %s", got)
	}
}

func TestBounds(t *testing.T) {
	p := Polyline([]image.Point{{10, 20}, {40, 20}, {30, 5}})
	exp := fixed.Rectangle26_6{Min: Pt(10, 5), Max: Pt(40, 20)}
	if got := p.Bounds(); got != exp {
		t.Errorf("expected %v, got %v", exp, got)
	}

	// the circle extremes are reached inside the curves
	c := Circle(50, 50, 10).Bounds()
	if c.Min.X.Round() != 40 || c.Max.X.Round() != 60 || c.Min.Y.Round() != 40 || c.Max.Y.Round() != 60 {
		t.Errorf("unexpected circle bounds %v", c)
	}

	var arch Path
	arch.Start(Pt(0, 0))
	arch.QuadBezier(Pt(10, 20), Pt(20, 0))
	arch.CubeBezier(Pt(20, -12), Pt(40, -12), Pt(40, 0))
	exp = fixed.Rectangle26_6{Min: Pt(0, -9), Max: Pt(40, 10)}
	if got := arch.Bounds(); got != exp {
		t.Errorf("expected %v, got %v", exp, got)
	}

	var empty Path
	if b := empty.Bounds(); b != (fixed.Rectangle26_6{}) {
		t.Errorf("expected empty bounds, got %v", b)
	}
}

type recorder struct {
	starts, lines, cubes, closes int
}

func (r *recorder) Start(fixed.Point26_6) { r.starts++ }
func (r *recorder) Line(fixed.Point26_6) { r.lines++ }
func (r *recorder) QuadBezier(_, _ fixed.Point26_6) {}
func (r *recorder) CubeBezier(_, _, _ fixed.Point26_6) { r.cubes++ }
func (r *recorder) Stop(closeLoop bool) {
	if closeLoop {
		r.closes++
	}
}

func TestAddTo(t *testing.T) {
	var r recorder
	Rect(0, 0, 10, 10).AddTo(&r)
	if r.starts != 1 || r.lines != 3 || r.closes != 1 {
		t.Errorf("unexpected replay %+v", r)
	}
	r = recorder{}
	Circle(0, 0, 5).Translate(3, 3).AddTo(&r)
	if r.starts != 1 || r.cubes != 4 {
		t.Errorf("unexpected replay %+v", r)
	}
}
