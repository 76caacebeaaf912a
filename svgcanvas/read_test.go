package svgcanvas

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadRoundTrip(t *testing.T) {
	s := NewSVG(40, 206)
	s.Titles = []string{"axis"}
	s.Line(36, 6, 36, 206, "stroke:black;")
	s.Text("30", 20, 56, "font: italic 13px sans-serif", Anchor("end"), Baseline("middle"))
	s.Text("Time", 13, 0, "font: 13px sans-serif", Anchor("end"), Rotate(270))
	s.Rect(1, 2, 3, 4, "fill: blue")
	s.Circle(5, 6, 7, "")

	got, err := ReadSVG(strings.NewReader(s.ToSVG(Full)), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width != 40 || got.Height != 206 {
		t.Errorf("unexpected size %d x %d", got.Width, got.Height)
	}
	if !reflect.DeepEqual(got.Titles, s.Titles) {
		t.Errorf("expected titles %v, got %v", s.Titles, got.Titles)
	}
	if !reflect.DeepEqual(got.Elements(), s.Elements()) {
		t.Errorf("expected\n%v\ngot\n%v", s.Elements(), got.Elements())
	}
}

func TestReadInheritedStyle(t *testing.T) {
	const doc = `<svg width="10" height="10">
	<g style="stroke: red">
		<line x1="0" y1="0" x2="10" y2="10" stroke-width="2" />
		<polyline points="0,0 5,5 10,0" />
	</g>
	<path d="M0,0 L10,10" fill="none" />
	</svg>`
	got, err := ReadSVG(strings.NewReader(doc), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	els := got.Elements()
	if len(els) != 3 {
		t.Fatalf("expected 3 elements, got %v", els)
	}
	line := els[0].(Line)
	if line.Style != "stroke: red;stroke-width:2" {
		t.Errorf("unexpected inherited style %q", line.Style)
	}
	st, err := ParseStyle(line.Style)
	if err != nil {
		t.Fatal(err)
	}
	if st.StrokeWidth != 2 || !st.StrokeSet {
		t.Errorf("unexpected parsed style %+v", st)
	}
	if p := els[1].(PathElement); p.Style != "stroke: red" || len(p.Path) != 3 {
		t.Errorf("unexpected polyline %v", p)
	}
	if p := els[2].(PathElement); p.Style != "fill:none" || p.Path.ToSVGPath() != "M0.000,0.000 L10.000,10.000" {
		t.Errorf("unexpected path %v", p)
	}
}

func TestReadErrorMode(t *testing.T) {
	const doc = `<svg width="10" height="10"><ellipse cx="1" cy="1" rx="2" ry="3"/><line x1="1" y1="1" x2="2" y2="2"/></svg>`

	got, err := ReadSVG(strings.NewReader(doc), IgnoreErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Elements()) != 1 {
		t.Errorf("expected the line only, got %v", got.Elements())
	}
	if _, err = ReadSVG(strings.NewReader(doc), WarnErrorMode); err != nil {
		t.Fatal(err)
	}
	if _, err = ReadSVG(strings.NewReader(doc), StrictErrorMode); err == nil {
		t.Error("expected error in strict mode")
	}

	if _, err = ReadSVG(strings.NewReader(""), IgnoreErrorMode); err == nil {
		t.Error("expected error on empty document")
	}
	if _, err = ReadSVG(strings.NewReader(`<svg><line x1="a"/></svg>`), IgnoreErrorMode); err == nil {
		t.Error("expected error on invalid attribute")
	}

	for _, mode := range []ErrorMode{IgnoreErrorMode, WarnErrorMode, StrictErrorMode} {
		back, err := ParseErrorMode(mode.String())
		if err != nil || back != mode {
			t.Errorf("unexpected error mode %v (%v)", back, err)
		}
	}
}
