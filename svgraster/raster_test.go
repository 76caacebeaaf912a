package svgraster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/okchart/svgcanvas"
	"github.com/benoitkugler/okchart/svgpath"
)

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func sampleCanvas() *svgcanvas.SVG {
	c := svgcanvas.NewSVG(100, 60)
	c.Line(10, 10, 90, 10, "stroke:black; stroke-width: 2")
	c.Rect(10, 20, 20, 20, "fill: blue")
	c.Circle(60, 30, 8, "fill:red")
	c.Path(svgpath.Smooth([]image.Point{{10, 50}, {50, 45}, {90, 55}}), "fill:none;stroke:green")
	c.Text("30", 80, 40, "font: italic 13px sans-serif", svgcanvas.Anchor("end"), svgcanvas.Baseline("middle"))
	c.Text("Time", 5, 5, "font: 13px sans-serif", svgcanvas.Rotate(270))
	return c
}

func TestRasterCanvas(t *testing.T) {
	img := RasterCanvas(sampleCanvas(), 100, 60)
	if img.Bounds() != image.Rect(0, 0, 100, 60) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}

	if !isWhite(img.At(95, 2)) {
		t.Errorf("expected white background, got %v", img.At(95, 2))
	}
	if c := img.RGBAAt(20, 30); c.B < 200 || c.R > 50 {
		t.Errorf("expected blue rect, got %v", c)
	}
	if c := img.RGBAAt(60, 30); c.R < 200 || c.B > 50 {
		t.Errorf("expected red circle, got %v", c)
	}
	if isWhite(img.At(50, 10)) {
		t.Error("expected the line to be drawn")
	}
	// stroke only: the inside of the curve is not filled
	if !isWhite(img.At(50, 58)) {
		t.Errorf("unexpected fill below the curve: %v", img.At(50, 58))
	}

	var textPixels int
	for x := 69; x < 80; x++ {
		for y := 36; y < 45; y++ {
			if !isWhite(img.At(x, y)) {
				textPixels++
			}
		}
	}
	if textPixels == 0 {
		t.Error("expected the label to be drawn left of its anchor")
	}
}

func TestWritePNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.png")
	f, err := os.Create(out)
	if err != nil {
		t.Fatal(err)
	}
	if err = WritePNG(sampleCanvas(), f); err != nil {
		t.Fatal(err)
	}
	f.Close()

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 60 {
		t.Errorf("unexpected image size %v", img.Bounds())
	}
}
