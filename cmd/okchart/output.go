package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/okchart/svgcanvas"
	"github.com/benoitkugler/okchart/svgpdf"
	"github.com/benoitkugler/okchart/svgraster"
)

// writeCanvas saves the canvas to `path`, in the format
// given by its extension.
func writeCanvas(canvas *svgcanvas.SVG, path string, mode svgcanvas.Mode) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err = canvas.WriteSVG(f, mode); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".png":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err = svgraster.WritePNG(canvas, f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".pdf":
		return svgpdf.RenderFile(canvas, path)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}
