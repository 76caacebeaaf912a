package svgcanvas

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"strings"

	"github.com/benoitkugler/okchart/svgpath"
	"golang.org/x/net/html/charset"
)

// ErrorMode is the for setting how the parser reacts to unparsed elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unparsed SVG elements
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning about unparsed SVG elements
	WarnErrorMode
	// StrictErrorMode returns an error on unparsed SVG elements
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return "<unknown ErrorMode>"
	}
}

// ParseErrorMode is the inverse of ErrorMode.String
func ParseErrorMode(s string) (ErrorMode, error) {
	switch strings.ToLower(s) {
	case "ignore", "":
		return IgnoreErrorMode, nil
	case "warn":
		return WarnErrorMode, nil
	case "strict":
		return StrictErrorMode, nil
	}
	return 0, fmt.Errorf("invalid error mode %q", s)
}

var errNoSVGTag = errors.New("invalid svg xml document")

// readCursor is used while parsing SVG files
type readCursor struct {
	out        *SVG
	errorMode  ErrorMode
	styleStack []string // inherited declarations, one per open element

	inTitleText bool
	textElement *Text // pending <text>, waiting for its content
}

// styleOf merges the inherited style with the `style` attribute
// and the presentation attributes of an element.
func (c *readCursor) styleOf(attrs []xml.Attr) string {
	var pairs []string
	if inherited := c.styleStack[len(c.styleStack)-1]; inherited != "" {
		pairs = append(pairs, inherited)
	}
	for _, attr := range attrs {
		switch k := strings.ToLower(attr.Name.Local); k {
		case "style":
			if v := strings.TrimSpace(attr.Value); v != "" {
				pairs = append(pairs, v)
			}
		case "fill", "stroke", "stroke-width", "font-size", "font-family",
			"font-style", "font-weight", "opacity", "fill-opacity":
			pairs = append(pairs, k+":"+attr.Value)
		}
	}
	return strings.Join(pairs, ";")
}

type readFunc func(c *readCursor, attrs []xml.Attr, style string) error

var readFuncs = map[string]readFunc{
	"svg":      svgF,
	"g":        gF,
	"line":     lineF,
	"rect":     rectF,
	"circle":   circleF,
	"polyline": polylineF,
	"polygon":  polylineF,
	"path":     pathF,
	"text":     textF,
	"title":    titleF,
	"desc":     gF,
	"defs":     gF,
}

func parseInt(v string) (int, error) {
	f, err := parseLength(v)
	if err != nil {
		return 0, err
	}
	return int(math.Round(f)), nil
}

// readInts reads the integer attributes named in `dst`
func readInts(attrs []xml.Attr, dst map[string]*int) error {
	for _, attr := range attrs {
		ptr, ok := dst[attr.Name.Local]
		if !ok {
			continue
		}
		v, err := parseInt(attr.Value)
		if err != nil {
			return fmt.Errorf("invalid attribute %s: %w", attr.Name.Local, err)
		}
		*ptr = v
	}
	return nil
}

func svgF(c *readCursor, attrs []xml.Attr, _ string) error {
	return readInts(attrs, map[string]*int{"width": &c.out.Width, "height": &c.out.Height})
}

func gF(*readCursor, []xml.Attr, string) error { return nil } // only push the style

func lineF(c *readCursor, attrs []xml.Attr, style string) error {
	var l Line
	err := readInts(attrs, map[string]*int{"x1": &l.X1, "y1": &l.Y1, "x2": &l.X2, "y2": &l.Y2})
	if err != nil {
		return err
	}
	c.out.Line(l.X1, l.Y1, l.X2, l.Y2, style)
	return nil
}

func rectF(c *readCursor, attrs []xml.Attr, style string) error {
	var r Rect
	err := readInts(attrs, map[string]*int{"x": &r.X, "y": &r.Y, "width": &r.Width, "height": &r.Height})
	if err != nil {
		return err
	}
	c.out.Rect(r.X, r.Y, r.Width, r.Height, style)
	return nil
}

func circleF(c *readCursor, attrs []xml.Attr, style string) error {
	var ci Circle
	err := readInts(attrs, map[string]*int{"cx": &ci.Cx, "cy": &ci.Cy, "r": &ci.R})
	if err != nil {
		return err
	}
	c.out.Circle(ci.Cx, ci.Cy, ci.R, style)
	return nil
}

func polylineF(c *readCursor, attrs []xml.Attr, style string) error {
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		fields := splitOnCommaOrSpace(attr.Value)
		if len(fields)%2 != 0 {
			return fmt.Errorf("odd number of coordinates in points %q", attr.Value)
		}
		pts := make([]image.Point, len(fields)/2)
		for i := range pts {
			x, err := parseInt(fields[2*i])
			if err != nil {
				return err
			}
			y, err := parseInt(fields[2*i+1])
			if err != nil {
				return err
			}
			pts[i] = image.Pt(x, y)
		}
		c.out.Path(svgpath.Polyline(pts), style)
	}
	return nil
}

func pathF(c *readCursor, attrs []xml.Attr, style string) error {
	for _, attr := range attrs {
		if attr.Name.Local != "d" {
			continue
		}
		p, err := svgpath.ParsePath(attr.Value)
		if err != nil {
			return err
		}
		c.out.Path(p, style)
	}
	return nil
}

func textF(c *readCursor, attrs []xml.Attr, style string) error {
	t := Text{Style: style}
	err := readInts(attrs, map[string]*int{"x": &t.X, "y": &t.Y})
	if err != nil {
		return err
	}
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "text-anchor":
			t.Anchor = attr.Value
		case "alignment-baseline", "dominant-baseline":
			t.Baseline = attr.Value
		case "transform":
			t.Rotation, err = readRotation(attr.Value)
			if err != nil {
				return err
			}
		}
	}
	c.textElement = &t
	return nil
}

// readRotation only supports rotate(angle) and rotate(angle, cx, cy)
func readRotation(v string) (int, error) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "rotate(") || !strings.HasSuffix(v, ")") {
		return 0, fmt.Errorf("unsupported transform %q", v)
	}
	args := splitOnCommaOrSpace(v[len("rotate(") : len(v)-1])
	if len(args) == 0 {
		return 0, fmt.Errorf("missing rotation angle in %q", v)
	}
	return parseInt(args[0])
}

func titleF(c *readCursor, _ []xml.Attr, _ string) error {
	c.out.Titles = append(c.out.Titles, "")
	c.inTitleText = true
	return nil
}

func (c *readCursor) readStartElement(se xml.StartElement) error {
	style := c.styleOf(se.Attr)
	c.styleStack = append(c.styleStack, style)

	df, ok := readFuncs[se.Name.Local]
	if !ok {
		errStr := "Cannot process svg element " + se.Name.Local
		if c.errorMode == StrictErrorMode {
			return errors.New(errStr)
		} else if c.errorMode == WarnErrorMode {
			logger.Warn(errStr)
		}
		return nil
	}
	return df(c, se.Attr, style)
}

func (c *readCursor) readEndElement(se xml.EndElement) {
	c.styleStack = c.styleStack[:len(c.styleStack)-1]
	switch se.Name.Local {
	case "title":
		c.inTitleText = false
	case "text":
		if t := c.textElement; t != nil {
			c.out.Text(strings.TrimSpace(t.Content), t.X, t.Y, t.Style,
				Anchor(t.Anchor), Baseline(t.Baseline), Rotate(t.Rotation))
			c.textElement = nil
		}
	}
}

// ReadSVG reads a document made of the elements drawn by a Canvas
// (lines, rectangles, circles, paths and text), such as the ones
// produced by SVG.ToSVG.
// errMode determines if unknown elements are ignored, logged or
// rejected.
func ReadSVG(stream io.Reader, errMode ErrorMode) (*SVG, error) {
	out := new(SVG)
	cursor := &readCursor{out: out, errorMode: errMode, styleStack: []string{""}}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errNoSVGTag
				}
				break
			}
			return out, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if err = cursor.readStartElement(se); err != nil {
				return out, err
			}
		case xml.EndElement:
			cursor.readEndElement(se)
		case xml.CharData:
			if cursor.inTitleText {
				out.Titles[len(out.Titles)-1] += string(se)
			}
			if cursor.textElement != nil {
				cursor.textElement.Content += string(se)
			}
		}
	}
	logger.Debugf("read %d elements", len(out.elements))
	return out, nil
}

// ReadSVGFile reads the named file, see ReadSVG.
func ReadSVGFile(filename string, errMode ErrorMode) (*SVG, error) {
	fin, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadSVG(fin, errMode)
}
