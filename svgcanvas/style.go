package svgcanvas

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Style holds the subset of the CSS style attribute
// understood by the painting drivers.
type Style struct {
	Fill, Stroke         color.Color // nil for none
	StrokeWidth          float64
	FontSize             float64
	Italic, Bold         bool
	FillSet, StrokeSet   bool // true if explicitly given
	FontFamily           string
	FillOpacity, Opacity float64
}

// DefaultStyle fills in black, with no stroke
// and a 1px line width.
var DefaultStyle = Style{
	Fill:        color.Black,
	StrokeWidth: 1,
	FontSize:    13,
	FillOpacity: 1,
	Opacity:     1,
	FontFamily:  "sans-serif",
}

var errColorSyntax = errors.New("invalid color syntax")

// ParseColor parses an SVG color: a named color, #rgb, #rrggbb,
// rgb(r,g,b) or none (returned as nil).
func ParseColor(v string) (color.Color, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch {
	case v == "none" || v == "transparent":
		return nil, nil
	case strings.HasPrefix(v, "#"):
		return parseHexColor(v[1:])
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		fields := splitOnCommaOrSpace(v[4 : len(v)-1])
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %s", errColorSyntax, v)
		}
		var cs [3]uint8
		for i, f := range fields {
			n, err := readColorComponent(f)
			if err != nil {
				return nil, err
			}
			cs[i] = n
		}
		return color.NRGBA{cs[0], cs[1], cs[2], 0xff}, nil
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: unknown color %q", errColorSyntax, v)
}

func parseHexColor(v string) (color.Color, error) {
	if len(v) == 3 {
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) != 6 {
		return nil, fmt.Errorf("%w: #%s", errColorSyntax, v)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: #%s", errColorSyntax, v)
	}
	return color.NRGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}, nil
}

// readColorComponent accepts 0-255 integers and percentages
func readColorComponent(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return 0, err
		}
		return clamp255(f * 255 / 100), nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	return clamp255(f), nil
}

func clamp255(f float64) uint8 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f + 0.5)
}

// parseLength reads a CSS length, ignoring a px unit
func parseLength(v string) (float64, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	return strconv.ParseFloat(v, 64)
}

// readStyleAttr updates `s` with the property `k`.
// Unknown properties are ignored.
func (s *Style) readStyleAttr(k, v string) error {
	switch k {
	case "fill":
		c, err := ParseColor(v)
		if err != nil {
			return err
		}
		s.Fill, s.FillSet = c, true
	case "stroke":
		c, err := ParseColor(v)
		if err != nil {
			return err
		}
		s.Stroke, s.StrokeSet = c, true
	case "stroke-width":
		w, err := parseLength(v)
		if err != nil {
			return err
		}
		s.StrokeWidth = w
	case "font-size":
		size, err := parseLength(v)
		if err != nil {
			return err
		}
		s.FontSize = size
	case "font-style":
		s.Italic = v == "italic" || v == "oblique"
	case "font-weight":
		s.Bold = v == "bold" || v == "bolder"
	case "font-family":
		s.FontFamily = v
	case "font":
		return s.readFontShorthand(v)
	case "opacity":
		op, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		s.Opacity = op
	case "fill-opacity":
		op, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		s.FillOpacity = op
	}
	return nil
}

// readFontShorthand handles the `font` property, such as
// "italic bold 13px sans-serif"
func (s *Style) readFontShorthand(v string) error {
	fields := strings.Fields(v)
	for i, f := range fields {
		switch {
		case f == "italic" || f == "oblique":
			s.Italic = true
		case f == "bold" || f == "bolder":
			s.Bold = true
		case f == "normal":
		case strings.HasSuffix(f, "px"):
			size, err := parseLength(f)
			if err != nil {
				return err
			}
			s.FontSize = size
			if rest := fields[i+1:]; len(rest) != 0 {
				s.FontFamily = strings.Join(rest, " ")
			}
			return nil
		}
	}
	return nil
}

// ParseStyle parses a CSS declaration list, such as
// "stroke: lightgray; stroke-width: 2", starting from DefaultStyle.
func ParseStyle(style string) (Style, error) {
	out := DefaultStyle
	err := out.Update(style)
	return out, err
}

// Update applies the declarations in `style` on top of `s`.
func (s *Style) Update(style string) error {
	for _, pair := range strings.Split(style, ";") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) != 2 {
			continue
		}
		k := strings.ToLower(strings.TrimSpace(kv[0]))
		v := strings.TrimSpace(kv[1])
		if err := s.readStyleAttr(k, v); err != nil {
			return fmt.Errorf("invalid style property %s: %w", k, err)
		}
	}
	return nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}
