package svgpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
)

var (
	errParamMismatch  = errors.New("param mismatch")
	errCommandUnknown = errors.New("unknown command")
	errLeadingData    = errors.New("data before first command")
)

// pathCursor is used while parsing the `d` attribute of SVG paths
type pathCursor struct {
	path           Path
	points         []float64
	placeX, placeY float64 // current point
	startX, startY float64 // start of the current sub-path
}

func isCommand(b byte) bool {
	return strings.IndexByte("MmLlHhVvQqCcZz", b) >= 0
}

// ParsePath parses the `d` attribute of an SVG path element.
// Supported commands are M, L, H, V, Q, C and Z,
// in both their absolute and relative forms.
func ParsePath(d string) (Path, error) {
	var (
		c     pathCursor
		cmd   byte
		start = -1
	)
	for i := 0; i < len(d); i++ {
		if !isCommand(d[i]) {
			continue
		}
		if start < 0 {
			if strings.TrimSpace(d[:i]) != "" {
				return nil, errLeadingData
			}
		} else if err := c.addSeg(cmd, d[start:i]); err != nil {
			return nil, err
		}
		cmd, start = d[i], i+1
	}
	if start < 0 {
		if strings.TrimSpace(d) != "" {
			return nil, errLeadingData
		}
		return nil, nil
	}
	if err := c.addSeg(cmd, d[start:]); err != nil {
		return nil, err
	}
	return c.path, nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
		})
}

// getPoints reads the numbers of a command into c.points
func (c *pathCursor) getPoints(dataPoints string) error {
	c.points = c.points[:0]
	for _, f := range splitOnCommaOrSpace(dataPoints) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return err
		}
		c.points = append(c.points, v)
	}
	return nil
}

func (c *pathCursor) abs(x, y float64, rel bool) fixed.Point26_6 {
	if rel {
		x, y = x+c.placeX, y+c.placeY
	}
	return toFixedP(x, y)
}

func (c *pathCursor) moveTo(p fixed.Point26_6) {
	c.placeX, c.placeY = fixedTof(p)
}

func (c *pathCursor) addSeg(cmd byte, args string) error {
	if err := c.getPoints(args); err != nil {
		return fmt.Errorf("command %c: %w", cmd, err)
	}
	l := len(c.points)
	rel := 'a' <= cmd && cmd <= 'z'
	switch cmd {
	case 'M', 'm':
		if l < 2 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 2 {
			p := c.abs(c.points[i], c.points[i+1], rel)
			if i == 0 {
				c.path.Start(p)
				c.startX, c.startY = fixedTof(p)
			} else {
				c.path.Line(p) // implicit lineto
			}
			c.moveTo(p)
		}
	case 'L', 'l':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 2 {
			p := c.abs(c.points[i], c.points[i+1], rel)
			c.path.Line(p)
			c.moveTo(p)
		}
	case 'H', 'h':
		if l == 0 {
			return errParamMismatch
		}
		for _, x := range c.points {
			if rel {
				x += c.placeX
			}
			p := toFixedP(x, c.placeY)
			c.path.Line(p)
			c.moveTo(p)
		}
	case 'V', 'v':
		if l == 0 {
			return errParamMismatch
		}
		for _, y := range c.points {
			if rel {
				y += c.placeY
			}
			p := toFixedP(c.placeX, y)
			c.path.Line(p)
			c.moveTo(p)
		}
	case 'Q', 'q':
		if l == 0 || l%4 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 4 {
			b := c.abs(c.points[i], c.points[i+1], rel)
			d := c.abs(c.points[i+2], c.points[i+3], rel)
			c.path.QuadBezier(b, d)
			c.moveTo(d)
		}
	case 'C', 'c':
		if l == 0 || l%6 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 6 {
			b := c.abs(c.points[i], c.points[i+1], rel)
			d := c.abs(c.points[i+2], c.points[i+3], rel)
			e := c.abs(c.points[i+4], c.points[i+5], rel)
			c.path.CubeBezier(b, d, e)
			c.moveTo(e)
		}
	case 'Z', 'z':
		if l != 0 {
			return errParamMismatch
		}
		c.path.Stop(true)
		c.placeX, c.placeY = c.startX, c.startY
	default:
		return errCommandUnknown
	}
	return nil
}
