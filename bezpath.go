package absorb

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// MoveToKind starts a new subpath at P0 without drawing.
	MoveToKind PathElementKind = iota + 1
	// LineToKind draws a straight line to P0.
	LineToKind
	// CubicToKind draws a cubic Bézier with control points P0 and P1, ending
	// at P2.
	CubicToKind
	// ClosePathKind draws a line back to the start of the subpath.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return fmt.Sprintf("PathElementKind(%d)", int(k))
	}
}

// PathElement is one drawing command of a Bézier path. Unused points are
// zero.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func MoveTo(pt Point) PathElement { return PathElement{Kind: MoveToKind, P0: pt} }
func LineTo(pt Point) PathElement { return PathElement{Kind: LineToKind, P0: pt} }
func CubicTo(p0, p1, p2 Point) PathElement { return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2} }
func ClosePath() PathElement { return PathElement{Kind: ClosePathKind} }

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return fmt.Sprintf("%s(%s)", el.Kind, el.P0)
	case CubicToKind:
		return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
	default:
		return el.Kind.String()
	}
}

// points returns the points el uses.
func (el PathElement) points() []Point {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return []Point{el.P0}
	case CubicToKind:
		return []Point{el.P0, el.P1, el.P2}
	default:
		return nil
	}
}

// Transform maps the element's points through aff.
func (el PathElement) Transform(aff Affine) PathElement {
	out := PathElement{Kind: el.Kind}
	dst := []*Point{&out.P0, &out.P1, &out.P2}
	for i, pt := range el.points() {
		*dst[i] = pt.Transform(aff)
	}
	return out
}

// IsFinite reports whether all of the element's points are finite.
func (el PathElement) IsFinite() bool {
	for _, pt := range el.points() {
		if !pt.IsFinite() {
			return false
		}
	}
	return true
}

// EndPoint returns the point the pen is at after drawing el. ClosePath has
// no end point of its own.
func (el PathElement) EndPoint() (Point, bool) {
	pts := el.points()
	if len(pts) == 0 {
		return Point{}, false
	}
	return pts[len(pts)-1], true
}

// BezPath is a sequence of path elements, each subpath starting with a
// MoveTo.
type BezPath []PathElement

// Transform returns a copy of the path mapped through aff.
func (p BezPath) Transform(aff Affine) BezPath {
	out := make(BezPath, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

func (p *BezPath) MoveTo(pt Point) { *p = append(*p, MoveTo(pt)) }
func (p *BezPath) LineTo(pt Point) { *p = append(*p, LineTo(pt)) }
func (p *BezPath) CubicTo(p1, p2, p3 Point) { *p = append(*p, CubicTo(p1, p2, p3)) }
func (p *BezPath) ClosePath() { *p = append(*p, ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// HasSegments reports whether drawing the path would put any ink on the
// page. A path of only MoveTo and ClosePath elements has no segments.
func (p BezPath) HasSegments() bool {
	return slices.ContainsFunc(p, func(el PathElement) bool {
		return el.Kind == LineToKind || el.Kind == CubicToKind
	})
}

// Subpaths returns the number of MoveTo elements.
func (p BezPath) Subpaths() int {
	n := 0
	for _, el := range p {
		if el.Kind == MoveToKind {
			n++
		}
	}
	return n
}

// IsFinite reports whether all points of the path are finite.
func (p BezPath) IsFinite() bool {
	return !slices.ContainsFunc(p, func(el PathElement) bool { return !el.IsFinite() })
}

// SVG returns the path as SVG path data.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// MaxPrecision is the maximum number of decimals written per coordinate.
	// Trailing zeros are dropped. Zero means as many as are needed to
	// represent each coordinate exactly.
	MaxPrecision int
}

func (opts SVGOptions) appendCoord(b []byte, pt Point) []byte {
	b = opts.appendFloat(b, pt.X)
	b = append(b, ',')
	return opts.appendFloat(b, pt.Y)
}

func (opts SVGOptions) appendFloat(b []byte, f float64) []byte {
	if opts.MaxPrecision <= 0 {
		return strconv.AppendFloat(b, f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', opts.MaxPrecision, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		s = "0"
	}
	return append(b, s...)
}

// SVG returns a sequence of path elements as SVG path data, with elements
// separated by spaces and absolute coordinates throughout.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	var sb strings.Builder
	_ = WriteSVG(&sb, seq, opts)
	return sb.String()
}

// WriteSVG writes a sequence of path elements to w as SVG path data. It stops
// at the first write error.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var buf []byte
	first := true
	for el := range seq {
		buf = buf[:0]
		if !first {
			buf = append(buf, ' ')
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			buf = opts.appendCoord(append(buf, 'M'), el.P0)
		case LineToKind:
			buf = opts.appendCoord(append(buf, 'L'), el.P0)
		case CubicToKind:
			buf = opts.appendCoord(append(buf, 'C'), el.P0)
			buf = opts.appendCoord(append(buf, ' '), el.P1)
			buf = opts.appendCoord(append(buf, ' '), el.P2)
		case ClosePathKind:
			buf = append(buf, 'Z')
		default:
			panic(fmt.Sprintf("invalid path element kind %d", el.Kind))
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
