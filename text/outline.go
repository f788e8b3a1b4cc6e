package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlinePoint is a point in a glyph outline, in font units with the Y axis
// pointing up (the font's own coordinate system).
type OutlinePoint struct {
	X, Y float32
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point, starting a contour.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// OutlineSegment is one segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment:
	// - MoveTo/LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// PointCount returns how many of Points are meaningful for Op.
func (s OutlineSegment) PointCount() int {
	switch s.Op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 1
	}
}

// GlyphOutline is the vector outline of a glyph in font units.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline.
	// Spaces and other blank glyphs have no segments.
	Segments []OutlineSegment

	// Advance is the horizontal advance width of the glyph.
	Advance float32

	// GID is the glyph ID this outline represents.
	GID uint32
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// OutlineSource extracts glyph outlines from a font file. It parses the font
// independently of the shaping font: shaping needs the layout tables, outline
// extraction only needs the glyph contours.
//
// OutlineSource is not safe for concurrent use (it reuses an sfnt.Buffer).
type OutlineSource struct {
	font *sfnt.Font
	buf  sfnt.Buffer
	ppem fixed.Int26_6
	upem float64

	// named records once, at construction, whether the font can map glyph
	// IDs to post-table names.
	named bool
}

// NewOutlineSource parses TTF or OTF font data for outline extraction.
func NewOutlineSource(data []byte) (*OutlineSource, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font for outlines: %w", err)
	}
	upem := int(f.UnitsPerEm())

	s := &OutlineSource{
		font: f,
		// Loading at ppem = unitsPerEm keeps coordinates on the font's
		// own design grid.
		ppem: fixed.I(upem),
		upem: float64(upem),
	}
	_, err = f.GlyphName(&s.buf, 0)
	s.named = err == nil
	return s, nil
}

// NewOutlineSourceFromFile reads a font file and returns an OutlineSource.
func NewOutlineSourceFromFile(path string) (*OutlineSource, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewOutlineSource(data)
}

// UnitsPerEm returns the font's design grid size.
func (s *OutlineSource) UnitsPerEm() float64 {
	return s.upem
}

// HasGlyphNames reports whether GlyphName can resolve post-table names.
func (s *OutlineSource) HasGlyphNames() bool {
	return s.named
}

// GlyphName returns the post-table name of a glyph, or "" when the font
// carries no names.
func (s *OutlineSource) GlyphName(gid uint32) string {
	if !s.named {
		return ""
	}
	name, err := s.font.GlyphName(&s.buf, sfnt.GlyphIndex(gid))
	if err != nil {
		return ""
	}
	return name
}

// Outline returns the outline of a glyph in font units, Y axis up. Glyphs
// without contours (spaces) yield an outline with no segments and no error.
func (s *OutlineSource) Outline(gid uint32) (*GlyphOutline, error) {
	segments, err := s.font.LoadGlyph(&s.buf, sfnt.GlyphIndex(gid), s.ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("text: load glyph %d: %w", gid, err)
	}

	outline := &GlyphOutline{
		GID:     gid,
		Advance: s.glyphAdvance(gid),
	}
	if len(segments) == 0 {
		return outline, nil
	}

	outline.Segments = make([]OutlineSegment, 0, len(segments))
	for _, seg := range segments {
		outSeg := OutlineSegment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			outSeg.Op = OutlineOpMoveTo
			outSeg.Points[0] = fontPoint(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			outSeg.Op = OutlineOpLineTo
			outSeg.Points[0] = fontPoint(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			outSeg.Op = OutlineOpQuadTo
			outSeg.Points[0] = fontPoint(seg.Args[0])
			outSeg.Points[1] = fontPoint(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			outSeg.Op = OutlineOpCubicTo
			outSeg.Points[0] = fontPoint(seg.Args[0])
			outSeg.Points[1] = fontPoint(seg.Args[1])
			outSeg.Points[2] = fontPoint(seg.Args[2])
		}
		outline.Segments = append(outline.Segments, outSeg)
	}
	return outline, nil
}

// glyphAdvance returns the advance width in font units, 0 when unavailable.
func (s *OutlineSource) glyphAdvance(gid uint32) float32 {
	advance, err := s.font.GlyphAdvance(&s.buf, sfnt.GlyphIndex(gid), s.ppem, 0)
	if err != nil {
		return 0
	}
	return float32(advance) / 64.0
}

// fontPoint converts an sfnt point to font-unit Y-up coordinates.
// sfnt loads glyphs with the Y axis pointing down; the sign flip restores the
// font's native orientation.
func fontPoint(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float32(p.X) / 64.0,
		Y: -float32(p.Y) / 64.0,
	}
}
