// Package svg builds the small SVG documents emitted by the sample-image
// renderers: a namespaced root, one background rectangle, and one path per
// shaped glyph.
package svg

import (
	"encoding/xml"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/glyphworks/specimen/text"
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Rect is a rectangle element. The background rect uses percentage sizes so
// it always covers the canvas.
type Rect struct {
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Fill   string `xml:"fill,attr"`
}

// Path is a glyph outline element. D holds font-unit path data; Transform
// places and scales it into pixel space.
type Path struct {
	D         string `xml:"d,attr"`
	Fill      string `xml:"fill,attr"`
	Transform string `xml:"transform,attr"`
}

// Document is a complete SVG document. Marshalling emits the background rect
// before the glyph paths, and paths in insertion order.
type Document struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Rects   []Rect   `xml:"rect"`
	Paths   []Path   `xml:"path"`
}

// NewDocument creates a document with the given canvas size in pixels.
// Dimensions are rounded to whole pixels, as the viewBox repeats them.
func NewDocument(width, height float64) *Document {
	w := strconv.Itoa(int(math.Round(width)))
	h := strconv.Itoa(int(math.Round(height)))
	return &Document{
		Xmlns:   Namespace,
		Width:   w,
		Height:  h,
		ViewBox: fmt.Sprintf("0 0 %s %s", w, h),
	}
}

// SetBackground adds a full-canvas background rectangle.
func (d *Document) SetBackground(fill string) {
	d.Rects = append(d.Rects, Rect{Width: "100%", Height: "100%", Fill: fill})
}

// AddGlyph adds one glyph path. tx, ty position the glyph origin on the
// baseline in pixel space; scale converts font units to pixels. The negative
// Y scale flips the font's Y-up coordinates into SVG's Y-down space.
func (d *Document) AddGlyph(pathData, fill string, tx, ty, scale float64) {
	d.Paths = append(d.Paths, Path{
		D:         pathData,
		Fill:      fill,
		Transform: GlyphTransform(tx, ty, scale),
	})
}

// GlyphTransform formats the placement transform for one glyph.
func GlyphTransform(tx, ty, scale float64) string {
	return fmt.Sprintf("translate(%.1f,%.1f) scale(%.6f,%.6f)", tx, ty, scale, -scale)
}

// WriteFile serializes the document to path with an XML declaration and
// two-space indentation.
func (d *Document) WriteFile(path string) error {
	out, err := xml.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("svg: marshal document: %w", err)
	}
	data := append([]byte(xml.Header), out...)
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("svg: write %s: %w", path, err)
	}
	return nil
}

// PathData converts a glyph outline into an SVG path string. Contours are
// closed with Z: one before every MoveTo after the first, and one at the end.
// An empty outline yields "".
func PathData(o *text.GlyphOutline) string {
	if o == nil || o.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for i, seg := range o.Segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if i > 0 {
				b.WriteString("Z ")
			}
			b.WriteByte('M')
		case text.OutlineOpLineTo:
			b.WriteByte('L')
		case text.OutlineOpQuadTo:
			b.WriteByte('Q')
		case text.OutlineOpCubicTo:
			b.WriteByte('C')
		}
		for j := 0; j < seg.PointCount(); j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			writeCoord(&b, seg.Points[j].X)
			b.WriteByte(',')
			writeCoord(&b, seg.Points[j].Y)
		}
	}
	b.WriteString(" Z")
	return b.String()
}

// writeCoord formats a font-unit coordinate with the fewest digits that
// round-trip a float32.
func writeCoord(b *strings.Builder, v float32) {
	b.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
}
