package svg

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glyphworks/specimen/text"
)

func TestGlyphTransform(t *testing.T) {
	got := GlyphTransform(40, 115.5, 0.048828125)
	want := "translate(40.0,115.5) scale(0.048828,-0.048828)"
	if got != want {
		t.Errorf("GlyphTransform = %q, want %q", got, want)
	}
}

func TestPathData(t *testing.T) {
	tests := []struct {
		name    string
		outline *text.GlyphOutline
		want    string
	}{
		{"nil outline", nil, ""},
		{"empty outline", &text.GlyphOutline{}, ""},
		{
			"triangle",
			&text.GlyphOutline{Segments: []text.OutlineSegment{
				{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: 0, Y: 0}}},
				{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 100, Y: 0}}},
				{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 50, Y: 700}}},
			}},
			"M0,0 L100,0 L50,700 Z",
		},
		{
			"quadratic",
			&text.GlyphOutline{Segments: []text.OutlineSegment{
				{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: 10, Y: 20}}},
				{Op: text.OutlineOpQuadTo, Points: [3]text.OutlinePoint{{X: 30, Y: 40}, {X: 50, Y: 60}}},
			}},
			"M10,20 Q30,40 50,60 Z",
		},
		{
			"cubic",
			&text.GlyphOutline{Segments: []text.OutlineSegment{
				{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: 0, Y: 0}}},
				{Op: text.OutlineOpCubicTo, Points: [3]text.OutlinePoint{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}},
			}},
			"M0,0 C1,2 3,4 5,6 Z",
		},
		{
			"two contours",
			&text.GlyphOutline{Segments: []text.OutlineSegment{
				{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: 0, Y: 0}}},
				{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 10, Y: 0}}},
				{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: 20, Y: 20}}},
				{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 30, Y: 20}}},
			}},
			"M0,0 L10,0 Z M20,20 L30,20 Z",
		},
		{
			"negative coordinates",
			&text.GlyphOutline{Segments: []text.OutlineSegment{
				{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: -15, Y: -405}}},
				{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 0.5, Y: 1463}}},
			}},
			"M-15,-405 L0.5,1463 Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PathData(tt.outline); got != tt.want {
				t.Errorf("PathData() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewDocument_RoundsDimensions(t *testing.T) {
	doc := NewDocument(523.7, 199.2)
	if doc.Width != "524" || doc.Height != "199" {
		t.Errorf("dimensions = %s x %s, want 524 x 199", doc.Width, doc.Height)
	}
	if doc.ViewBox != "0 0 524 199" {
		t.Errorf("viewBox = %q, want %q", doc.ViewBox, "0 0 524 199")
	}
	if doc.Xmlns != Namespace {
		t.Errorf("xmlns = %q, want %q", doc.Xmlns, Namespace)
	}
}

func TestDocumentWriteFile(t *testing.T) {
	doc := NewDocument(500, 200)
	doc.SetBackground("#ffffff")
	doc.AddGlyph("M0,0 L10,0 Z", "#111111", 40, 115, 0.05)
	doc.AddGlyph("M0,0 L10,10 Z", "#ff0000", 80, 115, 0.05)

	path := filepath.Join(t.TempDir(), "out.light.svg")
	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Error("output missing XML declaration")
	}

	var parsed Document
	if err := xml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("output is not well-formed XML: %v", err)
	}
	if len(parsed.Rects) != 1 || parsed.Rects[0].Fill != "#ffffff" {
		t.Errorf("background rect = %+v", parsed.Rects)
	}
	if len(parsed.Paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(parsed.Paths))
	}
	if parsed.Paths[1].Fill != "#ff0000" {
		t.Errorf("path order not preserved: %+v", parsed.Paths)
	}
	if !strings.Contains(parsed.Paths[0].Transform, "translate(40.0,115.0)") {
		t.Errorf("transform = %q", parsed.Paths[0].Transform)
	}
}

func TestDocumentWriteFile_BadPath(t *testing.T) {
	doc := NewDocument(10, 10)
	if err := doc.WriteFile("/nonexistent/dir/out.svg"); err == nil {
		t.Error("expected error writing to missing directory")
	}
}
