package text

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Glyph is one positioned glyph produced by shaping a run.
// Advances and offsets are in font units (the shaper works at a scale of one
// em = unitsPerEm, matching the font's own coordinate system).
type Glyph struct {
	// GID is the glyph index in the font.
	GID uint32

	// Cluster is the rune index of the source character within the run text.
	Cluster int

	XAdvance float64
	YAdvance float64
	XOffset  float64
	YOffset  float64
}

// Shaper shapes runs of text with go-text/typesetting's HarfBuzz
// implementation. The font is parsed once at construction.
//
// Shaper is not safe for concurrent use: font.Face and HarfbuzzShaper carry
// mutable state. The renderers are single-threaded, so one instance per
// process is kept for its lifetime.
type Shaper struct {
	face *font.Face
	hb   shaping.HarfbuzzShaper
	upem float64
}

// NewShaper parses TTF or OTF font data and returns a Shaper.
func NewShaper(data []byte) (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	return &Shaper{
		face: face,
		upem: float64(face.Upem()),
	}, nil
}

// NewShaperFromFile reads a font file and returns a Shaper.
func NewShaperFromFile(path string) (*Shaper, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewShaper(data)
}

// UnitsPerEm returns the font's design grid size. Advances returned by Shape
// are in these units; multiply by fontSize/UnitsPerEm for pixel space.
func (s *Shaper) UnitsPerEm() float64 {
	return s.upem
}

// Shape shapes one run with the given feature set and returns its glyphs in
// visual order. Direction and script are guessed from the run content, the
// analog of HarfBuzz's guess_segment_properties. Empty text yields nil.
func (s *Shaper) Shape(text string, features FeatureSet) []Glyph {
	if text == "" {
		return nil
	}
	runes := []rune(text)

	input := shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    guessDirection(text),
		Face:         s.face,
		Size:         fixed.I(int(s.upem)),
		Script:       detectScript(runes),
		Language:     language.NewLanguage("en"),
		FontFeatures: convertFeatures(features),
	}

	output := s.hb.Shape(input)

	glyphs := make([]Glyph, len(output.Glyphs))
	for i, g := range output.Glyphs {
		glyphs[i] = Glyph{
			GID:      uint32(g.GlyphID),
			Cluster:  g.ClusterIndex,
			XAdvance: fixedToFloat(g.XAdvance),
			YAdvance: fixedToFloat(g.YAdvance),
			XOffset:  fixedToFloat(g.XOffset),
			YOffset:  fixedToFloat(g.YOffset),
		}
	}
	return glyphs
}

// convertFeatures translates a FeatureSet into shaping features. Tags are
// sorted so shaping input is deterministic regardless of map iteration order.
func convertFeatures(fs FeatureSet) []shaping.FontFeature {
	if len(fs) == 0 {
		return nil
	}
	tags := make([]string, 0, len(fs))
	for tag := range fs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	features := make([]shaping.FontFeature, 0, len(tags))
	for _, tag := range tags {
		features = append(features, shaping.FontFeature{
			Tag:   ot.MustNewTag(tag),
			Value: uint32(fs[tag]),
		})
	}
	return features
}

// guessDirection determines the paragraph direction of a run using the
// Unicode bidi algorithm. Runs without strong directional characters
// (whitespace separators) default to left-to-right.
func guessDirection(text string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	// Order must run before the direction is read.
	if _, err := p.Order(); err != nil {
		return di.DirectionLTR
	}
	if p.IsLeftToRight() {
		return di.DirectionLTR
	}
	return di.DirectionRTL
}

// detectScript inspects the runes and returns the script of the first
// non-space rune. Whitespace-only runs fall back to Latin.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
