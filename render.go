package specimen

import (
	"fmt"
	"os"

	"github.com/glyphworks/specimen/config"
	"github.com/glyphworks/specimen/svg"
	"github.com/glyphworks/specimen/text"
)

// Canvas padding in pixels on each side.
const (
	padX = 40.0
	padY = 40.0
)

// Renderer renders one configuration to outline SVGs. The font file is read
// once and parsed twice: go-text/typesetting for shaping, sfnt for outline
// extraction.
type Renderer struct {
	cfg      *config.Config
	shaper   *text.Shaper
	outlines *text.OutlineSource

	// scale converts font units to pixels (fontSize / unitsPerEm).
	scale float64
}

// NewRenderer loads the font and prepares both font components.
func NewRenderer(cfg *config.Config, fontPath string) (*Renderer, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("specimen: read font file: %w", err)
	}
	shaper, err := text.NewShaper(data)
	if err != nil {
		return nil, err
	}
	outlines, err := text.NewOutlineSource(data)
	if err != nil {
		return nil, err
	}
	Logger().Info("font loaded",
		"path", fontPath,
		"unitsPerEm", shaper.UnitsPerEm(),
		"glyphNames", outlines.HasGlyphNames())

	return &Renderer{
		cfg:      cfg,
		shaper:   shaper,
		outlines: outlines,
		scale:    cfg.FontSize / shaper.UnitsPerEm(),
	}, nil
}

// Render shapes all configured lines for the given slope and writes the SVG
// to outPath. The theme is chosen from the output filename.
func (r *Renderer) Render(slope, outPath string) error {
	theme := r.cfg.ThemeFor(outPath)
	hot := r.cfg.HotSet(slope)
	policy := r.cfg.FeaturePolicy(slope)
	lines := r.cfg.Lines()
	lineHeight := r.cfg.FontSize * r.cfg.LineHeight

	// First pass: shape every line to find the widest one.
	shaped := make([][]text.ShapedRun, len(lines))
	maxWidth := 0.0
	for i, line := range lines {
		shaped[i] = text.ShapeLine(r.shaper, line, hot, policy)
		if w := text.LineAdvance(shaped[i]) * r.scale; w > maxWidth {
			maxWidth = w
		}
		Logger().Debug("line shaped", "line", i, "runs", len(shaped[i]))
	}

	width := max(maxWidth+2*padX, r.cfg.Width)
	height := max(float64(len(lines))*lineHeight+2*padY, r.cfg.Height)

	doc := svg.NewDocument(width, height)
	doc.SetBackground(theme.Background)

	for lineIdx, runs := range shaped {
		baselineY := padY + (float64(lineIdx)+0.75)*lineHeight
		cursorX := padX
		for _, run := range runs {
			runes := []rune(run.Run.Text)
			for _, g := range run.Glyphs {
				color := theme.Body
				if g.Cluster < len(runes) && hot[runes[g.Cluster]] {
					color = theme.Stress
				}
				r.placeGlyph(doc, g, color, cursorX, baselineY)
				cursorX += g.XAdvance * r.scale
			}
		}
	}

	if err := doc.WriteFile(outPath); err != nil {
		return err
	}
	Logger().Info("svg written", "path", outPath, "paths", len(doc.Paths))
	return nil
}

// placeGlyph appends one glyph path to the document. Glyphs whose outline is
// missing or empty (spaces) produce no path.
func (r *Renderer) placeGlyph(doc *svg.Document, g text.Glyph, color string, cursorX, baselineY float64) {
	outline, err := r.outlines.Outline(g.GID)
	if err != nil {
		Logger().Debug("glyph skipped",
			"gid", g.GID,
			"name", r.outlines.GlyphName(g.GID),
			"err", err)
		return
	}
	pathData := svg.PathData(outline)
	if pathData == "" {
		return
	}
	tx := cursorX + g.XOffset*r.scale
	ty := baselineY - g.YOffset*r.scale
	doc.AddGlyph(pathData, color, tx, ty, r.scale)
}
