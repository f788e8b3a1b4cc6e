package text

// ShapedRun couples one feature run with the glyphs it shaped into.
type ShapedRun struct {
	Run    Run
	Glyphs []Glyph
}

// Advance returns the total horizontal advance of the run in font units.
func (r ShapedRun) Advance() float64 {
	var total float64
	for _, g := range r.Glyphs {
		total += g.XAdvance
	}
	return total
}

// ShapeLine splits a line into feature runs and shapes each run
// independently, so a feature change never requires per-character shaping
// calls — only run boundaries do. The runs come back in left-to-right order;
// laying them out is a matter of accumulating advances.
func ShapeLine(s *Shaper, line string, hot map[rune]bool, policy FeaturePolicy) []ShapedRun {
	runs := SegmentRuns(line, hot, policy)
	if runs == nil {
		return nil
	}
	shaped := make([]ShapedRun, len(runs))
	for i, run := range runs {
		shaped[i] = ShapedRun{
			Run:    run,
			Glyphs: s.Shape(run.Text, run.Features),
		}
	}
	return shaped
}

// LineAdvance returns the total advance of a shaped line in font units.
func LineAdvance(runs []ShapedRun) float64 {
	var total float64
	for _, r := range runs {
		total += r.Advance()
	}
	return total
}
