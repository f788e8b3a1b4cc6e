// Package text shapes configuration lines into positioned glyph outlines.
//
// The package splits each line into feature runs (maximal spans whose
// characters resolve to the same OpenType feature set), shapes each run with
// go-text/typesetting's HarfBuzz implementation, and extracts glyph outlines
// from an independent sfnt parse of the same font file.
package text

import (
	"sort"
	"strconv"
	"strings"
)

// FeatureSet maps an OpenType feature tag to its value (0 or 1 in practice).
// The zero value (nil) is a valid, empty set.
type FeatureSet map[string]int

// Clone returns a copy of the set. Cloning a nil set yields an empty set.
func (fs FeatureSet) Clone() FeatureSet {
	out := make(FeatureSet, len(fs)+1)
	for tag, v := range fs {
		out[tag] = v
	}
	return out
}

// Key returns a canonical representation of the set, used only for equality
// comparison between adjacent characters. Tag order in the map is irrelevant:
// two sets with the same tag/value pairs always produce the same key.
func (fs FeatureSet) Key() string {
	if len(fs) == 0 {
		return ""
	}
	tags := make([]string, 0, len(fs))
	for tag := range fs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	var b strings.Builder
	for _, tag := range tags {
		b.WriteString(tag)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(fs[tag]))
		b.WriteByte(';')
	}
	return b.String()
}

// Run is a maximal contiguous span of a line whose every character resolves
// to the same feature set. Hot is true if any character in the span is hot.
type Run struct {
	Text     string
	Hot      bool
	Features FeatureSet
}

// FeaturePolicy resolves the feature set for a single character. The resolved
// set is a pure function of the character and its hot-set membership; it never
// depends on position or neighboring characters.
//
// Two modes exist, selected by Overrides:
//   - Overrides == nil (legacy): hot characters get Legacy plus calt=1,
//     non-hot characters get calt=1 only.
//   - Overrides != nil: hot characters get Base merged with the character's
//     overrides (overrides win on conflict) plus calt=1, non-hot characters
//     get calt=1 only.
//
// calt stays on for every character so contextual alternates survive run
// splitting.
type FeaturePolicy struct {
	Base      FeatureSet
	Legacy    FeatureSet
	Overrides map[rune]FeatureSet
}

// Resolve returns the feature set for one character.
func (p FeaturePolicy) Resolve(r rune, hot bool) FeatureSet {
	if !hot {
		return FeatureSet{"calt": 1}
	}
	if p.Overrides == nil {
		fs := p.Legacy.Clone()
		fs["calt"] = 1
		return fs
	}
	fs := p.Base.Clone()
	for tag, v := range p.Overrides[r] {
		fs[tag] = v
	}
	fs["calt"] = 1
	return fs
}

// SegmentRuns splits line into the minimal number of maximal same-feature-set
// runs, in left-to-right order. The concatenation of the run texts equals the
// input line exactly. An empty line yields nil.
//
// Consecutive characters merge into one run exactly when their resolved
// feature sets compare equal; hot and non-hot characters merge whenever their
// resolved sets happen to coincide.
func SegmentRuns(line string, hot map[rune]bool, policy FeaturePolicy) []Run {
	if line == "" {
		return nil
	}
	runes := []rune(line)

	feats := make([]FeatureSet, len(runes))
	keys := make([]string, len(runes))
	hots := make([]bool, len(runes))
	for i, r := range runes {
		hots[i] = hot[r]
		feats[i] = policy.Resolve(r, hots[i])
		keys[i] = feats[i].Key()
	}

	runs := make([]Run, 0, 4)
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && keys[i] == keys[start] {
			continue
		}
		run := Run{
			Text:     string(runes[start:i]),
			Features: feats[start],
		}
		for j := start; j < i; j++ {
			if hots[j] {
				run.Hot = true
				break
			}
		}
		runs = append(runs, run)
		start = i
	}
	return runs
}
