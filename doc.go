// Package specimen renders sample text images for documentation builds.
//
// # Overview
//
// Given a JSON configuration (text lines, colors, feature flags) and a font
// file, the renderer shapes text with go-text/typesetting's HarfBuzz
// implementation and writes an SVG of glyph outlines. Selected "hot"
// characters are emphasized with alternate OpenType features and the theme's
// stress color.
//
// Each line is first split into feature runs — maximal contiguous spans whose
// characters resolve to the same OpenType feature set — so that only run
// boundaries require separate shaping calls (see the text package). Runs are
// laid out left to right by accumulating advance widths.
//
// # Command-line tools
//
//	render-outline-svg <config.json> <font.ttf> <slope> <out.svg>
//	validate-svg <file.svg>
//
// Theme selection is by output filename: a ".dark." substring selects the
// dark theme, anything else the light theme.
//
// The tools are auxiliary image generators for a documentation build: single
// threaded, one configuration and one output file per invocation, every
// failure fatal.
package specimen
