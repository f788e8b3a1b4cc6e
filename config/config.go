// Package config loads the sample-image configuration consumed by the
// documentation renderers.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glyphworks/specimen/text"
)

// fieldSeparator joins the two logical fields of a textGrid row into one
// display line. Four spaces is a formatting convention carried over from the
// documentation build; change only with product sign-off.
const fieldSeparator = "    "

// Theme holds the colors of one rendering theme.
type Theme struct {
	Background string `json:"background"`
	Body       string `json:"body"`
	Stress     string `json:"stress"`
}

// Themes holds the light and dark variants.
type Themes struct {
	Light Theme `json:"light"`
	Dark  Theme `json:"dark"`
}

// Config is the sample-image configuration.
//
// BaseFeatures, HotCharFeatures and Features are optional; which of them are
// present selects the feature-resolution policy (see FeaturePolicy).
type Config struct {
	Themes     Themes              `json:"themes"`
	HotChars   map[string][]string `json:"hotChars"`
	TextGrid   [][]string          `json:"textGrid"`
	FontSize   float64             `json:"fontSize"`
	LineHeight float64             `json:"lineHeight"`
	Width      float64             `json:"width"`
	Height     float64             `json:"height"`

	BaseFeatures map[string]int `json:"baseFeatures,omitempty"`

	// HotCharFeatures maps slope -> character -> feature overrides.
	HotCharFeatures map[string]map[string]map[string]int `json:"hotCharFeatures,omitempty"`

	// Features is the legacy hot-character feature object.
	Features map[string]int `json:"features,omitempty"`
}

// Load reads and validates a configuration file. Any missing required key is
// an error; the callers treat every error as fatal.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// validate checks the required keys of the configuration contract.
func (c *Config) validate() error {
	for name, theme := range map[string]Theme{"themes.light": c.Themes.Light, "themes.dark": c.Themes.Dark} {
		if theme.Background == "" || theme.Body == "" || theme.Stress == "" {
			return fmt.Errorf("missing or incomplete required key %q", name)
		}
	}
	if c.HotChars == nil {
		return fmt.Errorf("missing required key %q", "hotChars")
	}
	if len(c.TextGrid) == 0 {
		return fmt.Errorf("missing required key %q", "textGrid")
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("missing required key %q", "fontSize")
	}
	if c.LineHeight <= 0 {
		return fmt.Errorf("missing required key %q", "lineHeight")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("missing required keys %q", "width/height")
	}
	return nil
}

// ThemeFor selects the theme by output filename: a ".dark." substring in the
// basename selects the dark theme, anything else the light theme.
func (c *Config) ThemeFor(outPath string) Theme {
	if strings.Contains(filepath.Base(outPath), ".dark.") {
		return c.Themes.Dark
	}
	return c.Themes.Light
}

// HotSet returns the hot characters configured for a slope. An unknown slope
// yields an empty set.
func (c *Config) HotSet(slope string) map[rune]bool {
	hot := make(map[rune]bool)
	for _, s := range c.HotChars[slope] {
		for _, r := range s {
			hot[r] = true
		}
	}
	return hot
}

// Lines returns the display lines: each textGrid row's fields joined with the
// four-space separator.
func (c *Config) Lines() []string {
	lines := make([]string, len(c.TextGrid))
	for i, row := range c.TextGrid {
		lines[i] = strings.Join(row, fieldSeparator)
	}
	return lines
}

// FeaturePolicy builds the feature-resolution policy for a slope. Presence of
// hotCharFeatures selects the per-character override mode; otherwise the
// legacy features object applies to all hot characters.
func (c *Config) FeaturePolicy(slope string) text.FeaturePolicy {
	policy := text.FeaturePolicy{
		Base:   featureSet(c.BaseFeatures),
		Legacy: featureSet(c.Features),
	}
	if c.HotCharFeatures == nil {
		return policy
	}
	policy.Overrides = make(map[rune]text.FeatureSet)
	for s, feats := range c.HotCharFeatures[slope] {
		for _, r := range s {
			policy.Overrides[r] = featureSet(feats)
		}
	}
	return policy
}

func featureSet(m map[string]int) text.FeatureSet {
	if m == nil {
		return nil
	}
	fs := make(text.FeatureSet, len(m))
	for tag, v := range m {
		fs[tag] = v
	}
	return fs
}
