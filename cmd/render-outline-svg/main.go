// Command render-outline-svg renders glyph-outline SVG sample images from a
// config JSON and a TTF/OTF font.
//
// Usage: render-outline-svg <config.json> <font.ttf> <slope> <out.svg>
//
// Theme is selected by output filename: '.light.svg' or '.dark.svg'.
// Set SPECIMEN_DEBUG to any value for diagnostic logging on stderr.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/glyphworks/specimen"
	"github.com/glyphworks/specimen/config"
)

func main() {
	if len(os.Args) != 5 {
		fmt.Fprintln(os.Stderr, "Usage: render-outline-svg <config.json> <font.ttf> <slope> <out.svg>")
		os.Exit(1)
	}
	configPath, fontPath, slope, outPath := os.Args[1], os.Args[2], os.Args[3], os.Args[4]

	if os.Getenv("SPECIMEN_DEBUG") != "" {
		specimen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("render-outline-svg: %v", err)
	}

	r, err := specimen.NewRenderer(cfg, fontPath)
	if err != nil {
		log.Fatalf("render-outline-svg: %v", err)
	}
	if err := r.Render(slope, outPath); err != nil {
		log.Fatalf("render-outline-svg: %v", err)
	}

	fmt.Printf("Wrote %s\n", outPath)
}
