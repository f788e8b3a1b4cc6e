// Command validate-svg checks that an SVG file exists and has a reasonable
// size. It performs no content validation.
//
// Usage: validate-svg <file.svg>
package main

import (
	"fmt"
	"os"

	"github.com/glyphworks/specimen"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: validate-svg <file.svg>")
		os.Exit(1)
	}
	path := os.Args[1]

	size, err := specimen.ValidateSVG(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("SVG valid: %s (%d bytes)\n", path, size)
}
