package specimen

import (
	"fmt"
	"os"
)

// MinSVGSize is the smallest byte size a rendered SVG can plausibly have.
// Anything below it means the renderer produced a truncated or empty file.
const MinSVGSize = 200

// ValidateSVG checks that an output SVG exists and is non-trivially sized,
// and returns its size in bytes. No content validation is performed.
func ValidateSVG(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return 0, fmt.Errorf("specimen: file not found: %s", path)
	}
	if fi.Size() < MinSVGSize {
		return 0, fmt.Errorf("specimen: svg too small (%d bytes): %s", fi.Size(), path)
	}
	return fi.Size(), nil
}
