package screen

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// CaptureFunc grabs one frame of a display.
type CaptureFunc func(displayIndex int) (image.Image, error)

// CaptureDisplay captures the whole of the given display. 0 is the primary
// display.
func CaptureDisplay(displayIndex int) (image.Image, error) {
	n := screenshot.NumActiveDisplays()
	if displayIndex < 0 || displayIndex >= n {
		return nil, fmt.Errorf("display %d not found, %d active displays", displayIndex, n)
	}
	img, err := screenshot.CaptureDisplay(displayIndex)
	if err != nil {
		return nil, fmt.Errorf("capture display %d: %w", displayIndex, err)
	}
	return img, nil
}
