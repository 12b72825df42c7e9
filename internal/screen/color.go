package screen

import (
	"fmt"
	"image"
	"math"
	"sort"
	"strings"

	"github.com/scheerer/screen-colorconv/colorconv"
)

// ColorFunc reduces a frame to a single color, looking at every
// pixelGridSize-th pixel along each axis.
type ColorFunc func(img image.Image, pixelGridSize int) colorconv.RGB

var algorithms = map[string]ColorFunc{
	"AVERAGE":         AverageColor,
	"SQUARED_AVERAGE": SquaredAverageColor,
	"MEDIAN":          MedianColor,
	"MODE":            ModeColor,
}

// AlgorithmNames lists the names Algorithm accepts, sorted.
func AlgorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Algorithm resolves a color algorithm by name, ignoring case.
func Algorithm(name string) (ColorFunc, error) {
	f, ok := algorithms[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("unknown color algorithm %q, valid values are %v", name, AlgorithmNames())
	}
	return f, nil
}

func forEachSample(img image.Image, pixelGridSize int, fn func(c colorconv.RGB)) {
	if pixelGridSize < 1 {
		pixelGridSize = 1
	}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += pixelGridSize {
		for x := bounds.Min.X; x < bounds.Max.X; x += pixelGridSize {
			fn(colorconv.FromColor(img.At(x, y)))
		}
	}
}

func AverageColor(img image.Image, pixelGridSize int) colorconv.RGB {
	var sumR, sumG, sumB, samples uint64
	forEachSample(img, pixelGridSize, func(c colorconv.RGB) {
		sumR += uint64(c.R)
		sumG += uint64(c.G)
		sumB += uint64(c.B)
		samples++
	})
	if samples == 0 {
		return colorconv.RGB{}
	}

	return colorconv.RGB{
		R: int(sumR / samples),
		G: int(sumG / samples),
		B: int(sumB / samples),
	}
}

// SquaredAverageColor calculates the root mean square of each channel, which
// weights bright pixels more than AverageColor does.
func SquaredAverageColor(img image.Image, pixelGridSize int) colorconv.RGB {
	var sumR, sumG, sumB, samples uint64
	forEachSample(img, pixelGridSize, func(c colorconv.RGB) {
		sumR += uint64(c.R * c.R)
		sumG += uint64(c.G * c.G)
		sumB += uint64(c.B * c.B)
		samples++
	})
	if samples == 0 {
		return colorconv.RGB{}
	}

	return colorconv.RGB{
		R: int(math.Sqrt(float64(sumR) / float64(samples))),
		G: int(math.Sqrt(float64(sumG) / float64(samples))),
		B: int(math.Sqrt(float64(sumB) / float64(samples))),
	}
}

// MedianColor calculates the per channel median of the image
func MedianColor(img image.Image, pixelGridSize int) colorconv.RGB {
	var reds, greens, blues []int
	forEachSample(img, pixelGridSize, func(c colorconv.RGB) {
		reds = append(reds, c.R)
		greens = append(greens, c.G)
		blues = append(blues, c.B)
	})
	if len(reds) == 0 {
		return colorconv.RGB{}
	}

	sort.Ints(reds)
	sort.Ints(greens)
	sort.Ints(blues)

	median := func(values []int) int {
		n := len(values)
		if n%2 == 0 {
			return (values[n/2-1] + values[n/2]) / 2
		}
		return values[n/2]
	}

	return colorconv.RGB{
		R: median(reds),
		G: median(greens),
		B: median(blues),
	}
}

// ModeColor returns the most frequent color of the image. Ties go to the
// color seen first.
func ModeColor(img image.Image, pixelGridSize int) colorconv.RGB {
	colorCount := make(map[colorconv.RGB]int)
	var modeColor colorconv.RGB
	maxCount := 0
	forEachSample(img, pixelGridSize, func(c colorconv.RGB) {
		colorCount[c]++
		if colorCount[c] > maxCount {
			maxCount = colorCount[c]
			modeColor = c
		}
	})

	return modeColor
}
