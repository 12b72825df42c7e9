package colorconv

import "math"

// RGBToHSL converts an RGB triple to HSL with every field rounded to the
// nearest integer.
//
// Channels are range checked like RGBToHex. When two channels tie for the
// maximum, the hue sector is chosen in red, green, blue priority order.
func RGBToHSL(r, g, b int) (HSL, error) {
	if err := checkRGB(r, g, b); err != nil {
		return HSL{}, err
	}
	return rgbToHSL(uint8(r), uint8(g), uint8(b)), nil
}

func rgbToHSL(r, g, b uint8) HSL {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	l := (max + min) / 2

	if max == min {
		// Achromatic.
		return HSL{H: 0, S: 0, L: round(l * 100)}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	case bf:
		h = (rf-gf)/d + 4
	}
	h /= 6

	return HSL{
		H: round(h * 360),
		S: round(s * 100),
		L: round(l * 100),
	}
}

// HSLToRGB converts hue in degrees [0, 360] and saturation and lightness in
// percent [0, 100] to an RGB triple.
//
// Hue, saturation and lightness are checked in that order and the first
// violation is returned as a *RangeError.
func HSLToRGB(h, s, l float64) (RGB, error) {
	if err := checkRange(Hue, h, 0, 360); err != nil {
		return RGB{}, err
	}
	if err := checkRange(Saturation, s, 0, 100); err != nil {
		return RGB{}, err
	}
	if err := checkRange(Lightness, l, 0, 100); err != nil {
		return RGB{}, err
	}

	h /= 360
	s /= 100
	l /= 100

	var t2 float64
	if l < 0.5 {
		t2 = l * (1 + s)
	} else {
		t2 = l + s - l*s
	}
	t1 := 2*l - t2

	return RGB{
		R: round(hueToChannel(t1, t2, h+1.0/3) * 255),
		G: round(hueToChannel(t1, t2, h) * 255),
		B: round(hueToChannel(t1, t2, h-1.0/3) * 255),
	}, nil
}

func hueToChannel(t1, t2, h float64) float64 {
	if h < 0 {
		h += 1
	}
	if h > 1 {
		h -= 1
	}
	switch {
	case 6*h < 1:
		return t1 + (t2-t1)*6*h
	case 2*h < 1:
		return t2
	case 3*h < 2:
		return t1 + (t2-t1)*(2.0/3-h)*6
	}
	return t1
}

// round rounds half up, matching the usual display rounding of color tools.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
