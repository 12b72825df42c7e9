package colorconv

import (
	"fmt"
	"strconv"
)

// RGBToHex converts an RGB triple to a lower-case "#rrggbb" string.
//
// Each channel must lie in [0, 255]; red, green and blue are checked in that
// order and the first violation is returned as a *RangeError.
func RGBToHex(r, g, b int) (string, error) {
	if err := checkRGB(r, g, b); err != nil {
		return "", err
	}
	return formatHex(uint8(r), uint8(g), uint8(b)), nil
}

// HexToRGB parses a 6-digit hex color with an optional leading '#'.
//
// Digits are case-insensitive. Shorthand ("#fff"), surrounding whitespace or
// any other deviation yields a *SyntaxError.
func HexToRGB(hex string) (RGB, error) {
	h := hex
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}
	if len(h) != 6 {
		return RGB{}, &SyntaxError{Input: hex}
	}
	var ch [3]int
	for i := range ch {
		v, ok := parseHexByte(h[2*i], h[2*i+1])
		if !ok {
			return RGB{}, &SyntaxError{Input: hex}
		}
		ch[i] = v
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func formatHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// parseHexByte only accepts [0-9a-fA-F] so strconv never sees a sign or an
// underscore.
func parseHexByte(hi, lo byte) (int, bool) {
	if !isHexDigit(hi) || !isHexDigit(lo) {
		return 0, false
	}
	v, err := strconv.ParseUint(string([]byte{hi, lo}), 16, 8)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
