package colorconv

import (
	"errors"
	"fmt"
)

var (
	// ErrRange matches every *RangeError via errors.Is.
	ErrRange = errors.New("value out of range")
	// ErrSyntax matches every *SyntaxError via errors.Is.
	ErrSyntax = errors.New("invalid hex color")
)

// Component names an input validated by the converters.
type Component int

const (
	Red Component = iota
	Green
	Blue
	Hue
	Saturation
	Lightness
)

var componentNames = [...]string{
	Red:        "red",
	Green:      "green",
	Blue:       "blue",
	Hue:        "hue",
	Saturation: "saturation",
	Lightness:  "lightness",
}

func (c Component) String() string {
	if c < 0 || int(c) >= len(componentNames) {
		return fmt.Sprintf("component(%d)", int(c))
	}
	return componentNames[c]
}

// RangeError reports a numeric input outside its inclusive bounds.
type RangeError struct {
	Component Component
	Value     float64
	Min       float64
	Max       float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("colorconv: the %s component must be between %g and %g, got %g",
		e.Component, e.Min, e.Max, e.Value)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// SyntaxError reports a string that is not a 6-digit hex color.
type SyntaxError struct {
	Input string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("colorconv: %q is not a valid hex color", e.Input)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// checkRange also rejects NaN, which fails every comparison.
func checkRange(c Component, v, min, max float64) error {
	if !(v >= min && v <= max) {
		return &RangeError{Component: c, Value: v, Min: min, Max: max}
	}
	return nil
}

func checkRGB(r, g, b int) error {
	if err := checkRange(Red, float64(r), 0, 255); err != nil {
		return err
	}
	if err := checkRange(Green, float64(g), 0, 255); err != nil {
		return err
	}
	return checkRange(Blue, float64(b), 0, 255)
}
