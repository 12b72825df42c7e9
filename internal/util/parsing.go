package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type NumberParsable interface {
	int | float64
}

// ArgSplitter splits a single argument such as "255,128,0" or "255 128 0"
// into its trimmed, non-empty parts.
func ArgSplitter(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	v := make([]string, 0, len(fields))
	for _, f := range fields {
		v = append(v, strings.TrimSpace(f))
	}
	return v
}

func sliceTypeParser[T NumberParsable](parts []string, f func(string) (T, error)) ([]T, error) {
	v := make([]T, 0, len(parts))
	for _, p := range parts {
		v2, err := f(p)
		if err != nil {
			return v, err
		}
		v = append(v, v2)
	}
	return v, nil
}

// ParseNumbers parses command line arguments into exactly want numbers of
// type T. Arguments may be given separately or as one comma separated list,
// and a trailing "%" or "°" is ignored so "hsl 210° 50% 40%" works.
func ParseNumbers[T NumberParsable](args []string, want int) ([]T, error) {
	var parts []string
	for _, a := range args {
		parts = append(parts, ArgSplitter(a)...)
	}
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d numbers, got %d", want, len(parts))
	}

	var zero T
	var parser func(string) (T, error)
	switch any(zero).(type) {
	case int:
		parser = func(s string) (T, error) {
			n, err := strconv.Atoi(trimUnit(s))
			if err != nil {
				return zero, fmt.Errorf("%q is not an integer", s)
			}
			return T(n), nil
		}
	case float64:
		parser = func(s string) (T, error) {
			n, err := strconv.ParseFloat(trimUnit(s), 64)
			if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
				return zero, fmt.Errorf("%q is not a number", s)
			}
			return T(n), nil
		}
	default:
		panic("ParseNumbers got a type we can't handle")
	}

	return sliceTypeParser(parts, parser)
}

func trimUnit(s string) string {
	s = strings.TrimSuffix(s, "%")
	return strings.TrimSuffix(s, "°")
}
