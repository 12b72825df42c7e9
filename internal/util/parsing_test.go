package util

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgSplitter(t *testing.T) {
	assert.Equal(t, []string{"255", "128", "0"}, ArgSplitter("255, 128,0"))
	assert.Equal(t, []string{"1", "2"}, ArgSplitter(" 1\t2 "))
	assert.Empty(t, ArgSplitter(" , "))
}

func TestParseNumbers_Int(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []int
	}{
		{"separate", []string{"255", "0", "16"}, []int{255, 0, 16}},
		{"comma list", []string{"255,0,16"}, []int{255, 0, 16}},
		{"mixed", []string{"255,", "0", " 16"}, []int{255, 0, 16}},
		{"negative kept", []string{"-1", "0", "0"}, []int{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumbers[int](tt.args, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumbers_Float(t *testing.T) {
	got, err := ParseNumbers[float64]([]string{"210°", "50%", "40.5%"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{210, 50, 40.5}, got)
}

func TestParseNumbers_Errors(t *testing.T) {
	_, err := ParseNumbers[int]([]string{"1", "2"}, 3)
	assert.EqualError(t, err, "expected 3 numbers, got 2")

	_, err = ParseNumbers[int]([]string{"1", "2.5", "3"}, 3)
	assert.EqualError(t, err, `"2.5" is not an integer`)

	_, err = ParseNumbers[float64]([]string{"a", "2", "3"}, 3)
	assert.EqualError(t, err, `"a" is not a number`)

	for _, s := range []string{"NaN", "Inf", "-inf", "+Infinity"} {
		_, err = ParseNumbers[float64]([]string{"0", s, "50"}, 3)
		assert.EqualError(t, err, fmt.Sprintf("%q is not a number", s))
	}
}
