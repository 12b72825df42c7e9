package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scheerer/screen-colorconv/colorconv"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		cmd  string
		args []string
		want string
	}{
		{"hex", []string{"255", "0", "0"}, "#ff0000"},
		{"hex", []string{"0,0,0"}, "#000000"},
		{"rgb", []string{"#ff0000"}, "rgb(255, 0, 0)"},
		{"rgb", []string{"00FF00"}, "rgb(0, 255, 0)"},
		{"hsl", []string{"128", "128", "128"}, "hsl(0, 0%, 50%)"},
		{"hsl", []string{"255,0,0"}, "hsl(0, 100%, 50%)"},
		{"hsl2rgb", []string{"0", "100%", "50%"}, "rgb(255, 0, 0)"},
		{"hsl2rgb", []string{"210°,50%,40%"}, "rgb(51, 102, 153)"},
	}

	for _, tt := range tests {
		t.Run(tt.cmd+" "+tt.want, func(t *testing.T) {
			got, err := convert(tt.cmd, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	_, err := convert("hex", []string{"-1", "0", "0"})
	assert.ErrorIs(t, err, colorconv.ErrRange)

	_, err = convert("rgb", []string{"#12345"})
	assert.ErrorIs(t, err, colorconv.ErrSyntax)

	_, err = convert("rgb", []string{"#ff0000", "#00ff00"})
	assert.Error(t, err)

	_, err = convert("hsl2rgb", []string{"361", "0", "0"})
	assert.ErrorIs(t, err, colorconv.ErrRange)

	_, err = convert("hsl2rgb", []string{"0", "NaN", "50"})
	assert.Error(t, err)

	_, err = convert("hsl", []string{"1", "2"})
	assert.Error(t, err)

	_, err = convert("cmyk", nil)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	code := run(context.Background(), []string{"hex", "255", "128", "64"}, &out)
	assert.Equal(t, 0, code)
	assert.Equal(t, "#ff8040\n", out.String())

	out.Reset()
	code = run(context.Background(), []string{"rgb", "xyz"}, &out)
	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())

	out.Reset()
	code = run(context.Background(), []string{"--version"}, &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), Version)

	out.Reset()
	code = run(context.Background(), nil, &out)
	assert.Equal(t, 2, code)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_InvalidEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	assert.Equal(t, 2, run(context.Background(), []string{"hex", "0", "0", "0"}, &bytes.Buffer{}))
}

func TestRun_SampleRejectsBadFormat(t *testing.T) {
	t.Setenv("OUTPUT_FORMAT", "cmyk")
	assert.Equal(t, 2, run(context.Background(), []string{"sample"}, &bytes.Buffer{}))
}

func TestRun_SampleRejectsBadAlgorithm(t *testing.T) {
	t.Setenv("COLOR_ALGO", "BRIGHTEST")
	assert.Equal(t, 2, run(context.Background(), []string{"sample"}, &bytes.Buffer{}))
}
