package colorconv

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGB_Color(t *testing.T) {
	c := RGB{R: 255, G: 128, B: 0}

	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0x8080), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)

	assert.Equal(t, color.RGBA{255, 128, 0, 255}, color.RGBAModel.Convert(c))
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  RGB
	}{
		{"rgba", color.RGBA{R: 10, G: 20, B: 30, A: 255}, RGB{10, 20, 30}},
		{"nrgba opaque", color.NRGBA{R: 200, G: 100, B: 50, A: 255}, RGB{200, 100, 50}},
		{"gray", color.Gray{Y: 77}, RGB{77, 77, 77}},
		{"rgb passthrough", RGB{1, 2, 3}, RGB{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromColor(tt.input))
		})
	}
}

func TestRGB_Methods(t *testing.T) {
	c := RGB{R: 51, G: 102, B: 153}
	assert.Equal(t, "#336699", c.Hex())
	assert.Equal(t, HSL{210, 50, 40}, c.HSL())
	assert.Equal(t, "rgb(51, 102, 153)", c.String())
	assert.Equal(t, "hsl(210, 50%, 40%)", c.HSL().String())

	// Methods clamp instead of failing.
	assert.Equal(t, "#ff0000", RGB{R: 300, G: -4, B: 0}.Hex())
}

func TestComponent_String(t *testing.T) {
	assert.Equal(t, "red", Red.String())
	assert.Equal(t, "lightness", Lightness.String())
	assert.Equal(t, "component(42)", Component(42).String())
}
