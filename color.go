package imgstack

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Alpha is straight, not
// premultiplied.
type Color struct {
	R, G, B, A float64
}

// Transparent is fully transparent black.
var Transparent = Color{}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex parses a hex color string ("#rgb" or "#rrggbb") into an opaque Color.
// Returns Transparent and an error for malformed input.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Transparent, err
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	// RGBA() returns alpha-premultiplied components.
	return Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// Color converts to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{
		R: clamp255(c.R * 255),
		G: clamp255(c.G * 255),
		B: clamp255(c.B * 255),
		A: clamp255(c.A * 255),
	}
}

// Lerp interpolates between c and other in linear RGB space, with alpha
// interpolated linearly. t=0 yields c, t=1 yields other.
func (c Color) Lerp(other Color, t float64) Color {
	cc := colorful.Color{R: c.R, G: c.G, B: c.B}
	oc := colorful.Color{R: other.R, G: other.G, B: other.B}
	m := cc.BlendRgb(oc, t).Clamped()
	return Color{
		R: m.R,
		G: m.G,
		B: m.B,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp255 clamps v to [0, 255] and converts to uint8.
func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
