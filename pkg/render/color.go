// pkg/render/color.go
package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color, a uint8) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Glow adds an emissive color on top of a base color. Intensity 0 leaves the base
// untouched; the result saturates at the emissive color.
func Glow(base, emissive color.RGBA, intensity float64) color.RGBA {
	b, e := toColorful(base), toColorful(emissive)
	out := colorful.Color{
		R: b.R + e.R*intensity,
		G: b.G + e.G*intensity,
		B: b.B + e.B*intensity,
	}
	return fromColorful(out, base.A)
}

// Fog fades c towards the fog color linearly between near and far.
func Fog(c, fog color.RGBA, depth, near, far float64) color.RGBA {
	if far <= near || depth <= near {
		return c
	}
	t := (depth - near) / (far - near)
	if t > 1 {
		t = 1
	}
	return fromColorful(toColorful(c).BlendRgb(toColorful(fog), t), c.A)
}

// WithAlpha returns c with a given opacity in [0, 1].
func WithAlpha(c color.RGBA, opacity float64) color.RGBA {
	switch {
	case opacity <= 0:
		c.A = 0
	case opacity >= 1:
		c.A = 255
	default:
		c.A = uint8(opacity * 255)
	}
	return c
}

// Premultiply scales the color channels by alpha, as ebiten and image/draw expect.
func Premultiply(c color.RGBA) color.RGBA {
	a := float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: c.A,
	}
}

// Luminance returns the perceived lightness in [0, 1], used by the terminal
// renderer to pick glyph density.
func Luminance(c color.RGBA) float64 {
	l, _, _ := toColorful(c).Lab()
	return l
}
