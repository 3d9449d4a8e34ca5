package scene

import "github.com/chewxy/math32"

// Color is an 8-bit RGB color
type Color [3]uint8

// Black is the background color for rays that hit nothing
var Black = Color{}

// NewColor creates a color from its three channels
func NewColor(r, g, b uint8) Color {
	return Color{r, g, b}
}

// Scale returns the color with each channel scaled by factor, rounded and
// clamped into range. A NaN factor clamps to zero rather than producing
// garbage channels.
func (c Color) Scale(factor float32) Color {
	var out Color
	for i, ch := range c {
		out[i] = clampChannel(math32.Round(float32(ch) * factor))
	}
	return out
}

// Lerp linearly interpolates between c and other by ratio in [0, 1]
func (c Color) Lerp(other Color, ratio float32) Color {
	var out Color
	for i := range c {
		blended := float32(c[i])*(1-ratio) + float32(other[i])*ratio
		out[i] = clampChannel(math32.Round(blended))
	}
	return out
}

func clampChannel(v float32) uint8 {
	if !(v > 0) { // catches NaN as well as negatives
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
