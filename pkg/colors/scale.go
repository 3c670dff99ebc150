package colors

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Scale maps raster graph values onto a three-stop colour gradient.
type Scale int

const (
	ScaleNormal        Scale = iota // green, yellow, red
	ScaleUniversal                  // blue, gray, orange
	ScaleProtanopia                 // blue, white, brown
	ScaleTritanopia                 // teal, gray, red
	ScaleDeuteranomaly              // blue, beige, brown
)

var scaleNames = [...]string{"Normal", "Universal", "Protanopia", "Tritanopia", "Deuteranomaly"}

func (s Scale) String() string {
	if s < 0 || int(s) >= len(scaleNames) {
		return "Unknown"
	}
	return scaleNames[s]
}

// ScaleNames lists every scale in declaration order.
func ScaleNames() []string {
	return scaleNames[:]
}

func ParseScale(s string) (Scale, error) {
	for i, name := range scaleNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Scale(i), nil
		}
	}
	return ScaleNormal, fmt.Errorf("unknown colour scale %q", s)
}

func (s Scale) stops() (low, mid, high color.RGBA) {
	switch s {
	case ScaleUniversal:
		return color.RGBA{33, 102, 172, 255}, color.RGBA{247, 247, 247, 255}, color.RGBA{255, 165, 0, 255}
	case ScaleProtanopia:
		return color.RGBA{5, 113, 176, 255}, color.RGBA{247, 247, 247, 255}, color.RGBA{150, 75, 0, 255}
	case ScaleTritanopia:
		return color.RGBA{0, 128, 128, 255}, color.RGBA{247, 247, 247, 255}, color.RGBA{215, 48, 39, 255}
	case ScaleDeuteranomaly:
		return color.RGBA{0x4A, 0x90, 0xE2, 255}, color.RGBA{0xF5, 0xE6, 0xB3, 255}, color.RGBA{0x8B, 0x45, 0x13, 255}
	}
	return color.RGBA{0, 255, 0, 255}, color.RGBA{255, 255, 0, 255}, color.RGBA{255, 0, 0, 255}
}

// At returns the colour of value between min and max. Missing values are gray.
func (s Scale) At(min, max, value float64) color.RGBA {
	t := (value - min) / (max - min)
	if math.IsNaN(t) {
		return color.RGBA{128, 128, 128, 255}
	}
	t = math.Max(0, math.Min(1, t))
	low, mid, high := s.stops()
	if t < 0.5 {
		return lerpColor(low, mid, t/0.5)
	}
	return lerpColor(mid, high, (t-0.5)/0.5)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func lerpColor(c1, c2 color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(lerp(float64(c1.R), float64(c2.R), t)),
		G: uint8(lerp(float64(c1.G), float64(c2.G), t)),
		B: uint8(lerp(float64(c1.B), float64(c2.B), t)),
		A: 255,
	}
}
