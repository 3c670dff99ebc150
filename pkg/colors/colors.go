package colors

import (
	"hash/crc32"
	"image/color"
)

// palette holds the first series colours of a graph, picked to stay apart on
// a dark background.
var palette = []color.RGBA{
	{247, 10, 10, 255},
	{6, 245, 34, 255},
	{26, 160, 253, 255},
	{247, 127, 10, 255},
	{247, 21, 223, 255},
	{244, 251, 18, 255},
	{64, 216, 140, 255},
	{105, 20, 253, 255},
}

// ForSeries returns the colour of the n:th series on a graph. Past the end of
// the palette the colour is derived from the series name so it stays stable
// across runs.
func ForSeries(n int, name string) color.RGBA {
	if n >= 0 && n < len(palette) {
		return palette[n]
	}
	return hashToRGB(name)
}

func hashToRGB(input string) color.RGBA {
	hash := crc32.ChecksumIEEE([]byte(input))
	return color.RGBA{byte(hash >> 8), byte(hash >> 16), byte(hash), 255}
}

// ToRGBA converts any colour, such as one returned by a colour picker.
func ToRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
