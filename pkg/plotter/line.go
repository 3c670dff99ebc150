package plotter

import (
	"image"
	"image/color"
	"math"
)

type pixelSetter interface {
	SetRGBA(x, y int, c color.RGBA)
}

// line plots every pixel from (x0, y0) to (x1, y1) inclusive, in all octants,
// with a single integer error term.
func line(p pixelSetter, x0, y0, x1, y1 int, col color.RGBA) {
	dx, sx := x1-x0, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	dy, sy := y0-y1, 1
	if dy > 0 {
		dy, sy = -dy, -1
	}
	e := dx + dy
	for {
		p.SetRGBA(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// thickLine strokes parallel one pixel lines offset along the normal.
func thickLine(p pixelSetter, x0, y0, x1, y1, thickness int, col color.RGBA) {
	if thickness <= 1 {
		line(p, x0, y0, x1, y1, col)
		return
	}
	half := thickness / 2
	dx, dy := float64(x1-x0), float64(y1-y0)
	n := math.Hypot(dx, dy)
	if n == 0 {
		fillCircle(p, x0, y0, half, col)
		return
	}
	nx, ny := -dy/n, dx/n
	for i := -half; i <= half; i++ {
		ox, oy := int(math.Round(float64(i)*nx)), int(math.Round(float64(i)*ny))
		line(p, x0+ox, y0+oy, x1+ox, y1+oy, col)
	}
}

func fillCircle(p pixelSetter, cx, cy, r int, col color.RGBA) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				p.SetRGBA(cx+x, cy+y, col)
			}
		}
	}
}

// fillRect fills the rectangle spanned by two corners, clipped to img.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	r := image.Rect(min(x0, x1), min(y0, y1), max(x0, x1)+1, max(y0, y1)+1).Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}
