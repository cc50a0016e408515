package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Rings:  ring(pt(2, 2), pt(8, 2), pt(5, 8)),
		Width:  10,
		Height: 10,
		Op:     Fill{},
		Value:  1,
	},
	{
		Name:   "triangle_large",
		Rings:  ring(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
	{
		Name:   "rectangle",
		Rings:  rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  3,
	},
	{
		Name:   "star",
		Rings:  ring(fivePointStar(32, 32, 25)...),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
	{
		Name:   "concave",
		Rings:  ring(pt(8.25, 8.25), pt(56.25, 8.25), pt(32.25, 30.25), pt(56.25, 56.25), pt(8.25, 56.25)),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  2,
	},
	{
		Name:   "clockwise",
		Rings:  ring(pt(12.25, 40.75), pt(30.75, 5.25), pt(50.25, 44.75)),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
	{
		Name:   "clipped",
		Rings:  ring(pt(-20.25, -10.25), pt(80.75, 20.25), pt(30.25, 90.75)),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
	{
		Name:   "subpixel_offset_25",
		Rings:  rectangle(20.25, 20.25, 44.25, 44.25),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
	{
		Name:   "subpixel_offset_75",
		Rings:  rectangle(20.75, 20.75, 44.75, 44.75),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
	{
		Name:   "thin_sliver",
		Rings:  ring(pt(4.25, 31.75), pt(60.25, 31.75), pt(60.25, 32.25)),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
	{
		Name:   "degenerate_line",
		Rings:  ring(pt(10.25, 10), pt(10.25, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
}

// rectangle builds an axis-aligned rectangle with corners (x0, y0) and (x1, y1).
func rectangle(x0, y0, x1, y1 float64) [][]vec.Vec2 {
	return ring(pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1))
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	order := []int{0, 2, 4, 1, 3}
	star := make([]vec.Vec2, len(order))
	for i, k := range order {
		star[i] = pts[k]
	}
	return star
}

// regularPolygon approximates a circle by n vertices.
func regularPolygon(cx, cy, r float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := (float64(i) + 0.5) * 2 * math.Pi / float64(n)
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}
