package testcases

import "seehuhn.de/go/pdf/graphics"

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Rings:  ring(pt(10, 20), pt(30, 20)),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
		Value: 1,
	},
	{
		Name:   "line_square",
		Rings:  ring(pt(10, 20), pt(30, 20)),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapSquare,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
		Value: 1,
	},
	{
		Name:   "line_round",
		Rings:  ring(pt(12.25, 40.25), pt(50.75, 22.5)),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      9,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
		Value: 1,
	},
	{
		Name:   "dot",
		Rings:  ring(pt(32.25, 31.75)),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      15,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
		Value: 1,
	},
	{
		Name:   "zigzag_miter",
		Rings:  ring(pt(8, 48), pt(20, 16), pt(32, 48), pt(44, 16), pt(56, 48)),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      5,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
		Value: 2,
	},
	{
		Name:   "zigzag_bevel",
		Rings:  ring(pt(8, 48), pt(20, 16), pt(32, 48), pt(44, 16), pt(56, 48)),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      5,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinBevel,
			MiterLimit: 10,
		},
		Value: 2,
	},
	{
		Name:   "zigzag_round",
		Rings:  ring(pt(8, 48), pt(20, 16), pt(32, 48), pt(44, 16), pt(56, 48)),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      5,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
		Value: 2,
	},
	{
		Name:   "closed_square",
		Rings:  rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			Closed:     true,
		},
		Value: 1,
	},
	{
		Name:   "self_overlap_xor",
		Rings:  ring(pt(10, 10), pt(54, 54), pt(54, 10), pt(10, 54)),
		Width:  64,
		Height: 64,
		Base:   1,
		Op: Stroke{
			Width:      7,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
		Mode:  Xor,
		Value: 1,
	},
}
