package testcases

import (
	"image"

	"seehuhn.de/go/pdf/graphics"
)

// gateCases exercise the combinators and the gating mask.
var gateCases = []TestCase{
	{
		Name:   "gated_fill",
		Rings:  ring(pt(4.25, 4.25), pt(60.25, 8.75), pt(30.25, 60.25)),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
		Gate:   image.Rect(16, 16, 48, 48),
	},
	{
		Name:   "gate_outside",
		Rings:  rectangle(4, 4, 20, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
		Gate:   image.Rect(40, 40, 60, 60),
	},
	{
		Name:   "and_clear_bits",
		Rings:  ring(fivePointStar(32, 32, 27)...),
		Width:  64,
		Height: 64,
		Base:   7,
		Op:     Fill{},
		Mode:   And,
		Value:  2,
	},
	{
		Name:   "or_set_bits",
		Rings:  rectangle(12.25, 12.25, 40.75, 50.75),
		Width:  64,
		Height: 64,
		Base:   4,
		Op:     Fill{},
		Mode:   Or,
		Value:  1,
	},
	{
		Name:   "xor_toggle",
		Rings:  ring(regularPolygon(32, 32, 22, 17)...),
		Width:  64,
		Height: 64,
		Base:   1,
		Op:     Fill{},
		Mode:   Xor,
		Value:  1,
	},
	{
		Name:   "gated_xor_stroke",
		Rings:  ring(pt(6, 32), pt(58, 32)),
		Width:  64,
		Height: 64,
		Base:   3,
		Op: Stroke{
			Width:      12,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
		Mode:  Xor,
		Value: 2,
		Gate:  image.Rect(20, 0, 44, 64),
	},
}
