// seehuhn.de/go/segedit - segmentation mask editing
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498

var curveCases = []TestCase{
	{
		Name:   "circle",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
	{
		Name: "quadratic_lens",
		Path: (&path.Data{}).
			MoveTo(pt(8, 32)).
			QuadTo(pt(32, 4), pt(56, 32)).
			QuadTo(pt(32, 60), pt(8, 32)).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
	{
		Name: "cubic_blob",
		Path: (&path.Data{}).
			MoveTo(pt(10, 50)).
			CubeTo(pt(0, 10), pt(40, 0), pt(54, 20)).
			CubeTo(pt(64, 40), pt(30, 64), pt(10, 50)).
			Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  2,
	},
	{
		Name: "annulus",
		Path: func() *path.Data {
			p := circle(32, 32, 26)
			inner := circle(32, 32, 12)
			p.Cmds = append(p.Cmds, inner.Cmds...)
			p.Coords = append(p.Coords, inner.Coords...)
			return p
		}(),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
}

var ctmCases = []TestCase{
	{
		Name:   "scaled_triangle",
		Rings:  ring(pt(1, 1), pt(4, 1), pt(2.5, 4)),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(12, 12),
		Op:     Fill{},
		Value:  1,
	},
	{
		Name:   "rotated_square",
		Rings:  rectangle(-12.25, -12.25, 12.25, 12.25),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(23).Translate(32, 32),
		Op:     Fill{},
		Value:  1,
	},
	{
		Name:   "translated_circle",
		Path:   circle(0, 0, 14),
		Width:  64,
		Height: 64,
		CTM:    matrix.Identity.Translate(20.25, 40.25),
		Op:     Fill{},
		Value:  1,
	},
}

// circle builds a closed circle path from four cubic Bézier arcs.
func circle(cx, cy, r float64) *path.Data {
	k := kappa * r
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
		Close()
}
