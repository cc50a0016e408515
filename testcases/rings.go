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

import "seehuhn.de/go/geom/vec"

var ringsCases = []TestCase{
	{
		Name: "square_with_hole",
		Rings: [][]vec.Vec2{
			{pt(8, 8), pt(56, 8), pt(56, 56), pt(8, 56)},
			{pt(20, 20), pt(44, 20), pt(44, 44), pt(20, 44)},
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
	{
		Name: "hole_same_orientation",
		Rings: [][]vec.Vec2{
			{pt(8, 8), pt(56, 8), pt(56, 56), pt(8, 56)},
			{pt(20, 20), pt(20, 44), pt(44, 44), pt(44, 20)},
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
	{
		Name: "disjoint",
		Rings: [][]vec.Vec2{
			{pt(4.25, 4.25), pt(24.25, 4.25), pt(14.25, 24.25)},
			{pt(34.75, 40.75), pt(60.75, 40.75), pt(60.75, 60.75), pt(34.75, 60.75)},
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  4,
	},
	{
		Name: "overlapping",
		Rings: [][]vec.Vec2{
			rectangle(8, 8, 40, 40)[0],
			rectangle(24, 24, 56, 56)[0],
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
	{
		Name: "nested_islands",
		Rings: [][]vec.Vec2{
			regularPolygon(32, 32, 28, 40),
			regularPolygon(32, 32, 18, 30),
			regularPolygon(32, 32, 8, 20),
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Value:  1,
	},
}
