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
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single editing scenario: a raster of the given size,
// pre-filled with Base, is modified by writing an outline with a Boolean
// combinator.
type TestCase struct {
	Name   string          // lowercase a-z, 0-9 and _ only
	Width  int             // raster width in pixels
	Height int             // raster height in pixels
	Base   uint8           // initial value of every pixel
	Rings  [][]vec.Vec2    // the outline, as closed polygons
	Path   *path.Data      // the outline as a path; used instead of Rings if set
	Op     Operation       // fill or stroke
	Mode   Mode            // combinator
	Value  uint8           // label operand of the combinator
	Gate   image.Rectangle // if non-empty, only pixels inside are eligible
	CTM    matrix.Matrix   // transformation matrix (zero-value means no transform)
}

// Mode selects the Boolean combinator. The values match segedit.Op.
type Mode int

const (
	Assign Mode = iota
	And
	Or
	Xor
)

func (m Mode) String() string {
	switch m {
	case Assign:
		return "assign"
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	}
	return "unknown"
}

// Operation is the way the outline is written.
type Operation interface {
	isOperation()
}

// Fill writes the interior of the outline, using the even-odd rule.
type Fill struct{}

func (Fill) isOperation() {}

// Stroke writes a brush stroke along the first ring of the outline.
type Stroke struct {
	Width      float64                // brush width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
	Closed     bool                   // connect the last point back to the first
}

func (Stroke) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// ring is a helper to build a single-ring outline.
func ring(pts ...vec.Vec2) [][]vec.Vec2 {
	return [][]vec.Vec2{pts}
}
