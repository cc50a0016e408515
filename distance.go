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

package segedit

import "golang.org/x/exp/constraints"

// Parameters of the chamfer distance approximation. Distances are measured
// in tenths of a pixel.
const (
	// fieldMax is the initial magnitude of every cell, larger than any
	// distance which can occur in practice.
	fieldMax = 2048

	// seedMagnitude is the value given to cells next to the boundary:
	// the boundary runs half a pixel away from their centre.
	seedMagnitude = 5

	chamferOrtho = 10 // horizontal and vertical neighbours
	chamferDiag  = 14 // diagonal neighbours, ≈ 10·√2
)

// fieldBorder is the number of extra cells on each side of the field:
// one ring of background padding around the raster, and one sentinel
// ring around that, so that neighbour lookups never leave the array.
const fieldBorder = 2

// chamferStep is one entry of a chamfer kernel.
type chamferStep struct {
	dx, dy int
	w      int32
}

// forwardKernel holds the neighbours already visited by a top-left to
// bottom-right scan. The centre (weight 0) is the current value itself.
var forwardKernel = [4]chamferStep{
	{-1, -1, chamferDiag},
	{0, -1, chamferOrtho},
	{1, -1, chamferDiag},
	{-1, 0, chamferOrtho},
}

// backwardKernel mirrors forwardKernel for the reverse scan.
var backwardKernel = [4]chamferStep{
	{1, 1, chamferDiag},
	{0, 1, chamferOrtho},
	{-1, 1, chamferDiag},
	{1, 0, chamferOrtho},
}

// distanceField is an approximate signed distance to the boundary of the
// foreground of a label raster: positive inside, negative outside.
// Cells are addressed in the coordinates of the source raster; the valid
// range extends fieldBorder cells beyond the raster on every side.
type distanceField struct {
	width, height int // size of the source raster
	stride        int
	cells         []int32
}

func newDistanceField(width, height int) *distanceField {
	stride := width + 2*fieldBorder
	f := &distanceField{
		width:  width,
		height: height,
		stride: stride,
		cells:  make([]int32, stride*(height+2*fieldBorder)),
	}
	for i := range f.cells {
		f.cells[i] = -fieldMax
	}
	return f
}

func (f *distanceField) index(x, y int) int {
	return (y+fieldBorder)*f.stride + x + fieldBorder
}

func (f *distanceField) at(x, y int) int32 {
	return f.cells[f.index(x, y)]
}

func (f *distanceField) set(x, y int, v int32) {
	f.cells[f.index(x, y)] = v
}

// buildDistanceField computes the chamfer distance field of the foreground
// (label > 0) of r.
func buildDistanceField(r *Raster) *distanceField {
	f := newDistanceField(r.width, r.height)
	for y := range r.height {
		row := r.Row(y)
		for x, l := range row {
			if l > 0 {
				f.set(x, y, fieldMax)
			}
		}
	}
	f.seed()
	f.propagate()
	return f
}

// seed marks the cells on either side of a foreground/background
// transition with ±seedMagnitude, keeping their sign.
// The sweep covers the padded raster, i.e. all cells except the sentinel ring.
func (f *distanceField) seed() {
	for y := -1; y <= f.height; y++ {
		for x := -1; x <= f.width; x++ {
			v := f.at(x, y)
			if abs(v) == seedMagnitude {
				continue
			}
			if differ(v, f.at(x+1, y)) || differ(v, f.at(x, y+1)) {
				f.set(x, y, seedValue(v))
			}
		}
	}
	for y := f.height; y >= -1; y-- {
		for x := f.width; x >= -1; x-- {
			v := f.at(x, y)
			if abs(v) <= seedMagnitude {
				continue
			}
			if differ(v, f.at(x-1, y)) || differ(v, f.at(x, y-1)) {
				f.set(x, y, seedValue(v))
			}
		}
	}
}

// propagate runs the two chamfer passes. Both passes update the field in
// place, so that values computed earlier in a pass are used by later cells
// of the same pass.
func (f *distanceField) propagate() {
	for y := -1; y <= f.height; y++ {
		for x := -1; x <= f.width; x++ {
			f.relax(x, y, &forwardKernel)
		}
	}
	for y := f.height; y >= -1; y-- {
		for x := f.width; x >= -1; x-- {
			f.relax(x, y, &backwardKernel)
		}
	}
}

// relax updates one cell from its kernel neighbours. Positive cells move
// towards the smallest neighbour distance, negative cells towards the
// largest. Seed cells are fixed points.
func (f *distanceField) relax(x, y int, kernel *[4]chamferStep) {
	v := f.at(x, y)
	if abs(v) == seedMagnitude {
		return
	}
	best := v
	if v > 0 {
		for _, k := range kernel {
			best = min(best, f.at(x+k.dx, y+k.dy)+k.w)
		}
	} else {
		for _, k := range kernel {
			best = max(best, f.at(x+k.dx, y+k.dy)-k.w)
		}
	}
	f.set(x, y, best)
}

func differ(a, b int32) bool {
	return (a > 0) != (b > 0)
}

func seedValue(v int32) int32 {
	if v > 0 {
		return seedMagnitude
	}
	return -seedMagnitude
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
