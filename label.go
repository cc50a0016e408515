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

import (
	"image"
	"slices"
	"sync/atomic"
)

// Label is the value stored in one pixel of a label raster.
// Zero is background; any positive value marks membership of a segment.
type Label = uint8

// ImageID identifies a raster for the purpose of undo bookkeeping.
// Every raster receives a fresh ID when it is created.
type ImageID uint64

var lastImageID atomic.Uint64

func nextImageID() ImageID {
	return ImageID(lastImageID.Add(1))
}

// Raster is a dense 2D array of labels, stored in row-major order.
// The dimensions are fixed for the lifetime of the raster.
//
// A Raster is also used as a gating mask: a pixel is eligible for an edit
// if the mask value at that position is positive.
type Raster struct {
	id     ImageID
	width  int
	height int
	pix    []Label
}

// NewRaster allocates a raster of the given size, filled with background.
// Negative dimensions are treated as zero.
func NewRaster(width, height int) *Raster {
	width = max(width, 0)
	height = max(height, 0)
	return &Raster{
		id:     nextImageID(),
		width:  width,
		height: height,
		pix:    make([]Label, width*height),
	}
}

// ID returns the identity of the raster.
func (r *Raster) ID() ImageID { return r.id }

// Width returns the number of columns.
func (r *Raster) Width() int { return r.width }

// Height returns the number of rows.
func (r *Raster) Height() int { return r.height }

// Bounds returns the pixel rectangle covered by the raster.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// In reports whether (x, y) lies inside the raster.
func (r *Raster) In(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// At returns the label at (x, y).
// Coordinates outside the raster read as background.
func (r *Raster) At(x, y int) Label {
	if !r.In(x, y) {
		return 0
	}
	return r.pix[y*r.width+x]
}

// Set stores a label at (x, y).
// Coordinates outside the raster are ignored.
func (r *Raster) Set(x, y int, v Label) {
	if !r.In(x, y) {
		return
	}
	r.pix[y*r.width+x] = v
}

// Row returns the labels of row y. The slice aliases the raster storage.
// It returns nil if y is out of range.
func (r *Raster) Row(y int) []Label {
	if y < 0 || y >= r.height {
		return nil
	}
	return r.pix[y*r.width : (y+1)*r.width]
}

// Fill sets every pixel to v.
func (r *Raster) Fill(v Label) {
	for i := range r.pix {
		r.pix[i] = v
	}
}

// Count returns the number of foreground pixels.
func (r *Raster) Count() int {
	n := 0
	for _, v := range r.pix {
		if v > 0 {
			n++
		}
	}
	return n
}

// Clone returns a copy of the raster with a new identity.
func (r *Raster) Clone() *Raster {
	return &Raster{
		id:     nextImageID(),
		width:  r.width,
		height: r.height,
		pix:    slices.Clone(r.pix),
	}
}

// Equal reports whether both rasters have the same size and contents.
// The identities are not compared.
func (r *Raster) Equal(other *Raster) bool {
	return r.width == other.width && r.height == other.height &&
		slices.Equal(r.pix, other.pix)
}

// SameSize reports whether both rasters have the same dimensions.
func (r *Raster) SameSize(other *Raster) bool {
	return r.width == other.width && r.height == other.height
}
