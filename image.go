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
	"image/color"
)

// ToImage returns a grayscale copy of the raster, one byte per label.
func (r *Raster) ToImage() *image.Gray {
	img := image.NewGray(r.Bounds())
	for y := range r.height {
		copy(img.Pix[y*img.Stride:y*img.Stride+r.width], r.Row(y))
	}
	return img
}

// FromImage converts an image to a label raster. Each pixel is converted to
// 8-bit gray and the gray level is used as the label, so that black is
// background and any non-black pixel is foreground.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	r := NewRaster(b.Dx(), b.Dy())

	if g, ok := img.(*image.Gray); ok {
		for y := range r.height {
			off := (y+b.Min.Y-g.Rect.Min.Y)*g.Stride + (b.Min.X - g.Rect.Min.X)
			copy(r.Row(y), g.Pix[off:off+r.width])
		}
		return r
	}

	for y := range r.height {
		row := r.Row(y)
		for x := range r.width {
			c := color.GrayModel.Convert(img.At(x+b.Min.X, y+b.Min.Y)).(color.Gray)
			row[x] = c.Y
		}
	}
	return r
}

// Binary returns a copy of the raster with every foreground pixel set to v
// and everything else set to 0.
func (r *Raster) Binary(v Label) *Raster {
	res := NewRaster(r.width, r.height)
	for i, l := range r.pix {
		if l > 0 {
			res.pix[i] = v
		}
	}
	return res
}
