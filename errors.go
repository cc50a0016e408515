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

import "errors"

var (
	// ErrInvalidGeometry is returned when an outline has a NaN or infinite
	// vertex. The target raster is left untouched.
	ErrInvalidGeometry = errors.New("segedit: invalid geometry")

	// ErrDimensionMismatch is returned when two rasters which must have the
	// same size do not.
	ErrDimensionMismatch = errors.New("segedit: raster dimensions differ")

	// ErrNoHistory is returned by Undo and Redo when there is nothing to
	// restore.
	ErrNoHistory = errors.New("segedit: no history")

	// ErrInvalidOp is returned for an unknown combinator.
	ErrInvalidOp = errors.New("segedit: invalid operator")

	// ErrInvalidBrush is returned for a brush with non-positive or
	// non-finite width.
	ErrInvalidBrush = errors.New("segedit: invalid brush")
)
