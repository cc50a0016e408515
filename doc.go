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

// Package segedit implements the editing engine for 2D segmentation masks.
//
// A segmentation is stored as a [Raster] of small integer labels. A
// [Combiner] writes polygons, paths and brush strokes into a raster using
// one of the Boolean combinators in [Op], optionally restricted by a gating
// mask. [Interpolate] synthesizes a missing slice from two neighbouring
// ones by blending chamfer distance fields. An [UndoStore] keeps a bounded
// history of snapshots, taken automatically by the Combiner before each
// modification.
package segedit

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
