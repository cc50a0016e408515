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
	"fmt"
	"iter"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Combiner writes outlines into label rasters. For every pixel covered by
// the outline, and allowed by the optional gating mask, the pixel is
// replaced by the result of a BoolOp.
//
// All methods validate their input completely before the first pixel is
// written: on error the raster is unchanged.
//
// A Combiner is not safe for concurrent use.
type Combiner struct {
	// Scanner converts outlines to spans. Its CTM maps outline coordinates
	// to pixel index space.
	Scanner *Scanner

	// Undo, if not nil, is asked to save a snapshot of the raster before
	// the first pixel is modified. Snapshots are only taken for rasters
	// for which undo has been enabled.
	Undo *UndoStore

	// Internal buffers (reused across calls)
	cover  []bool     // union coverage for brush strokes
	stroke []vec.Vec2 // brush outline pieces, contiguous
	pieces []int      // start index of each piece in stroke
	segs   []strokeSegment
}

// NewCombiner returns a Combiner with a fresh Scanner.
// The undo store may be nil.
func NewCombiner(undo *UndoStore) *Combiner {
	return &Combiner{
		Scanner: NewScanner(),
		Undo:    undo,
	}
}

// Combine applies op to every pixel of r whose centre lies inside poly.
// The polygon is closed implicitly and filled using the even-odd rule.
// If mask is not nil, it must have the same size as r, and only pixels where
// the mask is positive are modified.
func (c *Combiner) Combine(r *Raster, poly []vec.Vec2, op BoolOp, mask *Raster) error {
	return c.CombineRings(r, [][]vec.Vec2{poly}, op, mask)
}

// CombineRings is like Combine, but for an outline made of several rings.
func (c *Combiner) CombineRings(r *Raster, rings [][]vec.Vec2, op BoolOp, mask *Raster) error {
	if err := c.validate(r, op, mask); err != nil {
		return err
	}
	for k, ring := range rings {
		if err := checkFinite(ring); err != nil {
			Logger().Debug("rejected outline", slog.Int("ring", k), slog.Any("err", err))
			return fmt.Errorf("ring %d: %w", k, err)
		}
	}

	spans := c.scanner().ScanRings(rings, rasterWindow(r))
	c.apply(r, spans, op, mask)
	return nil
}

// CombinePath is like CombineRings, but takes the outline as a path.
// Every subpath is closed implicitly.
func (c *Combiner) CombinePath(r *Raster, p *path.Data, op BoolOp, mask *Raster) error {
	if err := c.validate(r, op, mask); err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	if err := checkFinite(p.Coords); err != nil {
		Logger().Debug("rejected path", slog.Any("err", err))
		return err
	}

	spans := c.scanner().ScanPath(p, rasterWindow(r))
	c.apply(r, spans, op, mask)
	return nil
}

func (c *Combiner) scanner() *Scanner {
	if c.Scanner == nil {
		c.Scanner = NewScanner()
	}
	return c.Scanner
}

func (c *Combiner) validate(r *Raster, op BoolOp, mask *Raster) error {
	if !op.Op.Valid() {
		return fmt.Errorf("%v: %w", op.Op, ErrInvalidOp)
	}
	if mask != nil && !mask.SameSize(r) {
		return fmt.Errorf("mask %dx%d, raster %dx%d: %w",
			mask.width, mask.height, r.width, r.height, ErrDimensionMismatch)
	}
	return nil
}

// apply runs op over all span pixels which pass the mask.
func (c *Combiner) apply(r *Raster, spans iter.Seq2[int, []Span], op BoolOp, mask *Raster) {
	saved := false
	for y, row := range spans {
		pix := r.Row(y)
		var gate []Label
		if mask != nil {
			gate = mask.Row(y)
		}
		for _, span := range row {
			for x := span.XMin; x <= span.XMax; x++ {
				if gate != nil && gate[x] == 0 {
					continue
				}
				if !saved {
					c.save(r)
					saved = true
				}
				pix[x] = op.Apply(pix[x])
			}
		}
	}
}

// applyCover runs op over all pixels marked in c.cover which pass the mask.
func (c *Combiner) applyCover(r *Raster, op BoolOp, mask *Raster) {
	saved := false
	for i, covered := range c.cover {
		if !covered || mask != nil && mask.pix[i] == 0 {
			continue
		}
		if !saved {
			c.save(r)
			saved = true
		}
		r.pix[i] = op.Apply(r.pix[i])
	}
}

func (c *Combiner) save(r *Raster) {
	if c.Undo != nil && c.Undo.IsEnabled(r.ID()) {
		c.Undo.Save(r.ID(), r)
	}
}

// rasterWindow returns the scan window covering all pixels of r.
func rasterWindow(r *Raster) rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(r.width),
		URy: float64(r.height),
	}
}

// checkFinite returns ErrInvalidGeometry if any coordinate is NaN or infinite.
func checkFinite(pts []vec.Vec2) error {
	for i, p := range pts {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("vertex %d (%g, %g): %w", i, p.X, p.Y, ErrInvalidGeometry)
		}
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
