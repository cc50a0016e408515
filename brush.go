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
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Brush describes the pen used by [Combiner.Stroke].
type Brush struct {
	// Width is the diameter of the brush, in the same units as the
	// polyline coordinates. Must be positive.
	Width float64

	// Cap sets the style for the ends of open strokes.
	Cap graphics.LineCapStyle

	// Join sets the style for corners.
	Join graphics.LineJoinStyle

	// MiterLimit caps miter join length. Must be at least 1.0.
	MiterLimit float64
}

// NewBrush returns a round brush of the given width.
func NewBrush(width float64) *Brush {
	return &Brush{
		Width:      width,
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinRound,
		MiterLimit: defaultMiterLimit,
	}
}

// strokeSegment is a line segment of the brush path, in user coordinates.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// Stroke paints a brush stroke along polyline. If closed is true, the last
// point is connected back to the first one. The stroke outline is built from
// overlapping pieces (one quadrilateral per segment plus joins and caps); a
// pixel is affected if its centre lies inside any piece, and op is applied
// to each such pixel exactly once.
//
// A polyline consisting of a single point produces a dot for round and
// square caps, and nothing for butt caps.
func (c *Combiner) Stroke(r *Raster, polyline []vec.Vec2, closed bool, b *Brush, op BoolOp, mask *Raster) error {
	if err := c.validate(r, op, mask); err != nil {
		return err
	}
	if b == nil || !isFinite(b.Width) || b.Width <= 0 {
		return ErrInvalidBrush
	}
	if err := checkFinite(polyline); err != nil {
		return err
	}

	c.buildStroke(polyline, closed, b)

	size := r.width * r.height
	c.cover = slices.Grow(c.cover[:0], size)[:size]
	clear(c.cover)

	sc := c.scanner()
	window := rasterWindow(r)
	for i, start := range c.pieces {
		end := len(c.stroke)
		if i+1 < len(c.pieces) {
			end = c.pieces[i+1]
		}
		for y, spans := range sc.Scan(c.stroke[start:end], window) {
			row := c.cover[y*r.width : (y+1)*r.width]
			for _, span := range spans {
				for x := span.XMin; x <= span.XMax; x++ {
					row[x] = true
				}
			}
		}
	}

	c.applyCover(r, op, mask)
	return nil
}

// buildStroke collects the outline pieces of the stroke into c.stroke, with
// c.pieces holding the start index of every piece.
func (c *Combiner) buildStroke(polyline []vec.Vec2, closed bool, b *Brush) {
	c.stroke = c.stroke[:0]
	c.pieces = c.pieces[:0]
	c.segs = c.segs[:0]

	for i := 1; i < len(polyline); i++ {
		c.addStrokeSegment(polyline[i-1], polyline[i])
	}
	if closed && len(polyline) > 2 {
		c.addStrokeSegment(polyline[len(polyline)-1], polyline[0])
	}

	d := b.Width / 2

	if len(c.segs) == 0 {
		// degenerate stroke (no orientation)
		if len(polyline) == 0 {
			return
		}
		pt := polyline[0]
		switch b.Cap {
		case graphics.LineCapRound:
			c.beginPiece()
			c.addArc(pt, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
		case graphics.LineCapSquare:
			c.beginPiece()
			c.addSquare(pt, vec.Vec2{X: 1, Y: 0}, d)
		}
		return
	}

	for i := range c.segs {
		seg := &c.segs[i]
		c.beginPiece()
		c.stroke = append(c.stroke,
			seg.A.Add(seg.N.Mul(d)),
			seg.B.Add(seg.N.Mul(d)),
			seg.B.Sub(seg.N.Mul(d)),
			seg.A.Sub(seg.N.Mul(d)),
		)
	}

	for i := range len(c.segs) - 1 {
		seg, next := &c.segs[i], &c.segs[i+1]
		c.addJoin(seg.B, seg.T, next.T, d, b)
	}
	if closed && len(c.segs) > 1 {
		last, first := &c.segs[len(c.segs)-1], &c.segs[0]
		c.addJoin(last.B, last.T, first.T, d, b)
	}

	if !closed || len(polyline) <= 2 {
		first, last := &c.segs[0], &c.segs[len(c.segs)-1]
		c.addCap(first.A, first.T.Mul(-1), d, b)
		c.addCap(last.B, last.T, d, b)
	}
}

// beginPiece starts a new outline piece.
func (c *Combiner) beginPiece() {
	c.pieces = append(c.pieces, len(c.stroke))
}

// addStrokeSegment adds a line segment to the segment buffer.
func (c *Combiner) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return // skip degenerate segment
	}
	t := d.Mul(1 / length)         // unit tangent
	n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal (90° CCW)
	c.segs = append(c.segs, strokeSegment{A: a, B: b, T: t, N: n})
}

// addCap adds a cap piece at point P.
// T is the outward tangent direction (away from the line).
// d is half the brush width.
func (c *Combiner) addCap(P, T vec.Vec2, d float64, b *Brush) {
	N := vec.Vec2{X: -T.Y, Y: T.X} // normal (90° CCW from T)

	switch b.Cap {
	case graphics.LineCapButt:
		// the segment quadrilateral ends at P

	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		c.beginPiece()
		c.stroke = append(c.stroke, P.Add(N.Mul(d)), ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)), P.Sub(N.Mul(d)))

	case graphics.LineCapRound:
		// half disc: the arc starts at N and sweeps clockwise through T to
		// -N; the closing chord runs through P
		c.beginPiece()
		c.addArc(P, d, N, -math.Pi, true)
	}
}

// addJoin adds a join piece on the outer side of the corner at P, where the
// tangent changes from T1 to T2. d is half the brush width.
func (c *Combiner) addJoin(P, T1, T2 vec.Vec2, d float64, b *Brush) {
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X // cross product Z component

	if sinTheta > -collinearityThreshold && sinTheta < collinearityThreshold && cosTheta > 0 {
		return // nearly collinear
	}

	// cusp: the path doubles back on itself
	if cosTheta < cuspCosineThreshold {
		c.addCap(P, T1, d, b)
		c.addCap(P, T2.Mul(-1), d, b)
		return
	}

	// the outer side is +N for a left turn (sinTheta < 0), -N otherwise
	side := 1.0
	if sinTheta > 0 {
		side = -1
	}
	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}.Mul(side)
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}.Mul(side)

	switch b.Join {
	case graphics.LineJoinMiter:
		// miterLength = 1 / sin(φ/2), where φ is the interior angle of the
		// stroke; sin(φ/2) = cos(θ/2) = sqrt((1 + cosθ) / 2)
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		limit := b.MiterLimit
		if limit < 1 {
			limit = defaultMiterLimit
		}
		if sinHalf > 0 && 1/sinHalf <= limit+miterEpsilon {
			bisector := N1.Add(N2)
			if l := bisector.Length(); l > zeroLengthThreshold {
				miterPt := P.Add(bisector.Mul(d / (sinHalf * l)))
				c.beginPiece()
				c.stroke = append(c.stroke, P, P.Add(N1.Mul(d)), miterPt, P.Add(N2.Mul(d)))
				return
			}
		}
		// fall back to bevel if the miter limit is exceeded
		fallthrough

	case graphics.LineJoinBevel:
		c.beginPiece()
		c.stroke = append(c.stroke, P, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))

	case graphics.LineJoinRound:
		c.beginPiece()
		c.addArc(P, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
	}
}

// addArc adds arc vertices to the current piece.
// center is the arc center, radius is the arc radius.
// startDir is the unit vector from center to arc start.
// sweep is the sweep angle in radians (positive = CCW).
// includeStart indicates whether to include the start point.
func (c *Combiner) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	sc := c.scanner()
	flatness := sc.flatness()

	// segment count is based on the radius in pixel space
	devRadius := max(
		sc.transformLinear(vec.Vec2{X: radius, Y: 0}).Length(),
		sc.transformLinear(vec.Vec2{X: 0, Y: radius}).Length(),
	)

	// For a chord subtending angle θ on a circle of radius r, the maximum
	// deviation (sagitta) is r*(1 - cos(θ/2)). For this to equal tolerance ε:
	//   θ = 2*acos(1 - ε/r)
	n := 4
	if devRadius > flatness {
		angleStep := 2 * math.Acos(1-flatness/devRadius)
		if angleStep > 0 && !math.IsNaN(angleStep) {
			n = int(math.Ceil(math.Abs(sweep) / angleStep))
		}
	}
	n = max(n, 4)

	dt := sweep / float64(n)
	startI := 0
	if !includeStart {
		startI = 1
	}
	for i := startI; i <= n; i++ {
		cos, sin := math.Cos(float64(i)*dt), math.Sin(float64(i)*dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		c.stroke = append(c.stroke, center.Add(dir.Mul(radius)))
	}
}

// addSquare adds a square of side 2*d, centred at center and oriented by
// the tangent T, to the current piece.
func (c *Combiner) addSquare(center vec.Vec2, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	c.stroke = append(c.stroke,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}

// Numerical tolerances for the brush geometry.
const (
	// zeroLengthThreshold is the minimum length for a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold is the cosine threshold for detecting cusps
	// (path doubling back on itself). cos(179.43°) ≈ -0.9999
	cuspCosineThreshold = -0.9999
)

func (b *Brush) String() string {
	return fmt.Sprintf("brush(%g, %s, %s)", b.Width, b.Cap, b.Join)
}
