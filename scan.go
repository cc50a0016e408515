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
	"cmp"
	"iter"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Span is a run of pixels on one scanline which lies inside an outline.
// Both ends are inclusive.
type Span struct {
	XMin, XMax int
}

// Len returns the number of pixels in the span.
func (s Span) Len() int {
	return s.XMax - s.XMin + 1
}

// activeEdge is an outline edge which crosses the current scanline.
type activeEdge struct {
	x    float64 // x-intercept at the centre of the current scanline
	dxdy float64 // change of x per scanline
	idx  int     // index of the edge's first vertex
}

// Scanner converts polygons into the pixel spans they cover. A pixel belongs
// to the polygon if its centre is inside according to the even-odd rule.
// Create one instance and reuse it for multiple polygons. Internal buffers
// grow as needed but never shrink.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	// CTM maps input coordinates to pixel index space, where pixel (x, y)
	// covers the unit square with its top-left corner at (x, y).
	// The zero matrix is treated as the identity.
	CTM matrix.Matrix

	// Flatness controls curve approximation accuracy in pixels, for
	// ScanPath and for round brush geometry. Must be positive.
	Flatness float64

	pts    []vec.Vec2 // vertices of all rings, transformed, contiguous
	next   []int      // ring successor of each vertex
	prev   []int      // ring predecessor of each vertex
	order  []int      // vertex indices sorted by y
	active []activeEdge
	spans  []Span

	// buffers for ScanPath
	pathPts   []vec.Vec2
	pathStart []int
	pathRings [][]vec.Vec2
}

// NewScanner returns a Scanner with the identity transformation.
func NewScanner() *Scanner {
	return &Scanner{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
	}
}

// Scan returns the inside spans of the closed polygon poly, one scanline at
// a time in increasing y. Vertex i is connected to vertex (i+1) mod n.
// Only pixels inside window are reported; window coordinates must be
// integer-aligned. Scanlines without spans are skipped.
//
// The span slice is valid only until the next iteration step.
// Vertices must be finite.
func (s *Scanner) Scan(poly []vec.Vec2, window rect.Rect) iter.Seq2[int, []Span] {
	return func(yield func(int, []Span) bool) {
		s.load(poly)
		s.scan(window, yield)
	}
}

// ScanRings is like Scan, but the outline may consist of several closed
// rings. Overlapping rings cancel by the even-odd rule, so that a ring inside
// another one forms a hole.
func (s *Scanner) ScanRings(rings [][]vec.Vec2, window rect.Rect) iter.Seq2[int, []Span] {
	return func(yield func(int, []Span) bool) {
		s.load(rings...)
		s.scan(window, yield)
	}
}

// ScanPath is like ScanRings, but takes the outline as a path. Every subpath
// is treated as closed; curves are flattened using s.Flatness.
func (s *Scanner) ScanPath(p *path.Data, window rect.Rect) iter.Seq2[int, []Span] {
	return func(yield func(int, []Span) bool) {
		s.flattenPath(p)
		s.load(s.pathRings...)
		s.scan(window, yield)
	}
}

func (s *Scanner) ctm() matrix.Matrix {
	if s.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return s.CTM
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
func (s *Scanner) transformLinear(v vec.Vec2) vec.Vec2 {
	m := s.ctm()
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// load copies the rings into the vertex buffer, applying CTM, and links
// every vertex to its neighbours within its ring.
func (s *Scanner) load(rings ...[]vec.Vec2) {
	m := s.ctm()
	s.pts = s.pts[:0]
	s.next = s.next[:0]
	s.prev = s.prev[:0]
	for _, ring := range rings {
		start := len(s.pts)
		n := len(ring)
		for k, p := range ring {
			s.pts = append(s.pts, vec.Vec2{
				X: m[0]*p.X + m[2]*p.Y + m[4],
				Y: m[1]*p.X + m[3]*p.Y + m[5],
			})
			s.next = append(s.next, start+(k+1)%n)
			s.prev = append(s.prev, start+(k+n-1)%n)
		}
	}
}

// scan runs the active edge table algorithm over the loaded vertices.
//
// Scanline y is sampled at y+0.5. Vertices are visited in order of
// increasing y; when the sample line passes a vertex, the edges to its two
// neighbours are inserted or removed depending on which side of the sample
// line the neighbour lies. Edges with both ends on the same side (including
// horizontal edges) never become active.
func (s *Scanner) scan(window rect.Rect, yield func(int, []Span) bool) {
	n := len(s.pts)
	if n == 0 {
		return
	}

	s.order = s.order[:0]
	for i := range n {
		s.order = append(s.order, i)
	}
	slices.SortStableFunc(s.order, func(a, b int) int {
		return cmp.Compare(s.pts[a].Y, s.pts[b].Y)
	})

	winXMin := math.Ceil(window.LLx)
	winXMax := math.Floor(window.URx) - 1
	yFirst := max(math.Ceil(window.LLy), math.Ceil(s.pts[s.order[0]].Y-0.5))
	yLast := min(math.Floor(window.URy)-1, math.Floor(s.pts[s.order[n-1]].Y-0.5))
	if yFirst > yLast || winXMin > winXMax {
		return
	}

	s.active = s.active[:0]
	k := 0
	for y := int(yFirst); y <= int(yLast); y++ {
		yc := float64(y) + 0.5

		// update the active edges for all vertices passed by the sample line
		for ; k < n && s.pts[s.order[k]].Y <= yc; k++ {
			i := s.order[k]

			j := s.prev[i]
			if s.pts[j].Y <= yc-1 {
				s.removeEdge(j)
			} else if s.pts[j].Y > yc {
				s.insertEdge(j, yc)
			}

			j = s.next[i]
			if s.pts[j].Y <= yc-1 {
				s.removeEdge(i)
			} else if s.pts[j].Y > yc {
				s.insertEdge(i, yc)
			}
		}

		slices.SortFunc(s.active, func(a, b activeEdge) int {
			return cmp.Compare(a.x, b.x)
		})

		// pair up the crossings: (0,1), (2,3), ...
		s.spans = s.spans[:0]
		for j := 0; j+1 < len(s.active); j += 2 {
			xl, xr := s.active[j].x, s.active[j+1].x
			if xl >= xr {
				continue // zero width
			}
			pixL := max(math.Ceil(xl-0.5), winXMin)
			pixR := min(math.Floor(xr-0.5), winXMax)
			if pixL <= pixR {
				s.spans = append(s.spans, Span{XMin: int(pixL), XMax: int(pixR)})
			}
		}

		for j := range s.active {
			s.active[j].x += s.active[j].dxdy
		}

		if len(s.spans) > 0 && !yield(y, s.spans) {
			return
		}
	}
}

// insertEdge activates the edge from vertex i to its successor, with the
// x-intercept evaluated at the sample line yc.
func (s *Scanner) insertEdge(i int, yc float64) {
	p, q := s.pts[i], s.pts[s.next[i]]
	if p.Y > q.Y {
		p, q = q, p
	}
	dxdy := (q.X - p.X) / (q.Y - p.Y)
	s.active = append(s.active, activeEdge{
		x:    p.X + dxdy*(yc-p.Y),
		dxdy: dxdy,
		idx:  i,
	})
}

// removeEdge deactivates the edge starting at vertex i, if it is active.
func (s *Scanner) removeEdge(i int) {
	for j := range s.active {
		if s.active[j].idx == i {
			last := len(s.active) - 1
			s.active[j] = s.active[last]
			s.active = s.active[:last]
			return
		}
	}
}

// flattenPath converts every subpath of p into a ring of line segments.
// The results are stored in s.pathRings.
func (s *Scanner) flattenPath(p *path.Data) {
	s.pathPts = s.pathPts[:0]
	s.pathStart = s.pathStart[:0]

	addPoint := func(_, to vec.Vec2) {
		s.pathPts = append(s.pathPts, to)
	}

	var current vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			s.pathStart = append(s.pathStart, len(s.pathPts))
			s.pathPts = append(s.pathPts, current)
			coordIdx++

		case path.CmdLineTo:
			current = p.Coords[coordIdx]
			s.pathPts = append(s.pathPts, current)
			coordIdx++

		case path.CmdQuadTo:
			s.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], addPoint)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			s.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], addPoint)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			// rings are closed implicitly
		}
	}

	s.pathRings = s.pathRings[:0]
	for i, start := range s.pathStart {
		end := len(s.pathPts)
		if i+1 < len(s.pathStart) {
			end = s.pathStart[i+1]
		}
		s.pathRings = append(s.pathRings, s.pathPts[start:end])
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point (current point), p1 is control, p2 is endpoint.
func (s *Scanner) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := s.transformLinear(e).Length()

	n := 1
	if errDev > s.flatness() {
		n = int(math.Ceil(math.Sqrt(errDev / s.flatness())))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint.
func (s *Scanner) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := s.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)) // P0 - 2*P1 + P2
	d2 := s.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * s.flatness()))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

func (s *Scanner) flatness() float64 {
	if s.Flatness > 0 {
		return s.Flatness
	}
	return defaultFlatness
}

// Default values for scanner and brush parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit is the default miter limit, matching PDF/PostScript.
	defaultMiterLimit = 10.0
)
