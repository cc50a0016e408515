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
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// collectSpans runs a scan and copies all reported spans.
func collectSpans(seq func(yield func(int, []Span) bool)) map[int][]Span {
	res := make(map[int][]Span)
	for y, spans := range seq {
		res[y] = slices.Clone(spans)
	}
	return res
}

func window(w, h float64) rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: w, URy: h}
}

// TestScanTriangle verifies the spans of the triangle (2,2), (8,2), (5,8).
// The left edge is x = 2 + (y-2)/2, the right edge x = 8 - (y-2)/2; a pixel
// belongs to the triangle if its centre lies between the two.
func TestScanTriangle(t *testing.T) {
	s := NewScanner()
	poly := []vec.Vec2{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 5, Y: 8}}
	got := collectSpans(s.Scan(poly, window(10, 10)))

	want := map[int][]Span{
		2: {{2, 7}},
		3: {{3, 6}},
		4: {{3, 6}},
		5: {{4, 5}},
		6: {{4, 5}},
	}
	if len(got) != len(want) {
		t.Errorf("got %d scanlines, want %d", len(got), len(want))
	}
	for y, spans := range want {
		if !slices.Equal(got[y], spans) {
			t.Errorf("row %d: got %v, want %v", y, got[y], spans)
		}
	}
}

func TestScanDegenerate(t *testing.T) {
	s := NewScanner()
	cases := map[string][]vec.Vec2{
		"empty":      nil,
		"point":      {{X: 3.5, Y: 3.5}},
		"line":       {{X: 1, Y: 1}, {X: 8, Y: 8}},
		"horizontal": {{X: 1, Y: 4.5}, {X: 5, Y: 4.5}, {X: 9, Y: 4.5}},
		"collinear":  {{X: 1, Y: 1}, {X: 5, Y: 5}, {X: 9, Y: 9}},
		"vertical":   {{X: 4, Y: 1}, {X: 4, Y: 9}, {X: 4, Y: 5}},
	}
	for name, poly := range cases {
		t.Run(name, func(t *testing.T) {
			for y, spans := range s.Scan(poly, window(10, 10)) {
				t.Errorf("row %d: unexpected spans %v", y, spans)
			}
		})
	}
}

// TestScanHorizontalEdges checks a polygon with several vertices on one
// horizontal line.
func TestScanHorizontalEdges(t *testing.T) {
	s := NewScanner()
	poly := []vec.Vec2{
		{X: 2, Y: 2}, {X: 5, Y: 2}, {X: 8, Y: 2},
		{X: 8, Y: 6}, {X: 5, Y: 6}, {X: 2, Y: 6},
	}
	got := collectSpans(s.Scan(poly, window(10, 10)))
	for y := range 10 {
		var want []Span
		if y >= 2 && y < 6 {
			want = []Span{{2, 7}}
		}
		if !slices.Equal(got[y], want) {
			t.Errorf("row %d: got %v, want %v", y, got[y], want)
		}
	}
}

// TestScanWindow checks that clipping to a window gives the same pixels as
// scanning the whole plane and discarding what lies outside.
func TestScanWindow(t *testing.T) {
	s := NewScanner()
	poly := fivePointStar(20, 20, 18)
	full := collectSpans(s.Scan(poly, window(40, 40)))

	win := rect.Rect{LLx: 12, LLy: 6, URx: 27, URy: 31}
	clipped := collectSpans(s.Scan(poly, win))

	for y := range 40 {
		var want []Span
		if y >= 6 && y < 31 {
			for _, span := range full[y] {
				span.XMin = max(span.XMin, 12)
				span.XMax = min(span.XMax, 26)
				if span.XMin <= span.XMax {
					want = append(want, span)
				}
			}
		}
		if !slices.Equal(clipped[y], want) {
			t.Errorf("row %d: got %v, want %v", y, clipped[y], want)
		}
	}
}

// TestScanBreak checks that iteration can be stopped early.
func TestScanBreak(t *testing.T) {
	s := NewScanner()
	poly := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	rows := 0
	for y := range s.Scan(poly, window(10, 10)) {
		rows++
		if y == 3 {
			break
		}
	}
	if rows != 4 {
		t.Errorf("got %d rows, want 4", rows)
	}

	// the scanner is usable again afterwards
	if got := len(collectSpans(s.Scan(poly, window(10, 10)))); got != 10 {
		t.Errorf("got %d rows after break, want 10", got)
	}
}

// TestScanRingsHole checks that an inner ring cuts a hole.
func TestScanRingsHole(t *testing.T) {
	s := NewScanner()
	rings := [][]vec.Vec2{
		{{X: 1, Y: 1}, {X: 9, Y: 1}, {X: 9, Y: 9}, {X: 1, Y: 9}},
		{{X: 3, Y: 3}, {X: 3, Y: 6}, {X: 7, Y: 6}, {X: 7, Y: 3}},
	}
	got := collectSpans(s.ScanRings(rings, window(10, 10)))
	for y := 1; y < 9; y++ {
		want := []Span{{1, 8}}
		if y >= 3 && y < 6 {
			want = []Span{{1, 2}, {7, 8}}
		}
		if !slices.Equal(got[y], want) {
			t.Errorf("row %d: got %v, want %v", y, got[y], want)
		}
	}
}

// TestScanCTM checks that the transformation is applied to the vertices.
func TestScanCTM(t *testing.T) {
	s := NewScanner()
	s.CTM = matrix.Scale(2, 3).Translate(4, 1)
	unit := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	got := collectSpans(s.Scan(unit, window(10, 10)))

	want := map[int][]Span{
		1: {{4, 5}},
		2: {{4, 5}},
		3: {{4, 5}},
	}
	if len(got) != len(want) {
		t.Errorf("got %d rows, want %d", len(got), len(want))
	}
	for y, spans := range want {
		if !slices.Equal(got[y], spans) {
			t.Errorf("row %d: got %v, want %v", y, got[y], spans)
		}
	}

	// the zero matrix acts as the identity
	s.CTM = matrix.Matrix{}
	got = collectSpans(s.Scan(unit, window(10, 10)))
	if len(got) != 1 || !slices.Equal(got[0], []Span{{0, 0}}) {
		t.Errorf("zero CTM: got %v", got)
	}
}

// TestScanPathCircle compares the area of a scanned circle with πr².
func TestScanPathCircle(t *testing.T) {
	const r = 20.0
	k := 0.5522847498 * r
	c := vec.Vec2{X: 32, Y: 32}
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: c.X + r, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X + r, Y: c.Y + k}, vec.Vec2{X: c.X + k, Y: c.Y + r}, vec.Vec2{X: c.X, Y: c.Y + r}).
		CubeTo(vec.Vec2{X: c.X - k, Y: c.Y + r}, vec.Vec2{X: c.X - r, Y: c.Y + k}, vec.Vec2{X: c.X - r, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X - r, Y: c.Y - k}, vec.Vec2{X: c.X - k, Y: c.Y - r}, vec.Vec2{X: c.X, Y: c.Y - r}).
		CubeTo(vec.Vec2{X: c.X + k, Y: c.Y - r}, vec.Vec2{X: c.X + r, Y: c.Y - k}, vec.Vec2{X: c.X + r, Y: c.Y}).
		Close()

	s := NewScanner()
	area := 0
	for _, spans := range s.ScanPath(p, window(64, 64)) {
		for _, span := range spans {
			area += span.Len()
		}
	}

	want := math.Pi * r * r
	if math.Abs(float64(area)-want) > 2*math.Pi*r*0.5 {
		t.Errorf("got area %d, want approximately %.0f", area, want)
	}
}

// TestScanPathOpen checks that an open subpath is closed implicitly.
func TestScanPathOpen(t *testing.T) {
	s := NewScanner()
	open := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 8, Y: 2}).
		LineTo(vec.Vec2{X: 5, Y: 8})
	closed := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 8, Y: 2}).
		LineTo(vec.Vec2{X: 5, Y: 8}).
		Close()

	a := collectSpans(s.ScanPath(open, window(10, 10)))
	b := collectSpans(s.ScanPath(closed, window(10, 10)))
	if len(a) != 5 || len(a) != len(b) {
		t.Fatalf("got %d and %d rows, want 5", len(a), len(b))
	}
	for y := range a {
		if !slices.Equal(a[y], b[y]) {
			t.Errorf("row %d: %v != %v", y, a[y], b[y])
		}
	}
}

func TestSpanLen(t *testing.T) {
	if n := (Span{XMin: 3, XMax: 3}).Len(); n != 1 {
		t.Errorf("got %d, want 1", n)
	}
	if n := (Span{XMin: -2, XMax: 5}).Len(); n != 8 {
		t.Errorf("got %d, want 8", n)
	}
}

// fivePointStar returns a self-intersecting five-pointed star.
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	star := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(2*i%5)*2*math.Pi/5 - math.Pi/2
		star[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return star
}
