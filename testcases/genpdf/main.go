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

// Command genpdf generates preview images for the editing scenarios.
// Each scenario is applied to a fresh raster; the resulting labels are
// drawn as gray levels, with the outline on top. The PDFs are rendered to
// PNGs using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/segedit"
	"seehuhn.de/go/segedit/testcases"
)

const previewDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(previewDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(previewDir, name+".pdf")
			pngPath := filepath.Join(previewDir, name+".png")

			r, err := apply(tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := generatePDF(tc, r, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// apply runs a scenario on a fresh raster.
func apply(tc testcases.TestCase) (*segedit.Raster, error) {
	r := segedit.NewRaster(tc.Width, tc.Height)
	r.Fill(tc.Base)

	var mask *segedit.Raster
	if !tc.Gate.Empty() {
		mask = segedit.NewRaster(tc.Width, tc.Height)
		for y := tc.Gate.Min.Y; y < tc.Gate.Max.Y; y++ {
			for x := tc.Gate.Min.X; x < tc.Gate.Max.X; x++ {
				mask.Set(x, y, 1)
			}
		}
	}

	c := segedit.NewCombiner(nil)
	c.Scanner.CTM = tc.CTM
	op := segedit.BoolOp{Op: segedit.Op(tc.Mode), Value: tc.Value}

	switch o := tc.Op.(type) {
	case testcases.Stroke:
		b := &segedit.Brush{
			Width:      o.Width,
			Cap:        o.Cap,
			Join:       o.Join,
			MiterLimit: o.MiterLimit,
		}
		return r, c.Stroke(r, tc.Rings[0], o.Closed, b, op, mask)
	default:
		if tc.Path != nil {
			return r, c.CombinePath(r, tc.Path, op, mask)
		}
		return r, c.CombineRings(r, tc.Rings, op, mask)
	}
}

func generatePDF(tc testcases.TestCase, r *segedit.Raster, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; rasters use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	// one rectangle per run of equal labels
	maxLabel := max(tc.Value, tc.Base, 1)
	for y := range r.Height() {
		row := r.Row(y)
		for x := 0; x < len(row); {
			end := x + 1
			for end < len(row) && row[end] == row[x] {
				end++
			}
			if v := row[x]; v != 0 {
				gray := 0.2 + 0.8*float64(min(v, maxLabel))/float64(maxLabel)
				page.SetFillColor(color.DeviceGray(gray))
				page.Rectangle(float64(x), float64(y), float64(end-x), 1)
				page.Fill()
			}
			x = end
		}
	}

	if !tc.Gate.Empty() {
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(0.5)
		g := tc.Gate
		page.Rectangle(float64(g.Min.X), float64(g.Min.Y), float64(g.Dx()), float64(g.Dy()))
		page.Stroke()
	}

	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}

	page.SetStrokeColor(color.DeviceGray(0.6))
	page.SetLineWidth(0.3)
	page.SetLineJoin(graphics.LineJoinRound)
	if tc.Path != nil {
		// convert quadratic to cubic (PDF doesn't support quadratic)
		for cmd, pts := range tc.Path.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	} else {
		closed := true
		if st, ok := tc.Op.(testcases.Stroke); ok {
			closed = st.Closed
		}
		for _, ring := range tc.Rings {
			for i, pt := range ring {
				if i == 0 {
					page.MoveTo(pt.X, pt.Y)
				} else {
					page.LineTo(pt.X, pt.Y)
				}
			}
			if closed && len(ring) > 0 {
				page.ClosePath()
			}
		}
	}
	page.Stroke()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r288: 4 output pixels per raster pixel, so the outline stays visible
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r288",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
