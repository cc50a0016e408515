// Command export writes the editing scenarios to JSON, for comparison with
// external segmentation tools.
// Run from the segedit module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/segedit/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Base       uint8         `json:"base"`
	Path       []jsonSegment `json:"path"`
	CTM        []float64     `json:"ctm,omitempty"`
	Op         string        `json:"op"`
	Mode       string        `json:"mode"`
	Value      uint8         `json:"value"`
	Gate       []int         `json:"gate,omitempty"`
	LineWidth  float64       `json:"line_width,omitempty"`
	LineCap    string        `json:"line_cap,omitempty"`
	LineJoin   string        `json:"line_join,omitempty"`
	MiterLimit float64       `json:"miter_limit,omitempty"`
	Closed     bool          `json:"closed,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Base:   tc.Base,
		Mode:   tc.Mode.String(),
		Value:  tc.Value,
	}
	if tc.Path != nil {
		jtc.Path = pathToJSON(tc.Path.Iter())
	} else {
		jtc.Path = ringsToJSON(tc.Rings)
	}
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		jtc.CTM = tc.CTM[:]
	}
	if !tc.Gate.Empty() {
		jtc.Gate = []int{tc.Gate.Min.X, tc.Gate.Min.Y, tc.Gate.Max.X, tc.Gate.Max.Y}
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.LineWidth = op.Width
		jtc.LineCap = op.Cap.String()
		jtc.LineJoin = op.Join.String()
		jtc.MiterLimit = op.MiterLimit
		jtc.Closed = op.Closed
	}
	return jtc
}

func ringsToJSON(rings [][]vec.Vec2) []jsonSegment {
	var segs []jsonSegment
	for _, ring := range rings {
		for i, pt := range ring {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			segs = append(segs, jsonSegment{Cmd: cmd, Pts: [][]float64{{pt.X, pt.Y}}})
		}
		segs = append(segs, jsonSegment{Cmd: "Z", Pts: [][]float64{}})
	}
	return segs
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
