// Package testcases provides editing scenarios for testing the polygon
// scan converter, the region combiner and the brush.
//
// Scenarios place pixel centres away from polygon edges, so that the
// expected result does not depend on how boundary ties are resolved.
package testcases

// All maps category names to test cases.
var All = map[string][]TestCase{
	"fill":   fillCases,
	"rings":  ringsCases,
	"curve":  curveCases,
	"ctm":    ctmCases,
	"stroke": strokeCases,
	"gate":   gateCases,
}
