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

import "fmt"

// Op selects how a label value is combined with an existing pixel.
type Op int

// The supported pixel combinators.
const (
	Assign Op = iota // pixel = value
	And              // pixel = pixel & value
	Or               // pixel = pixel | value
	Xor              // pixel = pixel ^ value
)

func (op Op) String() string {
	switch op {
	case Assign:
		return "assign"
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Valid reports whether op is one of the defined combinators.
func (op Op) Valid() bool {
	return op >= Assign && op <= Xor
}

// BoolOp is a combinator together with its label operand.
type BoolOp struct {
	Op    Op
	Value Label
}

// Apply returns the new value of a pixel which currently holds old.
func (b BoolOp) Apply(old Label) Label {
	switch b.Op {
	case Assign:
		return b.Value
	case And:
		return old & b.Value
	case Or:
		return old | b.Value
	case Xor:
		return old ^ b.Value
	}
	return old
}

func (b BoolOp) String() string {
	return fmt.Sprintf("%s %d", b.Op, b.Value)
}
