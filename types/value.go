/*
 * MIT License
 *
 * Copyright (c) 2020-2026 Pelican Engine Contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import "fmt"

// Value is a centipawn search/evaluation score from the perspective of
// the side to move.
type Value int32

// Value constants.
const (
	ValueZero  Value = 0
	ValueDraw  Value = 0
	ValueInf   Value = 50000
	ValueNA    Value = -(ValueInf + 1)
	ValueMate  Value = 49000
	ValueMateThreshold Value = ValueMate - Value(MaxPly)
)

// IsValid reports whether v is a value that could legitimately occur.
func (v Value) IsValid() bool {
	return v > -ValueInf && v < ValueInf
}

// IsMateValue reports whether v represents a forced mate.
func (v Value) IsMateValue() bool {
	return v >= ValueMateThreshold || v <= -ValueMateThreshold
}

// MatePlies returns the number of plies to the mate encoded in v.
// Only meaningful when IsMateValue(v) is true.
func (v Value) MatePlies() int {
	if v > 0 {
		return int(ValueMate - v)
	}
	return int(ValueMate + v)
}

func (v Value) String() string {
	switch {
	case v == ValueNA:
		return "n/a"
	case v.IsMateValue():
		plies := v.MatePlies()
		moves := (plies + 1) / 2
		if v < 0 {
			moves = -moves
		}
		return fmt.Sprintf("mate %d", moves)
	default:
		return fmt.Sprintf("cp %d", v)
	}
}
