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

// Package moveslice is a thin slice facade over a list of moves.
package moveslice

import (
	"sort"
	"strings"

	. "github.com/pelicanchess/engine/types"
)

// MoveSlice is a list of moves.
type MoveSlice []Move

// New creates an empty MoveSlice with the given capacity.
func New(capacity int) MoveSlice {
	return make(MoveSlice, 0, capacity)
}

// PushBack appends m to the end of the slice.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// Clear empties the slice while keeping its backing array.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Len returns the number of moves.
func (ms MoveSlice) Len() int {
	return len(ms)
}

// At returns the move at index i.
func (ms MoveSlice) At(i int) Move {
	return ms[i]
}

// SortBy sorts the slice descending by the given key function. Since
// Move carries no embedded sort value, the caller supplies how to score
// a move (e.g. MVV-LVA value, history-heuristic count).
func (ms MoveSlice) SortBy(score func(Move) int) {
	sort.SliceStable(ms, func(i, j int) bool {
		return score(ms[i]) > score(ms[j])
	})
}

func (ms MoveSlice) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, m := range ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// StringUci renders the moves space separated in UCI notation.
func (ms MoveSlice) StringUci() string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.StringUci()
	}
	return strings.Join(parts, " ")
}
