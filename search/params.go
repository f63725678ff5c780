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

package search

import (
	. "github.com/pelicanchess/engine/types"
)

const killersPerPly = 2

// orderingTables holds the per-search move-ordering state: two killer
// slots per ply and a [piece][to-square] history heuristic table keyed
// by depth-squared bonuses on beta cutoffs.
type orderingTables struct {
	killers [MaxPly][killersPerPly]Move
	history [PieceLength][SqLength]int
}

func newOrderingTables() *orderingTables {
	return &orderingTables{}
}

func (o *orderingTables) addKiller(ply int, m Move) {
	if ply >= MaxPly {
		return
	}
	if o.killers[ply][0] == m {
		return
	}
	o.killers[ply][1] = o.killers[ply][0]
	o.killers[ply][0] = m
}

func (o *orderingTables) isKiller(ply int, m Move) bool {
	if ply >= MaxPly {
		return false
	}
	return o.killers[ply][0] == m || o.killers[ply][1] == m
}

func (o *orderingTables) addHistory(pc Piece, to Square, depth int) {
	if !pc.IsValid() {
		return
	}
	o.history[pc][to] += depth * depth
}

func (o *orderingTables) historyScore(pc Piece, to Square) int {
	if !pc.IsValid() {
		return 0
	}
	return o.history[pc][to]
}
