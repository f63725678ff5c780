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

// Package evaluator provides a minimal static position evaluator:
// material plus piece-square tables, blended by game phase, plus a
// small tempo bonus. It exists so the engine is runnable end to end;
// evaluation tuning itself is out of scope.
package evaluator

import (
	"github.com/pelicanchess/engine/position"
	. "github.com/pelicanchess/engine/types"
)

// Evaluator computes a static value for a position from the side to
// move's perspective.
type Evaluator struct{}

// NewEvaluator creates a default Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

const tempoBonus = 10

// Evaluate returns the position's static value from the side to move's
// perspective: positive favors the side to move.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	white := material(p, White) + positional(p, White)
	black := material(p, Black) + positional(p, Black)
	value := Value(white - black)
	if p.SideToMove() == Black {
		value = -value
	}
	return value + tempoBonus
}

func material(p *position.Position, c Color) int {
	total := 0
	for pt := Pawn; pt < King; pt++ {
		total += p.Pieces(c, pt).PopCount() * pt.ValueOf()
	}
	return total
}

func positional(p *position.Position, c Color) int {
	phase := p.GamePhase()
	total := 0
	for pt := Pawn; pt < PtLength; pt++ {
		bb := p.Pieces(c, pt)
		for bb != 0 {
			var sq Square
			sq, bb = bb.PopLsb()
			mg, eg := pstValue(pt, sq, c)
			total += (mg*phase + eg*(24-phase)) / 24
		}
	}
	return total
}
