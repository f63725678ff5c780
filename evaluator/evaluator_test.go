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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pelicanchess/engine/position"
	. "github.com/pelicanchess/engine/types"
)

func TestEvaluateStartPositionIsJustTempo(t *testing.T) {
	e := NewEvaluator()
	p := position.NewStartPosition()
	assert.Equal(t, Value(tempoBonus), e.Evaluate(&p))
}

func TestEvaluateFavorsSideWithExtraQueen(t *testing.T) {
	e := NewEvaluator()
	// White has an extra queen on d4 against a bare black king.
	p, err := position.NewPositionFen("4k3/8/8/8/3Q4/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, int(e.Evaluate(&p)), 0)
}

func TestEvaluateIsAntisymmetricUnderSideToMove(t *testing.T) {
	e := NewEvaluator()
	white, err := position.NewPositionFen("4k3/8/8/8/3Q4/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	black, err := position.NewPositionFen("4k3/8/8/8/3Q4/8/8/4K3 b - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, int(e.Evaluate(&white))-2*tempoBonus, -int(e.Evaluate(&black)))
}

func TestMaterialCountsStartingArmy(t *testing.T) {
	p := position.NewStartPosition()
	// 8 pawns + 2 knights + 2 bishops + 2 rooks + 1 queen, king excluded.
	want := 8*Pawn.ValueOf() + 2*Knight.ValueOf() + 2*Bishop.ValueOf() + 2*Rook.ValueOf() + Queen.ValueOf()
	assert.Equal(t, want, material(&p, White))
	assert.Equal(t, want, material(&p, Black))
}

func TestPstValueMirrorsBetweenColors(t *testing.T) {
	e4, err := MakeSquare("e4")
	assert.NoError(t, err)
	e5, err := MakeSquare("e5")
	assert.NoError(t, err)
	mgW, egW := pstValue(Pawn, e4, White)
	mgB, egB := pstValue(Pawn, e5, Black)
	assert.Equal(t, mgW, mgB)
	assert.Equal(t, egW, egB)
}
