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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pelicanchess/engine/position"
	. "github.com/pelicanchess/engine/types"
)

func containsMove(ms interface {
	Len() int
	At(int) Move
}, from, to Square) bool {
	for i := 0; i < ms.Len(); i++ {
		m := ms.At(i)
		if m.From() == from && m.To() == to {
			return true
		}
	}
	return false
}

func TestCastlingGeneratedWhenClear(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	moves := GenerateLegal(&p, GenAll)
	e1, _ := MakeSquare("e1")
	g1, _ := MakeSquare("g1")
	c1, _ := MakeSquare("c1")
	assert.True(t, containsMove(moves, e1, g1))
	assert.True(t, containsMove(moves, e1, c1))
}

func TestCastlingBlockedByPieceBetween(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1")
	assert.NoError(t, err)
	moves := GenerateLegal(&p, GenAll)
	e1, _ := MakeSquare("e1")
	g1, _ := MakeSquare("g1")
	assert.False(t, containsMove(moves, e1, g1))
}

func TestCastlingBlockedByAttackedTransitSquare(t *testing.T) {
	// Black rook on f2 attacks f1, the king's transit square for O-O.
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	moves := GenerateLegal(&p, GenAll)
	e1, _ := MakeSquare("e1")
	g1, _ := MakeSquare("g1")
	assert.False(t, containsMove(moves, e1, g1))
}

func TestCastlingNotAllowedWhileInCheck(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	moves := GenerateLegal(&p, GenAll)
	e1, _ := MakeSquare("e1")
	g1, _ := MakeSquare("g1")
	c1, _ := MakeSquare("c1")
	assert.False(t, containsMove(moves, e1, g1))
	assert.False(t, containsMove(moves, e1, c1))
}

func TestEnPassantCaptureGenerated(t *testing.T) {
	p, err := position.NewPositionFen("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	assert.NoError(t, err)
	moves := GeneratePseudoLegal(&p, GenCaptures)
	e5, _ := MakeSquare("e5")
	f6, _ := MakeSquare("f6")
	found := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() == e5 && m.To() == f6 && m.MoveType() == EnPassant {
			found = true
		}
	}
	assert.True(t, found)
}

func TestPromotionGeneratesAllFourPieceTypes(t *testing.T) {
	p, err := position.NewPositionFen("8/P7/8/8/4k3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	moves := GenerateLegal(&p, GenAll)
	a7, _ := MakeSquare("a7")
	a8, _ := MakeSquare("a8")
	promos := map[PieceType]bool{}
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() == a7 && m.To() == a8 && m.MoveType() == Promotion {
			promos[m.PromotionPieceType()] = true
		}
	}
	assert.Len(t, promos, 4)
	assert.True(t, promos[Queen])
	assert.True(t, promos[Rook])
	assert.True(t, promos[Bishop])
	assert.True(t, promos[Knight])
}

func TestIsLegalRejectsMoveThatExposesOwnKing(t *testing.T) {
	// White king e1, white bishop pinned on e2 by a black rook on e8.
	p, err := position.NewPositionFen("4r3/8/8/8/8/8/4B3/4K3 w - - 0 1")
	assert.NoError(t, err)
	e2, _ := MakeSquare("e2")
	d3, _ := MakeSquare("d3")
	m := NewMove(e2, d3)
	assert.False(t, IsLegal(&p, m))
}

func TestHasLegalMoveFalseOnCheckmate(t *testing.T) {
	// Fool's mate: black queen on h4 delivers mate along the h4-e1
	// diagonal to a white king boxed in by its own pieces.
	p, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)
	assert.False(t, HasLegalMove(&p))
	assert.True(t, p.IsInCheck(White))
}

func TestHasLegalMoveTrueAtStart(t *testing.T) {
	p := position.NewStartPosition()
	assert.True(t, HasLegalMove(&p))
}
