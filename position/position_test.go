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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/pelicanchess/engine/types"
)

func TestNewStartPosition(t *testing.T) {
	p := NewStartPosition()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.False(t, p.EnPassantSquare().IsValid())
	assert.Equal(t, StartFen, p.Fen())
	assert.Equal(t, WhiteRook, p.PieceOn(SquareOf(FileA, Rank1)))
	assert.Equal(t, BlackKing, p.PieceOn(SquareOf(FileE, Rank8)))
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestNewPositionFenInvalid(t *testing.T) {
	_, err := NewPositionFen("not a fen")
	assert.Error(t, err)
}

func TestMakeMoveFlipsSideToMove(t *testing.T) {
	p := NewStartPosition()
	e2, _ := MakeSquare("e2")
	e4, _ := MakeSquare("e4")
	m := NewMove(e2, e4)
	next := p.MakeMove(m)

	assert.Equal(t, Black, next.SideToMove())
	assert.Equal(t, WhitePawn, next.PieceOn(e4))
	assert.Equal(t, NoPiece, next.PieceOn(e2))
	// original untouched - Position is a value type
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, WhitePawn, p.PieceOn(e2))
}

func TestMakeMoveSetsEnPassantSquare(t *testing.T) {
	p := NewStartPosition()
	e2, _ := MakeSquare("e2")
	e4, _ := MakeSquare("e4")
	next := p.MakeMove(NewMove(e2, e4))
	e3, _ := MakeSquare("e3")
	assert.Equal(t, e3, next.EnPassantSquare())
}

func TestMakeMoveCapture(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	assert.NoError(t, err)
	from, _ := MakeSquare("e4")
	to, _ := MakeSquare("d5")
	next := p.MakeMove(NewMove(from, to))
	assert.Equal(t, NoPiece, next.PieceOn(from))
	assert.Equal(t, WhitePawn, next.PieceOn(to))
	assert.Equal(t, 0, next.HalfMoveClock())
}

func TestMakeNullMove(t *testing.T) {
	p := NewStartPosition()
	next := p.MakeNullMove()
	assert.Equal(t, Black, next.SideToMove())
	assert.Equal(t, p.HalfMoveClock(), next.HalfMoveClock())
	assert.Equal(t, p.AllOccupied(), next.AllOccupied())
}

func TestIsFiftyMoveDraw(t *testing.T) {
	p, err := NewPositionFen("8/8/8/4k3/8/8/4K3/8 w - - 99 50")
	assert.NoError(t, err)
	assert.False(t, p.IsFiftyMoveDraw())
	e1, _ := MakeSquare("e1")
	e2, _ := MakeSquare("e2")
	next := p.MakeMove(NewMove(e1, e2))
	assert.True(t, next.IsFiftyMoveDraw())
}

func TestIsRepetition(t *testing.T) {
	p := NewStartPosition()
	g1, _ := MakeSquare("g1")
	f3, _ := MakeSquare("f3")
	g8, _ := MakeSquare("g8")
	f6, _ := MakeSquare("f6")

	assert.False(t, p.IsRepetition())

	p1 := p.MakeMove(NewMove(g1, f3))
	assert.False(t, p1.IsRepetition())

	p2 := p1.MakeMove(NewMove(g8, f6))
	p3 := p2.MakeMove(NewMove(f3, g1))
	p4 := p3.MakeMove(NewMove(f6, g8))
	// p4's hash equals the start position's, already in history once -
	// a single prior occurrence is enough to report a repetition.
	assert.True(t, p4.IsRepetition())

	p5 := p4.MakeMove(NewMove(g1, f3))
	p6 := p5.MakeMove(NewMove(g8, f6))
	p7 := p6.MakeMove(NewMove(f3, g1))
	p8 := p7.MakeMove(NewMove(f6, g8))
	assert.True(t, p8.IsRepetition())
}

func TestGamePhaseFullMaterialIsTwentyFour(t *testing.T) {
	p := NewStartPosition()
	assert.Equal(t, 24, p.GamePhase())
}

func TestIsSquareAttacked(t *testing.T) {
	p, err := NewPositionFen("8/8/8/4k3/8/8/4K2R/8 w - - 0 1")
	assert.NoError(t, err)
	h5, _ := MakeSquare("h5")
	assert.True(t, p.IsSquareAttacked(h5, White))
}
