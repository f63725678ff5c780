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

// PieceType is the kind of piece independent of color.
type PieceType int8

// Piece types.
const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength
)

var pieceTypeChar = "-PNBRQK"

var pieceTypeValue = [PtLength]int{0, 100, 320, 330, 500, 900, 20000}

// gamePhaseValue weighs each piece type's contribution to the game phase
// used to blend midgame/endgame evaluation.
var gamePhaseValue = [PtLength]int{0, 0, 1, 1, 2, 4, 0}

// IsValid reports whether pt is a real piece type.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// ValueOf returns the static material value of the piece type.
func (pt PieceType) ValueOf() int {
	return pieceTypeValue[pt]
}

// GamePhaseValue returns the piece type's weight in the game-phase count.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// Char returns the single uppercase letter for the piece type.
func (pt PieceType) Char() string {
	return string(pieceTypeChar[pt])
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}
