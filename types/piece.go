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

// Piece is one of the twelve colored piece kinds, flat-indexed 0..11.
type Piece int8

// Pieces.
const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceLength
	NoPiece = PieceLength
)

var pieceChar = "PNBRQKpnbrqk"

var pieceTypeOf = [PieceLength]PieceType{
	Pawn, Knight, Bishop, Rook, Queen, King,
	Pawn, Knight, Bishop, Rook, Queen, King,
}

var colorOf = [PieceLength]Color{
	White, White, White, White, White, White,
	Black, Black, Black, Black, Black, Black,
}

// MakePiece builds the Piece for a color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if !pt.IsValid() {
		return NoPiece
	}
	if c == White {
		return Piece(pt - 1)
	}
	return Piece(pt - 1 + 6)
}

// TypeOf returns the piece type regardless of color.
func (p Piece) TypeOf() PieceType {
	if p < 0 || p >= PieceLength {
		return PtNone
	}
	return pieceTypeOf[p]
}

// ColorOf returns the owning color.
func (p Piece) ColorOf() Color {
	if p < 0 || p >= PieceLength {
		return ColorNone
	}
	return colorOf[p]
}

// ValueOf returns the static material value of the piece.
func (p Piece) ValueOf() int {
	return p.TypeOf().ValueOf()
}

// IsValid reports whether p is a real piece.
func (p Piece) IsValid() bool {
	return p >= 0 && p < PieceLength
}

// Char returns the piece's FEN letter (uppercase for White).
func (p Piece) Char() string {
	if !p.IsValid() {
		return "-"
	}
	return string(pieceChar[p])
}

func (p Piece) String() string {
	if !p.IsValid() {
		return "NoPiece"
	}
	return fmt.Sprintf("%s%s", p.ColorOf(), p.Char())
}
