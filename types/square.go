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

// Square is a board square, numbered 0..63 in the same order a FEN
// placement field is read: square 0 is a8, square 7 is h8, square 56
// is a1, square 63 is h1. That is, rank 0 is the
// 8th rank and rank index increases going down the board toward White's
// side.
type Square uint8

// File is the column of a square, 0 = file a .. 7 = file h.
type File uint8

// Rank is the row of a square, 0 = the 8th rank .. 7 = the 1st rank.
type Rank uint8

// Files.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileLength
	FileNone = FileLength
)

// Ranks. Rank8 (index 0) is the 8th rank (top of the board from White's view).
const (
	Rank8 Rank = iota
	Rank7
	Rank6
	Rank5
	Rank4
	Rank3
	Rank2
	Rank1
	RankLength
	RankNone = RankLength
)

// SquareNone represents "no square".
const SquareNone Square = 64

func (f File) String() string {
	return string(rune('a' + int(f)))
}

func (r Rank) String() string {
	return string(rune('8' - int(r)))
}

// SquareOf builds a square from a file and a rank.
func SquareOf(f File, r Rank) Square {
	return Square(uint8(r)*8 + uint8(f))
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq % 8)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq / 8)
}

// IsValid reports whether the square is on the board.
func (sq Square) IsValid() bool {
	return sq < SqLength
}

// To returns the square one step in direction d from sq, or SquareNone
// if that step would leave the board.
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SquareNone
	}
	f := sq.FileOf()
	switch d {
	case East, Northeast, Southeast:
		if f == FileH {
			return SquareNone
		}
	case West, Northwest, Southwest:
		if f == FileA {
			return SquareNone
		}
	}
	t := int(sq) + int(d)
	if t < 0 || t >= SqLength {
		return SquareNone
	}
	return Square(t)
}

// MakeSquare parses a square in algebraic notation, e.g. "e4".
func MakeSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SquareNone, fmt.Errorf("invalid square %q", s)
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SquareNone, fmt.Errorf("invalid square %q", s)
	}
	file := File(f - 'a')
	rank := Rank('8' - r)
	return SquareOf(file, rank), nil
}

// String renders the square in algebraic notation.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}
