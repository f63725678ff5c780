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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, one bit per square.
type Bitboard uint64

// BbZero is the empty bitboard.
const BbZero Bitboard = 0

// BbAll has every square set.
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// PushSquare sets the bit for sq.
func (b Bitboard) PushSquare(sq Square) Bitboard {
	return b | (Bitboard(1) << sq)
}

// PopSquare clears the bit for sq.
func (b Bitboard) PopSquare(sq Square) Bitboard {
	return b &^ (Bitboard(1) << sq)
}

// Has reports whether sq is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&(Bitboard(1)<<sq) != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least-significant set square, or SquareNone if empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SquareNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least-significant set square and the bitboard with
// that bit cleared.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	if sq == SquareNone {
		return SquareNone, b
	}
	return sq, b.PopSquare(sq)
}

var fileMask [FileLength]Bitboard
var rankMask [RankLength]Bitboard
var squareBb [SqLength]Bitboard

// knightAttackBb / kingAttackBb are plain precomputed jump tables - not
// the teacher's rotated sliding-attack tables, which have no place in a
// ray-scan attack oracle. Fixed-offset leaper attacks are cheap and
// common to precompute regardless of how sliders are handled.
var knightAttackBb [SqLength]Bitboard
var kingAttackBb [SqLength]Bitboard
var pawnAttackBb [ColorLength][SqLength]Bitboard

func initBb() {
	for f := File(0); f < FileLength; f++ {
		var m Bitboard
		for r := Rank(0); r < RankLength; r++ {
			m = m.PushSquare(SquareOf(f, r))
		}
		fileMask[f] = m
	}
	for r := Rank(0); r < RankLength; r++ {
		var m Bitboard
		for f := File(0); f < FileLength; f++ {
			m = m.PushSquare(SquareOf(f, r))
		}
		rankMask[r] = m
	}
	for sq := Square(0); sq < SqLength; sq++ {
		squareBb[sq] = Bitboard(1) << sq
	}

	knightDeltas := []Direction{
		Direction(2*int(North) + int(East)), Direction(2*int(North) + int(West)),
		Direction(2*int(South) + int(East)), Direction(2*int(South) + int(West)),
		Direction(2*int(East) + int(North)), Direction(2*int(East) + int(South)),
		Direction(2*int(West) + int(North)), Direction(2*int(West) + int(South)),
	}
	kingDeltas := []Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

	for sq := Square(0); sq < SqLength; sq++ {
		for _, d := range knightDeltas {
			if t := sq.To(d); t.IsValid() && knightStepOk(sq, t) {
				knightAttackBb[sq] = knightAttackBb[sq].PushSquare(t)
			}
		}
		for _, d := range kingDeltas {
			if t := sq.To(d); t.IsValid() {
				kingAttackBb[sq] = kingAttackBb[sq].PushSquare(t)
			}
		}
		if t := sq.To(Northeast); t.IsValid() {
			pawnAttackBb[White][sq] = pawnAttackBb[White][sq].PushSquare(t)
		}
		if t := sq.To(Northwest); t.IsValid() {
			pawnAttackBb[White][sq] = pawnAttackBb[White][sq].PushSquare(t)
		}
		if t := sq.To(Southeast); t.IsValid() {
			pawnAttackBb[Black][sq] = pawnAttackBb[Black][sq].PushSquare(t)
		}
		if t := sq.To(Southwest); t.IsValid() {
			pawnAttackBb[Black][sq] = pawnAttackBb[Black][sq].PushSquare(t)
		}
	}
}

// knightStepOk rejects knight "jumps" that wrapped around a board edge:
// Square.To() only guards single-file steps, so a two-step composite
// delta needs an explicit file-distance check.
func knightStepOk(from, to Square) bool {
	df := int(from.FileOf()) - int(to.FileOf())
	if df < 0 {
		df = -df
	}
	dr := int(from.RankOf()) - int(to.RankOf())
	if dr < 0 {
		dr = -dr
	}
	return (df == 1 && dr == 2) || (df == 2 && dr == 1)
}

// FileMask returns all squares on file f.
func FileMask(f File) Bitboard { return fileMask[f] }

// RankMask returns all squares on rank r.
func RankMask(r Rank) Bitboard { return rankMask[r] }

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttackBb[sq] }

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) Bitboard { return kingAttackBb[sq] }

// PawnAttacks returns the pawn capture set from sq for color c.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttackBb[c][sq] }

func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank(0); r < RankLength; r++ {
		for f := File(0); f < FileLength; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("1")
			} else {
				sb.WriteString("0")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
