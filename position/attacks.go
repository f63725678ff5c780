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
	. "github.com/pelicanchess/engine/types"
)

var bishopDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}
var rookDirs = [4]Direction{North, South, East, West}
var queenDirs = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

// RayAttacks scans from sq in direction d until it hits the edge of the
// board or a blocker in occupied, including the blocker square itself.
// This is the attack oracle's ray-scan primitive - no magic/rotated
// bitboard tables are used.
func RayAttacks(sq Square, d Direction, occupied Bitboard) Bitboard {
	var bb Bitboard
	cur := sq
	for {
		next := cur.To(d)
		if !next.IsValid() {
			break
		}
		bb = bb.PushSquare(next)
		if occupied.Has(next) {
			break
		}
		cur = next
	}
	return bb
}

func slidingAttacks(sq Square, occupied Bitboard, dirs []Direction) Bitboard {
	var bb Bitboard
	for _, d := range dirs {
		bb |= RayAttacks(sq, d, occupied)
	}
	return bb
}

// AttacksFrom returns the squares attacked by a piece of type pt standing
// on sq, given the current occupancy.
func AttacksFrom(pt PieceType, sq Square, occupied Bitboard, c Color) Bitboard {
	switch pt {
	case Pawn:
		return PawnAttacks(c, sq)
	case Knight:
		return KnightAttacks(sq)
	case Bishop:
		return slidingAttacks(sq, occupied, bishopDirs[:])
	case Rook:
		return slidingAttacks(sq, occupied, rookDirs[:])
	case Queen:
		return slidingAttacks(sq, occupied, queenDirs[:])
	case King:
		return KingAttacks(sq)
	default:
		return BbZero
	}
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	occ := p.allOccupied
	if KnightAttacks(sq)&p.piecesBB[by][Knight] != 0 {
		return true
	}
	if KingAttacks(sq)&p.piecesBB[by][King] != 0 {
		return true
	}
	// Pawn attacks are "from the attacker's perspective" tables; to ask
	// "is sq attacked by a pawn of color by" we look up the attack set
	// for the opposite color standing on sq.
	if PawnAttacks(by.Flip(), sq)&p.piecesBB[by][Pawn] != 0 {
		return true
	}
	if slidingAttacks(sq, occ, bishopDirs[:])&(p.piecesBB[by][Bishop]|p.piecesBB[by][Queen]) != 0 {
		return true
	}
	if slidingAttacks(sq, occ, rookDirs[:])&(p.piecesBB[by][Rook]|p.piecesBB[by][Queen]) != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	return p.IsSquareAttacked(p.kingSquare[p.sideToMove], p.sideToMove.Flip())
}

// IsInCheck reports whether the given color's king is attacked.
func (p *Position) IsInCheck(c Color) bool {
	return p.IsSquareAttacked(p.kingSquare[c], c.Flip())
}
