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
	"fmt"
	"strings"
)

// Move is a packed 16-bit move: bits 0-5 from square, bits 6-11 to
// square, bits 12-13 promotion piece type, bits 14-15 move type. Move
// carries no search metadata (no embedded sort value) - ordering data
// is kept alongside moves by the caller.
type Move uint16

// MoveType distinguishes the four move shapes.
type MoveType uint16

// Move types.
const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// PromotionType indexes the four promotable piece types within a move.
type PromotionType uint16

// Promotion types.
const (
	PromoKnight PromotionType = iota
	PromoBishop
	PromoRook
	PromoQueen
)

const (
	moveFromMask  = 0x003F
	moveToShift   = 6
	moveToMask    = 0x0FC0
	movePromShift = 12
	movePromMask  = 0x3000
	moveTypeShift = 14
	moveTypeMask  = 0xC000
)

// MoveNone represents the absence of a move.
const MoveNone Move = 0

// NewMove builds a Normal move between two squares.
func NewMove(from, to Square) Move {
	return Move(uint16(from) | uint16(to)<<moveToShift)
}

// NewMoveType builds a move of an explicit type, with a promotion type
// that is only meaningful when mt == Promotion.
func NewMoveType(from, to Square, mt MoveType, promo PromotionType) Move {
	return Move(uint16(from) |
		uint16(to)<<moveToShift |
		uint16(promo)<<movePromShift |
		uint16(mt)<<moveTypeShift)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(uint16(m) & moveFromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((uint16(m) & moveToMask) >> moveToShift)
}

// PromotionType returns the promotion piece type encoded in the move.
func (m Move) PromotionType() PromotionType {
	return PromotionType((uint16(m) & movePromMask) >> movePromShift)
}

// PromotionPieceType maps the move's promotion bits to a PieceType.
func (m Move) PromotionPieceType() PieceType {
	switch m.PromotionType() {
	case PromoKnight:
		return Knight
	case PromoBishop:
		return Bishop
	case PromoRook:
		return Rook
	default:
		return Queen
	}
}

// MoveType returns the move's shape.
func (m Move) MoveType() MoveType {
	return MoveType((uint16(m) & moveTypeMask) >> moveTypeShift)
}

// IsValid reports whether m is not MoveNone.
func (m Move) IsValid() bool {
	return m != MoveNone
}

// StringUci renders the move in UCI long algebraic notation, e.g. "e2e4",
// "e7e8q" for a queen promotion.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "-"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += strings.ToLower(m.PromotionPieceType().Char())
	}
	return s
}

func (m Move) String() string {
	if m == MoveNone {
		return "(none)"
	}
	return fmt.Sprintf("%s", m.StringUci())
}
