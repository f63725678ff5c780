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

// Package movegen generates pseudo-legal and legal moves for a position
// using the ray-scan attack oracle in the position package.
package movegen

import (
	"github.com/pelicanchess/engine/moveslice"
	"github.com/pelicanchess/engine/position"
	. "github.com/pelicanchess/engine/types"
)

// GenMode selects which classes of moves to generate.
type GenMode uint8

// Generation modes.
const (
	GenCaptures GenMode = 1 << iota
	GenNonCaptures
	GenAll = GenCaptures | GenNonCaptures
)

// GeneratePseudoLegal returns every pseudo-legal move for the side to
// move in mode. Pseudo-legal moves may leave the mover's own king in
// check; use GenerateLegal or filter with IsLegalAfter.
func GeneratePseudoLegal(p *position.Position, mode GenMode) moveslice.MoveSlice {
	moves := moveslice.New(MaxMoves)
	us := p.SideToMove()
	them := us.Flip()
	occ := p.AllOccupied()
	ownOcc := p.Occupied(us)
	oppOcc := p.Occupied(them)

	generatePawnMoves(p, &moves, us, them, mode)

	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen, King} {
		bb := p.Pieces(us, pt)
		for bb != 0 {
			var from Square
			from, bb = bb.PopLsb()
			attacks := position.AttacksFrom(pt, from, occ, us) &^ ownOcc
			if mode == GenCaptures {
				attacks &= oppOcc
			} else if mode == GenNonCaptures {
				attacks &^= oppOcc
			}
			for attacks != 0 {
				var to Square
				to, attacks = attacks.PopLsb()
				moves.PushBack(NewMove(from, to))
			}
		}
	}

	if mode&GenNonCaptures != 0 {
		generateCastling(p, &moves, us)
	}
	return moves
}

func generatePawnMoves(p *position.Position, moves *moveslice.MoveSlice, us, them Color, mode GenMode) {
	pawns := p.Pieces(us, Pawn)
	occ := p.AllOccupied()
	oppOcc := p.Occupied(them)
	forward := us.MoveDirection()

	bb := pawns
	for bb != 0 {
		var from Square
		from, bb = bb.PopLsb()

		// Captures (including promotion-captures).
		if mode&GenCaptures != 0 {
			caps := PawnAttacksFrom(us, from) & oppOcc
			for caps != 0 {
				var to Square
				to, caps = caps.PopLsb()
				addPawnMoves(moves, from, to, us, Normal)
			}
			// En passant.
			if ep := p.EnPassantSquare(); ep.IsValid() {
				if PawnAttacksFrom(us, from).Has(ep) {
					moves.PushBack(NewMoveType(from, ep, EnPassant, 0))
				}
			}
		}

		if mode&GenNonCaptures != 0 {
			one := from.To(forward)
			if one.IsValid() && !occ.Has(one) {
				addPawnMoves(moves, from, one, us, Normal)
				two := one.To(forward)
				if two.IsValid() && !occ.Has(two) && pawnOnStartRank(us, from) {
					moves.PushBack(NewMove(from, two))
				}
			}
		}
	}
}

func pawnOnStartRank(c Color, sq Square) bool {
	if c == White {
		return sq.RankOf() == Rank2
	}
	return sq.RankOf() == Rank7
}

// PawnAttacksFrom returns the capture squares for a pawn of color c on sq.
func PawnAttacksFrom(c Color, sq Square) Bitboard {
	return position.AttacksFrom(Pawn, sq, 0, c)
}

func addPawnMoves(moves *moveslice.MoveSlice, from, to Square, c Color, mt MoveType) {
	isPromo := to.RankOf() == Rank8 && c == White || to.RankOf() == Rank1 && c == Black
	if !isPromo {
		moves.PushBack(NewMoveType(from, to, mt, 0))
		return
	}
	for _, pr := range []PromotionType{PromoQueen, PromoRook, PromoBishop, PromoKnight} {
		moves.PushBack(NewMoveType(from, to, Promotion, pr))
	}
}

func generateCastling(p *position.Position, moves *moveslice.MoveSlice, us Color) {
	cr := p.CastlingRights()
	occ := p.AllOccupied()
	them := us.Flip()

	rank := Rank1
	if us == Black {
		rank = Rank8
	}
	kingFrom := SquareOf(FileE, rank)
	if p.KingSquare(us) != kingFrom {
		return
	}
	if p.IsSquareAttacked(kingFrom, them) {
		return
	}

	ooRight, oooRight := CastlingWhiteOO, CastlingWhiteOOO
	if us == Black {
		ooRight, oooRight = CastlingBlackOO, CastlingBlackOOO
	}

	if cr.Has(ooRight) {
		f, g := SquareOf(FileF, rank), SquareOf(FileG, rank)
		if !occ.Has(f) && !occ.Has(g) &&
			!p.IsSquareAttacked(f, them) && !p.IsSquareAttacked(g, them) {
			moves.PushBack(NewMoveType(kingFrom, g, Castling, 0))
		}
	}
	if cr.Has(oooRight) {
		d, c, b := SquareOf(FileD, rank), SquareOf(FileC, rank), SquareOf(FileB, rank)
		if !occ.Has(d) && !occ.Has(c) && !occ.Has(b) &&
			!p.IsSquareAttacked(d, them) && !p.IsSquareAttacked(c, them) {
			moves.PushBack(NewMoveType(kingFrom, c, Castling, 0))
		}
	}
}

// IsLegal reports whether making m on p leaves the mover's own king safe.
func IsLegal(p *position.Position, m Move) bool {
	us := p.SideToMove()
	next := p.MakeMove(m)
	return !next.IsInCheck(us)
}

// GenerateLegal returns only the legal moves for the side to move.
func GenerateLegal(p *position.Position, mode GenMode) moveslice.MoveSlice {
	pseudo := GeneratePseudoLegal(p, mode)
	legal := moveslice.New(pseudo.Len())
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if IsLegal(p, m) {
			legal.PushBack(m)
		}
	}
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, used to distinguish checkmate/stalemate from an ongoing game.
func HasLegalMove(p *position.Position) bool {
	pseudo := GeneratePseudoLegal(p, GenAll)
	for i := 0; i < pseudo.Len(); i++ {
		if IsLegal(p, pseudo.At(i)) {
			return true
		}
	}
	return false
}
