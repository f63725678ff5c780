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

// Package position implements the board representation: a value-type
// Position updated by copying (no undo stack), Zobrist hashing, FEN-like
// placement parsing, and the ray-scan attack oracle.
package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/pelicanchess/engine/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the full state of a chess position. It is a value type:
// making a move returns a new Position rather than mutating history in
// place, so the search explores the tree by copying positions.
type Position struct {
	board      [SqLength]Piece
	piecesBB   [ColorLength][PtLength]Bitboard
	occupied   [ColorLength]Bitboard
	allOccupied Bitboard

	sideToMove      Color
	castlingRights  CastlingRights
	epSquare        Square
	halfMoveClock   int
	fullMoveNumber  int
	kingSquare      [ColorLength]Square

	zobristKey Key

	// history holds the Zobrist key of every position reached since the
	// FEN was set, oldest first; irreversible moves do not trim it. Used
	// by IsRepetition. Each move copies it into a fresh backing array, so
	// it is never shared across branches.
	history []Key
}

// NewStartPosition returns the standard initial position.
func NewStartPosition() Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in start fen: %v", err))
	}
	return p
}

// NewPositionFen parses a FEN-like string into a Position.
func NewPositionFen(fen string) (Position, error) {
	var p Position
	for i := range p.board {
		p.board[i] = NoPiece
	}
	p.epSquare = SquareNone

	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("position: invalid fen %q: need at least 4 fields", fen)
	}

	if err := p.setPlacement(fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return Position{}, fmt.Errorf("position: invalid side to move %q", fields[1])
	}

	p.castlingRights = CastlingNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castlingRights.Add(CastlingWhiteOO)
			case 'Q':
				p.castlingRights.Add(CastlingWhiteOOO)
			case 'k':
				p.castlingRights.Add(CastlingBlackOO)
			case 'q':
				p.castlingRights.Add(CastlingBlackOOO)
			default:
				return Position{}, fmt.Errorf("position: invalid castling field %q", fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := MakeSquare(fields[3])
		if err != nil {
			return Position{}, fmt.Errorf("position: invalid en passant field %q: %w", fields[3], err)
		}
		p.epSquare = sq
	}

	p.halfMoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err == nil && n >= 0 {
			p.halfMoveClock = n
		}
	}
	p.fullMoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err == nil && n >= 1 {
			p.fullMoveNumber = n
		}
	}

	p.zobristKey = p.computeZobrist()
	p.history = nil
	return p, nil
}

func (p *Position) setPlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != int(RankLength) {
		return fmt.Errorf("position: invalid piece placement %q: need 8 ranks", field)
	}
	for r, rankStr := range ranks {
		f := File(0)
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			pc, err := pieceFromChar(c)
			if err != nil {
				return err
			}
			if f >= FileLength {
				return fmt.Errorf("position: invalid piece placement %q: rank %d overflows", field, r)
			}
			p.putPiece(pc, SquareOf(f, Rank(r)))
			f++
		}
		if f != FileLength {
			return fmt.Errorf("position: invalid piece placement %q: rank %d has %d files", field, r, f)
		}
	}
	return nil
}

func pieceFromChar(c rune) (Piece, error) {
	idx := strings.IndexRune("PNBRQKpnbrqk", c)
	if idx < 0 {
		return NoPiece, fmt.Errorf("position: invalid piece character %q", c)
	}
	return Piece(idx), nil
}

// putPiece places pc on sq, updating the board array, bitboards and the
// king-square cache. Does not touch the Zobrist key; callers that need
// an initial hash call computeZobrist once after setup.
func (p *Position) putPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.piecesBB[c][pt] = p.piecesBB[c][pt].PushSquare(sq)
	p.occupied[c] = p.occupied[c].PushSquare(sq)
	p.allOccupied = p.allOccupied.PushSquare(sq)
	if pt == King {
		p.kingSquare[c] = sq
	}
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	if pc == NoPiece {
		return NoPiece
	}
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.board[sq] = NoPiece
	p.piecesBB[c][pt] = p.piecesBB[c][pt].PopSquare(sq)
	p.occupied[c] = p.occupied[c].PopSquare(sq)
	p.allOccupied = p.allOccupied.PopSquare(sq)
	return pc
}

func (p *Position) movePieceRaw(from, to Square) {
	pc := p.removePiece(from)
	p.putPiece(pc, to)
}

func (p *Position) computeZobrist() Key {
	var k Key
	for sq := Square(0); sq < SqLength; sq++ {
		if pc := p.board[sq]; pc != NoPiece {
			k ^= zobristPiece(pc, sq)
		}
	}
	k ^= zobristCastling(p.castlingRights)
	if p.epSquare.IsValid() {
		k ^= zobristEnPassant(p.epSquare.FileOf())
	}
	if p.sideToMove == Black {
		k ^= zobrist.nextPlayer
	}
	return k
}

// Accessors.

func (p *Position) SideToMove() Color            { return p.sideToMove }
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }
func (p *Position) EnPassantSquare() Square       { return p.epSquare }
func (p *Position) HalfMoveClock() int            { return p.halfMoveClock }
func (p *Position) FullMoveNumber() int           { return p.fullMoveNumber }
func (p *Position) ZobristKey() Key               { return p.zobristKey }
func (p *Position) KingSquare(c Color) Square     { return p.kingSquare[c] }
func (p *Position) PieceOn(sq Square) Piece       { return p.board[sq] }
func (p *Position) Occupied(c Color) Bitboard     { return p.occupied[c] }
func (p *Position) AllOccupied() Bitboard         { return p.allOccupied }
func (p *Position) Pieces(c Color, pt PieceType) Bitboard { return p.piecesBB[c][pt] }

// MaterialNonPawn returns the summed value of c's knights, bishops,
// rooks and queens (zero when c has only pawns and king), used to gate
// null-move pruning.
func (p *Position) MaterialNonPawn(c Color) int {
	total := 0
	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
		total += p.piecesBB[c][pt].PopCount() * pt.ValueOf()
	}
	return total
}

// GamePhase returns a 0..24 game-phase indicator (24 = full material).
func (p *Position) GamePhase() int {
	phase := 0
	for c := Color(0); c < ColorLength; c++ {
		for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
			phase += p.piecesBB[c][pt].PopCount() * pt.GamePhaseValue()
		}
	}
	if phase > 24 {
		phase = 24
	}
	return phase
}

// Fen serializes the position back to FEN.
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := Rank(0); r < RankLength; r++ {
		empty := 0
		for f := File(0); f < FileLength; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != RankLength-1 {
			sb.WriteString("/")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	if p.epSquare.IsValid() {
		sb.WriteString(p.epSquare.String())
	} else {
		sb.WriteString("-")
	}
	sb.WriteString(fmt.Sprintf(" %d %d", p.halfMoveClock, p.fullMoveNumber))
	return sb.String()
}

func (p Position) String() string {
	return p.Fen()
}

func cloneHistory(h []Key) []Key {
	nh := make([]Key, len(h)+1)
	copy(nh, h)
	return nh
}

// MakeMove applies m to a copy of the position and returns the result.
// The receiver is left untouched. This implements the twelve-step
// move algorithm: identify mover/captured piece, remove captured piece
// (including en passant), relocate the moving piece (promoting it if
// required), move the castling rook, update castling rights, update the
// en passant square, update the halfmove clock, advance the fullmove
// number on Black's move, flip the side to move, and incrementally
// update the Zobrist key throughout.
func (p Position) MakeMove(m Move) Position {
	next := p
	next.history = cloneHistory(p.history)
	next.history[len(p.history)] = p.zobristKey

	from, to := m.From(), m.To()
	mover := p.board[from]
	movingColor := mover.ColorOf()
	opp := movingColor.Flip()

	k := p.zobristKey
	k ^= zobristPiece(mover, from)

	captured := NoPiece
	capturedSq := to

	switch m.MoveType() {
	case EnPassant:
		capturedSq = SquareOf(to.FileOf(), from.RankOf())
		captured = next.removePiece(capturedSq)
		k ^= zobristPiece(captured, capturedSq)
	default:
		if c := next.board[to]; c != NoPiece {
			captured = next.removePiece(to)
			k ^= zobristPiece(captured, to)
		}
	}

	next.removePiece(from)

	placed := mover
	if m.MoveType() == Promotion {
		placed = MakePiece(movingColor, m.PromotionPieceType())
	}
	next.putPiece(placed, to)
	k ^= zobristPiece(placed, to)

	if m.MoveType() == Castling {
		rFrom, rTo := castlingRookSquares(to)
		rook := next.removePiece(rFrom)
		k ^= zobristPiece(rook, rFrom)
		next.putPiece(rook, rTo)
		k ^= zobristPiece(rook, rTo)
	}

	// Castling rights.
	k ^= zobristCastling(next.castlingRights)
	next.castlingRights = updatedCastlingRights(next.castlingRights, from, to)
	k ^= zobristCastling(next.castlingRights)

	// En passant square.
	if p.epSquare.IsValid() {
		k ^= zobristEnPassant(p.epSquare.FileOf())
	}
	next.epSquare = SquareNone
	if mover.TypeOf() == Pawn {
		delta := int(to) - int(from)
		if delta == 2*int(North) || delta == 2*int(South) {
			next.epSquare = SquareOf(from.FileOf(), Rank((int(from.RankOf())+int(to.RankOf()))/2))
		}
	}
	if next.epSquare.IsValid() {
		k ^= zobristEnPassant(next.epSquare.FileOf())
	}

	// Halfmove clock.
	if mover.TypeOf() == Pawn || captured != NoPiece {
		next.halfMoveClock = 0
	} else {
		next.halfMoveClock = p.halfMoveClock + 1
	}

	// Fullmove number.
	if movingColor == Black {
		next.fullMoveNumber = p.fullMoveNumber + 1
	}

	// Side to move.
	next.sideToMove = opp
	k ^= zobrist.nextPlayer

	next.zobristKey = k
	_ = capturedSq
	return next
}

// MakeNullMove returns a position with the side to move flipped and no
// piece moved, used by null-move pruning in search.
func (p Position) MakeNullMove() Position {
	next := p
	next.history = cloneHistory(p.history)
	next.history[len(p.history)] = p.zobristKey

	k := p.zobristKey
	if p.epSquare.IsValid() {
		k ^= zobristEnPassant(p.epSquare.FileOf())
	}
	next.epSquare = SquareNone
	next.sideToMove = p.sideToMove.Flip()
	k ^= zobrist.nextPlayer
	next.zobristKey = k
	return next
}

// IsRepetition reports whether the current position's Zobrist key
// appears anywhere in the recorded history.
func (p *Position) IsRepetition() bool {
	for _, k := range p.history {
		if k == p.zobristKey {
			return true
		}
	}
	return false
}

// IsFiftyMoveDraw reports whether the halfmove clock has reached 100
// (fifty full moves without a pawn move or capture).
func (p *Position) IsFiftyMoveDraw() bool {
	return p.halfMoveClock >= 100
}

func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SquareOf(FileG, Rank1):
		return SquareOf(FileH, Rank1), SquareOf(FileF, Rank1)
	case SquareOf(FileC, Rank1):
		return SquareOf(FileA, Rank1), SquareOf(FileD, Rank1)
	case SquareOf(FileG, Rank8):
		return SquareOf(FileH, Rank8), SquareOf(FileF, Rank8)
	case SquareOf(FileC, Rank8):
		return SquareOf(FileA, Rank8), SquareOf(FileD, Rank8)
	default:
		panic(fmt.Sprintf("castlingRookSquares: invalid king destination %v", kingTo))
	}
}

func updatedCastlingRights(cr CastlingRights, from, to Square) CastlingRights {
	switch from {
	case SquareOf(FileE, Rank1):
		cr.Remove(CastlingWhite)
	case SquareOf(FileE, Rank8):
		cr.Remove(CastlingBlack)
	case SquareOf(FileA, Rank1):
		cr.Remove(CastlingWhiteOOO)
	case SquareOf(FileH, Rank1):
		cr.Remove(CastlingWhiteOO)
	case SquareOf(FileA, Rank8):
		cr.Remove(CastlingBlackOOO)
	case SquareOf(FileH, Rank8):
		cr.Remove(CastlingBlackOO)
	}
	switch to {
	case SquareOf(FileA, Rank1):
		cr.Remove(CastlingWhiteOOO)
	case SquareOf(FileH, Rank1):
		cr.Remove(CastlingWhiteOO)
	case SquareOf(FileA, Rank8):
		cr.Remove(CastlingBlackOOO)
	case SquareOf(FileH, Rank8):
		cr.Remove(CastlingBlackOO)
	}
	return cr
}
