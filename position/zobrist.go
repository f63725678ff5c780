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

// Key is a 64-bit Zobrist hash of a position.
type Key uint64

type zobristTable struct {
	pieces        [PieceLength][SqLength]Key
	castling      [CastlingLength]Key
	enPassantFile [FileLength]Key
	nextPlayer    Key
}

var zobrist zobristTable

func init() {
	r := newRandom(1070372)
	for p := Piece(0); p < PieceLength; p++ {
		for sq := Square(0); sq < SqLength; sq++ {
			zobrist.pieces[p][sq] = Key(r.rand64())
		}
	}
	for i := range zobrist.castling {
		zobrist.castling[i] = Key(r.rand64())
	}
	for i := range zobrist.enPassantFile {
		zobrist.enPassantFile[i] = Key(r.rand64())
	}
	zobrist.nextPlayer = Key(r.rand64())
}

func zobristPiece(p Piece, sq Square) Key {
	return zobrist.pieces[p][sq]
}

func zobristCastling(cr CastlingRights) Key {
	return zobrist.castling[cr]
}

// zobristEnPassant returns the key to XOR in for an en-passant-capturable
// file. Callers only XOR this in while an en-passant square is set.
func zobristEnPassant(f File) Key {
	return zobrist.enPassantFile[f]
}
