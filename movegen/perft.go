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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pelicanchess/engine/position"
	. "github.com/pelicanchess/engine/types"
)

var out = message.NewPrinter(language.English)

// Perft counts the leaf nodes of the full game tree to a given depth,
// along with a breakdown of move kinds, used to validate the move
// generator against known node counts.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates an empty Perft counter.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a running perft terminate at its next check.
func (pf *Perft) Stop() {
	pf.stopFlag = true
}

// Run computes perft(depth) from the given FEN and fills in the counter
// breakdown. Returns the total node count.
func (pf *Perft) Run(fen string, depth int) (uint64, error) {
	pf.stopFlag = false
	pf.reset()
	if depth <= 0 {
		depth = 1
	}
	p, err := position.NewPositionFen(fen)
	if err != nil {
		return 0, err
	}
	start := time.Now()
	nodes := pf.search(&p, depth)
	elapsed := time.Since(start)
	pf.Nodes = nodes
	nps := uint64(0)
	if elapsed > 0 {
		nps = (nodes * uint64(time.Second)) / uint64(elapsed)
	}
	out.Printf("perft depth %d: %d nodes, %d nps, %s\n", depth, nodes, nps, elapsed)
	return nodes, nil
}

func (pf *Perft) search(p *position.Position, depth int) uint64 {
	if pf.stopFlag {
		return 0
	}
	moves := GeneratePseudoLegal(p, GenAll)
	var total uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		next := p.MakeMove(m)
		if next.IsInCheck(p.SideToMove()) {
			continue
		}
		if depth > 1 {
			total += pf.search(&next, depth-1)
			continue
		}
		total++
		switch m.MoveType() {
		case EnPassant:
			pf.EnpassantCounter++
			pf.CaptureCounter++
		case Castling:
			pf.CastleCounter++
		case Promotion:
			pf.PromotionCounter++
			if p.PieceOn(m.To()) != NoPiece {
				pf.CaptureCounter++
			}
		default:
			if p.PieceOn(m.To()) != NoPiece {
				pf.CaptureCounter++
			}
		}
		if next.InCheck() {
			pf.CheckCounter++
			if !HasLegalMove(&next) {
				pf.CheckMateCounter++
			}
		}
	}
	return total
}

func (pf *Perft) reset() {
	pf.Nodes = 0
	pf.CheckCounter = 0
	pf.CheckMateCounter = 0
	pf.CaptureCounter = 0
	pf.EnpassantCounter = 0
	pf.CastleCounter = 0
	pf.PromotionCounter = 0
}
