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

package search

import (
	"time"

	"github.com/pelicanchess/engine/config"
	"github.com/pelicanchess/engine/movegen"
	"github.com/pelicanchess/engine/moveslice"
	"github.com/pelicanchess/engine/position"
	"github.com/pelicanchess/engine/transpositiontable"
	. "github.com/pelicanchess/engine/types"
)

// mvvLvaValue scores a capture by victim value minus a fraction of the
// attacker's value (MVV-LVA), higher is more promising.
func mvvLvaValue(p *position.Position, m Move) int {
	victim := p.PieceOn(m.To())
	if m.MoveType() == EnPassant {
		return Pawn.ValueOf()*16 - Pawn.ValueOf()
	}
	if victim == NoPiece {
		return 0
	}
	attacker := p.PieceOn(m.From())
	return victim.ValueOf()*16 - attacker.ValueOf()
}

// seeLiteOK is a cheap exchange filter for quiescence (no full SEE): it
// rejects a capture only when the attacker is worth more than the victim
// and the destination square is attacked by any enemy piece, a shallow
// approximation of a losing exchange. Non-captures and captures of an
// equal-or-higher-value victim are always accepted.
func seeLiteOK(p *position.Position, m Move) bool {
	victim := p.PieceOn(m.To())
	if victim == NoPiece {
		return true
	}
	attacker := p.PieceOn(m.From())
	if attacker.ValueOf() <= victim.ValueOf() {
		return true
	}
	defender := attacker.ColorOf().Flip()
	return !p.IsSquareAttacked(m.To(), defender)
}

func (s *Search) scoreMoves(p *position.Position, moves moveslice.MoveSlice, ttMove Move, ply int) {
	s.scoreBuf = s.scoreBuf[:0]
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		var sc int
		switch {
		case m == ttMove:
			sc = 1 << 30
		case p.PieceOn(m.To()) != NoPiece || m.MoveType() == EnPassant:
			sc = (1 << 20) + mvvLvaValue(p, m)
		case s.ordering.isKiller(ply, m):
			sc = 1 << 19
		default:
			sc = s.ordering.historyScore(p.PieceOn(m.From()), m.To())
		}
		s.scoreBuf = append(s.scoreBuf, sc)
	}
}

// orderMoves sorts moves descending by the scores computed in
// scoreMoves, which must have been called immediately before with the
// same moves slice.
func (s *Search) orderMoves(moves moveslice.MoveSlice) {
	n := moves.Len()
	for i := 1; i < n; i++ {
		j := i
		for j > 0 && s.scoreBuf[j-1] < s.scoreBuf[j] {
			moves[j-1], moves[j] = moves[j], moves[j-1]
			s.scoreBuf[j-1], s.scoreBuf[j] = s.scoreBuf[j], s.scoreBuf[j-1]
			j--
		}
	}
}

// iterativeDeepening runs negamax at increasing depths, widening an
// aspiration window around the previous iteration's score, until the
// search is stopped or a depth or time limit is reached; Limits.Nodes
// is not consulted, so a node limit does not end the search. It reports
// each completed iteration through the UCI driver and returns the last
// completed iteration's result.
func (s *Search) iterativeDeepening(p *position.Position) Result {
	var best Result
	alpha, beta := -ValueInf, ValueInf
	prevValue := ValueZero

	maxDepth := MaxPly
	if s.limits.Depth > 0 && s.limits.Depth < maxDepth {
		maxDepth = s.limits.Depth
	}

	for depth := 1; depth <= maxDepth; depth++ {
		if s.shouldStop() {
			break
		}
		if depth > 1 && s.timeLimit > 0 && time.Since(s.startTime) > (s.timeLimit*6)/10 {
			break
		}
		s.pv[0] = s.pv[0][:0]

		window := Value(config.Settings.Search.AspirationWindow)
		if depth >= 4 && prevValue.IsValid() {
			alpha = prevValue - window
			beta = prevValue + window
		} else {
			alpha, beta = -ValueInf, ValueInf
		}

		var value Value
		for {
			value = s.negamax(p, depth, 0, alpha, beta, true)
			if s.shouldStop() {
				break
			}
			if value <= alpha {
				alpha = maxValue(-ValueInf, alpha-window)
				window *= 2
				continue
			}
			if value >= beta {
				beta = minValue(ValueInf, beta+window)
				window *= 2
				continue
			}
			break
		}

		if s.shouldStop() && depth > 1 {
			break
		}

		prevValue = value
		pv := s.pv[0]
		if len(pv) == 0 {
			break
		}
		best = Result{
			BestMove: pv[0],
			Value:    value,
			Depth:    depth,
			Nodes:    s.stats.Nodes,
			Time:     time.Since(s.startTime),
		}
		if s.driver != nil {
			nps := uint64(0)
			if elapsed := time.Since(s.startTime); elapsed > 0 {
				nps = uint64(float64(s.stats.Nodes) / elapsed.Seconds())
			}
			s.driver.SendIterationEndInfo(depth, value, s.stats.Nodes, nps, time.Since(s.startTime), pvString(pv))
		}
		if value.IsMateValue() && value > 0 && value.MatePlies() <= depth {
			break
		}
	}
	return best
}

func pvString(pv []Move) string {
	ms := moveslice.MoveSlice(pv)
	return ms.StringUci()
}

func maxValue(a, b Value) Value {
	if a > b {
		return a
	}
	return b
}

func minValue(a, b Value) Value {
	if a < b {
		return a
	}
	return b
}

// negamax implements the search's core recursive algorithm: stop-
// condition check, mate-distance pruning, transposition-table probe and
// cutoff, null-move pruning, razoring and reverse-futility pruning at
// low depth, move generation/ordering, late-move reduction, PVS
// re-search, check extension, and a transposition-table store before
// returning.
func (s *Search) negamax(p *position.Position, depth, ply int, alpha, beta Value, doNull bool) Value {
	pvNode := beta-alpha > 1
	s.pv[ply] = s.pv[ply][:0]

	if ply > 0 {
		if p.IsRepetition() || p.IsFiftyMoveDraw() {
			return ValueDraw
		}
		alpha = maxValue(alpha, -ValueMate+Value(ply))
		beta = minValue(beta, ValueMate-Value(ply))
		if alpha >= beta {
			return alpha
		}
	}

	if ply >= MaxPly-1 {
		return s.evaluator.Evaluate(p)
	}

	if depth <= 0 {
		return s.quiescence(p, ply, alpha, beta)
	}

	s.stats.Nodes++
	if s.shouldStop() {
		return ValueZero
	}

	inCheck := p.InCheck()

	var ttMove Move
	if entry, ok := s.tt.Probe(p.ZobristKey()); ok {
		s.stats.TTHits++
		ttMove = entry.Move
		if int(entry.Depth) >= depth {
			v := transpositiontable.ValueFromTT(entry.Value, ply)
			switch entry.Bound {
			case transpositiontable.BoundExact:
				if !pvNode {
					return v
				}
			case transpositiontable.BoundLower:
				if v >= beta {
					return v
				}
			case transpositiontable.BoundUpper:
				if v <= alpha {
					return v
				}
			}
		}
	} else {
		s.stats.TTMisses++
	}

	staticEval := s.evaluator.Evaluate(p)

	// Reverse futility pruning: if even optimistically discounting the
	// static eval by a depth-scaled margin still beats beta, cut.
	if config.Settings.Search.UseReverseFutility && !pvNode && !inCheck &&
		depth <= config.Settings.Search.ReverseFutilityMaxDepth {
		margin := Value(config.Settings.Search.ReverseFutilityMargin * depth)
		if staticEval-margin >= beta {
			return staticEval
		}
	}

	// Razoring: near the leaves, if even a quiescence search from here
	// can't reach alpha, drop straight into quiescence.
	if config.Settings.Search.UseRazoring && !pvNode && !inCheck &&
		depth <= config.Settings.Search.RazorMaxDepth {
		margin := Value(config.Settings.Search.RazorMargin * depth)
		if staticEval+margin < alpha {
			v := s.quiescence(p, ply, alpha, beta)
			if v < alpha {
				return v
			}
		}
	}

	// Null-move pruning.
	if config.Settings.Search.UseNullMove && doNull && !pvNode && !inCheck &&
		depth >= config.Settings.Search.NullMoveMinDepth &&
		staticEval >= beta &&
		p.MaterialNonPawn(p.SideToMove()) > 0 {
		r := config.Settings.Search.NullMoveReduction
		if depth > 6 {
			r++
		}
		null := p.MakeNullMove()
		v := -s.negamax(&null, depth-1-r, ply+1, -beta, -beta+1, false)
		if s.shouldStop() {
			return ValueZero
		}
		if v >= beta {
			s.stats.NullMoveCuts++
			return v
		}
	}

	moves := movegen.GeneratePseudoLegal(p, movegen.GenAll)
	s.scoreMoves(p, moves, ttMove, ply)
	s.orderMoves(moves)

	legalMoves := 0
	best := -ValueInf
	var bestMove Move
	bound := transpositiontable.BoundUpper

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		next := p.MakeMove(m)
		if next.IsInCheck(p.SideToMove()) {
			continue
		}
		legalMoves++

		ext := 0
		if config.Settings.Search.UseCheckExtension && next.InCheck() {
			ext = 1
		}

		childDepth := depth - 1 + ext
		var value Value
		isCapture := p.PieceOn(m.To()) != NoPiece || m.MoveType() == EnPassant
		isPromotion := m.MoveType() == Promotion

		reduction := 0
		if config.Settings.Search.UseLMR && ext == 0 && !isCapture && !isPromotion && !inCheck &&
			depth >= config.Settings.Search.LMRMinDepth &&
			legalMoves > config.Settings.Search.LMRMinMoveNumber &&
			!s.ordering.isKiller(ply, m) {
			reduction = config.Settings.Search.LMRReduction
			if legalMoves > config.Settings.Search.LMRBigReductionMoveNumber &&
				depth > config.Settings.Search.LMRBigReductionMinDepth {
				reduction = config.Settings.Search.LMRBigReduction
			}
		}

		if legalMoves == 1 {
			value = -s.negamax(&next, childDepth, ply+1, -beta, -alpha, true)
		} else {
			value = -s.negamax(&next, childDepth-reduction, ply+1, -alpha-1, -alpha, true)
			if value > alpha && (reduction > 0 || value < beta) {
				value = -s.negamax(&next, childDepth, ply+1, -beta, -alpha, true)
			}
		}

		if s.shouldStop() {
			return ValueZero
		}

		if value > best {
			best = value
			bestMove = m
			if value > alpha {
				alpha = value
				bound = transpositiontable.BoundExact
				s.pv[ply] = append(s.pv[ply][:0], m)
				s.pv[ply] = append(s.pv[ply], s.pv[ply+1]...)
			}
			if alpha >= beta {
				s.stats.BetaCutoffs++
				if i == 0 {
					s.stats.FirstMoveBetaCutoffs++
				}
				if !isCapture {
					s.ordering.addKiller(ply, m)
					s.ordering.addHistory(p.PieceOn(m.From()), m.To(), depth)
				}
				bound = transpositiontable.BoundLower
				break
			}
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return -ValueMate + Value(ply)
		}
		return ValueDraw
	}

	s.tt.Store(p.ZobristKey(), bestMove, best, depth, bound, ply)
	return best
}

// quiescence extends the search through captures (and, while in check,
// all evasions) until the position is quiet, to avoid the horizon
// effect at the leaves of the main search.
func (s *Search) quiescence(p *position.Position, ply int, alpha, beta Value) Value {
	s.stats.Nodes++
	s.stats.QNodes++
	if s.shouldStop() {
		return ValueZero
	}
	if ply >= MaxPly-1 {
		return s.evaluator.Evaluate(p)
	}

	inCheck := p.InCheck()
	standPat := s.evaluator.Evaluate(p)
	if !inCheck {
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	mode := movegen.GenCaptures
	if inCheck {
		mode = movegen.GenAll
	}
	moves := movegen.GeneratePseudoLegal(p, mode)
	s.scoreMoves(p, moves, MoveNone, minValueInt(ply, MaxPly-1))
	s.orderMoves(moves)

	best := standPat
	if inCheck {
		best = -ValueInf
	}
	legalMoves := 0

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !inCheck && !seeLiteOK(p, m) {
			continue
		}
		next := p.MakeMove(m)
		if next.IsInCheck(p.SideToMove()) {
			continue
		}
		legalMoves++
		value := -s.quiescence(&next, ply+1, -beta, -alpha)
		if s.shouldStop() {
			return ValueZero
		}
		if value > best {
			best = value
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break
			}
		}
	}

	if inCheck && legalMoves == 0 {
		return -ValueMate + Value(ply)
	}
	return best
}

func minValueInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
