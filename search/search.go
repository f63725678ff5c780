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

// Package search implements iterative-deepening negamax with PVS,
// quiescence, a transposition table and the usual pruning/reduction
// heuristics, driven single-threaded but stoppable cooperatively from
// another goroutine (a UCI "stop" command or a time-control timer).
package search

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/pelicanchess/engine/config"
	"github.com/pelicanchess/engine/logging"
	"github.com/pelicanchess/engine/position"
	"github.com/pelicanchess/engine/transpositiontable"
	. "github.com/pelicanchess/engine/types"
)

// Evaluator is the external static-evaluation collaborator: search
// asks it for a position's value but never how that value is computed.
type Evaluator interface {
	Evaluate(p *position.Position) Value
}

// OpeningBook is the external opening-book collaborator: search asks it
// for a known reply to the current position before falling back to a
// real search.
type OpeningBook interface {
	Lookup(key position.Key) (Move, bool)
}

// UciDriver is implemented by the front-end (normally the uci package)
// so search can report progress without importing it back - this is
// the one-interface substitute for a separate single-interface package.
type UciDriver interface {
	SendReadyOk()
	SendInfoString(s string)
	SendIterationEndInfo(depth int, value Value, nodes uint64, nps uint64, elapsed time.Duration, pv string)
	SendResult(bestMove Move)
}

var log = logging.GetLog()

// Search runs one engine search at a time; StartSearch launches it in a
// goroutine and returns immediately, mirroring how a UCI engine must
// stay responsive to "stop"/"isready" while thinking.
type Search struct {
	tt        *transpositiontable.Table
	ordering  *orderingTables
	evaluator Evaluator
	book      OpeningBook
	driver    UciDriver

	isRunning    *semaphore.Weighted
	initSem      *semaphore.Weighted
	timerWg      sync.WaitGroup

	stopFlag  bool
	stopMu    sync.Mutex
	startTime time.Time
	timeLimit time.Duration

	limits Limits
	stats  Statistics

	pv       [MaxPly + 1][]Move
	scoreBuf []int

	lastResult Result
}

// NewSearch creates an idle Search ready to be configured and started.
func NewSearch(eval Evaluator, book OpeningBook) *Search {
	s := &Search{
		tt:        transpositiontable.NewTable(config.Settings.Search.TTSizeMB),
		ordering:  newOrderingTables(),
		evaluator: eval,
		book:      book,
		isRunning: semaphore.NewWeighted(1),
		initSem:   semaphore.NewWeighted(1),
		scoreBuf:  make([]int, 0, MaxMoves),
	}
	for i := range s.pv {
		s.pv[i] = make([]Move, 0, MaxPly)
	}
	return s
}

// SetUciHandler installs the front-end that receives progress reports.
func (s *Search) SetUciHandler(d UciDriver) {
	s.driver = d
}

// NewGame resets state that should not persist across games.
func (s *Search) NewGame() {
	s.tt.Clear()
	s.ordering = newOrderingTables()
}

// IsReady tells the front-end at once that the engine is ready for the
// next command; it does not wait for a running search.
func (s *Search) IsReady() {
	if s.driver != nil {
		s.driver.SendReadyOk()
	}
}

func (s *Search) setStop(v bool) {
	s.stopMu.Lock()
	s.stopFlag = v
	s.stopMu.Unlock()
}

// shouldStop is polled on (roughly) every node; the node-count mask in
// config keeps the mutex traffic light on machines where that would
// otherwise matter, at the cost of checking the flag a few nodes late.
func (s *Search) shouldStop() bool {
	if s.stats.Nodes&config.Settings.Search.NodesPerTimeCheck != 0 {
		return false
	}
	s.stopMu.Lock()
	defer s.stopMu.Unlock()
	return s.stopFlag
}

// StopSearch requests the running search stop as soon as possible.
func (s *Search) StopSearch() {
	s.setStop(true)
}

// StartSearch launches a search over p under the given limits in a new
// goroutine and returns once the goroutine has taken ownership.
func (s *Search) StartSearch(p position.Position, limits Limits) {
	_ = s.initSem.Acquire(context.Background(), 1)
	s.limits = limits
	s.stats.reset()
	s.setStop(false)
	s.startTime = time.Now()

	if !s.isRunning.TryAcquire(1) {
		s.initSem.Release(1)
		return
	}

	if limits.TimeControl() {
		s.timeLimit = computeTimeBudget(&p, &limits)
		s.startTimer()
	}

	s.initSem.Release(1)

	go func() {
		defer s.isRunning.Release(1)
		s.run(&p)
	}()
}

// WaitWhileSearching blocks until no search is in flight.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

func (s *Search) run(p *position.Position) {
	if s.book != nil {
		if m, ok := s.book.Lookup(p.ZobristKey()); ok {
			s.lastResult = Result{BestMove: m}
			if s.driver != nil {
				s.driver.SendResult(m)
			}
			return
		}
	}

	result := s.iterativeDeepening(p)
	result.Time = time.Since(s.startTime)
	s.lastResult = result

	s.timerWg.Wait()
	if s.driver != nil {
		s.driver.SendResult(result.BestMove)
	}
	log.Infof("search finished: %s", s.stats.String())
}

func (s *Search) startTimer() {
	s.timerWg.Add(1)
	go func() {
		defer s.timerWg.Done()
		for {
			s.stopMu.Lock()
			stopped := s.stopFlag
			s.stopMu.Unlock()
			if stopped || time.Since(s.startTime) >= s.timeLimit {
				s.setStop(true)
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()
}

// safetyMargin is reserved off the clock before any other time-budget
// math, so a search never returns a move with no time left to send it.
const safetyMargin = 50 * time.Millisecond

// computeTimeBudget reserves a safety margin off the clock, then allots
// time_left/25 plus the increment, capped at 90% of the remaining time,
// as the move's time budget.
func computeTimeBudget(p *position.Position, l *Limits) time.Duration {
	if l.MoveTime > 0 {
		return l.MoveTime
	}
	timeLeft := l.WhiteTime
	inc := l.WhiteInc
	if p.SideToMove() == Black {
		timeLeft = l.BlackTime
		inc = l.BlackInc
	}
	if timeLeft <= 0 {
		return 1 * time.Second
	}
	timeLeft -= safetyMargin
	if timeLeft < 0 {
		timeLeft = 0
	}
	budget := timeLeft/25 + inc
	ceiling := time.Duration(float64(timeLeft) * 0.9)
	if budget > ceiling {
		budget = ceiling
	}
	return budget
}

// LastResult returns the result of the most recently finished search.
func (s *Search) LastResult() Result {
	return s.lastResult
}
