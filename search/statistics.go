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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var statsOut = message.NewPrinter(language.English)

// Statistics accumulates counters over the course of one search.
type Statistics struct {
	Nodes          uint64
	QNodes         uint64
	TTHits         uint64
	TTMisses       uint64
	NullMoveCuts   uint64
	BetaCutoffs    uint64
	FirstMoveBetaCutoffs uint64
}

func (s *Statistics) reset() {
	*s = Statistics{}
}

func (s *Statistics) String() string {
	return statsOut.Sprintf(
		"nodes=%d qnodes=%d ttHits=%d ttMisses=%d nullCuts=%d betaCutoffs=%d firstMoveCutoffs=%d",
		s.Nodes, s.QNodes, s.TTHits, s.TTMisses, s.NullMoveCuts, s.BetaCutoffs, s.FirstMoveBetaCutoffs)
}
