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

import "time"

// Limits describes the stopping conditions for a search, as parsed
// from a UCI "go" command.
type Limits struct {
	WhiteTime      time.Duration
	BlackTime      time.Duration
	WhiteInc       time.Duration
	BlackInc       time.Duration
	MovesToGo      int
	Depth          int
	Nodes          uint64
	MoveTime       time.Duration
	Infinite       bool
	Ponder         bool
}

// TimeControl reports whether the limits imply a clock-based search
// (as opposed to a fixed depth/node/infinite search).
func (l *Limits) TimeControl() bool {
	return l.WhiteTime > 0 || l.BlackTime > 0 || l.MoveTime > 0
}
