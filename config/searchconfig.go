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

package config

// searchConfiguration holds the tunable constants for the search
// package's pruning and reduction heuristics.
type searchConfiguration struct {
	TTSizeMB int

	UseQuiescence bool

	UseNullMove     bool
	NullMoveMinDepth int
	NullMoveReduction int

	UseLMR        bool
	LMRMinDepth   int
	LMRMinMoveNumber int
	LMRReduction  int
	LMRBigReductionMoveNumber int
	LMRBigReductionMinDepth   int
	LMRBigReduction           int

	UseRazoring      bool
	RazorMargin      int
	RazorMaxDepth    int

	UseReverseFutility bool
	ReverseFutilityMargin int
	ReverseFutilityMaxDepth int

	UseCheckExtension bool

	AspirationWindow int

	NodesPerTimeCheck uint64

	UseBook bool
	BookPath string
}

func (c *searchConfiguration) setDefaults() {
	c.TTSizeMB = 64

	c.UseQuiescence = true

	c.UseNullMove = true
	c.NullMoveMinDepth = 3
	c.NullMoveReduction = 2

	c.UseLMR = true
	c.LMRMinDepth = 3
	c.LMRMinMoveNumber = 4
	c.LMRReduction = 1
	c.LMRBigReductionMoveNumber = 8
	c.LMRBigReductionMinDepth = 6
	c.LMRBigReduction = 2

	c.UseRazoring = true
	c.RazorMargin = 300
	c.RazorMaxDepth = 3

	c.UseReverseFutility = true
	c.ReverseFutilityMargin = 120
	c.ReverseFutilityMaxDepth = 6

	c.UseCheckExtension = true

	c.AspirationWindow = 25

	c.NodesPerTimeCheck = 4095

	c.UseBook = false
	c.BookPath = "book.txt"
}
