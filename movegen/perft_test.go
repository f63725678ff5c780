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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pelicanchess/engine/position"
)

// Known perft results from the standard starting position.
// N  Nodes       Captures  EP   Checks   Mates
var standardPerftResults = [5][6]uint64{
	{0, 1, 0, 0, 0, 0},
	{1, 20, 0, 0, 0, 0},
	{2, 400, 0, 0, 0, 0},
	{3, 8_902, 34, 0, 12, 0},
	{4, 197_281, 1_576, 0, 469, 8},
}

func TestStandardPerft(t *testing.T) {
	for depth := 1; depth <= 4; depth++ {
		pf := NewPerft()
		nodes, err := pf.Run(position.StartFen, depth)
		assert.NoError(t, err)
		want := standardPerftResults[depth]
		assert.Equal(t, want[1], nodes, "depth %d nodes", depth)
		assert.Equal(t, want[2], pf.CaptureCounter, "depth %d captures", depth)
		assert.Equal(t, want[3], pf.EnpassantCounter, "depth %d en passant", depth)
		assert.Equal(t, want[4], pf.CheckCounter, "depth %d checks", depth)
		assert.Equal(t, want[5], pf.CheckMateCounter, "depth %d mates", depth)
	}
}

// Kiwipete is the standard perft stress position exercising castling,
// en passant and promotions together.
const kiwipeteFen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestKiwipetePerft(t *testing.T) {
	pf := NewPerft()
	nodes, err := pf.Run(kiwipeteFen, 1)
	assert.NoError(t, err)
	assert.Equal(t, uint64(48), nodes)

	pf2 := NewPerft()
	nodes2, err := pf2.Run(kiwipeteFen, 2)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2_039), nodes2)
}

func TestPerftRejectsInvalidFen(t *testing.T) {
	pf := NewPerft()
	_, err := pf.Run("not a fen", 1)
	assert.Error(t, err)
}
