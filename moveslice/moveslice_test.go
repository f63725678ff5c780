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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/pelicanchess/engine/types"
)

func TestNewHasZeroLenGivenCapacity(t *testing.T) {
	ms := New(10)
	assert.Equal(t, 0, ms.Len())
}

func TestPushBackAndAt(t *testing.T) {
	ms := New(4)
	a := NewMove(Square(0), Square(1))
	b := NewMove(Square(2), Square(3))
	ms.PushBack(a)
	ms.PushBack(b)
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, a, ms.At(0))
	assert.Equal(t, b, ms.At(1))
}

func TestClearKeepsBackingArray(t *testing.T) {
	ms := New(4)
	ms.PushBack(NewMove(Square(0), Square(1)))
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 4, cap(ms))
}

func TestSortByDescending(t *testing.T) {
	low := NewMove(Square(0), Square(1))
	mid := NewMove(Square(2), Square(3))
	high := NewMove(Square(4), Square(5))
	ms := New(3)
	ms.PushBack(mid)
	ms.PushBack(low)
	ms.PushBack(high)

	score := map[Move]int{low: 1, mid: 5, high: 10}
	ms.SortBy(func(m Move) int { return score[m] })

	assert.Equal(t, high, ms.At(0))
	assert.Equal(t, mid, ms.At(1))
	assert.Equal(t, low, ms.At(2))
}

func TestStringUciJoinsMoves(t *testing.T) {
	ms := New(2)
	e2, _ := MakeSquare("e2")
	e4, _ := MakeSquare("e4")
	d7, _ := MakeSquare("d7")
	d5, _ := MakeSquare("d5")
	ms.PushBack(NewMove(e2, e4))
	ms.PushBack(NewMove(d7, d5))
	assert.Equal(t, "e2e4 d7d5", ms.StringUci())
}
