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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pelicanchess/engine/position"
	. "github.com/pelicanchess/engine/types"
)

func TestNewTableSizesToPowerOfTwo(t *testing.T) {
	tt := NewTable(1)
	// 1MB / 32 bytes = 32768, already a power of two.
	assert.Equal(t, uint64(32_768), tt.numberOfSlots)
	assert.Equal(t, tt.numberOfSlots-1, tt.hashMask)
}

func TestNewTableClampsToMax(t *testing.T) {
	tt := NewTable(MaxSizeInMB * 2)
	assert.LessOrEqual(t, tt.numberOfSlots*entrySize, uint64(MaxSizeInMB)*MB)
}

func TestNewTableClampsToMin(t *testing.T) {
	tt := NewTable(0)
	assert.Greater(t, tt.numberOfSlots, uint64(0))
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	tt := NewTable(1)
	_, ok := tt.Probe(position.Key(42))
	assert.False(t, ok)
}

func TestStoreThenProbeRoundTrip(t *testing.T) {
	tt := NewTable(1)
	key := position.Key(12345)
	m := NewMove(Square(0), Square(9))
	tt.Store(key, m, Value(150), 4, BoundExact, 0)

	e, ok := tt.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, key, e.Key)
	assert.Equal(t, m, e.Move)
	assert.Equal(t, Value(150), e.Value)
	assert.Equal(t, int8(4), e.Depth)
	assert.Equal(t, BoundExact, e.Bound)
}

func TestStoreRejectsShallowerOverwrite(t *testing.T) {
	tt := NewTable(1)
	key := position.Key(7)
	other := key + position.Key(tt.numberOfSlots) // collides into the same slot
	tt.Store(key, MoveNone, Value(10), 8, BoundExact, 0)
	tt.Store(other, MoveNone, Value(20), 2, BoundExact, 0)

	e, ok := tt.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, Value(10), e.Value)
}

func TestStoreDeeperOverwritesCollidingEntry(t *testing.T) {
	tt := NewTable(1)
	key := position.Key(7)
	other := key + position.Key(tt.numberOfSlots)
	tt.Store(key, MoveNone, Value(10), 2, BoundExact, 0)
	tt.Store(other, MoveNone, Value(20), 8, BoundExact, 0)

	_, ok := tt.Probe(key)
	assert.False(t, ok)
	e, ok := tt.Probe(other)
	assert.True(t, ok)
	assert.Equal(t, Value(20), e.Value)
}

func TestStoreKeepsKnownMoveWhenNoneGiven(t *testing.T) {
	tt := NewTable(1)
	key := position.Key(99)
	m := NewMove(Square(1), Square(2))
	tt.Store(key, m, Value(5), 3, BoundExact, 0)
	tt.Store(key, MoveNone, Value(6), 3, BoundExact, 0)

	e, ok := tt.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, m, e.Move)
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTable(1)
	tt.Store(position.Key(1), MoveNone, Value(1), 1, BoundExact, 0)
	tt.Clear()
	_, ok := tt.Probe(position.Key(1))
	assert.False(t, ok)
	assert.Equal(t, 0, tt.Hashfull())
}

func TestHashfullReflectsOccupancy(t *testing.T) {
	tt := NewTable(1)
	assert.Equal(t, 0, tt.Hashfull())
	for i := 0; i < 500; i++ {
		tt.Store(position.Key(i), MoveNone, Value(1), 1, BoundExact, 0)
	}
	assert.Greater(t, tt.Hashfull(), 0)
}

func TestValueToTTAndFromTTMateRoundTrip(t *testing.T) {
	mateValue := ValueMate - Value(3) // mate in 3 plies from the root
	stored := valueToTT(mateValue, 5)
	restored := ValueFromTT(stored, 5)
	assert.Equal(t, mateValue, restored)
}

func TestValueToTTNonMateUnchanged(t *testing.T) {
	v := Value(123)
	assert.Equal(t, v, valueToTT(v, 7))
	assert.Equal(t, v, ValueFromTT(v, 7))
}

func TestValueToTTNegativeMateRoundTrip(t *testing.T) {
	mateValue := -ValueMate + Value(4)
	stored := valueToTT(mateValue, 3)
	restored := ValueFromTT(stored, 3)
	assert.Equal(t, mateValue, restored)
}
