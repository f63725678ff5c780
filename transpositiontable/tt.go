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

// Package transpositiontable implements a fixed-size, open-addressed
// hash table of previously searched positions.
package transpositiontable

import (
	"math/bits"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pelicanchess/engine/position"
	. "github.com/pelicanchess/engine/types"
)

var out = message.NewPrinter(language.English)

// Bound records whether a stored value is exact or a cutoff bound.
type Bound uint8

// Bound kinds.
const (
	BoundNone Bound = iota
	BoundExact
	BoundLower // value is at least this (beta cutoff, fail-high)
	BoundUpper // value is at most this (alpha cutoff, fail-low)
)

// Entry is one transposition-table slot.
type Entry struct {
	Key   position.Key
	Move  Move
	Value Value
	Depth int8
	Bound Bound
}

const entrySize = 32 // bytes budgeted per entry when sizing; not less than the real size of Entry

// MaxSizeInMB caps how large a single table may be configured.
const MaxSizeInMB = 65536

// Table is a fixed-size transposition table. The zero value is not
// usable; construct with NewTable.
type Table struct {
	data           []Entry
	hashMask       uint64
	numberOfSlots  uint64
	entriesStored  uint64
	hits           uint64
	misses         uint64
	collisions     uint64
}

// NewTable allocates a table sized to (at most) sizeInMB megabytes,
// rounded down to the nearest power of two number of entries.
func NewTable(sizeInMB int) *Table {
	if sizeInMB < 1 {
		sizeInMB = 1
	}
	if sizeInMB > MaxSizeInMB {
		sizeInMB = MaxSizeInMB
	}
	bytes := uint64(sizeInMB) * MB
	slots := uint64(1)
	if bytes >= entrySize {
		slots = uint64(1) << uint(bits.Len64(bytes/entrySize)-1)
	}
	t := &Table{
		data:          make([]Entry, slots),
		hashMask:      slots - 1,
		numberOfSlots: slots,
	}
	return t
}

func (t *Table) index(key position.Key) uint64 {
	return uint64(key) & t.hashMask
}

// Probe looks up key and reports whether a usable entry was found.
func (t *Table) Probe(key position.Key) (Entry, bool) {
	e := t.data[t.index(key)]
	if e.Key != key || e.Bound == BoundNone {
		t.misses++
		return Entry{}, false
	}
	t.hits++
	return e, true
}

// Store writes an entry, replacing the current occupant of its slot
// unless the occupant is for a different key and was searched deeper
// (depth-preferred replacement). An occupant with the same key or an
// equal depth is always overwritten.
func (t *Table) Store(key position.Key, move Move, value Value, depth int, bound Bound, ply int) {
	idx := t.index(key)
	cur := t.data[idx]
	if cur.Bound != BoundNone && cur.Key != key && int(cur.Depth) > depth {
		t.collisions++
		return
	}
	if cur.Bound == BoundNone {
		t.entriesStored++
	}
	if move == MoveNone && cur.Key == key {
		move = cur.Move // keep the best move known for this position
	}
	t.data[idx] = Entry{
		Key:   key,
		Move:  move,
		Value: valueToTT(value, ply),
		Depth: int8(depth),
		Bound: bound,
	}
}

// Clear empties every slot.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = Entry{}
	}
	t.entriesStored, t.hits, t.misses, t.collisions = 0, 0, 0, 0
}

// Hashfull returns table occupancy in permille, sampled from the first
// 1000 slots as is conventional for UCI's "hashfull" info field.
func (t *Table) Hashfull() int {
	n := len(t.data)
	if n == 0 {
		return 0
	}
	sample := n
	if sample > 1000 {
		sample = 1000
	}
	used := 0
	for i := 0; i < sample; i++ {
		if t.data[i].Bound != BoundNone {
			used++
		}
	}
	return used * 1000 / sample
}

// ValueFromTT translates a stored value back to root-relative distance,
// undoing the ply-adjustment valueToTT applied on store. Mate scores are
// stored relative to the node they were found at (distance from that
// node), and must be re-based to the probing node's ply so that mates
// found through different paths compare correctly.
func ValueFromTT(v Value, ply int) Value {
	if !v.IsMateValue() {
		return v
	}
	if v > 0 {
		return v - Value(ply)
	}
	return v + Value(ply)
}

func valueToTT(v Value, ply int) Value {
	if !v.IsMateValue() {
		return v
	}
	if v > 0 {
		return v + Value(ply)
	}
	return v - Value(ply)
}

func (t *Table) String() string {
	return out.Sprintf("TT: slots=%d stored=%d hits=%d misses=%d collisions=%d hashfull=%d",
		t.numberOfSlots, t.entriesStored, t.hits, t.misses, t.collisions, t.Hashfull())
}
