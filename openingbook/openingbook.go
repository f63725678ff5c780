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

// Package openingbook reads a small book of UCI move lines into a map of
// Zobrist key to known successor moves, so a search can play a book move
// in the opening instead of searching.
package openingbook

import (
	"bufio"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pelicanchess/engine/logging"
	"github.com/pelicanchess/engine/movegen"
	"github.com/pelicanchess/engine/position"
	. "github.com/pelicanchess/engine/types"
)

var out = message.NewPrinter(language.English)
var log = logging.GetLog()

var regexUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8][nbrq]?)")

// Successor pairs a move with the Zobrist key of the position it leads
// to, so a lookup can chain through a line without replaying it.
type Successor struct {
	Move      Move
	NextEntry position.Key
}

// BookEntry describes the moves known to follow one particular
// position, identified by its Zobrist key.
type BookEntry struct {
	ZobristKey position.Key
	Counter    int
	Moves      []Successor
}

// Book is a minimal static opening book: a line-oriented text file of
// UCI move sequences ("e2e4 e7e5 g1f3 ...", one game per line) is read
// into a map keyed by Zobrist hash.
type Book struct {
	mu          sync.Mutex
	bookMap     map[position.Key]BookEntry
	rootEntry   position.Key
	initialized bool
}

// NewBook creates an empty, uninitialized Book.
func NewBook() *Book {
	return &Book{}
}

// Initialize reads bookPath and populates the book. Calling it again on
// an already-initialized Book is a no-op.
func (b *Book) Initialize(bookPath string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initialized {
		return nil
	}

	start := time.Now()

	if _, err := os.Stat(bookPath); err != nil {
		log.Errorf("opening book file %q does not exist: %s", bookPath, err)
		return err
	}

	lines, err := readLines(bookPath)
	if err != nil {
		return err
	}

	root := position.NewStartPosition()
	b.bookMap = make(map[position.Key]BookEntry)
	b.rootEntry = root.ZobristKey()
	b.bookMap[b.rootEntry] = BookEntry{ZobristKey: b.rootEntry}

	for _, line := range lines {
		b.processLine(line)
	}

	b.initialized = true
	log.Infof("opening book %q loaded: %d entries in %s", bookPath, len(b.bookMap), out.Sprintf("%d ms", time.Since(start).Milliseconds()))
	return nil
}

// NumberOfEntries returns the number of distinct positions known to the
// book.
func (b *Book) NumberOfEntries() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.bookMap)
}

// Reset clears the book so it can be reinitialized from a different
// file.
func (b *Book) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bookMap = nil
	b.rootEntry = 0
	b.initialized = false
}

// Lookup returns a uniformly-random known reply to the position
// identified by key, implementing the search package's OpeningBook
// collaborator interface.
func (b *Book) Lookup(key position.Key) (Move, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entry, ok := b.bookMap[key]
	if !ok || len(entry.Moves) == 0 {
		return MoveNone, false
	}
	return entry.Moves[rand.Intn(len(entry.Moves))].Move, true
}

func readLines(bookPath string) ([]string, error) {
	f, err := os.Open(bookPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	return lines, s.Err()
}

func (b *Book) processLine(line string) {
	matches := regexUciMove.FindAllString(strings.TrimSpace(line), -1)
	if len(matches) == 0 {
		return
	}

	pos := position.NewStartPosition()
	parent := b.rootEntry

	for _, uci := range matches {
		m, ok := findMove(&pos, uci)
		if !ok {
			// rest of the line is unplayable from here, stop
			break
		}
		next := pos.MakeMove(m)
		childKey := next.ZobristKey()

		b.addSuccessor(parent, m, childKey)

		pos = next
		parent = childKey
	}
}

// addSuccessor must be called with b.mu held.
func (b *Book) addSuccessor(parent position.Key, m Move, child position.Key) {
	entry, ok := b.bookMap[parent]
	if !ok {
		entry = BookEntry{ZobristKey: parent}
	}
	entry.Counter++
	for i, s := range entry.Moves {
		if s.Move == m {
			entry.Moves[i].NextEntry = child
			b.bookMap[parent] = entry
			return
		}
	}
	entry.Moves = append(entry.Moves, Successor{Move: m, NextEntry: child})
	b.bookMap[parent] = entry

	if _, ok := b.bookMap[child]; !ok {
		b.bookMap[child] = BookEntry{ZobristKey: child}
	}
}

// findMove resolves a uci move string to one of the position's legal
// moves, so illegal or malformed book lines are rejected rather than
// silently mis-played.
func findMove(p *position.Position, uci string) (Move, bool) {
	if len(uci) < 4 {
		return MoveNone, false
	}
	from, err := MakeSquare(uci[0:2])
	if err != nil {
		return MoveNone, false
	}
	to, err := MakeSquare(uci[2:4])
	if err != nil {
		return MoveNone, false
	}
	var promo PieceType
	if len(uci) == 5 {
		switch uci[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		}
	}

	legal := movegen.GenerateLegal(p, movegen.GenAll)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From() == from && m.To() == to {
			if m.MoveType() == Promotion && m.PromotionPieceType() != promo {
				continue
			}
			return m, true
		}
	}
	return MoveNone, false
}
