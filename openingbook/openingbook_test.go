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

package openingbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pelicanchess/engine/position"
)

func writeBookFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.txt")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestInitializePopulatesRootMoves(t *testing.T) {
	path := writeBookFile(t, "e2e4 e7e5 g1f3\nd2d4 d7d5\n")
	b := NewBook()
	assert.NoError(t, b.Initialize(path))
	assert.Greater(t, b.NumberOfEntries(), 1)

	root := position.NewStartPosition()
	move, ok := b.Lookup(root.ZobristKey())
	assert.True(t, ok)
	assert.Contains(t, []string{"e2e4", "d2d4"}, move.StringUci())
}

func TestInitializeIsIdempotent(t *testing.T) {
	path := writeBookFile(t, "e2e4 e7e5\n")
	b := NewBook()
	assert.NoError(t, b.Initialize(path))
	n := b.NumberOfEntries()
	assert.NoError(t, b.Initialize(path))
	assert.Equal(t, n, b.NumberOfEntries())
}

func TestInitializeMissingFileErrors(t *testing.T) {
	b := NewBook()
	err := b.Initialize(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLookupMissesUnknownPosition(t *testing.T) {
	path := writeBookFile(t, "e2e4 e7e5\n")
	b := NewBook()
	assert.NoError(t, b.Initialize(path))

	unknown := position.Key(0xdeadbeef)
	_, ok := b.Lookup(unknown)
	assert.False(t, ok)
}

func TestResetClearsBook(t *testing.T) {
	path := writeBookFile(t, "e2e4 e7e5\n")
	b := NewBook()
	assert.NoError(t, b.Initialize(path))
	b.Reset()
	assert.Equal(t, 0, b.NumberOfEntries())

	root := position.NewStartPosition()
	_, ok := b.Lookup(root.ZobristKey())
	assert.False(t, ok)
}

func TestFindMoveResolvesLegalMove(t *testing.T) {
	p := position.NewStartPosition()
	m, ok := findMove(&p, "e2e4")
	assert.True(t, ok)
	assert.Equal(t, "e2e4", m.StringUci())
}

func TestFindMoveRejectsIllegalMove(t *testing.T) {
	p := position.NewStartPosition()
	_, ok := findMove(&p, "e2e5")
	assert.False(t, ok)
}
