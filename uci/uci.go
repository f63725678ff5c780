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

// Package uci implements the text protocol spoken between a chess GUI
// and the engine: a line-oriented command loop reading "uci", "position",
// "go" and friends from stdin and writing "info"/"bestmove" lines to
// stdout.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	golog "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pelicanchess/engine/config"
	"github.com/pelicanchess/engine/evaluator"
	"github.com/pelicanchess/engine/logging"
	"github.com/pelicanchess/engine/movegen"
	"github.com/pelicanchess/engine/openingbook"
	"github.com/pelicanchess/engine/position"
	"github.com/pelicanchess/engine/search"
	. "github.com/pelicanchess/engine/types"
)

var out = message.NewPrinter(language.English)
var log = logging.GetLog()

// UciHandler owns the engine's conversational state: the current
// position, the one live search, and the in/out streams the protocol
// is read from and written to.
type UciHandler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos     position.Position
	search  *search.Search
	perft   *movegen.Perft
	book    *openingbook.Book
	uciLog  *golog.Logger
}

// NewUciHandler wires up a ready-to-run engine talking over stdin/stdout.
// Swap InIo/OutIo before calling Loop to redirect for testing.
func NewUciHandler() *UciHandler {
	book := openingbook.NewBook()
	if config.Settings.Search.UseBook {
		if err := book.Initialize(config.Settings.Search.BookPath); err != nil {
			log.Warningf("opening book %q not loaded: %s", config.Settings.Search.BookPath, err)
		}
	}
	u := &UciHandler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		pos:    position.NewStartPosition(),
		search: search.NewSearch(evaluator.NewEvaluator(), book),
		perft:  movegen.NewPerft(),
		book:   book,
		uciLog: logging.GetUciLog(),
	}
	u.search.SetUciHandler(u)
	return u
}

// Loop reads and handles commands until "quit" is received.
func (u *UciHandler) Loop() {
	for u.InIo.Scan() {
		if u.handleCommand(u.InIo.Text()) {
			return
		}
	}
}

// Command runs a single protocol line and returns whatever it wrote,
// for use from tests without a real stdin/stdout pair.
func (u *UciHandler) Command(cmd string) string {
	saved := u.OutIo
	buf := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buf)
	u.handleCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = saved
	return buf.String()
}

// SendReadyOk implements search.UciDriver.
func (u *UciHandler) SendReadyOk() {
	u.send("readyok")
}

// SendInfoString implements search.UciDriver.
func (u *UciHandler) SendInfoString(s string) {
	u.send(out.Sprintf("info string %s", s))
}

// SendIterationEndInfo implements search.UciDriver.
func (u *UciHandler) SendIterationEndInfo(depth int, value Value, nodes uint64, nps uint64, elapsed time.Duration, pv string) {
	u.send(fmt.Sprintf("info depth %d score %s nodes %d nps %d time %d pv %s",
		depth, value.String(), nodes, nps, elapsed.Milliseconds(), pv))
}

// SendResult implements search.UciDriver.
func (u *UciHandler) SendResult(bestMove Move) {
	u.send("bestmove " + bestMove.StringUci())
}

var regexWhitespace = regexp.MustCompile(`\s+`)

func (u *UciHandler) handleCommand(cmd string) (quit bool) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	u.uciLog.Infof("<< %s", cmd)
	tokens := regexWhitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "setoption":
		u.setOptionCommand(tokens)
	case "isready":
		u.search.IsReady()
	case "ucinewgame":
		u.pos = position.NewStartPosition()
		u.search.NewGame()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.search.StopSearch()
		u.perft.Stop()
	case "perft":
		u.perftCommand(tokens)
	case "debug", "register", "ponderhit":
		// acknowledged but not meaningfully actionable by this engine
	default:
		log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (u *UciHandler) uciCommand() {
	u.send("id name Pelican")
	u.send("id author Pelican Engine Contributors")
	for _, o := range uciOptions.GetOptions() {
		u.send(o)
	}
	u.send("uciok")
}

func (u *UciHandler) setOptionCommand(tokens []string) {
	if len(tokens) < 3 || tokens[1] != "name" {
		u.sendInfoString("malformed setoption command")
		return
	}
	i := 2
	var name strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		if name.Len() > 0 {
			name.WriteByte(' ')
		}
		name.WriteString(tokens[i])
		i++
	}
	value := ""
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = strings.Join(tokens[i+1:], " ")
	}
	o, ok := uciOptions[name.String()]
	if !ok {
		u.sendInfoString(out.Sprintf("no such option %q", name.String()))
		return
	}
	o.CurrentValue = value
	o.HandlerFunc(u, o)
}

func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.sendInfoString("malformed position command")
		return
	}
	i := 1
	var fen string
	switch tokens[i] {
	case "startpos":
		fen = position.StartFen
		i++
	case "fen":
		i++
		var fb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fb.WriteString(tokens[i])
			fb.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(fb.String())
	default:
		u.sendInfoString("malformed position command")
		return
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		u.sendInfoString(out.Sprintf("invalid fen %q: %s", fen, err))
		return
	}
	u.pos = p

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m, ok := uciMove(&u.pos, tokens[i])
			if !ok {
				u.sendInfoString(out.Sprintf("illegal move in position command: %s", tokens[i]))
				return
			}
			u.pos = u.pos.MakeMove(m)
		}
	}
}

func (u *UciHandler) goCommand(tokens []string) {
	limits := readSearchLimits(tokens)
	u.search.StartSearch(u.pos, limits)
}

func (u *UciHandler) perftCommand(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		if d, err := strconv.Atoi(tokens[1]); err == nil {
			depth = d
		}
	}
	fen := u.pos.Fen()
	go func() {
		if _, err := u.perft.Run(fen, depth); err != nil {
			log.Warningf("perft failed: %s", err)
		}
	}()
}

func readSearchLimits(tokens []string) search.Limits {
	var l search.Limits
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			l.Infinite = true
			i++
		case "ponder":
			l.Ponder = true
			i++
		case "depth":
			i++
			l.Depth = atoiOr(tokens, i, 0)
			i++
		case "nodes":
			i++
			l.Nodes = uint64(atoiOr(tokens, i, 0))
			i++
		case "movetime":
			i++
			l.MoveTime = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
			i++
		case "wtime":
			i++
			l.WhiteTime = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
			i++
		case "btime":
			i++
			l.BlackTime = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
			i++
		case "winc":
			i++
			l.WhiteInc = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
			i++
		case "binc":
			i++
			l.BlackInc = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
			i++
		case "movestogo":
			i++
			l.MovesToGo = atoiOr(tokens, i, 0)
			i++
		default:
			i++
		}
	}
	return l
}

func atoiOr(tokens []string, i int, def int) int {
	if i >= len(tokens) {
		return def
	}
	v, err := strconv.Atoi(tokens[i])
	if err != nil {
		return def
	}
	return v
}

func uciMove(p *position.Position, s string) (Move, bool) {
	if len(s) < 4 {
		return MoveNone, false
	}
	from, err := MakeSquare(s[0:2])
	if err != nil {
		return MoveNone, false
	}
	to, err := MakeSquare(s[2:4])
	if err != nil {
		return MoveNone, false
	}
	var promo PieceType
	if len(s) == 5 {
		switch s[4] {
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

func (u *UciHandler) sendInfoString(s string) {
	u.send(out.Sprintf("info string %s", s))
}

func (u *UciHandler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
