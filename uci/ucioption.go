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

package uci

import (
	"strconv"
	"strings"

	"github.com/pelicanchess/engine/config"
)

func init() {
	uciOptions = optionMap{
		"Clear Hash": {NameID: "Clear Hash", HandlerFunc: clearHash, OptionType: Button},
		"Hash":       {NameID: "Hash", HandlerFunc: hashSize, OptionType: Spin, DefaultValue: "64", CurrentValue: strconv.Itoa(config.Settings.Search.TTSizeMB), MinValue: "1", MaxValue: "65536"},
		"OwnBook":    {NameID: "OwnBook", HandlerFunc: useBook, OptionType: Check, DefaultValue: "false", CurrentValue: strconv.FormatBool(config.Settings.Search.UseBook)},
	}
}

// GetOptions renders all available uci options as lines to send to the
// UCI user interface during the "uci" initialization handshake.
func (o optionMap) GetOptions() []string {
	var options []string
	for _, opt := range uciOptions {
		options = append(options, opt.String())
	}
	return options
}

// String renders a uci option the way the UCI protocol requires it
// during engine initialization.
func (o *uciOption) String() string {
	var sb strings.Builder
	sb.WriteString("option name ")
	sb.WriteString(o.NameID)
	sb.WriteString(" type ")
	switch o.OptionType {
	case Check:
		sb.WriteString("check default ")
		sb.WriteString(o.DefaultValue)
	case Spin:
		sb.WriteString("spin default ")
		sb.WriteString(o.DefaultValue)
		sb.WriteString(" min ")
		sb.WriteString(o.MinValue)
		sb.WriteString(" max ")
		sb.WriteString(o.MaxValue)
	case Button:
		sb.WriteString("button")
	}
	return sb.String()
}

// uciOptionType enumerates the UCI option kinds this engine supports.
type uciOptionType int

const (
	Check uciOptionType = iota
	Spin
	Button
)

type optionHandler func(*UciHandler, *uciOption)

// uciOption is one entry of the "option name ..." handshake, with a
// handler invoked when "setoption" changes its value.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	CurrentValue string
}

type optionMap map[string]*uciOption

var uciOptions optionMap

func clearHash(u *UciHandler, _ *uciOption) {
	u.search.NewGame()
	log.Debug("hash cleared")
}

func hashSize(u *UciHandler, o *uciOption) {
	v, err := strconv.Atoi(o.CurrentValue)
	if err != nil {
		log.Warningf("invalid Hash value %q", o.CurrentValue)
		return
	}
	config.Settings.Search.TTSizeMB = v
	msg := "Hash size is read when the engine starts; the current table keeps its size"
	u.sendInfoString(msg)
}

func useBook(u *UciHandler, o *uciOption) {
	v, err := strconv.ParseBool(o.CurrentValue)
	if err != nil {
		log.Warningf("invalid OwnBook value %q", o.CurrentValue)
		return
	}
	config.Settings.Search.UseBook = v
	if v {
		if err := u.book.Initialize(config.Settings.Search.BookPath); err != nil {
			log.Warningf("opening book %q not loaded: %s", config.Settings.Search.BookPath, err)
		}
	} else {
		u.book.Reset()
	}
	log.Debugf("set OwnBook to %v", v)
}
