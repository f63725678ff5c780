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

// Package config holds engine-wide tunables, loaded from an optional
// config.toml file on top of compiled-in defaults.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

// Settings is the process-wide configuration.
var Settings conf

// LogLevel and SearchLogLevel are the resolved numeric levels used by
// the logging package, derived from Settings.Log's string fields.
var LogLevel int
var SearchLogLevel int

func init() {
	Settings.Log.setDefaults()
	Settings.Search.setDefaults()
	setupLogLvl()
}

// Setup overlays a TOML config file onto the compiled-in defaults. A
// missing file is not an error - the defaults stand on their own.
func Setup(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		return err
	}
	setupLogLvl()
	return nil
}
