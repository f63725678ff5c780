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

// Package logging wraps github.com/op/go-logging with per-subsystem
// loggers so the engine and search loop can be tuned independently.
package logging

import (
	"os"

	logging "github.com/op/go-logging"

	"github.com/pelicanchess/engine/config"
)

var standardFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:-8s} %{module} %{shortfunc}: %{message}`,
)

var standardLog = logging.MustGetLogger("engine")
var searchLog = logging.MustGetLogger("search")
var uciLog = logging.MustGetLogger("uci")
var testLog = logging.MustGetLogger("test")

func newBackend(logger *logging.Logger, level int) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	logger.SetBackend(leveled)
	return logger
}

// GetLog returns the general-purpose engine logger.
func GetLog() *logging.Logger {
	return newBackend(standardLog, config.LogLevel)
}

// GetSearchLog returns the logger used for per-node search tracing.
func GetSearchLog() *logging.Logger {
	return newBackend(searchLog, config.SearchLogLevel)
}

// GetUciLog returns the logger that records the raw UCI command stream.
func GetUciLog() *logging.Logger {
	return newBackend(uciLog, config.LogLevel)
}

// GetTestLog returns the logger used by test harnesses.
func GetTestLog() *logging.Logger {
	return newBackend(testLog, config.LogLevel)
}
