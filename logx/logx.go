// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides level management for the default slog
// logger and colored printing of user-facing messages.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [SetLevel].
var UserLevel = defaultUserLevel

// NoColor disables colored output from the Print functions.
var NoColor = false

// Output is where the Print functions write; it defaults to stderr.
var Output io.Writer = os.Stderr

// SetLevel sets [UserLevel] and installs a text handler writing
// to [Output] as the default slog logger.
func SetLevel(level slog.Level) {
	UserLevel = level
	h := slog.NewTextHandler(Output, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags are evaluated in the following order:
// quiet, verbose, debug, and the default level is info.
func LevelFromFlags(debug, verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	case debug:
		return slog.LevelDebug - 4
	}
	return slog.LevelInfo
}

// colorize returns s in the given ANSI color, unless color is disabled
// or the output is not a terminal.
func colorize(s string, c termenv.ANSIColor) string {
	if NoColor {
		return s
	}
	out := termenv.NewOutput(Output)
	if out.Profile == termenv.Ascii {
		return s
	}
	return out.String(s).Foreground(c).String()
}

// PrintlnWarn prints the given values in yellow if
// [UserLevel] is at or below [slog.LevelWarn].
func PrintlnWarn(a ...any) {
	if UserLevel > slog.LevelWarn {
		return
	}
	fmt.Fprintln(Output, colorize(fmt.Sprint(a...), termenv.ANSIYellow))
}

// PrintfWarn is the formatted version of [PrintlnWarn].
func PrintfWarn(format string, a ...any) {
	PrintlnWarn(fmt.Sprintf(format, a...))
}

// PrintlnError prints the given values in red if
// [UserLevel] is at or below [slog.LevelError].
func PrintlnError(a ...any) {
	if UserLevel > slog.LevelError {
		return
	}
	fmt.Fprintln(Output, colorize(fmt.Sprint(a...), termenv.ANSIRed))
}
