// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package diag

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Console is a Sink that writes human-readable diagnostics to a
// stream, normally stderr. Severity labels are colored when the
// stream is a terminal. Notes are emitted only in verbose mode.
//
// Console serializes writes, so one instance can be shared across the
// whole run.
type Console struct {
	mu      sync.Mutex
	writer  io.Writer
	output  *termenv.Output
	verbose bool
}

// NewConsole creates a console sink writing to w. Color is enabled
// only when w is a terminal; piped output stays plain.
func NewConsole(w io.Writer, verbose bool) *Console {
	profile := termenv.Ascii
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		profile = termenv.NewOutput(file).EnvColorProfile()
	}
	return &Console{
		writer:  w,
		output:  termenv.NewOutput(w, termenv.WithProfile(profile)),
		verbose: verbose,
	}
}

// Error implements Sink.
func (c *Console) Error(message string) {
	c.emit("error", "1", message) // red
}

// Warn implements Sink.
func (c *Console) Warn(message string) {
	c.emit("warning", "3", message) // yellow
}

// Note implements Sink.
func (c *Console) Note(message string) {
	if !c.verbose {
		return
	}
	c.emit("note", "6", message) // cyan
}

func (c *Console) emit(label, color, message string) {
	styled := c.output.String(label + ":").Foreground(c.output.Color(color)).String()

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.writer, "%s %s\n", styled, message)
}
