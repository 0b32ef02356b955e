// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

// Package diag provides the diagnostics sink used by the generation
// pipeline.
//
// Errors are terminal for the current unit of work, warnings are
// advisory, and notes are verbose-only telemetry. The pipeline reports
// all failure detail through a Sink rather than through returned
// errors, so callers that need machine-readable detail should install
// a Collector.
package diag

import "fmt"

// Sink receives diagnostic messages from the pipeline.
type Sink interface {
	// Error reports a failure that aborts the current unit of work.
	Error(message string)

	// Warn reports an advisory condition; processing continues.
	Warn(message string)

	// Note reports verbose-only telemetry. Sinks that are not in
	// verbose mode discard notes.
	Note(message string)
}

// Errorf formats and reports an error.
func Errorf(sink Sink, format string, args ...any) {
	sink.Error(fmt.Sprintf(format, args...))
}

// Warnf formats and reports a warning.
func Warnf(sink Sink, format string, args ...any) {
	sink.Warn(fmt.Sprintf(format, args...))
}

// Notef formats and reports a note.
func Notef(sink Sink, format string, args ...any) {
	sink.Note(fmt.Sprintf(format, args...))
}

// Position formats a source location for inclusion in diagnostics.
// With line 0 only the source is returned.
func Position(source string, line int) string {
	if line <= 0 {
		return source
	}
	return fmt.Sprintf("%s:%d", source, line)
}
