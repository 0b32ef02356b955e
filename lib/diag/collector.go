// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package diag

// Level classifies a collected diagnostic.
type Level int

const (
	// LevelError marks a terminal failure for the current unit of work.
	LevelError Level = iota
	// LevelWarn marks an advisory condition.
	LevelWarn
	// LevelNote marks verbose telemetry.
	LevelNote
)

// Record is one collected diagnostic message.
type Record struct {
	Level   Level
	Message string
}

// Collector is a Sink that records every message it receives. Tests
// and callers needing machine-readable failure detail use it in place
// of a Console. Unlike Console it does not gate notes on a verbose
// flag; everything is recorded.
type Collector struct {
	Records []Record
}

// Error implements Sink.
func (c *Collector) Error(message string) {
	c.Records = append(c.Records, Record{Level: LevelError, Message: message})
}

// Warn implements Sink.
func (c *Collector) Warn(message string) {
	c.Records = append(c.Records, Record{Level: LevelWarn, Message: message})
}

// Note implements Sink.
func (c *Collector) Note(message string) {
	c.Records = append(c.Records, Record{Level: LevelNote, Message: message})
}

// Errors returns the collected error messages in emission order.
func (c *Collector) Errors() []string {
	return c.messages(LevelError)
}

// Warnings returns the collected warning messages in emission order.
func (c *Collector) Warnings() []string {
	return c.messages(LevelWarn)
}

// Notes returns the collected note messages in emission order.
func (c *Collector) Notes() []string {
	return c.messages(LevelNote)
}

func (c *Collector) messages(level Level) []string {
	var result []string
	for _, record := range c.Records {
		if record.Level == level {
			result = append(result, record.Message)
		}
	}
	return result
}
