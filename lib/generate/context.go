// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

// Package generate drives artifact generation: it resolves each
// configured artifact's dimension groups, names its output file,
// filters a clone of the base resource table, patches the manifest's
// minimum SDK level when the artifact pins one, and writes the result
// through the archive writer. The first failing artifact aborts the
// run.
package generate

import (
	"github.com/apkforge/apkforge/lib/diag"
)

// Context carries the build-wide inputs the pipeline reads: the base
// package's declared name, its baseline minimum SDK level, verbosity,
// and the diagnostics sink. Implementations are immutable; a
// per-artifact SDK override is layered on with [OverrideMinSDK].
type Context interface {
	PackageName() string
	MinSDKVersion() int
	Verbose() bool
	Diag() diag.Sink
}

type baseContext struct {
	packageName string
	minSDK      int
	verbose     bool
	sink        diag.Sink
}

// NewContext builds the base build context.
func NewContext(packageName string, minSDK int, verbose bool, sink diag.Sink) Context {
	return &baseContext{
		packageName: packageName,
		minSDK:      minSDK,
		verbose:     verbose,
		sink:        sink,
	}
}

func (c *baseContext) PackageName() string { return c.packageName }
func (c *baseContext) MinSDKVersion() int  { return c.minSDK }
func (c *baseContext) Verbose() bool       { return c.verbose }
func (c *baseContext) Diag() diag.Sink     { return c.sink }

// withMinSDK overrides exactly one accessor; everything else
// delegates to the embedded base. The override never mutates the
// base, so contexts can be layered per artifact.
type withMinSDK struct {
	Context
	minSDK int
}

func (c *withMinSDK) MinSDKVersion() int { return c.minSDK }

// OverrideMinSDK returns a context identical to base except for its
// minimum SDK level.
func OverrideMinSDK(base Context, minSDK int) Context {
	return &withMinSDK{Context: base, minSDK: minSDK}
}
