// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apkforge/apkforge/lib/apkg"
	"github.com/apkforge/apkforge/lib/diag"
	"github.com/apkforge/apkforge/lib/variant"
)

// ErrGenerationFailed is the only error Generate returns. All failure
// detail is delivered through the diagnostics sink; callers needing
// machine-readable detail must capture diagnostics. This is a
// documented limitation of the pipeline's contract.
var ErrGenerationFailed = errors.New("artifact generation failed")

// ErrArchiveWrite reports a failure to create or write an output
// archive.
var ErrArchiveWrite = errors.New("archive write failed")

// Generator produces configured artifact variants of one base
// package.
type Generator struct {
	base    *apkg.Package
	context Context
}

// New builds a generator over a loaded base package.
func New(base *apkg.Package, context Context) *Generator {
	return &Generator{base: base, context: context}
}

// Options parameterizes one generation run.
type Options struct {
	// Config is the artifact configuration.
	Config *variant.Config

	// OutDir receives the generated artifacts.
	OutDir string

	// Mode selects entry compression for written artifacts.
	Mode apkg.CompressionMode
}

// Generate processes every configured artifact in declaration order.
// The run is fail-fast: the first artifact that fails any step aborts
// the whole run, and artifacts already written stay on disk. Repeated
// runs are idempotent with respect to the base package, which is
// never mutated.
func (g *Generator) Generate(options Options) error {
	sink := g.context.Diag()

	for index, artifact := range options.Config.Artifacts {
		if err := g.generateArtifact(options, artifact); err != nil {
			label := artifact.Name
			if label == "" {
				label = fmt.Sprintf("#%d", index)
			}
			diag.Errorf(sink, "failed to generate artifact %s", label)
			return fmt.Errorf("artifact %s: %w", label, ErrGenerationFailed)
		}
	}
	return nil
}

// generateArtifact runs one artifact through the pipeline: name →
// filtered table → optional manifest patch → archive write.
func (g *Generator) generateArtifact(options Options, artifact variant.Artifact) error {
	sink := g.context.Diag()

	name, err := artifactName(options.Config, artifact, g.base.Source, sink)
	if err != nil {
		return err
	}
	if g.context.Verbose() {
		diag.Notef(sink, "generating artifact %q", name)
	}

	filtered, err := buildFilteredTable(options.Config, artifact, g.base.Table(), g.context)
	if err != nil {
		return err
	}

	// The SDK group is resolved a second time for the patch decision;
	// a dangling reference would already have failed the filter build.
	var patchedManifest []byte
	if artifact.AndroidSDKGroup != "" {
		sdk, err := resolveSDKGroup(options.Config, artifact.AndroidSDKGroup, sink)
		if err != nil {
			return err
		}
		if sdk.MinSDKVersion != nil {
			patchedManifest, err = patchManifest(g.base, *sdk.MinSDKVersion, sink)
			if err != nil {
				return err
			}
		}
	}

	// Directory creation failure is only a warning: if the directory
	// is truly unusable the file create below reports the real error.
	if err := os.MkdirAll(options.OutDir, 0o755); err != nil {
		diag.Warnf(sink, "could not create output directory %s: %v", options.OutDir, err)
	}

	outPath := filepath.Join(options.OutDir, name)
	if g.context.Verbose() {
		diag.Notef(sink, "writing %s", outPath)
	}

	file, err := os.Create(outPath)
	if err != nil {
		diag.Errorf(sink, "creating %s: %v", outPath, err)
		return fmt.Errorf("creating %s: %w", outPath, ErrArchiveWrite)
	}
	writeErr := g.base.WriteArtifact(file, apkg.WriteOptions{
		Table:    filtered.table,
		Manifest: patchedManifest,
		Filters:  filtered.chain,
		Mode:     options.Mode,
	})
	closeErr := file.Close()
	if writeErr != nil {
		diag.Errorf(sink, "writing %s: %v", outPath, writeErr)
		return fmt.Errorf("writing %s: %w", outPath, ErrArchiveWrite)
	}
	if closeErr != nil {
		diag.Errorf(sink, "closing %s: %v", outPath, closeErr)
		return fmt.Errorf("closing %s: %w", outPath, ErrArchiveWrite)
	}
	return nil
}
