// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package apkg

import (
	"fmt"
	"io"

	"github.com/apkforge/apkforge/lib/filter"
	"github.com/apkforge/apkforge/lib/manifest"
	"github.com/apkforge/apkforge/lib/restable"
)

// Well-known entry names.
const (
	// ManifestEntry is the package manifest.
	ManifestEntry = "AndroidManifest.xml"

	// TableEntry is the compiled resource table.
	TableEntry = "resources.bin"
)

// Package is a loaded base package: the archive plus its decoded
// resource table. The table is decoded once at load time; the
// manifest is reparsed per call so that callers get an independent
// document to mutate.
type Package struct {
	// Source is the path the package was loaded from, used in
	// diagnostics.
	Source string

	reader *Reader
	table  *restable.Table
}

// Load reads a base package from disk. The resource table entry is
// required; a manifest entry is not (its absence surfaces when the
// caller asks for it).
func Load(path string) (*Package, error) {
	reader, err := Open(path)
	if err != nil {
		return nil, err
	}

	tableData, err := reader.Data(TableEntry)
	if err != nil {
		return nil, fmt.Errorf("loading %s from %s: %w", TableEntry, path, err)
	}
	table, err := restable.Unmarshal(tableData)
	if err != nil {
		return nil, fmt.Errorf("decoding %s from %s: %w", TableEntry, path, err)
	}

	return &Package{Source: path, reader: reader, table: table}, nil
}

// Table returns the package's resource table. Callers that mutate it
// must clone first.
func (p *Package) Table() *restable.Table {
	return p.table
}

// Reader exposes the underlying archive reader.
func (p *Package) Reader() *Reader {
	return p.reader
}

// ManifestBytes returns the raw manifest entry.
func (p *Package) ManifestBytes() ([]byte, error) {
	data, err := p.reader.Data(ManifestEntry)
	if err != nil {
		return nil, fmt.Errorf("loading %s from %s: %w", ManifestEntry, p.Source, err)
	}
	return data, nil
}

// InflateManifest parses the manifest entry into a fresh document.
// Every call returns an independent tree, so mutations made for one
// artifact never leak into the next.
func (p *Package) InflateManifest() (*manifest.Document, error) {
	data, err := p.ManifestBytes()
	if err != nil {
		return nil, err
	}
	source := p.Source + "!" + ManifestEntry
	document, err := manifest.Parse(source, data)
	if err != nil {
		return nil, err
	}
	return document, nil
}

// WriteOptions controls artifact serialization.
type WriteOptions struct {
	// Table replaces the package's resource table entry. Required.
	Table *restable.Table

	// Manifest replaces the manifest entry when non-nil; otherwise
	// the base manifest is copied through unchanged.
	Manifest []byte

	// Filters decides which base entries are copied. Nil keeps
	// everything. The table and manifest entries are never filtered.
	Filters *filter.Chain

	// Mode selects entry compression.
	Mode CompressionMode
}

// WriteArtifact serializes one artifact: base entries that pass the
// filter chain are copied through, with the resource table and
// (optionally) the manifest replaced. Entry order follows the base
// package.
func (p *Package) WriteArtifact(out io.Writer, options WriteOptions) error {
	if options.Table == nil {
		return fmt.Errorf("writing artifact from %s: no resource table", p.Source)
	}
	tableData, err := options.Table.Marshal()
	if err != nil {
		return fmt.Errorf("encoding resource table: %w", err)
	}

	writer := NewWriter(options.Mode)
	for _, name := range p.reader.Names() {
		var data []byte
		switch {
		case name == TableEntry:
			data = tableData
		case name == ManifestEntry && options.Manifest != nil:
			data = options.Manifest
		case name == ManifestEntry:
			data, err = p.reader.Data(name)
			if err != nil {
				return err
			}
		default:
			if !options.Filters.Keep(name) {
				continue
			}
			data, err = p.reader.Data(name)
			if err != nil {
				return err
			}
		}
		if err := writer.Add(name, data); err != nil {
			return err
		}
	}
	return writer.Flush(out)
}
