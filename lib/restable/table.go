// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

// Package restable models the resource table carried inside a
// package: packages, types, entries, and per-configuration values.
//
// The table serializes to deterministic CBOR (lib/codec), so the same
// logical table always produces identical bytes and a stable blake3
// fingerprint. The generation pipeline never mutates a base table; it
// clones a working copy per artifact and filters that.
package restable

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/apkforge/apkforge/lib/codec"
)

// Table is the root of a package's resource data.
type Table struct {
	Packages []*Package `json:"packages"`
}

// Package groups the resource types of one declared package name.
type Package struct {
	Name  string  `json:"name"`
	Types []*Type `json:"types"`
}

// Type groups entries of one resource type ("string", "drawable").
type Type struct {
	Name    string   `json:"name"`
	Entries []*Entry `json:"entries"`
}

// Entry is one named resource with values per configuration.
type Entry struct {
	Name   string   `json:"name"`
	Values []*Value `json:"values"`
}

// Value is one configuration-specific payload of an entry. The
// payload bytes are opaque to the pipeline.
type Value struct {
	Config Config `json:"config"`
	Data   []byte `json:"data"`
}

// Clone returns an independently-owned deep copy. Mutating the clone
// never affects the receiver.
func (t *Table) Clone() *Table {
	clone := &Table{Packages: make([]*Package, len(t.Packages))}
	for i, pkg := range t.Packages {
		clonedPackage := &Package{Name: pkg.Name, Types: make([]*Type, len(pkg.Types))}
		for j, typ := range pkg.Types {
			clonedType := &Type{Name: typ.Name, Entries: make([]*Entry, len(typ.Entries))}
			for k, entry := range typ.Entries {
				clonedEntry := &Entry{Name: entry.Name, Values: make([]*Value, len(entry.Values))}
				for l, value := range entry.Values {
					data := make([]byte, len(value.Data))
					copy(data, value.Data)
					clonedEntry.Values[l] = &Value{Config: value.Config, Data: data}
				}
				clonedType.Entries[k] = clonedEntry
			}
			clonedPackage.Types[j] = clonedType
		}
		clone.Packages[i] = clonedPackage
	}
	return clone
}

// Marshal serializes the table to deterministic CBOR.
func (t *Table) Marshal() ([]byte, error) {
	return codec.Marshal(t)
}

// Unmarshal decodes a table from its CBOR form.
func Unmarshal(data []byte) (*Table, error) {
	var table Table
	if err := codec.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decoding resource table: %w", err)
	}
	return &table, nil
}

// Fingerprint returns the hex blake3 hash of the table's
// deterministic encoding. Two tables with equal content have equal
// fingerprints.
func (t *Table) Fingerprint() (string, error) {
	data, err := t.Marshal()
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// ValueCount returns the total number of values across all entries.
func (t *Table) ValueCount() int {
	var count int
	for _, pkg := range t.Packages {
		for _, typ := range pkg.Types {
			for _, entry := range typ.Entries {
				count += len(entry.Values)
			}
		}
	}
	return count
}

// visitEntries calls visit for every entry in the table. The visitor
// may mutate the entry's value slice.
func (t *Table) visitEntries(visit func(*Entry)) {
	for _, pkg := range t.Packages {
		for _, typ := range pkg.Types {
			for _, entry := range typ.Entries {
				visit(entry)
			}
		}
	}
}
