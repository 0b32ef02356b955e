// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

// Package apkg reads and writes the package archive format: a
// content-hashed container holding a compiled resource table, a
// manifest, and arbitrary payload entries (native libraries, compiled
// code, assets).
//
// Archive layout:
//
//	8-byte magic ("APKFORG" + version byte)
//	4-byte little-endian index length
//	CBOR-encoded entry index ([]EntryHeader)
//	entry data blobs, concatenated in index order
//
// Entry data is individually compressed and BLAKE3-hashed; hashes are
// verified on read.
package apkg

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"

	"github.com/apkforge/apkforge/lib/codec"
)

const containerVersion = 1

// containerMagic is the 8-byte archive file signature.
var containerMagic = [8]byte{'A', 'P', 'K', 'F', 'O', 'R', 'G', containerVersion}

// EntryHeader describes a single entry in the archive index.
type EntryHeader struct {
	// Name is the entry's archive path ("AndroidManifest.xml",
	// "lib/arm64-v8a/libnative.so").
	Name string `json:"name"`

	// Compression is the algorithm the entry data is stored with.
	Compression CompressionTag `json:"compression"`

	// CompressedSize is the byte length of the stored blob.
	CompressedSize uint32 `json:"compressed_size"`

	// UncompressedSize is the original byte length.
	UncompressedSize uint32 `json:"uncompressed_size"`

	// Hash is the BLAKE3 hash of the uncompressed entry data.
	Hash [32]byte `json:"hash"`
}

// CompressionMode selects how Writer.Add compresses an entry.
// The zero value probes each entry and picks per-entry.
type CompressionMode uint8

const (
	// CompressAuto probes each entry and picks the best algorithm.
	CompressAuto CompressionMode = iota

	// CompressNone stores every entry uncompressed.
	CompressNone

	// CompressLZ4 forces LZ4 for every entry, falling back to
	// uncompressed storage when an entry does not shrink.
	CompressLZ4

	// CompressZstd forces zstd for every entry, with the same
	// incompressible fallback.
	CompressZstd
)

// ParseCompressionMode parses a mode name ("auto", "none", "lz4",
// "zstd").
func ParseCompressionMode(name string) (CompressionMode, error) {
	switch name {
	case "auto":
		return CompressAuto, nil
	case "none":
		return CompressNone, nil
	case "lz4":
		return CompressLZ4, nil
	case "zstd":
		return CompressZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression mode: %q", name)
	}
}

func (mode CompressionMode) String() string {
	switch mode {
	case CompressAuto:
		return "auto"
	case CompressNone:
		return "none"
	case CompressLZ4:
		return "lz4"
	case CompressZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", mode)
	}
}

// Writer accumulates entries and serializes them as an archive. The
// format has the index before the data, so entries are buffered in
// memory until [Writer.Flush].
type Writer struct {
	headers []EntryHeader
	blobs   [][]byte
	names   map[string]bool
	mode    CompressionMode
}

// NewWriter creates a writer whose entries are compressed according
// to mode.
func NewWriter(mode CompressionMode) *Writer {
	return &Writer{
		names: make(map[string]bool),
		mode:  mode,
	}
}

// Add appends one entry. Duplicate names are an error; index order is
// insertion order.
func (w *Writer) Add(name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("entry name must not be empty")
	}
	if w.names[name] {
		return fmt.Errorf("duplicate entry %q", name)
	}

	tag := CompressionNone
	switch w.mode {
	case CompressAuto:
		tag = SelectCompression(data)
	case CompressNone:
		tag = CompressionNone
	case CompressLZ4:
		tag = CompressionLZ4
	case CompressZstd:
		tag = CompressionZstd
	default:
		return fmt.Errorf("unsupported compression mode: %d", w.mode)
	}

	compressed, err := CompressEntry(data, tag)
	if err != nil {
		if !IsIncompressible(err) {
			return fmt.Errorf("compressing entry %q: %w", name, err)
		}
		tag = CompressionNone
		compressed = data
	}

	w.headers = append(w.headers, EntryHeader{
		Name:             name,
		Compression:      tag,
		CompressedSize:   uint32(len(compressed)),
		UncompressedSize: uint32(len(data)),
		Hash:             blake3.Sum256(data),
	})
	w.blobs = append(w.blobs, compressed)
	w.names[name] = true
	return nil
}

// EntryCount returns the number of entries added so far.
func (w *Writer) EntryCount() int {
	return len(w.headers)
}

// Flush writes the complete archive to out. The writer is reset
// afterwards.
func (w *Writer) Flush(out io.Writer) error {
	index, err := codec.Marshal(w.headers)
	if err != nil {
		return fmt.Errorf("encoding entry index: %w", err)
	}

	if _, err := out.Write(containerMagic[:]); err != nil {
		return fmt.Errorf("writing archive magic: %w", err)
	}

	var lengthBytes [4]byte
	binary.LittleEndian.PutUint32(lengthBytes[:], uint32(len(index)))
	if _, err := out.Write(lengthBytes[:]); err != nil {
		return fmt.Errorf("writing index length: %w", err)
	}
	if _, err := out.Write(index); err != nil {
		return fmt.Errorf("writing entry index: %w", err)
	}

	for i, blob := range w.blobs {
		if _, err := out.Write(blob); err != nil {
			return fmt.Errorf("writing entry %q data: %w", w.headers[i].Name, err)
		}
	}

	w.headers = w.headers[:0]
	w.blobs = w.blobs[:0]
	w.names = make(map[string]bool)
	return nil
}

// Reader provides access to the entries of a parsed archive. Entry
// data is decompressed and hash-verified on each [Reader.Data] call.
type Reader struct {
	headers []EntryHeader
	blobs   map[string][]byte
	order   []string
}

// Open reads an archive from a file.
func Open(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading archive %s: %w", path, err)
	}
	reader, err := NewReader(data)
	if err != nil {
		return nil, fmt.Errorf("parsing archive %s: %w", path, err)
	}
	return reader, nil
}

// NewReader parses an archive from memory.
func NewReader(data []byte) (*Reader, error) {
	if len(data) < len(containerMagic)+4 {
		return nil, fmt.Errorf("archive too short (%d bytes)", len(data))
	}

	var magic [8]byte
	copy(magic[:], data)
	if magic != containerMagic {
		if magic[0] == 'A' && magic[1] == 'P' && magic[2] == 'K' &&
			magic[3] == 'F' && magic[4] == 'O' && magic[5] == 'R' && magic[6] == 'G' {
			return nil, fmt.Errorf("archive version %d is not supported (this code supports version %d)",
				magic[7], containerVersion)
		}
		return nil, fmt.Errorf("not a package archive (invalid magic bytes)")
	}

	indexLength := binary.LittleEndian.Uint32(data[8:12])
	body := data[12:]
	if uint32(len(body)) < indexLength {
		return nil, fmt.Errorf("truncated entry index: have %d bytes, index claims %d", len(body), indexLength)
	}

	var headers []EntryHeader
	if err := codec.Unmarshal(body[:indexLength], &headers); err != nil {
		return nil, fmt.Errorf("decoding entry index: %w", err)
	}

	blobs := make(map[string][]byte, len(headers))
	order := make([]string, 0, len(headers))
	rest := body[indexLength:]
	for _, header := range headers {
		if uint32(len(rest)) < header.CompressedSize {
			return nil, fmt.Errorf("truncated data for entry %q: have %d bytes, header claims %d",
				header.Name, len(rest), header.CompressedSize)
		}
		if _, ok := blobs[header.Name]; ok {
			return nil, fmt.Errorf("duplicate entry %q in index", header.Name)
		}
		blobs[header.Name] = rest[:header.CompressedSize]
		order = append(order, header.Name)
		rest = rest[header.CompressedSize:]
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%d trailing bytes after last entry", len(rest))
	}

	return &Reader{headers: headers, blobs: blobs, order: order}, nil
}

// Names returns the entry names in index order.
func (r *Reader) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Entry returns the index header for one entry.
func (r *Reader) Entry(name string) (EntryHeader, bool) {
	for _, header := range r.headers {
		if header.Name == name {
			return header, true
		}
	}
	return EntryHeader{}, false
}

// Has reports whether the archive contains an entry.
func (r *Reader) Has(name string) bool {
	_, ok := r.blobs[name]
	return ok
}

// Data decompresses and returns one entry's content, verifying its
// hash against the index.
func (r *Reader) Data(name string) ([]byte, error) {
	header, ok := r.Entry(name)
	if !ok {
		return nil, fmt.Errorf("archive has no entry %q", name)
	}

	data, err := DecompressEntry(r.blobs[name], header.Compression, int(header.UncompressedSize))
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", name, err)
	}
	if hash := blake3.Sum256(data); hash != header.Hash {
		return nil, fmt.Errorf("entry %q is corrupt: hash mismatch", name)
	}
	return data, nil
}
