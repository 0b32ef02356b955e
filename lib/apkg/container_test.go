// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package apkg

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	t.Parallel()

	entries := map[string][]byte{
		"AndroidManifest.xml":        []byte(strings.Repeat("<manifest/>", 100)),
		"resources.bin":              bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 64),
		"lib/arm64-v8a/libnative.so": []byte("ELF pretend payload"),
	}
	order := []string{"AndroidManifest.xml", "resources.bin", "lib/arm64-v8a/libnative.so"}

	writer := NewWriter(CompressAuto)
	for _, name := range order {
		if err := writer.Add(name, entries[name]); err != nil {
			t.Fatalf("Add(%q): %v", name, err)
		}
	}
	if writer.EntryCount() != 3 {
		t.Fatalf("EntryCount = %d, want 3", writer.EntryCount())
	}

	var buffer bytes.Buffer
	if err := writer.Flush(&buffer); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if writer.EntryCount() != 0 {
		t.Error("Flush did not reset the writer")
	}

	reader, err := NewReader(buffer.Bytes())
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	names := reader.Names()
	if len(names) != len(order) {
		t.Fatalf("Names = %v, want %v", names, order)
	}
	for i, name := range order {
		if names[i] != name {
			t.Errorf("Names[%d] = %q, want %q", i, names[i], name)
		}
		data, err := reader.Data(name)
		if err != nil {
			t.Fatalf("Data(%q): %v", name, err)
		}
		if !bytes.Equal(data, entries[name]) {
			t.Errorf("Data(%q) does not match input", name)
		}
	}

	// The redundant manifest should have been stored compressed.
	header, ok := reader.Entry("AndroidManifest.xml")
	if !ok {
		t.Fatal("Entry(AndroidManifest.xml) missing")
	}
	if header.Compression == CompressionNone {
		t.Error("repetitive entry was stored uncompressed under auto mode")
	}
}

func TestWriterDuplicateEntry(t *testing.T) {
	t.Parallel()

	writer := NewWriter(CompressNone)
	if err := writer.Add("a", []byte("x")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := writer.Add("a", []byte("y")); err == nil {
		t.Fatal("expected error adding duplicate entry")
	}
}

func TestReaderRejectsBadMagic(t *testing.T) {
	t.Parallel()

	if _, err := NewReader([]byte("not an archive at all")); err == nil {
		t.Fatal("expected error for invalid magic")
	}
}

func TestReaderRejectsUnsupportedVersion(t *testing.T) {
	t.Parallel()

	writer := NewWriter(CompressNone)
	if err := writer.Add("a", []byte("x")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	var buffer bytes.Buffer
	if err := writer.Flush(&buffer); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	data := buffer.Bytes()
	data[7] = containerVersion + 1
	_, err := NewReader(data)
	if err == nil {
		t.Fatal("expected error for unsupported version")
	}
	if !strings.Contains(err.Error(), "version") {
		t.Errorf("error %q does not mention the version", err)
	}
}

func TestReaderDetectsCorruptEntry(t *testing.T) {
	t.Parallel()

	payload := []byte("payload that must survive intact")
	writer := NewWriter(CompressNone)
	if err := writer.Add("entry", payload); err != nil {
		t.Fatalf("Add: %v", err)
	}
	var buffer bytes.Buffer
	if err := writer.Flush(&buffer); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	// Flip a bit in the stored blob (the last byte of the archive is
	// inside the uncompressed entry data).
	data := buffer.Bytes()
	data[len(data)-1] ^= 0x01

	reader, err := NewReader(data)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if _, err := reader.Data("entry"); err == nil {
		t.Fatal("expected hash mismatch for corrupt entry")
	}
}

func TestReaderRejectsTruncatedData(t *testing.T) {
	t.Parallel()

	writer := NewWriter(CompressNone)
	if err := writer.Add("entry", []byte("twelve bytes")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	var buffer bytes.Buffer
	if err := writer.Flush(&buffer); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	data := buffer.Bytes()
	if _, err := NewReader(data[:len(data)-4]); err == nil {
		t.Fatal("expected error for truncated archive")
	}
}

func TestParseCompressionMode(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"auto", "none", "lz4", "zstd"} {
		mode, err := ParseCompressionMode(name)
		if err != nil {
			t.Fatalf("ParseCompressionMode(%q): %v", name, err)
		}
		if mode.String() != name {
			t.Errorf("mode %q round-tripped to %q", name, mode.String())
		}
	}
	if _, err := ParseCompressionMode("brotli"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
