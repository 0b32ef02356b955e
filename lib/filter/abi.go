// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package filter

import "strings"

// abiPrefix is the archive directory that holds native libraries,
// one subdirectory per ABI.
const abiPrefix = "lib/"

// ABIFilter keeps native library entries only for an allowed set of
// ABIs. Entries outside the native library directory always pass.
type ABIFilter struct {
	allowed map[string]bool
}

// NewABI builds a filter from an ABI list ("armeabi-v7a",
// "arm64-v8a", ...).
func NewABI(abis []string) *ABIFilter {
	allowed := make(map[string]bool, len(abis))
	for _, abi := range abis {
		allowed[abi] = true
	}
	return &ABIFilter{allowed: allowed}
}

// Keep implements Filter. A native library path has the shape
// lib/<abi>/<file>; it is kept when <abi> is in the allowed set.
// Paths directly under lib/ with no ABI directory are kept as-is.
func (f *ABIFilter) Keep(path string) bool {
	if !strings.HasPrefix(path, abiPrefix) {
		return true
	}
	rest := path[len(abiPrefix):]
	abi, _, found := strings.Cut(rest, "/")
	if !found {
		return true
	}
	return f.allowed[abi]
}
