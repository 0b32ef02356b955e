// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"errors"
	"fmt"

	"github.com/apkforge/apkforge/lib/apkg"
	"github.com/apkforge/apkforge/lib/diag"
	"github.com/apkforge/apkforge/lib/manifest"
)

// Manifest patching errors.
var (
	// ErrManifestLoad reports a manifest entry that could not be read
	// or parsed.
	ErrManifestLoad = errors.New("manifest load failed")

	// ErrMalformedManifest reports a manifest document with no root
	// element.
	ErrMalformedManifest = errors.New("manifest has no root element")

	// ErrInvalidManifestRoot reports a root element that is not an
	// unqualified <manifest> tag.
	ErrInvalidManifestRoot = errors.New("root element is not <manifest>")

	// ErrMissingMinSDK reports a <uses-sdk> element without a
	// minSdkVersion attribute.
	ErrMissingMinSDK = errors.New("uses-sdk element has no minSdkVersion attribute")
)

// patchManifest loads a fresh, artifact-private copy of the base
// manifest and rewrites its minimum SDK level to minSDK. A manifest
// without a <uses-sdk> element is returned unchanged: the declaration
// is optional and its absence is not an error. The base package's
// manifest entry is never modified.
func patchManifest(pkg *apkg.Package, minSDK int, sink diag.Sink) ([]byte, error) {
	document, err := pkg.InflateManifest()
	if err != nil {
		diag.Errorf(sink, "loading manifest: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrManifestLoad, err)
	}

	if document.Root == nil {
		diag.Errorf(sink, "%s: manifest has no root element", document.Source)
		return nil, ErrMalformedManifest
	}
	root := document.Root
	if root.NamespaceURI != "" || root.Name != "manifest" {
		diag.Errorf(sink, "%s: root element must be <manifest>", diag.Position(document.Source, root.Line))
		return nil, ErrInvalidManifestRoot
	}

	usesSDK := root.FindChild("", "uses-sdk")
	if usesSDK == nil {
		return nil, nil
	}

	attribute := usesSDK.FindAttribute(manifest.SchemaAndroid, "minSdkVersion")
	if attribute == nil {
		diag.Errorf(sink, "%s: uses-sdk element has no android:minSdkVersion attribute",
			diag.Position(document.Source, usesSDK.Line))
		return nil, ErrMissingMinSDK
	}
	attribute.SetInt(minSDK)

	patched, err := document.Encode()
	if err != nil {
		diag.Errorf(sink, "encoding patched manifest: %v", err)
		return nil, fmt.Errorf("encoding patched manifest: %w", err)
	}
	return patched, nil
}
