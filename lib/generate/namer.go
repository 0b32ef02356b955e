// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"errors"
	"fmt"

	"github.com/apkforge/apkforge/lib/diag"
	"github.com/apkforge/apkforge/lib/variant"
)

// ErrMissingNameTemplate reports an artifact with neither an explicit
// name nor a global name template to derive one from.
var ErrMissingNameTemplate = errors.New("no artifact name and no name template")

// artifactName resolves one artifact's output file name. An explicit
// name is itself expanded (so per-artifact names may also use the
// template variables); an unnamed artifact requires the
// configuration's global template. Naming is pure and never touches
// the filesystem.
func artifactName(config *variant.Config, artifact variant.Artifact, basePath string, sink diag.Sink) (string, error) {
	variables := variant.NameVariables(basePath, artifact)

	template := artifact.Name
	if template == "" {
		template = config.NameTemplate
	}
	if template == "" {
		diag.Errorf(sink, "artifact has no name and the configuration sets no name_template")
		return "", ErrMissingNameTemplate
	}

	name, err := variant.ExpandName(template, variables)
	if err != nil {
		diag.Errorf(sink, "resolving artifact name %q: %v", template, err)
		return "", fmt.Errorf("resolving artifact name %q: %w", template, err)
	}
	return name, nil
}
