// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package variant

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// variablePattern matches ${name} references in a name template.
// Only the braced form is recognized. Variable names must start with
// a letter or underscore and contain only letters, digits, and
// underscores.
var variablePattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// NameVariables builds the substitution map for one artifact's name
// template: the base package's file name split into ${basename} and
// ${ext}, plus whichever dimension group names the artifact sets
// (${abi}, ${density}, ${locale}, ${sdk}).
func NameVariables(basePath string, artifact Artifact) map[string]string {
	base := filepath.Base(basePath)
	ext := filepath.Ext(base)

	variables := map[string]string{
		"basename": strings.TrimSuffix(base, ext),
		"ext":      strings.TrimPrefix(ext, "."),
	}
	if artifact.ABIGroup != "" {
		variables["abi"] = artifact.ABIGroup
	}
	if artifact.ScreenDensityGroup != "" {
		variables["density"] = artifact.ScreenDensityGroup
	}
	if artifact.LocaleGroup != "" {
		variables["locale"] = artifact.LocaleGroup
	}
	if artifact.AndroidSDKGroup != "" {
		variables["sdk"] = artifact.AndroidSDKGroup
	}
	return variables
}

// ExpandName replaces ${name} references in template with values
// from the variables map. Returns an error listing every referenced
// variable that has no value, so a template naming a dimension the
// artifact doesn't set fails rather than producing a hole in the
// output name.
func ExpandName(template string, variables map[string]string) (string, error) {
	var unresolved []string

	result := variablePattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-1]
		if value, exists := variables[name]; exists {
			return value
		}
		unresolved = append(unresolved, name)
		return match
	})

	if len(unresolved) > 0 {
		return "", fmt.Errorf("unresolved name template variables: %s", strings.Join(unresolved, ", "))
	}

	return result, nil
}
