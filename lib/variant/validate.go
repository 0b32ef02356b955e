// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package variant

import (
	"fmt"

	"github.com/apkforge/apkforge/lib/restable"
)

// Validate checks a configuration for structural issues. Returns a
// list of human-readable issue descriptions; an empty list means the
// configuration is valid.
//
// Group references on artifacts are deliberately not checked here:
// an artifact may name a group that doesn't exist, and the reference
// only fails when that artifact is generated. This lets one
// configuration file serve several base packages that use different
// subsets of its artifacts.
func Validate(config *Config) []string {
	var issues []string

	if len(config.Artifacts) == 0 {
		issues = append(issues, "configuration has no artifacts (at least one is required)")
	}

	seen := make(map[string]int)
	for index, artifact := range config.Artifacts {
		prefix := fmt.Sprintf("artifacts[%d]", index)
		if artifact.Name != "" {
			prefix = fmt.Sprintf("artifacts[%d] %q", index, artifact.Name)
			if previous, duplicate := seen[artifact.Name]; duplicate {
				issues = append(issues, fmt.Sprintf("%s: duplicate of artifacts[%d]", prefix, previous))
			} else {
				seen[artifact.Name] = index
			}
		} else if config.NameTemplate == "" {
			issues = append(issues, fmt.Sprintf("%s: has no name and no name_template is set", prefix))
		}
	}

	for name, abis := range config.ABIGroups {
		if len(abis) == 0 {
			issues = append(issues, fmt.Sprintf("abi_groups[%q] is empty", name))
		}
		for _, abi := range abis {
			if !KnownABIs[abi] {
				issues = append(issues, fmt.Sprintf("abi_groups[%q]: unknown ABI %q", name, abi))
			}
		}
	}

	for name, densities := range config.DensityGroups {
		if len(densities) == 0 {
			issues = append(issues, fmt.Sprintf("screen_density_groups[%q] is empty", name))
		}
		for _, density := range densities {
			if _, err := restable.ParseDensity(density); err != nil {
				issues = append(issues, fmt.Sprintf("screen_density_groups[%q]: %v", name, err))
			}
		}
	}

	for name, locales := range config.LocaleGroups {
		if len(locales) == 0 {
			issues = append(issues, fmt.Sprintf("locale_groups[%q] is empty", name))
		}
	}

	for name, sdk := range config.SDKGroups {
		if sdk.MinSDKVersion == nil {
			issues = append(issues, fmt.Sprintf("android_sdk_groups[%q]: min_sdk_version is required", name))
			continue
		}
		if *sdk.MinSDKVersion < 1 {
			issues = append(issues, fmt.Sprintf("android_sdk_groups[%q]: min_sdk_version %d is not a valid level", name, *sdk.MinSDKVersion))
		}
		if sdk.MaxSDKVersion != nil && *sdk.MaxSDKVersion < *sdk.MinSDKVersion {
			issues = append(issues, fmt.Sprintf("android_sdk_groups[%q]: max_sdk_version %d is below min_sdk_version %d",
				name, *sdk.MaxSDKVersion, *sdk.MinSDKVersion))
		}
	}

	return issues
}
