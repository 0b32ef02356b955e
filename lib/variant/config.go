// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

// Package variant defines the artifact configuration format: named
// dimension groups (ABI, screen density, locale, SDK level) and the
// artifact definitions that reference them.
package variant

// Config is one parsed artifact configuration file.
type Config struct {
	// ABIGroups maps a group name to the ABIs its artifacts keep.
	ABIGroups map[string][]string `yaml:"abi_groups" json:"abi_groups"`

	// DensityGroups maps a group name to density qualifiers ("ldpi",
	// "xxhdpi", "340dpi").
	DensityGroups map[string][]string `yaml:"screen_density_groups" json:"screen_density_groups"`

	// LocaleGroups maps a group name to locale qualifiers ("es",
	// "fr-CA").
	LocaleGroups map[string][]string `yaml:"locale_groups" json:"locale_groups"`

	// SDKGroups maps a group name to an SDK level selection. Only the
	// minimum level participates in generation; the other levels are
	// carried for completeness.
	SDKGroups map[string]SDK `yaml:"android_sdk_groups" json:"android_sdk_groups"`

	// NameTemplate names artifacts that don't carry an explicit
	// name. It may reference ${basename}, ${ext}, and the dimension
	// variables ${abi}, ${density}, ${locale}, ${sdk}.
	NameTemplate string `yaml:"name_template" json:"name_template"`

	// Artifacts are the outputs to generate, in declaration order.
	Artifacts []Artifact `yaml:"artifacts" json:"artifacts"`
}

// SDK is one android_sdk_groups entry.
type SDK struct {
	MinSDKVersion    *int `yaml:"min_sdk_version" json:"min_sdk_version"`
	TargetSDKVersion *int `yaml:"target_sdk_version" json:"target_sdk_version"`
	MaxSDKVersion    *int `yaml:"max_sdk_version" json:"max_sdk_version"`
}

// Artifact is one output definition. Group fields are names into the
// config's group maps; empty fields mean the dimension is not
// constrained for this artifact.
type Artifact struct {
	Name               string `yaml:"name" json:"name"`
	ABIGroup           string `yaml:"abi_group" json:"abi_group"`
	ScreenDensityGroup string `yaml:"screen_density_group" json:"screen_density_group"`
	LocaleGroup        string `yaml:"locale_group" json:"locale_group"`
	AndroidSDKGroup    string `yaml:"android_sdk_group" json:"android_sdk_group"`
}

// KnownABIs is the set of ABI names the platform defines. Group
// entries outside this set are flagged by Validate but still honored.
var KnownABIs = map[string]bool{
	"armeabi":     true,
	"armeabi-v7a": true,
	"arm64-v8a":   true,
	"x86":         true,
	"x86_64":      true,
	"mips":        true,
	"mips64":      true,
}
