// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package restable

import (
	"fmt"
	"strconv"
	"strings"
)

// Config describes the qualifiers under which one resource value
// applies. The zero value is the default configuration.
type Config struct {
	// Locale is a BCP 47 style language tag ("en", "es-ES"). Empty
	// means the default locale.
	Locale string `json:"locale,omitempty"`

	// Density is the screen density in dpi. Zero means any density.
	Density uint16 `json:"density,omitempty"`

	// SDKVersion is the minimum platform version qualifier (the -vN
	// suffix). Zero means no version constraint.
	SDKVersion uint16 `json:"sdk,omitempty"`
}

// IsDefault reports whether the config carries no qualifiers.
func (c Config) IsDefault() bool {
	return c == Config{}
}

// WithoutSDK returns the config with the version qualifier cleared.
// Used to bucket values that differ only in SDK version.
func (c Config) WithoutSDK() Config {
	c.SDKVersion = 0
	return c
}

// WithoutDensity returns the config with the density qualifier
// cleared. Used to bucket values that differ only in density.
func (c Config) WithoutDensity() Config {
	c.Density = 0
	return c
}

// String renders the config as a qualifier string ("es-ES-xhdpi-v21").
// The default config renders as "default".
func (c Config) String() string {
	var parts []string
	if c.Locale != "" {
		parts = append(parts, c.Locale)
	}
	if c.Density != 0 {
		parts = append(parts, DensityName(c.Density))
	}
	if c.SDKVersion != 0 {
		parts = append(parts, fmt.Sprintf("v%d", c.SDKVersion))
	}
	if len(parts) == 0 {
		return "default"
	}
	return strings.Join(parts, "-")
}

// Named density qualifiers and their dpi values.
const (
	DensityLow      uint16 = 120
	DensityMedium   uint16 = 160
	DensityTV       uint16 = 213
	DensityHigh     uint16 = 240
	DensityXHigh    uint16 = 320
	DensityXXHigh   uint16 = 480
	DensityXXXHigh  uint16 = 640
	DensityAny      uint16 = 0xfffe
	DensityNone     uint16 = 0xffff
)

var densityNames = map[string]uint16{
	"ldpi":    DensityLow,
	"mdpi":    DensityMedium,
	"tvdpi":   DensityTV,
	"hdpi":    DensityHigh,
	"xhdpi":   DensityXHigh,
	"xxhdpi":  DensityXXHigh,
	"xxxhdpi": DensityXXXHigh,
	"anydpi":  DensityAny,
	"nodpi":   DensityNone,
}

// ParseDensity parses a density qualifier: a well-known name
// ("xhdpi") or an explicit dpi value ("280dpi").
func ParseDensity(qualifier string) (uint16, error) {
	if value, ok := densityNames[qualifier]; ok {
		return value, nil
	}
	if numeric, ok := strings.CutSuffix(qualifier, "dpi"); ok {
		value, err := strconv.ParseUint(numeric, 10, 16)
		if err == nil && value > 0 {
			return uint16(value), nil
		}
	}
	return 0, fmt.Errorf("invalid density qualifier %q", qualifier)
}

// DensityName renders a density value as its qualifier string,
// preferring the well-known names.
func DensityName(density uint16) string {
	for name, value := range densityNames {
		if value == density {
			return name
		}
	}
	return fmt.Sprintf("%ddpi", density)
}
