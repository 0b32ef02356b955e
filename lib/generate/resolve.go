// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"errors"
	"fmt"

	"github.com/apkforge/apkforge/lib/diag"
	"github.com/apkforge/apkforge/lib/variant"
)

// ErrGroupNotFound reports an artifact referencing a group name its
// axis mapping doesn't define. References are resolved here, at
// generation time, not when the configuration is parsed.
var ErrGroupNotFound = errors.New("group not found in configuration")

// resolveGroup looks up one named group on an axis. A miss is
// reported to the sink with the axis and group name and is fatal for
// the current artifact.
func resolveGroup[T any](groups map[string]T, axis, name string, sink diag.Sink) (T, error) {
	value, ok := groups[name]
	if !ok {
		diag.Errorf(sink, "%s group %q not found in the configuration", axis, name)
		var zero T
		return zero, fmt.Errorf("%s group %q: %w", axis, name, ErrGroupNotFound)
	}
	return value, nil
}

func resolveABIGroup(config *variant.Config, name string, sink diag.Sink) ([]string, error) {
	return resolveGroup(config.ABIGroups, "abi", name, sink)
}

func resolveDensityGroup(config *variant.Config, name string, sink diag.Sink) ([]string, error) {
	return resolveGroup(config.DensityGroups, "screen density", name, sink)
}

func resolveLocaleGroup(config *variant.Config, name string, sink diag.Sink) ([]string, error) {
	return resolveGroup(config.LocaleGroups, "locale", name, sink)
}

func resolveSDKGroup(config *variant.Config, name string, sink diag.Sink) (variant.SDK, error) {
	return resolveGroup(config.SDKGroups, "android sdk", name, sink)
}
