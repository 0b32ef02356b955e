// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"errors"
	"fmt"

	"github.com/apkforge/apkforge/lib/diag"
	"github.com/apkforge/apkforge/lib/filter"
	"github.com/apkforge/apkforge/lib/restable"
	"github.com/apkforge/apkforge/lib/variant"
)

// ErrVersionCollapse reports a failed version-collapse pass.
var ErrVersionCollapse = errors.New("version collapse failed")

// filteredArtifact is the per-artifact working state produced by
// buildFilteredTable: a privately-owned table clone, the entry filter
// chain for serialization, and the artifact-scoped context.
type filteredArtifact struct {
	table   *restable.Table
	chain   *filter.Chain
	context Context
}

// buildFilteredTable translates one artifact's group bindings into a
// filtered working table. The base table is never mutated: a clone is
// taken, version-collapsed against the artifact's effective minimum
// SDK, then split by density preference and locale filter. Any group
// resolution failure is fatal for the artifact.
func buildFilteredTable(config *variant.Config, artifact variant.Artifact, base *restable.Table, context Context) (*filteredArtifact, error) {
	sink := context.Diag()

	chain := &filter.Chain{}
	var splitOptions restable.SplitOptions

	if artifact.ABIGroup != "" {
		abis, err := resolveABIGroup(config, artifact.ABIGroup, sink)
		if err != nil {
			return nil, err
		}
		chain.Add(filter.NewABI(abis))
	}

	if artifact.ScreenDensityGroup != "" {
		qualifiers, err := resolveDensityGroup(config, artifact.ScreenDensityGroup, sink)
		if err != nil {
			return nil, err
		}
		// Declaration order is the splitter's preference rank.
		preferred := make([]uint16, 0, len(qualifiers))
		for _, qualifier := range qualifiers {
			density, err := restable.ParseDensity(qualifier)
			if err != nil {
				diag.Errorf(sink, "screen density group %q: %v", artifact.ScreenDensityGroup, err)
				return nil, fmt.Errorf("screen density group %q: %w", artifact.ScreenDensityGroup, err)
			}
			preferred = append(preferred, density)
		}
		splitOptions.PreferredDensities = preferred
	}

	if artifact.LocaleGroup != "" {
		locales, err := resolveLocaleGroup(config, artifact.LocaleGroup, sink)
		if err != nil {
			return nil, err
		}
		localeFilter, err := filter.NewLocale(locales)
		if err != nil {
			diag.Errorf(sink, "locale group %q: %v", artifact.LocaleGroup, err)
			return nil, fmt.Errorf("locale group %q: %w", artifact.LocaleGroup, err)
		}
		splitOptions.ConfigFilter = localeFilter
	}

	artifactContext := context
	if artifact.AndroidSDKGroup != "" {
		sdk, err := resolveSDKGroup(config, artifact.AndroidSDKGroup, sink)
		if err != nil {
			return nil, err
		}
		if sdk.MinSDKVersion != nil {
			artifactContext = OverrideMinSDK(context, *sdk.MinSDKVersion)
		}
	}

	table := base.Clone()
	if err := table.CollapseVersions(artifactContext.MinSDKVersion()); err != nil {
		diag.Errorf(sink, "collapsing resource versions: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrVersionCollapse, err)
	}
	if err := table.Split(splitOptions); err != nil {
		diag.Errorf(sink, "splitting resource table: %v", err)
		return nil, fmt.Errorf("splitting resource table: %w", err)
	}

	return &filteredArtifact{table: table, chain: chain, context: artifactContext}, nil
}
