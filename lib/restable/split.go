// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package restable

// ConfigFilter decides whether a resource value's configuration
// survives a table split.
type ConfigFilter interface {
	Match(config Config) bool
}

// SplitOptions parameterizes a table split.
type SplitOptions struct {
	// PreferredDensities is a ranked preference list. When non-empty,
	// each entry keeps, per configuration bucket, the best density
	// match for every preferred value and drops the remaining density
	// variants. Density-less values are the universal fallback and
	// always survive.
	PreferredDensities []uint16

	// ConfigFilter, when set, drops every value whose configuration
	// it rejects.
	ConfigFilter ConfigFilter
}

// Split filters the table in place according to options. The built-in
// matching cannot fail, but the signature is fallible so callers
// treat splitting as an operation that may report errors.
func (t *Table) Split(options SplitOptions) error {
	t.visitEntries(func(entry *Entry) {
		if options.ConfigFilter != nil {
			kept := entry.Values[:0]
			for _, value := range entry.Values {
				if options.ConfigFilter.Match(value.Config) {
					kept = append(kept, value)
				}
			}
			entry.Values = kept
		}

		if len(options.PreferredDensities) > 0 {
			splitDensities(entry, options.PreferredDensities)
		}
	})
	return nil
}

// splitDensities prunes density variants down to the best match per
// preferred density, independently for each bucket of values that
// agree on every other qualifier.
func splitDensities(entry *Entry, preferred []uint16) {
	buckets := make(map[Config][]uint16)
	for _, value := range entry.Values {
		if value.Config.Density == 0 {
			continue
		}
		bucket := value.Config.WithoutDensity()
		buckets[bucket] = append(buckets[bucket], value.Config.Density)
	}

	selected := make(map[Config]bool)
	for bucket, available := range buckets {
		for _, want := range preferred {
			best := bestDensity(available, want)
			config := bucket
			config.Density = best
			selected[config] = true
		}
	}

	kept := entry.Values[:0]
	for _, value := range entry.Values {
		if value.Config.Density == 0 || selected[value.Config] {
			kept = append(kept, value)
		}
	}
	entry.Values = kept
}

// bestDensity picks the closest available density for a preference:
// the smallest available value at or above want, or the largest below
// it when nothing reaches want. Downscaling a larger asset loses less
// than upscaling a smaller one.
func bestDensity(available []uint16, want uint16) uint16 {
	var atOrAbove, below uint16
	for _, density := range available {
		if density >= want {
			if atOrAbove == 0 || density < atOrAbove {
				atOrAbove = density
			}
		} else if density > below {
			below = density
		}
	}
	if atOrAbove != 0 {
		return atOrAbove
	}
	return below
}
