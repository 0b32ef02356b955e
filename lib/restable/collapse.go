// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package restable

import "fmt"

// CollapseVersions strips value variants made redundant by a known
// minimum platform version. Within each entry, values that differ
// only in their SDK qualifier are bucketed together; in each bucket,
// of the values whose qualifier is at or below minSDK only the
// highest survives (it is the one every device at minSDK or above
// would select). Values above minSDK are untouched.
func (t *Table) CollapseVersions(minSDK int) error {
	if minSDK < 0 {
		return fmt.Errorf("invalid minimum SDK version %d", minSDK)
	}

	t.visitEntries(func(entry *Entry) {
		// Highest at-or-below-minSDK qualifier per bucket.
		winners := make(map[Config]uint16)
		for _, value := range entry.Values {
			if int(value.Config.SDKVersion) > minSDK {
				continue
			}
			bucket := value.Config.WithoutSDK()
			if current, seen := winners[bucket]; !seen || value.Config.SDKVersion > current {
				winners[bucket] = value.Config.SDKVersion
			}
		}

		kept := entry.Values[:0]
		for _, value := range entry.Values {
			if int(value.Config.SDKVersion) <= minSDK {
				if winners[value.Config.WithoutSDK()] != value.Config.SDKVersion {
					continue
				}
			}
			kept = append(kept, value)
		}
		entry.Values = kept
	})
	return nil
}
