// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package restable

import "testing"

func versionedEntry(sdks ...uint16) *Entry {
	entry := &Entry{Name: "styled"}
	for _, sdk := range sdks {
		entry.Values = append(entry.Values, &Value{Config: Config{SDKVersion: sdk}})
	}
	return entry
}

func tableWith(entry *Entry) *Table {
	return &Table{Packages: []*Package{{
		Name:  "com.example.app",
		Types: []*Type{{Name: "style", Entries: []*Entry{entry}}},
	}}}
}

func sdkVersions(entry *Entry) []uint16 {
	var result []uint16
	for _, value := range entry.Values {
		result = append(result, value.Config.SDKVersion)
	}
	return result
}

func TestCollapseVersions(t *testing.T) {
	t.Parallel()

	t.Run("keeps highest at-or-below minimum", func(t *testing.T) {
		t.Parallel()

		entry := versionedEntry(0, 4, 19, 21)
		if err := tableWith(entry).CollapseVersions(21); err != nil {
			t.Fatalf("CollapseVersions: %v", err)
		}
		got := sdkVersions(entry)
		if len(got) != 1 || got[0] != 21 {
			t.Errorf("surviving versions = %v, want [21]", got)
		}
	})

	t.Run("variants above minimum survive", func(t *testing.T) {
		t.Parallel()

		entry := versionedEntry(0, 19, 24, 29)
		if err := tableWith(entry).CollapseVersions(21); err != nil {
			t.Fatalf("CollapseVersions: %v", err)
		}
		got := sdkVersions(entry)
		if len(got) != 3 || got[0] != 19 || got[1] != 24 || got[2] != 29 {
			t.Errorf("surviving versions = %v, want [19 24 29]", got)
		}
	})

	t.Run("buckets are independent per locale", func(t *testing.T) {
		t.Parallel()

		entry := &Entry{Name: "styled", Values: []*Value{
			{Config: Config{SDKVersion: 4}},
			{Config: Config{SDKVersion: 19}},
			{Config: Config{Locale: "fr", SDKVersion: 11}},
			{Config: Config{Locale: "fr", SDKVersion: 16}},
		}}
		if err := tableWith(entry).CollapseVersions(21); err != nil {
			t.Fatalf("CollapseVersions: %v", err)
		}
		if len(entry.Values) != 2 {
			t.Fatalf("surviving values = %d, want 2", len(entry.Values))
		}
		if entry.Values[0].Config.SDKVersion != 19 || entry.Values[1].Config.SDKVersion != 16 {
			t.Errorf("survivors = %v and %v, want v19 and fr-v16",
				entry.Values[0].Config, entry.Values[1].Config)
		}
	})

	t.Run("rejects negative minimum", func(t *testing.T) {
		t.Parallel()

		if err := tableWith(versionedEntry(0)).CollapseVersions(-1); err == nil {
			t.Fatal("expected error for negative minimum SDK")
		}
	})
}
