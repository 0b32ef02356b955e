// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package restable

import (
	"testing"
)

// testTable builds a small two-type table used across tests.
func testTable() *Table {
	return &Table{Packages: []*Package{{
		Name: "com.example.app",
		Types: []*Type{
			{
				Name: "string",
				Entries: []*Entry{{
					Name: "title",
					Values: []*Value{
						{Config: Config{}, Data: []byte("Title")},
						{Config: Config{Locale: "es-ES"}, Data: []byte("Titulo")},
						{Config: Config{Locale: "fr"}, Data: []byte("Titre")},
					},
				}},
			},
			{
				Name: "drawable",
				Entries: []*Entry{{
					Name: "icon",
					Values: []*Value{
						{Config: Config{Density: DensityMedium}, Data: []byte{1}},
						{Config: Config{Density: DensityXHigh}, Data: []byte{2}},
						{Config: Config{Density: DensityXXXHigh}, Data: []byte{3}},
					},
				}},
			},
		},
	}}}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	base := testTable()
	baseFingerprint, err := base.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}

	clone := base.Clone()
	clone.Packages[0].Types[0].Entries[0].Values = nil
	clone.Packages[0].Types[1].Entries[0].Values[0].Data[0] = 99
	clone.Packages[0].Name = "mutated"

	afterFingerprint, err := base.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if baseFingerprint != afterFingerprint {
		t.Error("mutating a clone changed the base table")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	base := testTable()
	data, err := base.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	decoded, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	baseFingerprint, err := base.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	decodedFingerprint, err := decoded.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if baseFingerprint != decodedFingerprint {
		t.Error("round-tripped table has a different fingerprint")
	}
	if decoded.ValueCount() != base.ValueCount() {
		t.Errorf("ValueCount = %d, want %d", decoded.ValueCount(), base.ValueCount())
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := Unmarshal([]byte("not cbor at all")); err == nil {
		t.Fatal("expected error for invalid table bytes")
	}
}

func TestParseDensity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		qualifier string
		want      uint16
		wantError bool
	}{
		{"mdpi", DensityMedium, false},
		{"xhdpi", DensityXHigh, false},
		{"xxxhdpi", DensityXXXHigh, false},
		{"280dpi", 280, false},
		{"nodpi", DensityNone, false},
		{"uhdpi", 0, true},
		{"dpi", 0, true},
		{"-1dpi", 0, true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.qualifier, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDensity(testCase.qualifier)
			if testCase.wantError {
				if err == nil {
					t.Fatalf("ParseDensity(%q) succeeded, want error", testCase.qualifier)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDensity(%q): %v", testCase.qualifier, err)
			}
			if got != testCase.want {
				t.Errorf("ParseDensity(%q) = %d, want %d", testCase.qualifier, got, testCase.want)
			}
		})
	}
}

func TestConfigString(t *testing.T) {
	t.Parallel()

	if got := (Config{}).String(); got != "default" {
		t.Errorf("default config String = %q", got)
	}
	config := Config{Locale: "es-ES", Density: DensityXHigh, SDKVersion: 21}
	if got := config.String(); got != "es-ES-xhdpi-v21" {
		t.Errorf("String = %q, want %q", got, "es-ES-xhdpi-v21")
	}
}
