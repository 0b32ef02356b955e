// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package variant

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `
abi_groups:
  arm:
    - armeabi-v7a
    - arm64-v8a
  x86:
    - x86
    - x86_64

screen_density_groups:
  large:
    - xhdpi
    - xxhdpi
    - xxxhdpi

locale_groups:
  europe:
    - en
    - es
    - fr
    - de

android_sdk_groups:
  v21:
    min_sdk_version: 21

name_template: ${basename}.${abi}.${sdk}.${ext}

artifacts:
  - name: app.arm.apkg
    abi_group: arm
    screen_density_group: large
    locale_group: europe
    android_sdk_group: v21
  - abi_group: x86
    android_sdk_group: v21
`

const sampleJSONC = `{
  // x86-only configuration.
  "abi_groups": {"x86": ["x86", "x86_64"]},
  "artifacts": [
    {"name": "app.x86.apkg", "abi_group": "x86"},
  ],
}`

func TestParseYAML(t *testing.T) {
	t.Parallel()

	config, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := config.ABIGroups["arm"]; len(got) != 2 || got[0] != "armeabi-v7a" {
		t.Errorf("abi_groups[arm] = %v", got)
	}
	if got := config.DensityGroups["large"]; len(got) != 3 {
		t.Errorf("screen_density_groups[large] = %v", got)
	}
	sdk, ok := config.SDKGroups["v21"]
	if !ok || sdk.MinSDKVersion == nil || *sdk.MinSDKVersion != 21 {
		t.Errorf("android_sdk_groups[v21] = %+v", sdk)
	}
	if config.NameTemplate != "${basename}.${abi}.${sdk}.${ext}" {
		t.Errorf("name_template = %q", config.NameTemplate)
	}
	if len(config.Artifacts) != 2 {
		t.Fatalf("artifacts = %d, want 2", len(config.Artifacts))
	}
	first := config.Artifacts[0]
	if first.Name != "app.arm.apkg" || first.ABIGroup != "arm" || first.LocaleGroup != "europe" {
		t.Errorf("artifacts[0] = %+v", first)
	}
	if config.Artifacts[1].Name != "" {
		t.Errorf("artifacts[1] should be unnamed, got %q", config.Artifacts[1].Name)
	}
}

func TestParseJSONC(t *testing.T) {
	t.Parallel()

	config, err := ParseJSONC([]byte(sampleJSONC))
	if err != nil {
		t.Fatalf("ParseJSONC: %v", err)
	}
	if got := config.ABIGroups["x86"]; len(got) != 2 {
		t.Errorf("abi_groups[x86] = %v", got)
	}
	if len(config.Artifacts) != 1 || config.Artifacts[0].Name != "app.x86.apkg" {
		t.Errorf("artifacts = %+v", config.Artifacts)
	}
}

func TestLoadByExtension(t *testing.T) {
	t.Parallel()

	directory := t.TempDir()

	yamlPath := filepath.Join(directory, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	jsoncPath := filepath.Join(directory, "config.jsonc")
	if err := os.WriteFile(jsoncPath, []byte(sampleJSONC), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(yamlPath); err != nil {
		t.Errorf("Load yaml: %v", err)
	}
	if _, err := Load(jsoncPath); err != nil {
		t.Errorf("Load jsonc: %v", err)
	}
	if _, err := Load(filepath.Join(directory, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid configuration", func(t *testing.T) {
		t.Parallel()

		config, err := Parse([]byte(sampleYAML))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if issues := Validate(config); len(issues) != 0 {
			t.Errorf("unexpected issues: %v", issues)
		}
	})

	t.Run("unnamed artifact without template", func(t *testing.T) {
		t.Parallel()

		config := &Config{Artifacts: []Artifact{{ABIGroup: "arm"}}}
		issues := Validate(config)
		if len(issues) != 1 || !strings.Contains(issues[0], "no name") {
			t.Errorf("issues = %v", issues)
		}
	})

	t.Run("duplicate artifact names", func(t *testing.T) {
		t.Parallel()

		config := &Config{Artifacts: []Artifact{{Name: "a"}, {Name: "a"}}}
		issues := Validate(config)
		if len(issues) != 1 || !strings.Contains(issues[0], "duplicate") {
			t.Errorf("issues = %v", issues)
		}
	})

	t.Run("unknown ABI and bad density", func(t *testing.T) {
		t.Parallel()

		config := &Config{
			ABIGroups:     map[string][]string{"odd": {"sparc"}},
			DensityGroups: map[string][]string{"odd": {"very-dense"}},
			Artifacts:     []Artifact{{Name: "a"}},
		}
		issues := Validate(config)
		if len(issues) != 2 {
			t.Errorf("issues = %v, want 2", issues)
		}
	})

	t.Run("sdk group requires min level", func(t *testing.T) {
		t.Parallel()

		target := 33
		config := &Config{
			SDKGroups: map[string]SDK{"broken": {TargetSDKVersion: &target}},
			Artifacts: []Artifact{{Name: "a"}},
		}
		issues := Validate(config)
		if len(issues) != 1 || !strings.Contains(issues[0], "min_sdk_version") {
			t.Errorf("issues = %v", issues)
		}
	})

	t.Run("dangling group references pass", func(t *testing.T) {
		t.Parallel()

		// References are resolved lazily at generation time, so a
		// reference to an undefined group is not a validation issue.
		config := &Config{Artifacts: []Artifact{{Name: "a", ABIGroup: "no-such-group"}}}
		if issues := Validate(config); len(issues) != 0 {
			t.Errorf("unexpected issues: %v", issues)
		}
	})

	t.Run("empty configuration", func(t *testing.T) {
		t.Parallel()

		issues := Validate(&Config{})
		if len(issues) != 1 || !strings.Contains(issues[0], "no artifacts") {
			t.Errorf("issues = %v", issues)
		}
	})
}

func TestNameVariables(t *testing.T) {
	t.Parallel()

	artifact := Artifact{
		ABIGroup:        "arm",
		AndroidSDKGroup: "v21",
	}
	variables := NameVariables("/build/out/app.apkg", artifact)

	want := map[string]string{
		"basename": "app",
		"ext":      "apkg",
		"abi":      "arm",
		"sdk":      "v21",
	}
	if len(variables) != len(want) {
		t.Errorf("variables = %v, want %v", variables, want)
	}
	for key, value := range want {
		if variables[key] != value {
			t.Errorf("variables[%q] = %q, want %q", key, variables[key], value)
		}
	}
}

func TestExpandName(t *testing.T) {
	t.Parallel()

	variables := map[string]string{
		"basename": "app",
		"ext":      "apkg",
		"abi":      "arm",
	}

	t.Run("expansion", func(t *testing.T) {
		t.Parallel()

		name, err := ExpandName("${basename}.${abi}.${ext}", variables)
		if err != nil {
			t.Fatalf("ExpandName: %v", err)
		}
		if name != "app.arm.apkg" {
			t.Errorf("name = %q", name)
		}
	})

	t.Run("unresolved variable", func(t *testing.T) {
		t.Parallel()

		_, err := ExpandName("${basename}.${density}.${ext}", variables)
		if err == nil {
			t.Fatal("expected error for unresolved variable")
		}
		if !strings.Contains(err.Error(), "density") {
			t.Errorf("error %q does not name the unresolved variable", err)
		}
	})

	t.Run("no variables", func(t *testing.T) {
		t.Parallel()

		name, err := ExpandName("fixed-name.apkg", nil)
		if err != nil {
			t.Fatalf("ExpandName: %v", err)
		}
		if name != "fixed-name.apkg" {
			t.Errorf("name = %q", name)
		}
	})
}
