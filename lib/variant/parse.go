// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package variant

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Parse unmarshals a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	return &config, nil
}

// ParseJSONC strips // line comments, /* block comments */, and
// trailing commas from data, then unmarshals the result as JSON.
func ParseJSONC(data []byte) (*Config, error) {
	stripped := jsonc.ToJSON(data)

	var config Config
	if err := json.Unmarshal(stripped, &config); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	return &config, nil
}

// Load reads a configuration file from disk. The format follows the
// extension: .json and .jsonc parse as commented JSON, anything else
// as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var config *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		config, err = ParseJSONC(data)
	default:
		config, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}
