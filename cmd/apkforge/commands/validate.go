// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/apkforge/apkforge/cmd/apkforge/cli"
	"github.com/apkforge/apkforge/lib/variant"
)

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Summary: "check an artifact configuration for structural issues",
		Description: `Parse a configuration file and report structural issues: empty or
malformed groups, unnamed artifacts without a name template, and
duplicate artifact names. Group references on artifacts are not
checked — they resolve at generation time.`,
		Usage: "apkforge validate <config-file>",
		Examples: []cli.Example{
			{
				Description: "Validate a YAML configuration",
				Command:     "apkforge validate variants.yaml",
			},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one configuration file argument, got %d", len(args))
			}

			config, err := variant.Load(args[0])
			if err != nil {
				return err
			}

			issues := variant.Validate(config)
			if len(issues) == 0 {
				fmt.Printf("%s: ok (%d artifacts)\n", args[0], len(config.Artifacts))
				return nil
			}
			for _, issue := range issues {
				fmt.Fprintf(os.Stderr, "%s: %s\n", args[0], issue)
			}
			return &cli.ExitError{Code: 1}
		},
	}
}
