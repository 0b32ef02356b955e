// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the apkforge command tree.
package commands

import (
	"github.com/apkforge/apkforge/cmd/apkforge/cli"
	"github.com/apkforge/apkforge/lib/version"
)

// Root builds the top-level apkforge command.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "apkforge",
		Summary: "generate filtered package variants from a base package",
		Description: `apkforge generates configured variants ("artifacts") of a base
application package: each artifact selects ABI, screen density,
locale, and SDK groups, and receives a filtered resource table, a
stripped entry set, and a manifest patched to the artifact's minimum
SDK level.`,
		Subcommands: []*cli.Command{
			generateCommand(),
			validateCommand(),
			infoCommand(),
			{
				Name:    "version",
				Summary: "print version information",
				Run: func(args []string) error {
					version.Print("apkforge")
					return nil
				},
			},
		},
	}
}
