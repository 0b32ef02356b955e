// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/apkforge/apkforge/cmd/apkforge/cli"
	"github.com/apkforge/apkforge/lib/apkg"
	"github.com/apkforge/apkforge/lib/manifest"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:    "info",
		Summary: "describe a package archive",
		Description: `Print a package's declared name, its resource table statistics and
fingerprint, and the entry index with per-entry compression and
sizes.`,
		Usage: "apkforge info <package>",
		Examples: []cli.Example{
			{
				Description: "Inspect a base package",
				Command:     "apkforge info app.apkg",
			},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one package argument, got %d", len(args))
			}

			pkg, err := apkg.Load(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("package: %s\n", args[0])
			if document, err := pkg.InflateManifest(); err == nil && document.Root != nil {
				if attribute := document.Root.FindAttribute("", "package"); attribute != nil {
					fmt.Printf("declared name: %s\n", attribute.Value)
				}
				if usesSDK := document.Root.FindChild("", "uses-sdk"); usesSDK != nil {
					if attribute := usesSDK.FindAttribute(manifest.SchemaAndroid, "minSdkVersion"); attribute != nil {
						fmt.Printf("min sdk: %s\n", attribute.Value)
					}
				}
			}

			table := pkg.Table()
			fingerprint, err := table.Fingerprint()
			if err != nil {
				return fmt.Errorf("fingerprinting resource table: %w", err)
			}
			fmt.Printf("resource values: %d\n", table.ValueCount())
			fmt.Printf("table fingerprint: %s\n", fingerprint)

			fmt.Println("\nentries:")
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "  NAME\tCOMPRESSION\tSTORED\tSIZE\n")
			for _, name := range pkg.Reader().Names() {
				header, _ := pkg.Reader().Entry(name)
				fmt.Fprintf(tw, "  %s\t%s\t%d\t%d\n",
					header.Name, header.Compression, header.CompressedSize, header.UncompressedSize)
			}
			return tw.Flush()
		},
	}
}
