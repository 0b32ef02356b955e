// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/apkforge/apkforge/cmd/apkforge/cli"
	"github.com/apkforge/apkforge/lib/apkg"
	"github.com/apkforge/apkforge/lib/diag"
	"github.com/apkforge/apkforge/lib/generate"
	"github.com/apkforge/apkforge/lib/manifest"
	"github.com/apkforge/apkforge/lib/variant"
)

func generateCommand() *cli.Command {
	var (
		configPath  string
		outDir      string
		verbose     bool
		compression string
	)

	return &cli.Command{
		Name:    "generate",
		Summary: "generate configured artifacts from a base package",
		Description: `Generate one output package per configured artifact. Artifacts are
processed in declaration order; the first failure aborts the run and
leaves already-written artifacts on disk.`,
		Usage: "apkforge generate --config <file> [flags] <package>",
		Examples: []cli.Example{
			{
				Description: "Generate all artifacts next to the base package",
				Command:     "apkforge generate --config variants.yaml app.apkg",
			},
			{
				Description: "Generate into a separate directory with zstd entries",
				Command:     "apkforge generate --config variants.yaml --out dist --compression zstd app.apkg",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("generate", pflag.ContinueOnError)
			flags.StringVarP(&configPath, "config", "c", "", "artifact configuration file (yaml or jsonc)")
			flags.StringVarP(&outDir, "out", "o", ".", "output directory for generated artifacts")
			flags.BoolVarP(&verbose, "verbose", "v", false, "emit per-artifact progress notes")
			flags.StringVar(&compression, "compression", "auto", "entry compression: auto, none, lz4, or zstd")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one base package argument, got %d", len(args))
			}
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}

			mode, err := apkg.ParseCompressionMode(compression)
			if err != nil {
				return err
			}

			config, err := variant.Load(configPath)
			if err != nil {
				return err
			}
			if issues := variant.Validate(config); len(issues) > 0 {
				for _, issue := range issues {
					fmt.Fprintf(os.Stderr, "%s: %s\n", configPath, issue)
				}
				return &cli.ExitError{Code: 1}
			}

			pkg, err := apkg.Load(args[0])
			if err != nil {
				return err
			}

			sink := diag.NewConsole(os.Stderr, verbose)
			context := buildContext(pkg, verbose, sink)

			generator := generate.New(pkg, context)
			if err := generator.Generate(generate.Options{
				Config: config,
				OutDir: outDir,
				Mode:   mode,
			}); err != nil {
				// Detail has already been reported through the sink.
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// buildContext derives the build context from the base package's
// manifest. A package with no usable manifest still generates: the
// declared name defaults to empty and the baseline minimum SDK to 1,
// which collapses nothing that a real minimum would keep.
func buildContext(pkg *apkg.Package, verbose bool, sink diag.Sink) generate.Context {
	packageName := ""
	minSDK := 1

	document, err := pkg.InflateManifest()
	if err != nil {
		diag.Warnf(sink, "reading base manifest: %v", err)
		return generate.NewContext(packageName, minSDK, verbose, sink)
	}
	root := document.Root
	if root == nil || root.NamespaceURI != "" || root.Name != "manifest" {
		diag.Warnf(sink, "%s: no usable <manifest> root element", document.Source)
		return generate.NewContext(packageName, minSDK, verbose, sink)
	}

	if attribute := root.FindAttribute("", "package"); attribute != nil {
		packageName = attribute.Value
	}
	if usesSDK := root.FindChild("", "uses-sdk"); usesSDK != nil {
		attribute := usesSDK.FindAttribute(manifest.SchemaAndroid, "minSdkVersion")
		if attribute != nil && attribute.CompiledInt != nil {
			minSDK = *attribute.CompiledInt
		}
	}
	return generate.NewContext(packageName, minSDK, verbose, sink)
}
