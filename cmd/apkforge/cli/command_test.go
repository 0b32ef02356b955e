// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func testTree(t *testing.T, ran *string) *Command {
	t.Helper()
	return &Command{
		Name:    "apkforge",
		Summary: "package variant generator",
		Subcommands: []*Command{
			{
				Name:    "generate",
				Summary: "generate artifacts",
				Run: func(args []string) error {
					*ran = "generate " + strings.Join(args, " ")
					return nil
				},
			},
			{
				Name:    "validate",
				Summary: "validate a configuration",
				Run: func(args []string) error {
					*ran = "validate"
					return nil
				},
			},
		},
	}
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	var ran string
	root := testTree(t, &ran)

	if err := root.Execute([]string{"generate", "app.apkg"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if ran != "generate app.apkg" {
		t.Errorf("ran = %q", ran)
	}
}

func TestUnknownCommandSuggestion(t *testing.T) {
	t.Parallel()

	var ran string
	root := testTree(t, &ran)

	err := root.Execute([]string{"generat"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "generate"`) {
		t.Errorf("error %q does not suggest the close command", err)
	}
	if ran != "" {
		t.Errorf("a command ran despite the dispatch error: %q", ran)
	}
}

func TestSubcommandRequired(t *testing.T) {
	t.Parallel()

	var ran string
	root := testTree(t, &ran)

	if err := root.Execute(nil); err == nil {
		t.Fatal("expected error when no subcommand is given")
	}
}

func TestFlagParsing(t *testing.T) {
	t.Parallel()

	var verbose bool
	var got []string
	command := &Command{
		Name: "generate",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("generate", pflag.ContinueOnError)
			flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
			return flags
		},
		Run: func(args []string) error {
			got = args
			return nil
		},
	}

	if err := command.Execute([]string{"--verbose", "app.apkg"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !verbose {
		t.Error("--verbose was not parsed")
	}
	if len(got) != 1 || got[0] != "app.apkg" {
		t.Errorf("positional args = %v", got)
	}
}

func TestUnknownFlagSuggestion(t *testing.T) {
	t.Parallel()

	command := &Command{
		Name: "generate",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("generate", pflag.ContinueOnError)
			flags.String("config", "", "configuration file")
			return flags
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--confg", "x"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "--config") {
		t.Errorf("error %q does not suggest the close flag", err)
	}
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	var ran string
	root := testTree(t, &ran)

	var help strings.Builder
	root.PrintHelp(&help)

	output := help.String()
	for _, want := range []string{"generate", "validate", "package variant generator"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q:\n%s", want, output)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"generate", "generate", 0},
		{"generat", "generate", 1},
		{"genreate", "generate", 2},
		{"info", "generate", 7},
	}
	for _, testCase := range tests {
		if got := levenshtein(testCase.a, testCase.b); got != testCase.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", testCase.a, testCase.b, got, testCase.want)
		}
	}
}
