package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const optionalDump = `kind=Global
  kind=Variable
    kind=Module, text="App"
    kind=Identifier, text="name"
    kind=Type
      kind=BoundGenericEnum
        kind=Type
          kind=Enum
            kind=Module, text="Swift"
            kind=Identifier, text="Optional"
        kind=TypeList
          kind=Type
            kind=Structure
              kind=Module, text="Swift"
              kind=Identifier, text="String"
`

func TestRun(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "opts.yaml")
	if err := os.WriteFile(configPath, []byte("synthesize-sugar-on-types: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	simplifiedPath := filepath.Join(t.TempDir(), "simplified.yaml")
	if err := os.WriteFile(simplifiedPath, []byte("preset: simplified\nhide-module: App\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", nil, "App.name : Swift.Optional<Swift.String>\n"},
		{"sugar", []string{"-sugar"}, "App.name : Swift.String?\n"},
		{"config", []string{"-config", configPath}, "App.name : Swift.String?\n"},
		{"hide module", []string{"-sugar", "-hide-module", "App"}, "name : Swift.String?\n"},
		{"no modules", []string{"-sugar", "-no-modules"}, "name : String?\n"},
		{"simplified", []string{"-simplified"}, "App.name\n"},
		{"simplified config", []string{"-config", simplifiedPath}, "name\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, strings.NewReader(optionalDump), &stdout, &stderr)
			if code != 0 {
				t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
			}
			if got := stdout.String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunEchoTree(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-tree"}, strings.NewReader(optionalDump), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	want := optionalDump + "App.name : Swift.Optional<Swift.String>\n"
	if got := stdout.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunFileArgument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.txt")
	if err := os.WriteFile(path, []byte(optionalDump), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-sugar", path}, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	if got, want := stdout.String(), "App.name : Swift.String?\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input string
		code  int
		want  string
	}{
		{"bad flag", []string{"-nope"}, optionalDump, 2, "flag provided but not defined"},
		{"bad dump", nil, "kind=Bogus\n", 1, "unknown node kind"},
		{"empty dump", nil, "", 1, "empty"},
		{"malformed tree", nil, "kind=Function\n", 1, "malformed node tree"},
		{"missing config", []string{"-config", "/nonexistent/opts.yaml"}, optionalDump, 1, "failed to read options file"},
		{"config and simplified", []string{"-config", "opts.yaml", "-simplified"}, optionalDump, 2, "cannot be combined"},
		{"value witness without kind", nil, "kind=ValueWitness\n", 1, "malformed node tree"},
		{"key path getter without type", nil, "kind=KeyPathGetterThunkHelper\n", 1, "malformed node tree"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, strings.NewReader(tt.input), &stdout, &stderr)
			if code != tt.code {
				t.Fatalf("exit code %d, want %d", code, tt.code)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Fatalf("stderr %q does not mention %q", stderr.String(), tt.want)
			}
		})
	}
}
