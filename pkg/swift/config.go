package swift

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	PresetDefault    = "default"
	PresetSimplified = "simplified"
)

// optionFile is the YAML layout of an options file:
//
//	preset: simplified
//	synthesize-sugar-on-types: false
//	hide-module: MyApp
type optionFile struct {
	Preset  string `yaml:"preset"`
	Options `yaml:",inline"`
}

// Preset returns the named option preset.
func Preset(name string) (Options, error) {
	switch name {
	case "", PresetDefault:
		return DefaultOptions(), nil
	case PresetSimplified:
		return SimplifiedOptions(), nil
	}
	return Options{}, fmt.Errorf("unknown options preset %q", name)
}

// ParseOptions decodes a YAML options document. Keys overlay the preset
// named by the "preset" key; unknown keys are an error.
func ParseOptions(data []byte) (Options, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Options{}, fmt.Errorf("failed to parse options: %w", err)
	}
	base, err := Preset(head.Preset)
	if err != nil {
		return Options{}, err
	}

	file := optionFile{Options: base}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("failed to parse options: %w", err)
	}
	if file.MaxDepth < 0 {
		return Options{}, fmt.Errorf("max-depth must not be negative, got %d", file.MaxDepth)
	}
	return file.Options, nil
}

// LoadOptions reads an options file from disk.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read options file %s: %w", path, err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}
