package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/simple"
)

// Config holds the settings of a simplespec run.
type Config struct {
	Format        simple.Format
	RequireType   bool
	OmitFormatted bool
	BundlePath    string
	DefaultKind   string
	LogLevel      string
}

type fileConfig struct {
	Format        string `toml:"format"`
	RequireType   bool   `toml:"require_type"`
	OmitFormatted bool   `toml:"omit_formatted"`
	Bundle        string `toml:"bundle"`
	DefaultKind   string `toml:"default_kind"`
	LogLevel      string `toml:"log_level"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Format:      simple.FormatJSON,
		RequireType: true,
		DefaultKind: "string",
		LogLevel:    "info",
	}
}

func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load simplespec config: %w", err)
	}

	if meta.IsDefined("format") {
		format, err := parseFormat(raw.Format)
		if err != nil {
			return Config{}, err
		}
		cfg.Format = format
	}
	if meta.IsDefined("require_type") {
		cfg.RequireType = raw.RequireType
	}
	if meta.IsDefined("omit_formatted") {
		cfg.OmitFormatted = raw.OmitFormatted
	}
	if meta.IsDefined("bundle") {
		cfg.BundlePath = strings.TrimSpace(raw.Bundle)
	}
	if meta.IsDefined("default_kind") {
		cfg.DefaultKind = strings.ToLower(strings.TrimSpace(raw.DefaultKind))
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load simplespec config: unknown keys %v", undecoded)
	}
	return cfg, nil
}

func parseFormat(s string) (simple.Format, error) {
	switch f := simple.Format(strings.ToLower(strings.TrimSpace(s))); f {
	case simple.FormatTOML, simple.FormatJSON, simple.FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

var builtinKinds = map[string]*simple.Type{
	"string":  simple.String,
	"number":  simple.Number,
	"integer": simple.Integer,
	"boolean": simple.Boolean,
	"date":    simple.Date,
}

// kindsFor returns the built-in kinds reporting errors through bundle,
// with the kind named def first so untyped entries resolve to it.
func kindsFor(def string, bundle *simple.Bundle) ([]*simple.Type, error) {
	first, ok := builtinKinds[def]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", def)
	}

	kinds := []*simple.Type{first}
	for _, name := range []string{"string", "number", "integer", "boolean", "date"} {
		if t := builtinKinds[name]; t != first {
			kinds = append(kinds, t)
		}
	}

	if bundle != nil {
		for i, t := range kinds {
			kinds[i] = t.WithBundle(bundle)
		}
	}
	return kinds, nil
}
