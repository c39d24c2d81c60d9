// FILE: lixenwraith/simple/io.go
package simple

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a spec document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Resolver maps a type reference found in a document to a type.
// The empty reference asks for the type of entries written without one.
type Resolver func(ref string) (*Type, error)

// Kinds returns a Resolver over a fixed set of types, matched by id.
// The first type is used for entries without a type reference.
func Kinds(types ...*Type) Resolver {
	byID := make(map[string]*Type, len(types))
	for _, t := range types {
		if t != nil && t.id != "" {
			byID[t.id] = t
		}
	}
	return func(ref string) (*Type, error) {
		if ref == "" {
			if len(types) == 0 || types[0] == nil {
				return nil, fmt.Errorf("%w: no default type for untyped entries", ErrInvalidType)
			}
			return types[0], nil
		}
		if t, ok := byID[ref]; ok {
			return t, nil
		}
		return nil, fmt.Errorf("%w: unknown type reference %q", ErrInvalidType, ref)
	}
}

// EncodeDocument renders named values as a document of specs. Every entry
// carries its type reference so the document can be decoded on its own.
func EncodeDocument(format Format, values map[string]*Value, opts ...SpecOptions) ([]byte, error) {
	scope := NewScope()
	specs := make(map[string]any, len(values))
	for _, name := range sortedNames(values) {
		specs[name] = values[name].ToSpec(scope, true, opts...)
	}

	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(specs); err != nil {
			return nil, fmt.Errorf("failed to marshal spec document to TOML: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(specs); err != nil {
			return nil, fmt.Errorf("failed to marshal spec document to JSON: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(specs); err != nil {
			return nil, fmt.Errorf("failed to marshal spec document to YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("failed to flush YAML spec document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported spec document format %q", format)
	}
	return buf.Bytes(), nil
}

// DecodeDocument parses a document of specs and builds its values.
// Errors name the offending entry and keep the underlying error chain.
func DecodeDocument(format Format, data []byte, resolve Resolver) (map[string]*Value, error) {
	raw := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML spec document: %w", err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON spec document: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML spec document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported spec document format %q", format)
	}

	values := make(map[string]*Value, len(raw))
	var errs []error
	for _, name := range sortedNames(raw) {
		v, err := decodeEntry(raw[name], resolve)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %q: %w", name, err))
			continue
		}
		values[name] = v
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return values, nil
}

func decodeEntry(spec any, resolve Resolver) (*Value, error) {
	ref := ""
	if obj, ok := spec.(map[string]any); ok {
		if t, present := obj[KeyType]; present {
			s, isString := t.(string)
			if !isString {
				return nil, fmt.Errorf("%w: type reference must be a string, got %T", ErrInvalidType, t)
			}
			ref = s
		}
	}

	typ, err := resolve(ref)
	if err != nil {
		return nil, err
	}
	return FromSpec(typ, spec)
}

// SaveDocument writes named values to path atomically, in the format implied
// by the file extension (TOML when unknown).
func SaveDocument(path string, values map[string]*Value, opts ...SpecOptions) error {
	format := DetectFormat(path)
	if format == "" {
		format = FormatTOML
	}

	data, err := EncodeDocument(format, values, opts...)
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

// LoadDocument reads and decodes the spec document at path.
// A missing file returns ErrDocumentNotFound.
func LoadDocument(path string, resolve Resolver) (map[string]*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to read spec document '%s': %w", path, err)
	}

	format := DetectFormat(path)
	if format == "" {
		format = DetectFormatFromContent(data)
		if format == "" {
			return nil, fmt.Errorf("unable to determine format for spec document '%s'", path)
		}
	}

	values, err := DecodeDocument(format, data, resolve)
	if err != nil {
		return nil, fmt.Errorf("spec document '%s': %w", path, err)
	}
	return values, nil
}

// DetectFormat determines format from file extension
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// DetectFormatFromContent attempts to detect format by parsing
func DetectFormatFromContent(data []byte) Format {
	// Try JSON first (strict format)
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	// Then TOML, then YAML
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	return ""
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
