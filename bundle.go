// FILE: lixenwraith/simple/bundle.go
package simple

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Message keys understood by a Bundle.
const (
	MsgCannotChangeValue   = "cannotChangeValue"
	MsgCannotConvertToType = "cannotConvertToType"
	MsgArgRequired         = "argRequired"
	MsgArgInvalidType      = "argInvalidType"
)

const defaultMessages = `
cannotChangeValue   = "cannot change value %v to %v"
cannotConvertToType = "cannot convert to type %s"
argRequired         = "argument %q is required"
argInvalidType      = "argument %q must be one of %v, got %s"
`

var (
	defaultsOnce sync.Once
	defaultsMap  map[string]string
)

// Bundle resolves message keys to fmt templates.
// A Bundle is read-only once built and may be shared.
type Bundle struct {
	messages map[string]string
}

// DefaultBundle returns a bundle holding the built-in English messages.
func DefaultBundle() *Bundle {
	defaultsOnce.Do(func() {
		defaultsMap = make(map[string]string)
		if _, err := toml.Decode(defaultMessages, &defaultsMap); err != nil {
			panic(fmt.Sprintf("simple: invalid default messages: %v", err))
		}
	})

	b := &Bundle{messages: make(map[string]string, len(defaultsMap))}
	for k, v := range defaultsMap {
		b.messages[k] = v
	}
	return b
}

// NewBundle returns the default bundle overlaid with the given templates.
func NewBundle(messages map[string]string) *Bundle {
	b := DefaultBundle()
	for k, v := range messages {
		b.messages[k] = v
	}
	return b
}

// LoadBundle reads message templates from a TOML, JSON or YAML file and
// overlays them on the defaults.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("message bundle '%s': %w", path, err)
		}
		return nil, fmt.Errorf("failed to read message bundle '%s': %w", path, err)
	}

	format := DetectFormat(path)
	if format == "" {
		format = DetectFormatFromContent(data)
	}

	messages := make(map[string]string)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse TOML bundle '%s': %w", path, err)
		}
	case FormatJSON:
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(&messages); err != nil {
			return nil, fmt.Errorf("failed to parse JSON bundle '%s': %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse YAML bundle '%s': %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unable to determine bundle format for file '%s'", path)
	}

	return NewBundle(messages), nil
}

// Format renders the template registered under key.
// Unknown keys render as the key followed by the arguments.
func (b *Bundle) Format(key string, args ...any) string {
	if b == nil {
		b = DefaultBundle()
	}
	tmpl, ok := b.messages[key]
	if !ok {
		if len(args) == 0 {
			return key
		}
		return fmt.Sprintf("%s %v", key, args)
	}
	return fmt.Sprintf(tmpl, args...)
}
