// FILE: lixenwraith/simple/decode.go
package simple

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// dateLayouts are tried in order when casting date strings.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// objectConfig holds the recognized fields of a plain configuration object.
// Short and long aliases are both accepted.
type objectConfig struct {
	Type      any `mapstructure:"_"`
	V         any `mapstructure:"v"`
	Value     any `mapstructure:"value"`
	F         any `mapstructure:"f"`
	Formatted any `mapstructure:"formatted"`
}

// decodedConfig is an objectConfig plus which of its keys were present.
type decodedConfig struct {
	objectConfig
	present map[string]bool
}

func (d decodedConfig) has(key string) bool {
	return d.present[key]
}

// decodeObjectConfig is the single function decoding plain configuration
// objects. Keys that are present but nil are reported as present.
func decodeObjectConfig(cfg Config) (decodedConfig, error) {
	var (
		out decodedConfig
		md  mapstructure.Metadata
	)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &out.objectConfig,
		TagName:    "mapstructure",
		ZeroFields: true,
		Metadata:   &md,
		MatchName:  func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return out, fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(map[string]any(cfg)); err != nil {
		return out, fmt.Errorf("decode failed for configuration: %w", err)
	}

	out.present = make(map[string]bool, len(md.Keys))
	for _, key := range md.Keys {
		out.present[key] = true
	}
	return out, nil
}

// decodeTime parses s with the first matching layout.
func decodeTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		var t time.Time
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:     &t,
			DecodeHook: mapstructure.StringToTimeHookFunc(layout),
		})
		if err != nil {
			return time.Time{}, false
		}
		if err := decoder.Decode(s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
