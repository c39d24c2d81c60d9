// FILE: lixenwraith/simple/spec.go
package simple

import "fmt"

// Spec object keys.
const (
	KeyType      = "_"
	KeyValue     = "v"
	KeyFormatted = "f"
)

// SpecObject is the structured form of a value spec. Field order is part of
// the wire contract: the type reference, when present, comes first.
type SpecObject struct {
	Type      any    `json:"_,omitempty" toml:"_,omitempty" yaml:"_,omitempty" mapstructure:"_"`
	Value     any    `json:"v" toml:"v" yaml:"v" mapstructure:"v"`
	Formatted string `json:"f,omitempty" toml:"f,omitempty" yaml:"f,omitempty" mapstructure:"f"`
}

// SpecOptions tunes spec serialization.
type SpecOptions struct {
	// OmitFormatted leaves the formatted text out of the spec.
	OmitFormatted bool
}

func mergeSpecOptions(opts []SpecOptions) SpecOptions {
	var out SpecOptions
	for _, o := range opts {
		out.OmitFormatted = out.OmitFormatted || o.OmitFormatted
	}
	return out
}

// Scope tracks type references emitted while serializing related specs.
// Named types are referenced by id. Anonymous types get temporary ids,
// "_1", "_2", ..., stable for the life of the scope.
type Scope struct {
	temp map[*Type]string
}

// NewScope returns an empty serialization scope.
func NewScope() *Scope {
	return &Scope{temp: make(map[*Type]string)}
}

// Reference returns the reference to t within the scope.
func (s *Scope) Reference(t *Type) any {
	if t.id != "" {
		return t.id
	}
	if ref, ok := s.temp[t]; ok {
		return ref
	}
	if s.temp == nil {
		s.temp = make(map[*Type]string)
	}
	ref := fmt.Sprintf("_%d", len(s.temp)+1)
	s.temp[t] = ref
	return ref
}

// ToSpec renders the value as a transportable spec.
//
// When neither the formatted text nor the type reference is needed, the spec
// is the bare underlying value. Otherwise it is a SpecObject.
func (v *Value) ToSpec(scope *Scope, requireType bool, opts ...SpecOptions) any {
	o := mergeSpecOptions(opts)
	addFormatted := !o.OmitFormatted && v.formatted != nil

	if !addFormatted && !requireType {
		return v.value
	}

	spec := SpecObject{Value: v.value}
	if requireType {
		spec.Type = v.typ.Reference(scope)
	}
	if addFormatted {
		spec.Formatted = *v.formatted
	}
	return spec
}

// ToSpecDefault renders the value in a fresh scope without a type reference.
func (v *Value) ToSpecDefault(opts ...SpecOptions) any {
	return v.ToSpec(NewScope(), false, opts...)
}

// FromSpec builds a value of type typ from a spec produced by ToSpec or read
// from a document. Maps and SpecObjects are configurations; anything else is
// a raw payload.
func FromSpec(typ *Type, spec any) (*Value, error) {
	return New(typ, SpecInput(spec))
}

// SpecInput classifies a decoded spec as a construction input.
func SpecInput(spec any) Input {
	switch s := spec.(type) {
	case Input:
		return s
	case SpecObject:
		cfg := Config{KeyValue: s.Value}
		if s.Type != nil {
			cfg[KeyType] = s.Type
		}
		if s.Formatted != "" {
			cfg[KeyFormatted] = s.Formatted
		}
		return cfg
	case *SpecObject:
		if s == nil {
			return Raw(nil)
		}
		return SpecInput(*s)
	case map[string]any:
		return Config(s)
	}
	return Raw(spec)
}
