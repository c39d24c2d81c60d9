// FILE: lixenwraith/simple/configure.go
package simple

var acceptedInputs = []string{"simple.Config", "*simple.Value"}

// Configure merges a configuration into the value.
//
// A Config applies its recognized fields through the regular setters, so an
// established value can only be re-asserted. Another *Value contributes its
// value, through the same guard, and overwrites the formatted text.
// A nil configuration is ignored. Any other input fails with ErrInvalidConfig.
func (v *Value) Configure(in Input) error {
	switch in := in.(type) {
	case nil:
		return nil
	case Config:
		if in == nil {
			return nil
		}
		return v.configureFromObject(in)
	case *Value:
		if in == nil {
			return nil
		}
		return v.configureFromValue(in)
	}
	return argInvalidType(v.typ.bundle, "config", acceptedInputs, in)
}

func (v *Value) configureFromObject(cfg Config) error {
	decoded, err := decodeObjectConfig(cfg)
	if err != nil {
		return argInvalid("config", err.Error(), ErrInvalidConfig)
	}

	if decoded.has("v") {
		if err := v.Assert(decoded.V); err != nil {
			return err
		}
	}
	if decoded.has("value") {
		if err := v.Assert(decoded.Value); err != nil {
			return err
		}
	}
	if decoded.has("f") {
		v.SetFormatted(decoded.F)
	}
	if decoded.has("formatted") {
		v.SetFormatted(decoded.Formatted)
	}
	return nil
}

// configureFromValue clones or downcasts other into v.
func (v *Value) configureFromValue(other *Value) error {
	if other == v {
		return nil
	}
	if err := v.Assert(other.value); err != nil {
		return err
	}
	v.formatted = nonEmptyString(other.formatted)
	return nil
}
