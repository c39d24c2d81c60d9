// FILE: lixenwraith/simple/value.go
package simple

import (
	"fmt"
	"reflect"
)

// Input is what a simple value is constructed or configured from:
// a Raw payload, a plain Config object, or another *Value.
type Input interface {
	isInput()
}

type rawInput struct {
	v any
}

func (rawInput) isInput() {}

// Raw wraps an external payload to be cast by the value's type.
func Raw(v any) Input {
	return rawInput{v: v}
}

// Config is a plain configuration object. Recognized keys are "v" (or
// "value") and "f" (or "formatted"); "_" and unknown keys are ignored.
type Config map[string]any

func (Config) isInput() {}

func (*Value) isInput() {}

// Value is an immutable, indivisible typed value.
//
// The underlying value is established once and can only be re-asserted with
// an identical value afterwards. The formatted text may change at any time.
// A Value is not safe for concurrent mutation; once established it may be
// read from any number of goroutines.
type Value struct {
	typ       *Type
	value     any
	set       bool
	formatted *string
}

// New creates a value of type typ from in.
func New(typ *Type, in Input) (*Value, error) {
	if typ == nil {
		return nil, fmt.Errorf("%w: nil type", ErrInvalidType)
	}

	v := &Value{typ: typ}

	switch in := in.(type) {
	case Config:
		if err := v.configureFromObject(in); err != nil {
			return nil, err
		}
		if !v.set {
			// Omitting the value is never accepted.
			return nil, argRequired(typ.bundle, "value")
		}
	case *Value:
		if in == nil {
			return nil, argRequired(typ.bundle, "value")
		}
		if err := v.configureFromValue(in); err != nil {
			return nil, err
		}
	case rawInput:
		if err := v.Assert(in.v); err != nil {
			return nil, err
		}
	case nil:
		return nil, argRequired(typ.bundle, "value")
	default:
		return nil, argInvalidType(typ.bundle, "spec", acceptedInputs, in)
	}

	return v, nil
}

// MustNew is like New but panics on error.
func MustNew(typ *Type, in Input) *Value {
	v, err := New(typ, in)
	if err != nil {
		panic(err)
	}
	return v
}

// Clone returns an independent value with the same type, value and formatted text.
func (v *Value) Clone() *Value {
	c, err := New(v.typ, v)
	if err != nil {
		// v was established through the same guard.
		panic(fmt.Sprintf("simple: clone of %s failed: %v", v.typ, err))
	}
	return c
}

// Assert establishes the underlying value from raw, or checks that raw casts
// to the value already established.
//
// The first successful call wins. Later calls casting to an identical value
// are no-ops; calls casting to a different value fail with ErrImmutable.
func (v *Value) Assert(raw any) error {
	next, err := v.typ.ToValue(raw)
	if err != nil {
		return err
	}

	if !v.set {
		v.value = next
		v.set = true
		return nil
	}

	if !sameValue(v.value, next) {
		return argInvalid("value", v.typ.bundle.Format(MsgCannotChangeValue, v.value, next), ErrImmutable)
	}
	return nil
}

// Type returns the value's type descriptor.
func (v *Value) Type() *Type {
	return v.typ
}

// Any returns the underlying value.
func (v *Value) Any() any {
	return v.value
}

// IsSet reports whether the underlying value has been established.
func (v *Value) IsSet() bool {
	return v.set
}

// Formatted returns the formatted text and whether one is present.
func (v *Value) Formatted() (string, bool) {
	if v.formatted == nil {
		return "", false
	}
	return *v.formatted, true
}

// SetFormatted sets the formatted text. Nil, or anything printing as the
// empty string, clears it.
func (v *Value) SetFormatted(f any) {
	v.formatted = nonEmptyString(f)
}

// Key identifies the value among values of the same type: two values of the
// same type are equal exactly when their keys are.
func (v *Value) Key() string {
	return fmt.Sprint(v.value)
}

// String returns the formatted text when present, and the key otherwise.
func (v *Value) String() string {
	if v.formatted != nil {
		return *v.formatted
	}
	return fmt.Sprint(v.value)
}

// Equal reports whether v and other are of the same kind and have the same key.
// Types sharing an id, such as a type and its WithBundle copies, are the same kind.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	return sameKind(v.typ, other.typ) && v.Key() == other.Key()
}

func nonEmptyString(f any) *string {
	if f == nil {
		return nil
	}
	var s string
	switch f := f.(type) {
	case string:
		s = f
	case *string:
		if f == nil {
			return nil
		}
		s = *f
	default:
		s = fmt.Sprint(f)
	}
	if s == "" {
		return nil
	}
	return &s
}

// sameValue compares established values without panicking on
// non-comparable payloads.
func sameValue(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta != nil && ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
