// FILE: lixenwraith/simple/type.go
package simple

// Caster converts an external payload into a kind's internal representation.
//
// Cast is never called with nil. Returning (nil, nil) means the payload cannot
// be represented by the kind. Returning an error gives a more precise reason
// and that error reaches the caller unchanged.
type Caster interface {
	Cast(raw any) (any, error)
}

// CastFunc adapts a function to the Caster interface.
type CastFunc func(raw any) (any, error)

// Cast calls f(raw).
func (f CastFunc) Cast(raw any) (any, error) {
	return f(raw)
}

// identity is the default cast.
var identity = CastFunc(func(raw any) (any, error) { return raw, nil })

// Type describes a kind of simple value: its identity, display metadata and
// cast policy. A Type is immutable after Build and shared by all its values.
type Type struct {
	id         string
	label      string
	styleClass string
	abstract   bool
	caster     Caster
	bundle     *Bundle
	base       *Type
}

// Simple is the abstract base of all simple kinds. Its cast is the identity.
var Simple = NewTypeBuilder("simple").
	WithLabel("Simple").
	Abstract().
	MustBuild()

func (t *Type) ID() string         { return t.id }
func (t *Type) Label() string      { return t.label }
func (t *Type) StyleClass() string { return t.styleClass }
func (t *Type) IsAbstract() bool   { return t.abstract }
func (t *Type) Bundle() *Bundle    { return t.bundle }

// Base returns the type this one was extended from, or nil for a root type.
func (t *Type) Base() *Type { return t.base }

// IsSubtypeOf reports whether t is other or was extended, directly or not, from it.
func (t *Type) IsSubtypeOf(other *Type) bool {
	for cur := t; cur != nil; cur = cur.base {
		if cur == other {
			return true
		}
	}
	return false
}

func (t *Type) String() string {
	if t.id == "" {
		return t.label
	}
	return t.id
}

// Cast runs the kind's cast without presence checks.
func (t *Type) Cast(raw any) (any, error) {
	return t.caster.Cast(raw)
}

// ToValue converts an external payload into the value stored by this kind.
//
// A nil payload fails with ErrRequired. Errors raised by the cast are returned
// as is. A nil cast result fails with ErrNotConvertible.
func (t *Type) ToValue(raw any) (any, error) {
	if raw == nil {
		return nil, argRequired(t.bundle, "value")
	}

	v, err := t.caster.Cast(raw)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, argInvalid("value", t.bundle.Format(MsgCannotConvertToType, t.label), ErrNotConvertible)
	}

	return v, nil
}

// Reference returns the value written under the type key of a spec.
func (t *Type) Reference(scope *Scope) any {
	if scope == nil {
		scope = NewScope()
	}
	return scope.Reference(t)
}

// WithBundle returns a copy of t that reports its errors through b.
// The copy keeps t's id, so values of both compare equal, and is a
// subtype of t.
func (t *Type) WithBundle(b *Bundle) *Type {
	c := *t
	c.base = t
	if b != nil {
		c.bundle = b
	}
	return &c
}

// sameKind reports whether a and b describe the same kind: the same
// descriptor, or two descriptors sharing a non-empty id.
func sameKind(a, b *Type) bool {
	if a == b {
		return true
	}
	return a != nil && b != nil && a.id != "" && a.id == b.id
}

// Extend returns a builder seeded with this type's cast and bundle,
// producing a subtype of it.
func (t *Type) Extend(id string) *TypeBuilder {
	b := NewTypeBuilder(id).
		WithCaster(t.caster).
		WithBundle(t.bundle)
	b.base = t
	return b
}
