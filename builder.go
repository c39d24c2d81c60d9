// File: lixenwraith/simple/builder.go
package simple

import (
	"errors"
	"fmt"
	"strings"
)

// TypeValidatorFunc checks a fully assembled Type before Build returns it.
type TypeValidatorFunc func(t *Type) error

// TypeBuilder provides a fluent interface for defining simple kinds
type TypeBuilder struct {
	id         string
	label      string
	styleClass string
	abstract   bool
	caster     Caster
	bundle     *Bundle
	base       *Type
	err        error
	validators []TypeValidatorFunc
}

// NewTypeBuilder creates a builder for a kind with the given id
func NewTypeBuilder(id string) *TypeBuilder {
	return &TypeBuilder{
		id:         id,
		validators: make([]TypeValidatorFunc, 0),
	}
}

// WithLabel sets the display label used in error messages
func (b *TypeBuilder) WithLabel(label string) *TypeBuilder {
	b.label = label
	return b
}

// WithStyleClass sets the display classification tag
func (b *TypeBuilder) WithStyleClass(class string) *TypeBuilder {
	b.styleClass = class
	return b
}

// WithCaster sets the kind's cast policy
func (b *TypeBuilder) WithCaster(c Caster) *TypeBuilder {
	if c == nil {
		b.err = errors.Join(b.err, fmt.Errorf("%w: nil caster for %q", ErrInvalidType, b.id))
		return b
	}
	b.caster = c
	return b
}

// WithCast sets the kind's cast policy from a function
func (b *TypeBuilder) WithCast(fn func(raw any) (any, error)) *TypeBuilder {
	if fn == nil {
		return b.WithCaster(nil)
	}
	return b.WithCaster(CastFunc(fn))
}

// WithBundle sets the message bundle used for the kind's errors
func (b *TypeBuilder) WithBundle(bundle *Bundle) *TypeBuilder {
	b.bundle = bundle
	return b
}

// Abstract marks the kind as abstract
func (b *TypeBuilder) Abstract() *TypeBuilder {
	b.abstract = true
	return b
}

// WithValidator adds a check run against the built type
func (b *TypeBuilder) WithValidator(fn TypeValidatorFunc) *TypeBuilder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build assembles and validates the type.
// All problems found are joined into the returned error.
func (b *TypeBuilder) Build() (*Type, error) {
	errs := []error{b.err}

	if err := validateTypeID(b.id); err != nil {
		errs = append(errs, err)
	}

	last := lastSegment(b.id)
	t := &Type{
		id:         b.id,
		label:      b.label,
		styleClass: b.styleClass,
		abstract:   b.abstract,
		caster:     b.caster,
		bundle:     b.bundle,
		base:       b.base,
	}
	if t.label == "" {
		t.label = last
	}
	if t.styleClass == "" && last != "" {
		t.styleClass = "simple-type-" + strings.ToLower(last)
	}
	if t.caster == nil {
		t.caster = identity
	}
	if t.bundle == nil {
		t.bundle = DefaultBundle()
	}

	for _, validator := range b.validators {
		if err := validator(t); err != nil {
			errs = append(errs, fmt.Errorf("type %q validation failed: %w", b.id, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return t, nil
}

// MustBuild is like Build but panics on error
func (b *TypeBuilder) MustBuild() *Type {
	t, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("simple: type build failed: %v", err))
	}
	return t
}

// validateTypeID checks an id made of '/' or '.' separated segments.
// The empty id is allowed and denotes an anonymous type.
func validateTypeID(id string) error {
	if id == "" {
		return nil
	}
	segments := strings.Split(strings.ReplaceAll(id, ".", "/"), "/")
	for _, segment := range segments {
		if !isValidIDSegment(segment) {
			return fmt.Errorf("%w: invalid segment %q in id %q", ErrInvalidType, segment, id)
		}
	}
	return nil
}

func lastSegment(id string) string {
	if i := strings.LastIndexAny(id, "/."); i >= 0 {
		return id[i+1:]
	}
	return id
}

// isValidIDSegment checks if a single id segment is valid.
func isValidIDSegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	firstChar := rune(s[0])
	if !isAlpha(firstChar) && firstChar != '_' {
		return false
	}
	for _, r := range s[1:] {
		if !isAlpha(r) && !isNumeric(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

// isAlpha checks if a character is a letter (A-Z, a-z)
func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isNumeric checks if a character is a digit (0-9)
func isNumeric(c rune) bool {
	return c >= '0' && c <= '9'
}
