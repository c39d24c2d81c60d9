// FILE: lixenwraith/simple/value_test.go
package simple

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNumberScenario walks a number value through its whole lifecycle
func TestNumberScenario(t *testing.T) {
	v1, err := New(Number, Raw(5))
	require.NoError(t, err)

	assert.Equal(t, float64(5), v1.Any())
	_, hasFormatted := v1.Formatted()
	assert.False(t, hasFormatted)
	assert.Equal(t, "5", v1.Key())

	assert.NoError(t, v1.Assert(5))
	assert.Equal(t, float64(5), v1.Any())

	err = v1.Assert(6)
	assert.ErrorIs(t, err, ErrImmutable)
	assert.Equal(t, float64(5), v1.Any())

	assert.Equal(t, float64(5), v1.ToSpecDefault())

	v1.SetFormatted("five")
	assert.Equal(t, SpecObject{Value: float64(5), Formatted: "five"}, v1.ToSpecDefault())
}

// TestSetOnce tests the set-once guard across kinds
func TestSetOnce(t *testing.T) {
	tests := []struct {
		name  string
		typ   *Type
		first any
		same  any
		other any
	}{
		{"String", String, "a", "a", "b"},
		{"Number", Number, 1.5, "1.5", 2.5},
		{"Integer", Integer, 7, int64(7), 8},
		{"Boolean", Boolean, true, "true", false},
		{"Date", Date, "2024-03-01T10:00:00Z", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), "2024-03-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.typ, Raw(tt.first))
			require.NoError(t, err)
			before := v.Any()

			assert.NoError(t, v.Assert(tt.first))
			assert.NoError(t, v.Assert(tt.same), "equivalent payload casts to the same value")
			assert.Equal(t, before, v.Any())

			err = v.Assert(tt.other)
			assert.ErrorIs(t, err, ErrImmutable)
			assert.Equal(t, before, v.Any())
		})
	}
}

// TestCastDeterminism tests that independent construction yields equal values
func TestCastDeterminism(t *testing.T) {
	for _, raw := range []any{"42", 42, int8(42), uint(42), 42.0} {
		a := MustNew(Number, Raw(raw))
		b := MustNew(Number, Raw(raw))
		assert.Equal(t, a.Any(), b.Any())
		assert.Equal(t, a.Key(), b.Key())
		assert.True(t, a.Equal(b))
	}
}

// TestKeyEquality tests that keys and equality agree within a kind
func TestKeyEquality(t *testing.T) {
	a := MustNew(Integer, Raw("0x10"))
	b := MustNew(Integer, Raw(16))
	c := MustNew(Integer, Raw(17))

	assert.Equal(t, a.Key(), b.Key())
	assert.True(t, a.Equal(b))
	assert.NotEqual(t, a.Key(), c.Key())
	assert.False(t, a.Equal(c))

	// Same key across kinds is not equality
	s := MustNew(String, Raw("16"))
	assert.Equal(t, a.Key(), s.Key())
	assert.False(t, a.Equal(s))

	d1 := MustNew(Date, Raw("2024-01-01T02:00:00+02:00"))
	d2 := MustNew(Date, Raw("2024-01-01T00:00:00Z"))
	assert.Equal(t, d1.Key(), d2.Key())
	assert.True(t, d1.Equal(d2))

	zero := MustNew(Number, Raw(0.0))
	negZero := MustNew(Number, Raw(math.Copysign(0, -1)))
	assert.Equal(t, "0", negZero.Key())
	assert.Equal(t, zero.Key(), negZero.Key())
	assert.True(t, zero.Equal(negZero))
	assert.NoError(t, zero.Assert(math.Copysign(0, -1)))
	assert.NoError(t, MustNew(Number, Raw("-0")).Assert(0))
}

// TestFormattedNormalization tests formatted text handling
func TestFormattedNormalization(t *testing.T) {
	v := MustNew(String, Raw("x"))

	tests := []struct {
		name    string
		input   any
		want    string
		present bool
	}{
		{"Text", "hello", "hello", true},
		{"Empty", "", "", false},
		{"Nil", nil, "", false},
		{"NilPointer", (*string)(nil), "", false},
		{"Number", 12, "12", true},
		{"Whitespace", " ", " ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v.SetFormatted("previous")
			v.SetFormatted(tt.input)
			got, ok := v.Formatted()
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestString tests text rendering preference
func TestString(t *testing.T) {
	v := MustNew(Boolean, Raw(1))
	assert.Equal(t, "true", v.String())

	v.SetFormatted("Yes")
	assert.Equal(t, "Yes", v.String())
	assert.Equal(t, "true", v.Key())
}

// TestNewErrors tests construction failures and their kinds
func TestNewErrors(t *testing.T) {
	t.Run("NilType", func(t *testing.T) {
		_, err := New(nil, Raw(1))
		assert.ErrorIs(t, err, ErrInvalidType)
	})

	t.Run("NilRaw", func(t *testing.T) {
		_, err := New(Number, Raw(nil))
		assert.ErrorIs(t, err, ErrRequired)
	})

	t.Run("NilInput", func(t *testing.T) {
		_, err := New(Number, nil)
		assert.ErrorIs(t, err, ErrRequired)
	})

	t.Run("ConfigWithoutValue", func(t *testing.T) {
		_, err := New(Number, Config{"f": "five"})
		assert.ErrorIs(t, err, ErrRequired)
	})

	t.Run("ConfigWithNilValue", func(t *testing.T) {
		_, err := New(Number, Config{"v": nil})
		assert.ErrorIs(t, err, ErrRequired)
	})

	t.Run("NotConvertible", func(t *testing.T) {
		_, err := New(Number, Raw(true))
		assert.ErrorIs(t, err, ErrNotConvertible)
		assert.Contains(t, err.Error(), "cannot convert to type Number")
	})

	t.Run("DomainCastError", func(t *testing.T) {
		_, err := New(Number, Raw("five"))
		var castErr *CastError
		require.ErrorAs(t, err, &castErr)
		assert.Equal(t, "five", castErr.Input)
		assert.NotErrorIs(t, err, ErrNotConvertible)
	})

	t.Run("MustNewPanics", func(t *testing.T) {
		assert.Panics(t, func() { MustNew(Integer, Raw(1.5)) })
	})
}

// TestClone tests cloning and downcasting from sibling values
func TestClone(t *testing.T) {
	v := MustNew(Number, Raw(3))
	v.SetFormatted("three")

	c := v.Clone()
	require.NotSame(t, v, c)
	assert.Equal(t, v.Any(), c.Any())
	assert.Same(t, v.Type(), c.Type())
	f, ok := c.Formatted()
	assert.True(t, ok)
	assert.Equal(t, "three", f)

	// Formatted stays independent
	c.SetFormatted("3.0")
	f, _ = v.Formatted()
	assert.Equal(t, "three", f)

	t.Run("Downcast", func(t *testing.T) {
		s := MustNew(String, Raw("7"))
		n, err := New(Integer, s)
		require.NoError(t, err)
		assert.Equal(t, int64(7), n.Any())
	})

	t.Run("DowncastNotConvertible", func(t *testing.T) {
		s := MustNew(String, Raw("seven"))
		_, err := New(Integer, s)
		var castErr *CastError
		assert.ErrorAs(t, err, &castErr)
	})
}

// TestSameValue tests comparison of non-comparable payloads
func TestSameValue(t *testing.T) {
	list := Simple.Extend("test/list").MustBuild()

	v := MustNew(list, Raw([]string{"a", "b"}))
	assert.NoError(t, v.Assert([]string{"a", "b"}))
	assert.ErrorIs(t, v.Assert([]string{"a"}), ErrImmutable)
	assert.ErrorIs(t, v.Assert("a"), ErrImmutable)
}
