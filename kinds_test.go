package simple

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestCastKinds(t *testing.T) {
	date := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	tests := []struct {
		name string
		typ  *Type
		raw  any
		want any
	}{
		{"StringFromString", String, "abc", "abc"},
		{"StringFromInt", String, 42, "42"},
		{"StringFromUint", String, uint16(7), "7"},
		{"StringFromFloat", String, 2.5, "2.5"},
		{"StringFromBool", String, false, "false"},
		{"StringFromBytes", String, []byte("raw"), "raw"},
		{"StringFromStringer", String, stringer{}, "stringer"},
		{"StringFromJSONNumber", String, json.Number("1e3"), "1e3"},

		{"NumberFromInt", Number, 3, float64(3)},
		{"NumberFromFloat32", Number, float32(0.5), float64(0.5)},
		{"NumberFromString", Number, " 2.25 ", 2.25},
		{"NumberFromJSONNumber", Number, json.Number("-4"), float64(-4)},

		{"IntegerFromInt32", Integer, int32(-9), int64(-9)},
		{"IntegerFromUint", Integer, uint64(9), int64(9)},
		{"IntegerFromIntegralFloat", Integer, 4.0, int64(4)},
		{"IntegerFromHex", Integer, "0xff", int64(255)},
		{"IntegerFromFloatString", Integer, "10.0", int64(10)},
		{"IntegerFromJSONNumber", Integer, json.Number("12"), int64(12)},

		{"BooleanFromBool", Boolean, true, true},
		{"BooleanFromString", Boolean, "F", false},
		{"BooleanFromZero", Boolean, 0, false},
		{"BooleanFromFloat", Boolean, 0.1, true},
		{"BooleanFromJSONNumber", Boolean, json.Number("1"), true},

		{"DateFromTime", Date, date.In(time.FixedZone("X", 3600)), date},
		{"DateFromPointer", Date, &date, date},
		{"DateFromRFC3339", Date, "2024-05-06T07:08:09Z", date},
		{"DateFromOffset", Date, "2024-05-06T09:08:09+02:00", date},
		{"DateFromLocal", Date, "2024-05-06T07:08:09", date},
		{"DateFromDateOnly", Date, "2024-05-06", time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.typ.ToValue(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCastKindsNotConvertible(t *testing.T) {
	tests := []struct {
		name string
		typ  *Type
		raw  any
	}{
		{"StringFromMap", String, map[string]any{}},
		{"NumberFromBool", Number, true},
		{"NumberFromEmpty", Number, "  "},
		{"NumberNaN", Number, math.NaN()},
		{"NumberInf", Number, math.Inf(1)},
		{"IntegerFromFraction", Integer, 1.5},
		{"IntegerFromBool", Integer, true},
		{"BooleanFromWord", Boolean, "maybe"},
		{"BooleanFromSlice", Boolean, []int{1}},
		{"DateFromGarbage", Date, "yesterday"},
		{"DateFromZero", Date, time.Time{}},
		{"DateFromInt", Date, 1700000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.typ.ToValue(tt.raw)
			assert.ErrorIs(t, err, ErrNotConvertible)
		})
	}
}

func TestCastKindsDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		typ  *Type
		raw  any
	}{
		{"NumberFromWord", Number, "ten"},
		{"NumberFromBadJSONNumber", Number, json.Number("x")},
		{"IntegerFromWord", Integer, "ten"},
		{"IntegerOverflow", Integer, uint64(math.MaxUint64)},
		{"IntegerFloatOverflow", Integer, 1e300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.typ.ToValue(tt.raw)
			var castErr *CastError
			require.ErrorAs(t, err, &castErr)
			assert.Equal(t, tt.typ.Label(), castErr.Kind)
			assert.NotErrorIs(t, err, ErrNotConvertible)
		})
	}
}
