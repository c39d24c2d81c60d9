// File: lixenwraith/simple/kinds.go
package simple

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Built-in concrete kinds. Each customizes only the cast step of Simple.
var (
	String  = Simple.Extend("simple/string").WithLabel("String").WithCast(castString).MustBuild()
	Number  = Simple.Extend("simple/number").WithLabel("Number").WithCast(castNumber).MustBuild()
	Integer = Simple.Extend("simple/integer").WithLabel("Integer").WithCast(castInteger).MustBuild()
	Boolean = Simple.Extend("simple/boolean").WithLabel("Boolean").WithCast(castBoolean).MustBuild()
	Date    = Simple.Extend("simple/date").WithLabel("Date").WithCast(castDate).MustBuild()
)

// castString accepts strings and the common scalar kinds in their string form.
func castString(raw any) (any, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	}
	return nil, nil
}

// castNumber converts numeric kinds and numeric strings to float64.
// Non-finite results cannot be represented.
func castNumber(raw any) (any, error) {
	var f float64

	switch v := raw.(type) {
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil, &CastError{Kind: "Number", Input: raw, Err: err}
		}
		f = parsed
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &CastError{Kind: "Number", Input: raw, Err: err}
		}
		f = parsed
	default:
		rv := reflect.ValueOf(raw)
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			f = rv.Float()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			f = float64(rv.Uint())
		default:
			return nil, nil
		}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, nil
	}
	// Negative zero keys as "0"
	if f == 0 {
		f = 0
	}
	return f, nil
}

// castInteger converts integer kinds, integral floats and integer strings to int64.
func castInteger(raw any) (any, error) {
	switch v := raw.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		return castInteger(v.String())
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		// Base 0 for auto-detection (e.g., "0xFF")
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return i, nil
		} else if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return castInteger(f)
		} else {
			return nil, &CastError{Kind: "Integer", Input: raw, Err: err}
		}
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, &CastError{Kind: "Integer", Input: raw, Err: fmt.Errorf("overflow")}
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return nil, nil
		}
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return nil, &CastError{Kind: "Integer", Input: raw, Err: fmt.Errorf("overflow")}
		}
		return int64(f), nil
	}
	return nil, nil
}

// castBoolean converts bools, parsable strings and numbers (0=false, non-zero=true).
func castBoolean(raw any) (any, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, nil
		}
		return f != 0, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, nil
		}
		return b, nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0, nil
	}
	return nil, nil
}

// castDate converts times and date strings to a UTC time.Time.
func castDate(raw any) (any, error) {
	switch v := raw.(type) {
	case time.Time:
		if v.IsZero() {
			return nil, nil
		}
		return v.UTC(), nil
	case *time.Time:
		if v == nil {
			return nil, nil
		}
		return castDate(*v)
	case string:
		t, ok := decodeTime(strings.TrimSpace(v))
		if !ok {
			return nil, nil
		}
		return t.UTC(), nil
	}
	return nil, nil
}
