// File: lixenwraith/simple/doc.go

// Package simple provides simple values: immutable, indivisible values wrapped
// with a type descriptor, an optional formatted text, a canonical key and a
// transportable spec form.
//
// Features:
//   - Set-once values: re-asserting an identical value is a no-op, a
//     different one fails with ErrImmutable
//   - Type descriptors whose kinds customize only the cast step
//   - Two-stage validation: presence (ErrRequired), then cast (ErrNotConvertible
//     or the kind's own error, returned unwrapped)
//   - Construction and configuration from raw payloads, plain Config objects or
//     sibling values
//   - Compact specs: the bare value, or {"_", "v", "f"} when needed
//   - Spec documents in TOML, JSON and YAML
//   - Injectable message bundles for error text
//
// Quick Start:
//
//	v, err := simple.New(simple.Number, simple.Raw(5))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v.Key()           // "5"
//	v.Assert(5)       // nil, same value
//	v.Assert(6)       // ErrImmutable
//	v.SetFormatted("five")
//	v.ToSpecDefault() // SpecObject{Value: 5, Formatted: "five"}
//
// Defining a kind:
//
//	Percent := simple.Number.Extend("acme/percent").
//	    WithLabel("Percent").
//	    WithCast(func(raw any) (any, error) {
//	        f, err := simple.Number.Cast(raw)
//	        if err != nil || f == nil {
//	            return f, err
//	        }
//	        if p := f.(float64); p >= 0 && p <= 100 {
//	            return p, nil
//	        }
//	        return nil, nil
//	    }).
//	    MustBuild()
//
// Thread Safety:
// Types are read-only and may be shared. A Value must be established by a
// single writer; after that its underlying value may be read concurrently.
// The formatted text is not guarded.
package simple
