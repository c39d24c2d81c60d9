// FILE: lixenwraith/simple/example/main.go
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/simple"
)

func main() {
	// =========================================================================
	// PART 1: ESTABLISHING A VALUE
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Creating a number value...")

	v, err := simple.New(simple.Number, simple.Raw("5"))
	if err != nil {
		log.Fatalf("❌ Failed to create value: %v", err)
	}
	log.Printf("✅ value=%v key=%q spec=%v", v.Any(), v.Key(), v.ToSpecDefault())

	if err := v.Assert(5); err != nil {
		log.Fatalf("❌ Re-asserting the same value failed: %v", err)
	}
	if err := v.Assert(6); errors.Is(err, simple.ErrImmutable) {
		log.Printf("✅ Changing the value is rejected: %v", err)
	}

	v.SetFormatted("five")
	log.Printf("✅ With formatted text: %q, spec=%+v", v.String(), v.ToSpecDefault())

	// =========================================================================
	// PART 2: CUSTOM KINDS
	// A kind only customizes the cast step.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Defining a percent kind...")

	percent := simple.Number.Extend("example/percent").
		WithLabel("Percent").
		WithCast(func(raw any) (any, error) {
			f, err := simple.Number.Cast(raw)
			if err != nil || f == nil {
				return f, err
			}
			if p := f.(float64); p >= 0 && p <= 100 {
				return p, nil
			}
			return nil, nil
		}).
		MustBuild()

	if _, err := simple.New(percent, simple.Raw(150)); err != nil {
		log.Printf("✅ Out of range input rejected: %v", err)
	}
	rate := simple.MustNew(percent, simple.Config{"v": "12.5", "f": "12.5 %"})

	// =========================================================================
	// PART 3: SPEC DOCUMENTS
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Saving and loading a spec document...")

	dir, err := os.MkdirTemp("", "simple-example")
	if err != nil {
		log.Fatalf("❌ Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "values.toml")
	values := map[string]*simple.Value{"amount": v, "rate": rate}
	if err := simple.SaveDocument(path, values); err != nil {
		log.Fatalf("❌ Failed to save document: %v", err)
	}

	data, _ := os.ReadFile(path)
	fmt.Printf("%s\n", data)

	loaded, err := simple.LoadDocument(path, simple.Kinds(simple.Number, percent))
	if err != nil {
		log.Fatalf("❌ Failed to load document: %v", err)
	}
	for name, lv := range loaded {
		log.Printf("✅ %s: %s (%s) equal=%v", name, lv, lv.Type(), lv.Equal(values[name]))
	}
}
