package database

import (
	"errors"
	"testing"
)

func TestPatchPresenceAndNull(t *testing.T) {
	t.Parallel()

	patch, err := ParsePatch([]byte(`{"name": "Office", "code": null, "sort_order": 3, "active": false}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !patch.Has("name") || !patch.Has("code") {
		t.Fatal("present keys not detected")
	}
	if patch.Has("missing") {
		t.Fatal("absent key reported present")
	}
	if patch.IsNull("name") {
		t.Fatal("non-null value reported null")
	}
	if !patch.IsNull("code") {
		t.Fatal("explicit null not detected")
	}

	name, err := patch.String("name")
	if err != nil || name == nil || *name != "Office" {
		t.Fatalf("String(name) = %v, %v", name, err)
	}

	code, err := patch.String("code")
	if err != nil || code != nil {
		t.Fatalf("String(code) = %v, %v; want nil for explicit null", code, err)
	}

	order, err := patch.Int("sort_order")
	if err != nil || order == nil || *order != 3 {
		t.Fatalf("Int(sort_order) = %v, %v", order, err)
	}

	active, err := patch.Bool("active")
	if err != nil || active == nil || *active {
		t.Fatalf("Bool(active) = %v, %v", active, err)
	}
}

func TestPatchDecimalAcceptsNumbersAndStrings(t *testing.T) {
	t.Parallel()

	patch, _ := ParsePatch([]byte(`{"a": 12.5, "b": "12.5", "c": null, "d": "nope"}`))

	for _, key := range []string{"a", "b"} {
		d, err := patch.Decimal(key)
		if err != nil || d == nil || d.String() != "12.5" {
			t.Fatalf("Decimal(%s) = %v, %v", key, d, err)
		}
	}

	d, err := patch.Decimal("c")
	if err != nil || d != nil {
		t.Fatalf("Decimal(c) = %v, %v; want nil for null", d, err)
	}

	if _, err := patch.Decimal("d"); err == nil {
		t.Fatal("expected error for non-numeric string")
	}
}

func TestRequireStringRejectsNull(t *testing.T) {
	t.Parallel()

	patch, _ := ParsePatch([]byte(`{"name": null}`))

	_, err := patch.RequireString("name")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestPatchTypeMismatch(t *testing.T) {
	t.Parallel()

	patch, _ := ParsePatch([]byte(`{"name": 42}`))
	if _, err := patch.String("name"); err == nil {
		t.Fatal("expected error for number where string expected")
	}

	if _, err := ParsePatch([]byte(`not json`)); err == nil {
		t.Fatal("expected error for invalid body")
	}
}
