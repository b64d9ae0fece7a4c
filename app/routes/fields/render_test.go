package fields

import (
	"testing"

	"projecttracker/app/models"
)

func TestNormalizeNumber(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"0", "0"},
		{"00", "0"},
		{"007", "7"},
		{"0.5", "0.5"},
		{"", ""},
		{"42", "42"},
		{"000.25", "0.25"},
		{"-007", "-7"},
	}
	for _, tc := range cases {
		if got := NormalizeNumber(tc.in); got != tc.want {
			t.Errorf("NormalizeNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPhoneLink(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"0501234567", "https://wa.me/966501234567", true},
		{"966501234567", "https://wa.me/966501234567", true},
		{"+966501234567", "https://wa.me/966501234567", true},
		{"050 123 4567", "https://wa.me/966501234567", true},
		{"050-123-4567", "https://wa.me/966501234567", true},
		{"501234567", "https://wa.me/966501234567", true},
		{"abc", "", false},
		{"", "", false},
		{"12345", "", false},
	}
	for _, tc := range cases {
		got, ok := PhoneLink(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("PhoneLink(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestValidURL(t *testing.T) {
	t.Parallel()

	valid := []string{"https://example.com", "http://example.com/path", "example.com", "sub.example.com/x"}
	for _, s := range valid {
		if !ValidURL(s) {
			t.Errorf("ValidURL(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "   "}
	for _, s := range invalid {
		if ValidURL(s) {
			t.Errorf("ValidURL(%q) = true, want false", s)
		}
	}
}

func TestEvalFormula(t *testing.T) {
	t.Parallel()

	values := map[string]string{"qty": "3", "price": "2.5", "zeros": "007"}

	got, ok := EvalFormula("qty*price", values)
	if !ok || got != "7.5" {
		t.Fatalf("EvalFormula(qty*price) = (%q, %v), want (7.5, true)", got, ok)
	}

	got, ok = EvalFormula("qty * zeros", values)
	if !ok || got != "21" {
		t.Fatalf("EvalFormula(qty * zeros) = (%q, %v), want (21, true)", got, ok)
	}

	if _, ok := EvalFormula("qty*missing", values); ok {
		t.Fatal("expected failure for missing operand")
	}
	if _, ok := EvalFormula("qty", values); ok {
		t.Fatal("expected failure for single operand")
	}
}

func TestRenderSelectMembership(t *testing.T) {
	t.Parallel()

	field := &models.DynamicField{Name: "kind", FieldType: models.FieldSelect, Options: []string{"a", "b"}}

	if r := RenderValue(field, "a", nil); !r.Valid {
		t.Fatal("member value should be valid")
	}
	if r := RenderValue(field, "c", nil); r.Valid {
		t.Fatal("non-member value should be invalid")
	}

	// Empty options fall back to free text.
	free := &models.DynamicField{Name: "kind", FieldType: models.FieldSelect}
	if r := RenderValue(free, "anything", nil); !r.Valid {
		t.Fatal("free-text fallback should accept any value")
	}
}

func TestRenderCalculated(t *testing.T) {
	t.Parallel()

	formula := "qty*price"
	field := &models.DynamicField{Name: "total", FieldType: models.FieldCalculated, Formula: &formula}
	values := map[string]string{"qty": "4", "price": "10"}

	r := RenderValue(field, "", values)
	if r.Display != "40" {
		t.Fatalf("calculated display = %q, want 40", r.Display)
	}
}

func TestRenderPhoneAndRequired(t *testing.T) {
	t.Parallel()

	phone := &models.DynamicField{Name: "mobile", FieldType: models.FieldPhone, IsRequired: true}

	r := RenderValue(phone, "0501234567", nil)
	if r.Link != "https://wa.me/966501234567" {
		t.Fatalf("phone link = %q", r.Link)
	}

	if r := RenderValue(phone, "", nil); r.Valid {
		t.Fatal("required empty phone should be invalid")
	}

	text := &models.DynamicField{Name: "note", FieldType: models.FieldText, IsRequired: true}
	if r := RenderValue(text, "", nil); r.Valid {
		t.Fatal("required empty text should be invalid")
	}
}
