package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRecalculate(t *testing.T) {
	t.Parallel()

	e := &Expense{
		Quantity:  decimal.NewFromInt(3),
		UnitPrice: decimal.RequireFromString("2.5"),
		TaxRate:   decimal.RequireFromString("0.15"),
	}
	e.Recalculate()

	if !e.Amount.Equal(decimal.RequireFromString("7.5")) {
		t.Fatalf("amount = %s, want 7.5", e.Amount)
	}
	if !e.TaxAmount.Equal(decimal.RequireFromString("1.125")) {
		t.Fatalf("tax_amount = %s, want 1.125", e.TaxAmount)
	}
	if !e.TotalAmount.Equal(decimal.RequireFromString("8.625")) {
		t.Fatalf("total_amount = %s, want 8.625", e.TotalAmount)
	}

	// The invariant: total == quantity * unit_price * (1 + tax_rate).
	want := e.Quantity.Mul(e.UnitPrice).Mul(decimal.NewFromInt(1).Add(e.TaxRate))
	if !e.TotalAmount.Equal(want) {
		t.Fatalf("total_amount = %s, want %s", e.TotalAmount, want)
	}
}

func TestRecalculateOverwritesClientTotals(t *testing.T) {
	t.Parallel()

	e := &Expense{
		Quantity:    decimal.NewFromInt(2),
		UnitPrice:   decimal.NewFromInt(10),
		TotalAmount: decimal.NewFromInt(9999),
	}
	e.Recalculate()

	if !e.TotalAmount.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("total_amount = %s, want 20", e.TotalAmount)
	}
}

func TestDateOnlyJSON(t *testing.T) {
	t.Parallel()

	var d DateOnly
	if err := json.Unmarshal([]byte(`"2026-03-15"`), &d); err != nil {
		t.Fatalf("unmarshal plain date: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.March || d.Day() != 15 {
		t.Fatalf("unexpected date %v", d.Time)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2026-03-15"` {
		t.Fatalf("marshal = %s", out)
	}

	// RFC3339 input is accepted; the time component is dropped.
	if err := json.Unmarshal([]byte(`"2026-03-15T10:30:00Z"`), &d); err != nil {
		t.Fatalf("unmarshal RFC3339: %v", err)
	}
	if d.Day() != 15 {
		t.Fatalf("unexpected day %d", d.Day())
	}

	var zero DateOnly
	out, _ = json.Marshal(zero)
	if string(out) != "null" {
		t.Fatalf("zero date marshal = %s, want null", out)
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
		t.Fatal("expected error for invalid date")
	}
}
