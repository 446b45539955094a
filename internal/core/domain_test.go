package core

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testTaxonomy() Taxonomy {
	return NewTaxonomy(
		[]string{"Food", "Travel"},
		[]string{TypeIncome, TypeExpense},
		[]string{"Cash", "Card"},
	)
}

func TestDateFormats(t *testing.T) {
	d := NewDate(2024, 1, 15)
	if d.String() != "2024-01-15" {
		t.Fatalf("String() = %q", d.String())
	}
	if d.Compact() != "20240115" {
		t.Fatalf("Compact() = %q", d.Compact())
	}
	parsed, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !parsed.Equal(d.Time) {
		t.Fatalf("ParseDate mismatch: %v vs %v", parsed, d)
	}
	if _, err := ParseDate("15/01/2024"); err == nil {
		t.Fatalf("expected error for wrong format")
	}
}

func TestTransactionValidate(t *testing.T) {
	tax := testTaxonomy()
	good := Transaction{
		ID:       "FOO-20240115-ABCD",
		Date:     NewDate(2024, 1, 15),
		Category: "Food",
		Type:     TypeExpense,
		Amount:   decimal.NewFromInt(100),
		Mode:     "Cash",
	}
	if err := good.Validate(tax); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		mut  func(*Transaction)
		want error
	}{
		{"zero date", func(tr *Transaction) { tr.Date = Date{Time: time.Time{}} }, ErrZeroDate},
		{"unknown category", func(tr *Transaction) { tr.Category = "Rent" }, ErrUnknownCategory},
		{"unknown type", func(tr *Transaction) { tr.Type = "Transfer" }, ErrUnknownType},
		{"unknown mode", func(tr *Transaction) { tr.Mode = "Cheque" }, ErrUnknownMode},
		{"negative amount", func(tr *Transaction) { tr.Amount = decimal.NewFromInt(-1) }, ErrNegativeAmount},
	}
	for _, tc := range cases {
		tr := good
		tc.mut(&tr)
		if err := tr.Validate(tax); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}

	// Zero amount is allowed: the form widget enforces min 0, not min > 0.
	zero := good
	zero.Amount = decimal.Zero
	if err := zero.Validate(tax); err != nil {
		t.Fatalf("zero amount should validate, got %v", err)
	}
}

func TestLabel(t *testing.T) {
	tr := Transaction{Category: "Food", Amount: decimal.RequireFromString("120.5"), Notes: "lunch"}
	if got := tr.Label(); got != "Food - 120.5 (lunch)" {
		t.Fatalf("Label() = %q", got)
	}
}

func TestTaxonomyDedupe(t *testing.T) {
	tax := NewTaxonomy([]string{"A", "B", "A", " "}, []string{"Income"}, []string{"Cash", "Cash"})
	if len(tax.Categories) != 2 || len(tax.Modes) != 1 {
		t.Fatalf("unexpected taxonomy: %+v", tax)
	}
	if !tax.HasCategory("A") || tax.HasCategory("C") {
		t.Fatalf("membership check failed")
	}
}
