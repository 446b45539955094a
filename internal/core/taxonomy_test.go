package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTaxonomyFromFilesDefaults(t *testing.T) {
	tax := TaxonomyFromFiles(t.TempDir())
	if len(tax.Categories) == 0 || len(tax.Modes) == 0 {
		t.Fatalf("expected defaults when seed files missing: %+v", tax)
	}
	if !tax.HasType(TypeIncome) || !tax.HasType(TypeExpense) {
		t.Fatalf("default types must include Income and Expense: %v", tax.Types)
	}
}

func TestTaxonomyFromFilesSeeds(t *testing.T) {
	dir := t.TempDir()
	mustWrite := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	mustWrite("seed_categories.txt", "# comment\nGroceries\nRent\nGroceries\n\n")
	mustWrite("seed_modes.txt", "Cash\nBank Transfer\n")

	tax := TaxonomyFromFiles(dir)
	if len(tax.Categories) != 2 || tax.Categories[0] != "Groceries" || tax.Categories[1] != "Rent" {
		t.Fatalf("unexpected categories: %v", tax.Categories)
	}
	if len(tax.Modes) != 2 || tax.Modes[1] != "Bank Transfer" {
		t.Fatalf("unexpected modes: %v", tax.Modes)
	}
	// Missing types file falls back to defaults.
	if !tax.HasType(TypeExpense) {
		t.Fatalf("expected default types: %v", tax.Types)
	}
}
