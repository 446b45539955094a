package core

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Taxonomy holds the three closed sets driving both the form selection inputs
// and edit validation at the ledger boundary. Loading them from one place
// keeps what the user can pick and what the ledger accepts from diverging.
type Taxonomy struct {
	Categories []string
	Types      []string
	Modes      []string
}

// NewTaxonomy builds a taxonomy from the given sets, trimming and deduplicating
// each while preserving input order.
func NewTaxonomy(categories, types, modes []string) Taxonomy {
	return Taxonomy{
		Categories: dedupe(categories),
		Types:      dedupe(types),
		Modes:      dedupe(modes),
	}
}

// TaxonomyFromFiles reads the three sets from seed files under base,
// falling back to built-in defaults for any file that is missing or empty.
func TaxonomyFromFiles(base string) Taxonomy {
	cats := readLines(filepath.Join(base, "seed_categories.txt"))
	types := readLines(filepath.Join(base, "seed_types.txt"))
	modes := readLines(filepath.Join(base, "seed_modes.txt"))
	if len(cats) == 0 {
		cats = []string{"Food", "Travel", "Shopping", "Bills", "Entertainment", "Health", "Other"}
	}
	if len(types) == 0 {
		types = []string{TypeIncome, TypeExpense}
	}
	if len(modes) == 0 {
		modes = []string{"Cash", "Card", "UPI"}
	}
	return NewTaxonomy(cats, types, modes)
}

func (t Taxonomy) HasCategory(v string) bool { return contains(t.Categories, v) }
func (t Taxonomy) HasType(v string) bool     { return contains(t.Types, v) }
func (t Taxonomy) HasMode(v string) bool     { return contains(t.Modes, v) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func readLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func dedupe(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
