package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"finmaster/internal/core"
)

type (
	// CategoryAmount is the total expense amount for one category, the
	// input of the proportional (donut) view.
	CategoryAmount struct {
		Category string
		Amount   decimal.Decimal
	}

	// ModeCategoryAmount is the total expense amount for one payment mode
	// and category pair, the input of the grouped bar view.
	ModeCategoryAmount struct {
		Mode     string
		Category string
		Amount   decimal.Decimal
	}

	// Summary holds the computed dashboard metrics and chart inputs.
	Summary struct {
		Income  decimal.Decimal
		Expense decimal.Decimal
		Balance decimal.Decimal

		// ByCategory covers Expense rows only, sorted by amount
		// descending, then category name ascending.
		ByCategory []CategoryAmount

		// ByMode covers Expense rows only, one entry per (mode,
		// category) pair, sorted by mode then category.
		ByMode []ModeCategoryAmount
	}
)

// Aggregate computes summary totals and breakdown projections over the
// dataset. Income rows contribute only to the top-level totals; both
// breakdowns are drawn from Expense rows exclusively, so the sum of the
// category breakdown equals the expense total exactly.
func Aggregate(ds Dataset) Summary {
	s := Summary{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	byCat := map[string]decimal.Decimal{}
	type modeCat struct{ mode, cat string }
	byMode := map[modeCat]decimal.Decimal{}

	for _, row := range ds.Rows {
		switch row.Type {
		case core.TypeIncome:
			s.Income = s.Income.Add(row.Amount)
		case core.TypeExpense:
			s.Expense = s.Expense.Add(row.Amount)
			byCat[row.Category] = byCat[row.Category].Add(row.Amount)
			key := modeCat{row.Mode, row.Category}
			byMode[key] = byMode[key].Add(row.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)

	for cat, amount := range byCat {
		s.ByCategory = append(s.ByCategory, CategoryAmount{Category: cat, Amount: amount})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		a, b := s.ByCategory[i], s.ByCategory[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return a.Category < b.Category
	})

	for key, amount := range byMode {
		s.ByMode = append(s.ByMode, ModeCategoryAmount{Mode: key.mode, Category: key.cat, Amount: amount})
	}
	sort.Slice(s.ByMode, func(i, j int) bool {
		a, b := s.ByMode[i], s.ByMode[j]
		if a.Mode != b.Mode {
			return a.Mode < b.Mode
		}
		return a.Category < b.Category
	})

	return s
}
