package session

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finmaster/internal/core"
	"finmaster/internal/dashboard"
)

func testTaxonomy() core.Taxonomy {
	return core.NewTaxonomy([]string{"Food"}, []string{core.TypeIncome, core.TypeExpense}, []string{"Cash"})
}

func TestSessionsAreIsolated(t *testing.T) {
	r := NewRegistry(testTaxonomy(), time.Hour)
	defer r.Stop()

	a := r.Create()
	b := r.Create()
	if a.ID == b.ID {
		t.Fatalf("session ids must be unique")
	}

	err := a.Ledger.Add(core.Transaction{
		ID:       "FOO-20240115-AAAA",
		Date:     core.NewDate(2024, 1, 15),
		Category: "Food",
		Type:     core.TypeExpense,
		Amount:   decimal.NewFromInt(10),
		Mode:     "Cash",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if b.Ledger.Len() != 0 {
		t.Fatalf("ledger leaked across sessions")
	}

	got, ok := r.Get(a.ID)
	if !ok || got != a {
		t.Fatalf("lookup returned wrong session")
	}
	if _, ok := r.Get("unknown"); ok {
		t.Fatalf("expected miss for unknown id")
	}
}

func TestDashboardSummaryReplacedPerUpload(t *testing.T) {
	r := NewRegistry(testTaxonomy(), time.Hour)
	defer r.Stop()
	s := r.Create()

	if name, sum := s.Dashboard(); name != "" || sum != nil {
		t.Fatalf("expected empty dashboard initially")
	}

	first := &dashboard.Summary{Income: decimal.NewFromInt(1)}
	s.SetDashboard("jan.csv", first)
	second := &dashboard.Summary{Income: decimal.NewFromInt(2)}
	s.SetDashboard("feb.csv", second)

	name, sum := s.Dashboard()
	if name != "feb.csv" || sum != second {
		t.Fatalf("expected latest upload to win, got %q", name)
	}
}

func TestExpireIdle(t *testing.T) {
	r := NewRegistry(testTaxonomy(), 10*time.Millisecond)
	defer r.Stop()

	s := r.Create()
	time.Sleep(30 * time.Millisecond)
	r.expireIdle()

	if _, ok := r.Get(s.ID); ok {
		t.Fatalf("idle session should have been expired")
	}
	if r.Len() != 0 {
		t.Fatalf("registry not empty after expiry")
	}
}
