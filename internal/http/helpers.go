package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finmaster/internal/core"
)

var hundred = decimal.NewFromInt(100)

// sanitizeInput removes potentially dangerous characters and trims whitespace
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	// Remove control characters except tab, newline, carriage return
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// transactionFromForm coerces the entry form fields into a transaction.
// The date defaults to today when absent; the amount must parse as a
// non-negative decimal. Taxonomy membership is checked later, at the
// ledger boundary.
func transactionFromForm(form url.Values) (core.Transaction, error) {
	date := core.Date{Time: time.Now().UTC().Truncate(24 * time.Hour)}
	if v := strings.TrimSpace(form.Get("date")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return core.Transaction{}, err
		}
		date = d
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(form.Get("amount")))
	if err != nil {
		return core.Transaction{}, err
	}
	if amount.IsNegative() {
		return core.Transaction{}, core.ErrNegativeAmount
	}

	return core.Transaction{
		Date:     date,
		Category: sanitizeInput(form.Get("category")),
		Type:     sanitizeInput(form.Get("type")),
		Amount:   amount,
		Mode:     sanitizeInput(form.Get("mode")),
		Notes:    sanitizeInput(form.Get("notes")),
	}, nil
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
