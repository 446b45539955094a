package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction type names present in every taxonomy.
const (
	TypeIncome  = "Income"
	TypeExpense = "Expense"
)

type (
	// Date is a calendar date with no time component.
	Date struct {
		time.Time
	}

	// Transaction is one income/expense entry recorded during a session.
	// ID is assigned once at creation and never changes afterwards; all
	// other fields are mutable through the ledger's update operation.
	Transaction struct {
		ID       string
		Date     Date
		Category string
		Type     string
		Amount   decimal.Decimal
		Mode     string
		Notes    string
	}
)

var (
	ErrZeroDate        = errors.New("date cannot be zero")
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownType     = errors.New("unknown transaction type")
	ErrUnknownMode     = errors.New("unknown payment mode")
)

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date string in YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// String formats the date as YYYY-MM-DD, the wire format of the sync payloads.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

// Compact formats the date as YYYYMMDD, the form used inside transaction ids.
func (d Date) Compact() string {
	return d.Format("20060102")
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrZeroDate
	}
	return nil
}

// Validate checks the transaction against the closed sets of the taxonomy.
// Category, type and mode must each be a member of their respective set; the
// same sets drive the selection inputs, so a valid form submission always
// passes. The amount must be non-negative.
func (t Transaction) Validate(tax Taxonomy) error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if !tax.HasCategory(t.Category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, t.Category)
	}
	if !tax.HasType(t.Type) {
		return fmt.Errorf("%w: %q", ErrUnknownType, t.Type)
	}
	if !tax.HasMode(t.Mode) {
		return fmt.Errorf("%w: %q", ErrUnknownMode, t.Mode)
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// Label is the display string used for interactive selection in the quick-fix
// view. Labels are not unique: two records with the same category, amount and
// notes produce the same label, and lookup by label picks the first match.
func (t Transaction) Label() string {
	return t.Category + " - " + t.Amount.String() + " (" + t.Notes + ")"
}
