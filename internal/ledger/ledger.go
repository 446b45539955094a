// Package ledger implements the in-memory transaction ledger for one
// interactive session. The ledger is intentionally volatile: it is created
// empty when the session starts and discarded with it.
package ledger

import (
	"errors"
	"fmt"
	"sync"

	"finmaster/internal/core"
)

var (
	// ErrNotFound is returned by Update when no record carries the given id.
	ErrNotFound = errors.New("transaction not found")

	// ErrDuplicateID is returned by Add when the id is already present.
	ErrDuplicateID = errors.New("duplicate transaction id")
)

// Ledger is an ordered collection of transaction records, newest first.
// It performs no I/O and knows nothing about remote state: callers must only
// Add or Update after the corresponding remote delivery has been confirmed.
type Ledger struct {
	mu    sync.Mutex
	tax   core.Taxonomy
	items []core.Transaction
}

// New creates an empty ledger validating edits against the given taxonomy.
func New(tax core.Taxonomy) *Ledger {
	return &Ledger{tax: tax}
}

// Add validates the record and inserts it at the front, keeping the list in
// most-recent-first order.
func (l *Ledger) Add(t core.Transaction) error {
	if err := t.Validate(l.tax); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range l.items {
		if it.ID == t.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
		}
	}
	l.items = append([]core.Transaction{t}, l.items...)
	return nil
}

// List returns a snapshot of the records in current order, newest first.
func (l *Ledger) List() []core.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.Transaction, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Find returns the record with the given id.
func (l *Ledger) Find(id string) (core.Transaction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range l.items {
		if it.ID == id {
			return it, true
		}
	}
	return core.Transaction{}, false
}

// FindByLabel returns the first record whose display label matches. Labels
// are a convenience for interactive selection and, unlike ids, are not
// unique: when two records share a label the first (most recent) one wins.
func (l *Ledger) FindByLabel(label string) (core.Transaction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range l.items {
		if it.Label() == label {
			return it, true
		}
	}
	return core.Transaction{}, false
}

// Update replaces every mutable field of the record matching id with the
// values from t, keeping the record's id and ordinal position. It returns
// ErrNotFound, leaving the ledger unchanged, when the id is unknown.
func (l *Ledger) Update(id string, t core.Transaction) error {
	t.ID = id
	if err := t.Validate(l.tax); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, it := range l.items {
		if it.ID == id {
			l.items[i] = t
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
