package http

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"finmaster/internal/core"
	"finmaster/internal/ledger"
)

type ledgerRow struct {
	ID       string
	Date     string
	Category string
	Type     string
	Amount   string
	Mode     string
	Notes    string
	Label    string
}

func toLedgerRow(t core.Transaction) ledgerRow {
	return ledgerRow{
		ID:       t.ID,
		Date:     t.Date.String(),
		Category: t.Category,
		Type:     t.Type,
		Amount:   t.Amount.String(),
		Mode:     t.Mode,
		Notes:    t.Notes,
		Label:    t.Label(),
	}
}

// handleLedgerPartial renders the session history table and the quick-fix
// selector, newest entries first.
func (s *Server) handleLedgerPartial(w http.ResponseWriter, r *http.Request) {
	sess := s.resolveSession(w, r)
	items := sess.Ledger.List()

	if s.templates == nil {
		writeHTML(w, http.StatusInternalServerError, `<div class="error">templates not loaded</div>`)
		return
	}

	data := struct {
		Rows []ledgerRow
	}{}
	for _, t := range items {
		data.Rows = append(data.Rows, toLedgerRow(t))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "ledger.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Ledger template execution failed", "error", err)
		writeHTML(w, http.StatusInternalServerError, `<div class="error">Error rendering session history</div>`)
	}
}

// handleQuickFixPartial renders the edit form for the record selected by
// label. Labels are not unique; the most recent match wins, which mirrors
// how the selector is built.
func (s *Server) handleQuickFixPartial(w http.ResponseWriter, r *http.Request) {
	sess := s.resolveSession(w, r)
	label := strings.TrimSpace(r.URL.Query().Get("label"))
	if label == "" {
		writeHTML(w, http.StatusOK, `<div class="placeholder">Select a transaction to fix.</div>`)
		return
	}

	tx, ok := sess.Ledger.FindByLabel(label)
	if !ok {
		writeHTML(w, http.StatusOK, `<div class="warning">Transaction no longer in this session.</div>`)
		return
	}

	if s.templates == nil {
		writeHTML(w, http.StatusInternalServerError, `<div class="error">templates not loaded</div>`)
		return
	}

	data := struct {
		Record     ledgerRow
		Categories []string
		Types      []string
		Modes      []string
	}{
		Record:     toLedgerRow(tx),
		Categories: s.tax.Categories,
		Types:      s.tax.Types,
		Modes:      s.tax.Modes,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "quick_fix.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Quick fix template execution failed", "error", err)
		writeHTML(w, http.StatusInternalServerError, `<div class="error">Error rendering edit form</div>`)
	}
}

// handleUpdateTransaction sends a full replacement of an existing record to
// the update endpoint and, only once the remote confirms, mutates the ledger
// record in place. The id is never regenerated.
func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		writeHTML(w, http.StatusBadRequest, `<div class="error">Invalid request format</div>`)
		return
	}
	sess := s.resolveSession(w, r)

	id := strings.TrimSpace(r.Form.Get("id"))
	if id == "" {
		writeHTML(w, http.StatusUnprocessableEntity, `<div class="error">Missing transaction id</div>`)
		return
	}

	tx, err := transactionFromForm(r.Form)
	if err != nil {
		writeHTML(w, http.StatusUnprocessableEntity, `<div class="error">Invalid entry: `+template.HTMLEscapeString(err.Error())+`</div>`)
		return
	}
	tx.ID = id
	if err := tx.Validate(s.tax); err != nil {
		writeHTML(w, http.StatusUnprocessableEntity, `<div class="error">Invalid entry: `+template.HTMLEscapeString(err.Error())+`</div>`)
		return
	}

	out := s.syncer.Update(r.Context(), tx)
	if !out.Ok() {
		slog.WarnContext(r.Context(), "Update sync failed", "id", id, "outcome", out.String())
		writeHTML(w, http.StatusBadGateway, `<div class="error">Update failed.</div>`)
		return
	}

	if err := sess.Ledger.Update(id, tx); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			// Should not happen: ids only ever come from the ledger
			// itself. Surface a warning, never crash.
			slog.WarnContext(r.Context(), "Update for unknown id", "id", id)
			writeHTML(w, http.StatusOK, `<div class="warning">Correction sent, but the record is not in this session.</div>`)
			return
		}
		slog.ErrorContext(r.Context(), "Ledger update failed", "id", id, "error", err)
		writeHTML(w, http.StatusInternalServerError, `<div class="error">Error updating the session log</div>`)
		return
	}

	slog.InfoContext(r.Context(), "Transaction corrected", "id", id, "amount", tx.Amount.String())
	w.Header().Set("HX-Trigger", `{"ledger:changed": {}}`)
	writeHTML(w, http.StatusOK, `<div class="success">Correction sent!</div>`)
}
