package http

import (
	"html/template"
	"log/slog"
	"net/http"
)

// handleCreateTransaction logs a new entry: coerce the form, generate the id,
// deliver to the create endpoint, and only on confirmed delivery insert the
// record into the session ledger. A failed delivery leaves the ledger
// untouched so the user can simply resubmit.
func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
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

	tx, err := transactionFromForm(r.Form)
	if err != nil {
		writeHTML(w, http.StatusUnprocessableEntity, `<div class="error">Invalid entry: `+template.HTMLEscapeString(err.Error())+`</div>`)
		return
	}
	if err := tx.Validate(s.tax); err != nil {
		writeHTML(w, http.StatusUnprocessableEntity, `<div class="error">Invalid entry: `+template.HTMLEscapeString(err.Error())+`</div>`)
		return
	}

	tx.ID = s.idGen.NewID(tx.Category, tx.Date)

	out := s.syncer.Create(r.Context(), tx)
	if !out.Ok() {
		slog.WarnContext(r.Context(), "Create sync failed", "id", tx.ID, "outcome", out.String())
		writeHTML(w, http.StatusBadGateway, `<div class="error">Connection failed. Check your internet or the workflow URL.</div>`)
		return
	}

	if err := sess.Ledger.Add(tx); err != nil {
		// Delivery succeeded but the local insert did not; the remote
		// spreadsheet already has the row, so report it plainly.
		slog.ErrorContext(r.Context(), "Ledger add failed after delivery", "id", tx.ID, "error", err)
		writeHTML(w, http.StatusInternalServerError, `<div class="error">Synced, but the session log could not be updated</div>`)
		return
	}

	slog.InfoContext(r.Context(), "Transaction logged",
		"id", tx.ID, "category", tx.Category, "type", tx.Type, "amount", tx.Amount.String())
	w.Header().Set("HX-Trigger", `{"ledger:changed": {}}`)
	writeHTML(w, http.StatusOK, `<div class="success">Transaction logged (`+template.HTMLEscapeString(tx.ID)+`)</div>`)
}
