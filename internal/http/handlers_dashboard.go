package http

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"finmaster/internal/dashboard"
)

// maxUploadBytes caps dataset uploads; personal spreadsheets are small.
const maxUploadBytes = 8 << 20

// handleDashboardUpload parses an uploaded dataset, aggregates it and stores
// the summary in the session, replacing any previous upload. A malformed file
// renders the cause and no charts at all.
func (s *Server) handleDashboardUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess := s.resolveSession(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		slog.ErrorContext(r.Context(), "Dashboard upload parse error", "error", err)
		writeHTML(w, http.StatusBadRequest, `<div class="error">Could not read the uploaded file</div>`)
		return
	}
	defer file.Close()

	ds, err := dashboard.ReadCSV(file)
	if err != nil {
		var dfe *dashboard.DataFormatError
		if errors.As(err, &dfe) {
			slog.WarnContext(r.Context(), "Dashboard dataset rejected", "file", header.Filename, "error", err)
			writeHTML(w, http.StatusUnprocessableEntity, `<div class="error">Error reading file: `+template.HTMLEscapeString(dfe.Cause.Error())+`</div>`)
			return
		}
		slog.ErrorContext(r.Context(), "Dashboard dataset read error", "file", header.Filename, "error", err)
		writeHTML(w, http.StatusInternalServerError, `<div class="error">Error reading file</div>`)
		return
	}

	sum := dashboard.Aggregate(ds)
	sess.SetDashboard(header.Filename, &sum)

	slog.InfoContext(r.Context(), "Dashboard dataset loaded",
		"file", header.Filename, "rows", len(ds.Rows))
	w.Header().Set("HX-Trigger", `{"dashboard:updated": {}}`)
	s.renderDashboard(w, r)
}

// handleDashboardPartial renders the metrics and chart inputs for the
// session's current dataset.
func (s *Server) handleDashboardPartial(w http.ResponseWriter, r *http.Request) {
	s.renderDashboard(w, r)
}

type dashboardView struct {
	File    string
	Income  string
	Expense string
	Balance string

	// Category rows with widths scaled for the proportional bars.
	Categories []categoryView
	Modes      []modeView
}

type categoryView struct {
	Name   string
	Amount string
	Width  int
}

type modeView struct {
	Mode     string
	Category string
	Amount   string
}

func (s *Server) renderDashboard(w http.ResponseWriter, r *http.Request) {
	sess := s.resolveSession(w, r)
	file, sum := sess.Dashboard()
	if sum == nil {
		writeHTML(w, http.StatusOK, `<div class="placeholder">Upload your spreadsheet to view analytics.</div>`)
		return
	}

	if s.templates == nil {
		writeHTML(w, http.StatusInternalServerError, `<div class="error">templates not loaded</div>`)
		return
	}

	data := dashboardView{
		File:    file,
		Income:  sum.Income.String(),
		Expense: sum.Expense.String(),
		Balance: sum.Balance.String(),
	}

	// Scale the category bars against the largest category.
	var max = sum.Expense
	if len(sum.ByCategory) > 0 {
		max = sum.ByCategory[0].Amount
	}
	for _, c := range sum.ByCategory {
		width := 0
		if max.IsPositive() && c.Amount.IsPositive() {
			width = int(c.Amount.Mul(hundred).Div(max).IntPart())
			if width < 2 { // ensure visibility for very small values
				width = 2
			}
			if width > 100 {
				width = 100
			}
		}
		data.Categories = append(data.Categories, categoryView{Name: c.Category, Amount: c.Amount.String(), Width: width})
	}
	for _, m := range sum.ByMode {
		data.Modes = append(data.Modes, modeView{Mode: m.Mode, Category: m.Category, Amount: m.Amount.String()})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err)
		writeHTML(w, http.StatusInternalServerError, `<div class="error">Error rendering dashboard</div>`)
	}
}
