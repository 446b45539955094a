package http

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	s.resolveSession(w, r)

	data := struct {
		Today      string
		Categories []string
		Types      []string
		Modes      []string
		Wallet     template.JS
		Success    template.JS
	}{
		Today:      time.Now().Format("2006-01-02"),
		Categories: s.tax.Categories,
		Types:      s.tax.Types,
		Modes:      s.tax.Modes,
		Wallet:     s.animationJS("wallet"),
		Success:    s.animationJS("success"),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// animationJS inlines a loaded animation document for the page script.
// Absent animations render as null; the page branches on presence and the
// look simply degrades.
func (s *Server) animationJS(name string) template.JS {
	if anim := s.anims[name]; anim != nil {
		return template.JS(anim.Data)
	}
	return template.JS("null")
}
