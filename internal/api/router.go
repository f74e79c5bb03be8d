package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/p0sel0k/hw3/internal/audit"
	"github.com/p0sel0k/hw3/internal/report"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeNotFound(w, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllow, "method not allowed")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/report", s.handleReport)
		r.Get("/journal", s.handleListJournal)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}

// reportResponse is the body of GET /report.
type reportResponse struct {
	Home        string    `json:"home"`
	Report      string    `json:"report"`
	GeneratedAt time.Time `json:"generated_at"`
}

func (s *Server) handleReport(w http.ResponseWriter, _ *http.Request) {
	text, at, err := s.reports.Latest()
	if errors.Is(err, report.ErrNoReport) {
		writeNotFound(w, "no report has been generated yet")
		return
	}
	if err != nil {
		s.logger.Error("failed to read report snapshot", "error", err)
		writeInternalError(w, "failed to read report")
		return
	}

	writeJSON(w, http.StatusOK, reportResponse{
		Home:        s.reports.Home(),
		Report:      text,
		GeneratedAt: at,
	})
}

// handleListJournal returns journal entries.
//
// Query parameters: action, entity_type, entity_name, room, limit, offset.
func (s *Server) handleListJournal(w http.ResponseWriter, r *http.Request) {
	if s.journal == nil {
		writeError(w, http.StatusServiceUnavailable, ErrCodeUnavailable, "journal is disabled")
		return
	}

	q := r.URL.Query()
	filter := audit.Filter{
		Action:     q.Get("action"),
		EntityType: q.Get("entity_type"),
		EntityName: q.Get("entity_name"),
		Room:       q.Get("room"),
	}
	for key, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			writeBadRequest(w, key+" must be an integer")
			return
		}
		*dst = n
	}

	result, err := s.journal.List(r.Context(), filter)
	if err != nil {
		s.logger.Error("failed to list journal", "error", err)
		writeInternalError(w, "failed to list journal")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
