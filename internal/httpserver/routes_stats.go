// internal/httpserver/routes_stats.go
//
// HTTP routes for the results ledger, mounted under /stats:
//   - GET /stats        → totals and current win streak
//   - GET /stats/recent → newest finished games (?limit=N, default 20)
//
// Without a configured ledger every route answers 404 stats_disabled.

package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func (s *Server) mountStats(r chi.Router) {
	r.Route("/stats", func(r chi.Router) {
		r.Use(s.requireLedger)
		r.Get("/", s.handleSummary)
		r.Get("/recent", s.handleRecent)
	})
}

func (s *Server) requireLedger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.opts.Ledger == nil {
			writeError(w, http.StatusNotFound, "stats_disabled")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.opts.Ledger.Summary(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("ledger summary")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rows, err := s.opts.Ledger.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("ledger recent")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
