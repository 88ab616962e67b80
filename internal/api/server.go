// Package api provides the HTTP surface of candyd. It is the boundary the
// presentation layer talks to; nothing behind it touches raw storage keys.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/candytrack/candyd/internal/app/ledger"
	"github.com/candytrack/candyd/internal/auth"
)

// AdminPinHeader carries the PIN for requests into the admin subtree.
const AdminPinHeader = "X-Admin-Pin"

// Server is the candyd HTTP API server.
type Server struct {
	ledger         *ledger.Service
	submissions    *ledger.SubmissionService
	trades         *ledger.TradeService
	pin            *auth.PIN
	metricsEnabled bool
}

// NewServer creates a new API server over the ledger services.
func NewServer(l *ledger.Service, subs *ledger.SubmissionService, trades *ledger.TradeService, pin *auth.PIN) *Server {
	return &Server{ledger: l, submissions: subs, trades: trades, pin: pin}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		// Static catalogs
		r.Get("/deeds", s.handleListDeeds)
		r.Get("/rewards", s.handleListRewards)

		// Per-user ledger
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/candy", s.handleCandy)
			r.Get("/deeds", s.handleDeedsForToday)
			r.Post("/deeds", s.handleLogDeed)
			r.Get("/submissions", s.handleListSubmissions)
			r.Post("/submissions", s.handleSubmitCustomDeed)
			r.Get("/trades", s.handleTradeHistory)
			r.Post("/trades", s.handleTradeReward)
		})

		// PIN management — setting the first PIN is open, the rest is gated.
		r.Post("/pin/verify", s.handleVerifyPin)
		r.Post("/pin", s.handleSetPin)

		// Admin subtree: every route requires a valid PIN header.
		r.Route("/admin", func(r chi.Router) {
			r.Use(s.requirePin)
			r.Get("/submissions", s.handleAllSubmissions)
			r.Post("/submissions/{submissionID}/approve", s.handleApproveSubmission)
			r.Post("/submissions/{submissionID}/reject", s.handleRejectSubmission)
			r.Route("/users/{userID}", func(r chi.Router) {
				r.Post("/lock", s.handleLockDay)
				r.Post("/reset", s.handleResetDay)
				r.Post("/penalty", s.handlePenalty)
				r.Post("/grant", s.handleGrant)
				r.Post("/deduct", s.handleDeduct)
				r.Post("/approval", s.handleParentApproval)
			})
		})
	})

	return r
}

// requirePin rejects admin requests whose PIN header does not verify.
func (s *Server) requirePin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.pin.Verify(r.Header.Get(AdminPinHeader)) {
			writeError(w, http.StatusForbidden, "admin PIN required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+AdminPinHeader)
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
