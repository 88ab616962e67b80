package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/candytrack/candyd/internal/auth"
	"github.com/candytrack/candyd/internal/domain"
	"github.com/candytrack/candyd/internal/infra/catalog"
	"github.com/candytrack/candyd/internal/infra/observability"
)

// ─── Catalog ────────────────────────────────────────────────────────────────

// GET /api/deeds
func (s *Server) handleListDeeds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Deeds)
}

// GET /api/rewards
func (s *Server) handleListRewards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Rewards)
}

// ─── Candy & Deeds ──────────────────────────────────────────────────────────

// GET /api/users/{userID}/candy
func (s *Server) handleCandy(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"today":        s.ledger.TodayCandies(userID),
		"total":        s.ledger.TotalCandies(userID),
		"can_do_deeds": s.ledger.CanDoDeeds(userID),
	})
}

// GET /api/users/{userID}/deeds
func (s *Server) handleDeedsForToday(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	deeds := s.ledger.DeedsForToday(userID)
	if deeds == nil {
		deeds = []domain.DeedEvent{}
	}
	writeJSON(w, http.StatusOK, deeds)
}

// POST /api/users/{userID}/deeds {"deed_id": "table"}
func (s *Server) handleLogDeed(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	var req struct {
		DeedID string `json:"deed_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DeedID == "" {
		writeError(w, http.StatusBadRequest, "deed_id is required")
		return
	}

	res := s.ledger.LogDeed(userID, req.DeedID)
	if res.OK {
		observability.DeedsLogged.WithLabelValues(req.DeedID).Inc()
		observability.CandiesEarned.Add(float64(res.CandiesAdded))
	} else {
		observability.RuleViolations.WithLabelValues(string(res.Reason)).Inc()
	}
	writeJSON(w, http.StatusOK, res)
}

// ─── Submissions ────────────────────────────────────────────────────────────

// GET /api/users/{userID}/submissions
func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	subs := s.submissions.Submissions(userID)
	if subs == nil {
		subs = []domain.Submission{}
	}
	writeJSON(w, http.StatusOK, subs)
}

// POST /api/users/{userID}/submissions {"description": "washed car"}
func (s *Server) handleSubmitCustomDeed(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	var req struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}

	sub := s.submissions.SubmitCustomDeed(userID, strings.TrimSpace(req.Description))
	writeJSON(w, http.StatusCreated, sub)
}

// GET /api/admin/submissions
func (s *Server) handleAllSubmissions(w http.ResponseWriter, r *http.Request) {
	subs := s.submissions.AllSubmissions()
	if subs == nil {
		subs = []domain.Submission{}
	}
	writeJSON(w, http.StatusOK, subs)
}

// POST /api/admin/submissions/{submissionID}/approve
// {"user_id": "musa", "candy_amount": 2, "bonus": true}
func (s *Server) handleApproveSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID := chi.URLParam(r, "submissionID")
	var req struct {
		UserID      string `json:"user_id"`
		CandyAmount int    `json:"candy_amount"`
		Bonus       bool   `json:"bonus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.CandyAmount < 1 {
		writeError(w, http.StatusBadRequest, "candy_amount must be at least 1")
		return
	}

	// Unknown ids are a silent no-op by contract; still a 200.
	s.submissions.ApproveSubmission(req.UserID, submissionID, req.CandyAmount, req.Bonus)
	observability.SubmissionsResolved.WithLabelValues(string(domain.SubmissionApproved)).Inc()
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// POST /api/admin/submissions/{submissionID}/reject {"user_id": "musa", "note": "..."}
func (s *Server) handleRejectSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID := chi.URLParam(r, "submissionID")
	var req struct {
		UserID string `json:"user_id"`
		Note   string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	s.submissions.RejectSubmission(req.UserID, submissionID, req.Note)
	observability.SubmissionsResolved.WithLabelValues(string(domain.SubmissionRejected)).Inc()
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ─── Trades ─────────────────────────────────────────────────────────────────

// GET /api/users/{userID}/trades
func (s *Server) handleTradeHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	trades := s.trades.TradeHistory(userID)
	if trades == nil {
		trades = []domain.Trade{}
	}
	writeJSON(w, http.StatusOK, trades)
}

// POST /api/users/{userID}/trades {"reward_id": "icecream"}
func (s *Server) handleTradeReward(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	var req struct {
		RewardID string `json:"reward_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RewardID == "" {
		writeError(w, http.StatusBadRequest, "reward_id is required")
		return
	}

	res := s.trades.TradeReward(userID, req.RewardID)
	if res.OK {
		observability.Trades.WithLabelValues(req.RewardID).Inc()
	} else {
		observability.RuleViolations.WithLabelValues(string(res.Reason)).Inc()
	}
	writeJSON(w, http.StatusOK, res)
}

// ─── Admin Day Controls ─────────────────────────────────────────────────────

// POST /api/admin/users/{userID}/lock
func (s *Server) handleLockDay(w http.ResponseWriter, r *http.Request) {
	s.ledger.LockDay(chi.URLParam(r, "userID"))
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// POST /api/admin/users/{userID}/reset
func (s *Server) handleResetDay(w http.ResponseWriter, r *http.Request) {
	s.ledger.ResetDay(chi.URLParam(r, "userID"))
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// POST /api/admin/users/{userID}/penalty
func (s *Server) handlePenalty(w http.ResponseWriter, r *http.Request) {
	s.ledger.PenaltyArgue(chi.URLParam(r, "userID"))
	observability.CandiesDeducted.Inc()
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// POST /api/admin/users/{userID}/grant {"amount": 3}
func (s *Server) handleGrant(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}
	s.ledger.AddCandiesAdmin(userID, amount)
	observability.CandiesEarned.Add(float64(amount))
	writeJSON(w, http.StatusOK, map[string]int{"total": s.ledger.TotalCandies(userID)})
}

// POST /api/admin/users/{userID}/deduct {"amount": 2}
func (s *Server) handleDeduct(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}
	s.ledger.DeductCandies(userID, amount)
	observability.CandiesDeducted.Add(float64(amount))
	writeJSON(w, http.StatusOK, map[string]int{"total": s.ledger.TotalCandies(userID)})
}

// POST /api/admin/users/{userID}/approval {"approved": true}
func (s *Server) handleParentApproval(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	var req struct {
		Approved bool `json:"approved"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	s.ledger.SetParentApproval(userID, req.Approved)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeAmount(w http.ResponseWriter, r *http.Request) (int, bool) {
	var req struct {
		Amount int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount < 1 {
		writeError(w, http.StatusBadRequest, "amount must be a positive integer")
		return 0, false
	}
	return req.Amount, true
}

// ─── PIN ────────────────────────────────────────────────────────────────────

// POST /api/pin/verify {"pin": "1234"}
func (s *Server) handleVerifyPin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pin string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{
		"valid":   s.pin.Verify(req.Pin),
		"pin_set": s.pin.HasPIN(),
	})
}

// POST /api/pin {"pin": "1234", "current_pin": "0000"}
// Setting the first PIN needs no credential; changing one requires the
// current PIN.
func (s *Server) handleSetPin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pin        string `json:"pin"`
		CurrentPin string `json:"current_pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if !auth.ValidFormat(req.Pin) {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidPIN.Error())
		return
	}
	if s.pin.HasPIN() && !s.pin.Verify(req.CurrentPin) {
		writeError(w, http.StatusForbidden, "current PIN required to change PIN")
		return
	}

	s.pin.SetPIN(req.Pin)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
