package ledger

import (
	"sort"

	"github.com/google/uuid"

	"github.com/candytrack/candyd/internal/domain"
)

// ─── Submission Workflow ────────────────────────────────────────────────────
// Free-text deed proposals reviewed by a parent. A submission is appended as
// pending, resolved exactly once, and never deleted. Resolving an id that
// does not exist is a silent no-op — callers do not distinguish the case.

// SubmissionService handles custom-deed proposals on top of the ledger.
type SubmissionService struct {
	ledger   *Service
	children []string
}

// NewSubmissionService creates the workflow over the given ledger.
// children is the fixed roster aggregated by AllSubmissions.
func NewSubmissionService(ledger *Service, children []string) *SubmissionService {
	return &SubmissionService{ledger: ledger, children: children}
}

// SubmitCustomDeed records a pending proposal and returns it.
// Ids are UUIDv7: time-ordered and unique without coordination.
func (s *SubmissionService) SubmitCustomDeed(userID, description string) domain.Submission {
	sub := domain.Submission{
		ID:          uuid.Must(uuid.NewV7()).String(),
		UserID:      userID,
		Description: description,
		Status:      domain.SubmissionPending,
		SubmittedAt: s.ledger.now(),
	}

	u := s.ledger.user(userID)
	u.Submissions = append(u.Submissions, sub)
	s.ledger.save(userID, u)
	return sub
}

// ApproveSubmission resolves a pending submission and credits the user via
// the admin-grant path: the full amount counts toward the lifetime total
// even when the daily indicator is already at the cap.
func (s *SubmissionService) ApproveSubmission(userID, submissionID string, candyAmount int, bonus bool) {
	u := s.ledger.user(userID)
	sub := findSubmission(u.Submissions, submissionID)
	if sub == nil {
		return
	}
	now := s.ledger.now()
	sub.Status = domain.SubmissionApproved
	sub.CandyAmount = &candyAmount
	sub.Bonus = bonus
	sub.ResolvedAt = &now
	s.ledger.save(userID, u)

	s.ledger.AddCandiesAdmin(userID, candyAmount)
}

// RejectSubmission resolves a pending submission without any candy effect.
func (s *SubmissionService) RejectSubmission(userID, submissionID, note string) {
	u := s.ledger.user(userID)
	sub := findSubmission(u.Submissions, submissionID)
	if sub == nil {
		return
	}
	now := s.ledger.now()
	sub.Status = domain.SubmissionRejected
	sub.AdminNote = &note
	sub.ResolvedAt = &now
	s.ledger.save(userID, u)
}

// Submissions returns one user's submissions, newest first.
func (s *SubmissionService) Submissions(userID string) []domain.Submission {
	subs := append([]domain.Submission(nil), s.ledger.user(userID).Submissions...)
	sortSubmissions(subs)
	return subs
}

// AllSubmissions aggregates every child's submissions, newest first.
// Each entry carries its owning user id.
func (s *SubmissionService) AllSubmissions() []domain.Submission {
	var all []domain.Submission
	for _, userID := range s.children {
		for _, sub := range s.ledger.user(userID).Submissions {
			sub.UserID = userID
			all = append(all, sub)
		}
	}
	sortSubmissions(all)
	return all
}

func findSubmission(subs []domain.Submission, id string) *domain.Submission {
	for i := range subs {
		if subs[i].ID == id {
			return &subs[i]
		}
	}
	return nil
}

func sortSubmissions(subs []domain.Submission) {
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
	})
}
