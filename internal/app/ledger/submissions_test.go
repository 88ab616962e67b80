package ledger

import (
	"testing"
	"time"

	"github.com/candytrack/candyd/internal/domain"
)

var testChildren = []string{"musa", "rufa"}

func newSubmissionFixture() (*Service, *SubmissionService) {
	s := newTestService()
	return s, NewSubmissionService(s, testChildren)
}

func TestSubmitCustomDeed(t *testing.T) {
	_, subs := newSubmissionFixture()

	sub := subs.SubmitCustomDeed("musa", "washed car")
	if sub.Status != domain.SubmissionPending {
		t.Errorf("Status = %s, want pending", sub.Status)
	}
	if sub.UserID != "musa" || sub.Description != "washed car" {
		t.Errorf("submission = %+v", sub)
	}
	if sub.ID == "" {
		t.Error("submission id is empty")
	}
	if !sub.SubmittedAt.Equal(testDay) {
		t.Errorf("SubmittedAt = %v, want %v", sub.SubmittedAt, testDay)
	}
	if sub.CandyAmount != nil || sub.AdminNote != nil || sub.ResolvedAt != nil {
		t.Errorf("unresolved fields set on new submission: %+v", sub)
	}

	got := subs.Submissions("musa")
	if len(got) != 1 || got[0].ID != sub.ID {
		t.Errorf("Submissions = %v, want the new submission", got)
	}
}

func TestSubmissionIDsAreUnique(t *testing.T) {
	_, subs := newSubmissionFixture()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		sub := subs.SubmitCustomDeed("musa", "deed")
		if seen[sub.ID] {
			t.Fatalf("duplicate submission id %q", sub.ID)
		}
		seen[sub.ID] = true
	}
}

func TestApproveSubmissionCreditsFullAmount(t *testing.T) {
	s, subs := newSubmissionFixture()
	s.AddCandies("musa", 5) // already at the daily cap

	sub := subs.SubmitCustomDeed("musa", "washed car")
	subs.ApproveSubmission("musa", sub.ID, 2, true)

	got := subs.Submissions("musa")[0]
	if got.Status != domain.SubmissionApproved {
		t.Errorf("Status = %s, want approved", got.Status)
	}
	if got.CandyAmount == nil || *got.CandyAmount != 2 {
		t.Errorf("CandyAmount = %v, want 2", got.CandyAmount)
	}
	if !got.Bonus {
		t.Error("Bonus = false, want true")
	}
	if got.ResolvedAt == nil {
		t.Error("ResolvedAt not set")
	}

	// Admin-grant path: full amount lands in the total despite the cap.
	if total := s.TotalCandies("musa"); total != 7 {
		t.Errorf("TotalCandies = %d, want 7", total)
	}
	if daily := s.TodayCandies("musa"); daily != 5 {
		t.Errorf("TodayCandies = %d, want 5 (still clamped)", daily)
	}
}

func TestRejectSubmission(t *testing.T) {
	s, subs := newSubmissionFixture()

	sub := subs.SubmitCustomDeed("musa", "cleaned garage")
	subs.RejectSubmission("musa", sub.ID, "that was Tuesday")

	got := subs.Submissions("musa")[0]
	if got.Status != domain.SubmissionRejected {
		t.Errorf("Status = %s, want rejected", got.Status)
	}
	if got.AdminNote == nil || *got.AdminNote != "that was Tuesday" {
		t.Errorf("AdminNote = %v, want note", got.AdminNote)
	}
	if got.ResolvedAt == nil {
		t.Error("ResolvedAt not set")
	}
	if total := s.TotalCandies("musa"); total != 0 {
		t.Errorf("TotalCandies = %d, want 0 (reject has no candy effect)", total)
	}
}

func TestResolveUnknownSubmissionIsNoOp(t *testing.T) {
	s, subs := newSubmissionFixture()
	sub := subs.SubmitCustomDeed("musa", "helped grandma")

	subs.ApproveSubmission("musa", "no-such-id", 5, false)
	subs.RejectSubmission("musa", "no-such-id", "nope")

	got := subs.Submissions("musa")[0]
	if got.Status != domain.SubmissionPending {
		t.Errorf("Status = %s, want pending (unknown id must be ignored)", got.Status)
	}
	if got.ID != sub.ID {
		t.Errorf("submission list changed: %+v", got)
	}
	if total := s.TotalCandies("musa"); total != 0 {
		t.Errorf("TotalCandies = %d, want 0", total)
	}
}

func TestSubmissionsSortedNewestFirst(t *testing.T) {
	s, subs := newSubmissionFixture()

	s.now = func() time.Time { return testDay }
	first := subs.SubmitCustomDeed("musa", "first")
	s.now = func() time.Time { return testDay.Add(time.Hour) }
	second := subs.SubmitCustomDeed("musa", "second")

	got := subs.Submissions("musa")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != second.ID || got[1].ID != first.ID {
		t.Errorf("order = [%s, %s], want newest first", got[0].Description, got[1].Description)
	}
}

func TestAllSubmissionsAggregatesChildren(t *testing.T) {
	s, subs := newSubmissionFixture()

	s.now = func() time.Time { return testDay }
	subs.SubmitCustomDeed("musa", "musa deed")
	s.now = func() time.Time { return testDay.Add(time.Minute) }
	subs.SubmitCustomDeed("rufa", "rufa deed")

	all := subs.AllSubmissions()
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].UserID != "rufa" || all[1].UserID != "musa" {
		t.Errorf("owners = [%s, %s], want [rufa, musa]", all[0].UserID, all[1].UserID)
	}
}
