// Package ledger implements the candy ledger: daily earnings, lifetime
// balance, deed logging, the submission approval pipeline, and reward trades.
// Every operation is a synchronous read-modify-write of one user's record
// against the key-value store; there is no cross-user state.
package ledger

import (
	"fmt"
	"time"

	"github.com/candytrack/candyd/internal/domain"
	"github.com/candytrack/candyd/internal/infra/catalog"
	"github.com/candytrack/candyd/internal/infra/store"
)

// Service exposes the candy and deed operations for all users.
type Service struct {
	kv  store.KV
	now func() time.Time
}

// NewService creates a ledger service over the given store.
func NewService(kv store.KV) *Service {
	return &Service{kv: kv, now: time.Now}
}

// user loads a user's record, merging zero defaults for anything missing.
func (s *Service) user(userID string) *domain.UserRecord {
	u := domain.NewUserRecord()
	s.kv.Get(store.UserKey(userID), u)
	u.Normalize()
	return u
}

func (s *Service) save(userID string, u *domain.UserRecord) {
	// Persistence faults are absorbed: the application keeps running on
	// whatever state the store can serve back.
	_ = s.kv.Set(store.UserKey(userID), u)
}

func (s *Service) todayKey() string {
	return domain.DayKey(s.now())
}

// ─── Reads ──────────────────────────────────────────────────────────────────

// TodayCandies returns the candy earned so far today, 0 for an untouched day.
func (s *Service) TodayCandies(userID string) int {
	return s.user(userID).Day(s.todayKey()).Candies
}

// TotalCandies returns the user's spendable lifetime balance.
func (s *Service) TotalCandies(userID string) int {
	return s.user(userID).TotalCandies
}

// DeedsForToday returns today's deed log in insertion order.
func (s *Service) DeedsForToday(userID string) []domain.DeedEvent {
	return s.user(userID).Day(s.todayKey()).Deeds
}

// CanDoDeeds reports whether the user may log any deed right now:
// today is not locked and the daily cap has not been reached.
func (s *Service) CanDoDeeds(userID string) bool {
	day := s.user(userID).Day(s.todayKey())
	return !day.Locked && day.Candies < domain.MaxDailyCandy
}

// IsDeedDoneToday reports whether a non-repeatable deed is already in
// today's log. Deeds marked AllowMultiple are never "done".
func (s *Service) IsDeedDoneToday(userID, deedID string) bool {
	if d := catalog.LookupDeed(deedID); d != nil && d.AllowMultiple {
		return false
	}
	return s.user(userID).Day(s.todayKey()).HasDeed(deedID)
}

// ─── Candy Mutations ────────────────────────────────────────────────────────

// AddCandies credits a self-earned amount. The day's candies are clamped at
// the daily cap, and only the delta actually applied to the day is added to
// the lifetime total. Returns that delta.
func (s *Service) AddCandies(userID string, amount int) int {
	u := s.user(userID)
	today := s.todayKey()
	day := u.Day(today)

	newDaily := min(day.Candies+amount, domain.MaxDailyCandy)
	actual := newDaily - day.Candies
	day.Candies = newDaily

	u.DailyData[today] = day
	u.TotalCandies += actual
	s.save(userID, u)
	return actual
}

// DeductCandies applies a penalty. The day entry is floored at 0, but the
// lifetime total is reduced by the FULL amount (floored at 0): penalties can
// draw down previously banked candy, not just today's. Asymmetric on purpose.
func (s *Service) DeductCandies(userID string, amount int) {
	u := s.user(userID)
	today := s.todayKey()
	day := u.Day(today)

	day.Candies = max(0, day.Candies-amount)
	u.DailyData[today] = day
	u.TotalCandies = max(0, u.TotalCandies-amount)
	s.save(userID, u)
}

// AddCandiesAdmin credits an admin-granted amount. The day's candies are
// clamped at the cap, but the FULL amount is added to the lifetime total
// even when part of it never shows on the day's indicator. This differs from
// AddCandies and both behaviors are load-bearing: self-earned candy is capped
// outright, parent-approved candy always counts in full.
func (s *Service) AddCandiesAdmin(userID string, amount int) {
	u := s.user(userID)
	today := s.todayKey()
	day := u.Day(today)

	day.Candies = min(domain.MaxDailyCandy, day.Candies+amount)
	u.DailyData[today] = day
	u.TotalCandies += amount
	s.save(userID, u)
}

// ─── Deed Logging ───────────────────────────────────────────────────────────

// LogDeed records a catalog deed for today and credits its candy value under
// the AddCandies clamp rules. Rule checks run in a fixed order and the first
// violation wins.
func (s *Service) LogDeed(userID, deedID string) domain.Result {
	deed := catalog.LookupDeed(deedID)
	if deed == nil {
		return domain.Fail(domain.ReasonDeedNotFound, "Deed not found")
	}

	u := s.user(userID)
	today := s.todayKey()
	day := u.Day(today)

	if day.Locked {
		return domain.Fail(domain.ReasonDayLocked, "Today is locked by admin")
	}
	if day.Candies >= domain.MaxDailyCandy {
		return domain.Fail(domain.ReasonDailyCapReached, "Max candies reached for today!")
	}
	if !deed.AllowMultiple && day.HasDeed(deedID) {
		return domain.Fail(domain.ReasonAlreadyDone, "Already done this deed today!")
	}
	if deedID == catalog.SiblingDeedID && s.siblingOnCooldown(u, today) {
		return domain.Fail(domain.ReasonCooldownActive,
			fmt.Sprintf("Help sibling can only be done once every %d days!", deed.CooldownDays))
	}

	newCandies := min(domain.MaxDailyCandy, day.Candies+deed.Candy)
	added := newCandies - day.Candies

	day.Deeds = append(day.Deeds, domain.DeedEvent{DeedID: deedID, Time: s.now()})
	day.Candies = newCandies

	u.DailyData[today] = day
	u.TotalCandies += added
	s.save(userID, u)

	res := domain.Ok(fmt.Sprintf("+%d 🍬", added))
	res.CandiesAdded = added
	return res
}

// siblingOnCooldown scans every tracked day other than today and reports
// whether the sibling deed was logged within the last two calendar days.
// Linear in the number of days tracked; fine at household scale.
func (s *Service) siblingOnCooldown(u *domain.UserRecord, todayKey string) bool {
	today, err := time.Parse(time.DateOnly, todayKey)
	if err != nil {
		return false
	}
	for dateKey, day := range u.DailyData {
		if dateKey == todayKey || day == nil {
			continue
		}
		date, err := time.Parse(time.DateOnly, dateKey)
		if err != nil {
			continue
		}
		diffDays := today.Sub(date).Hours() / 24
		if diffDays <= 2 && day.HasDeed(catalog.SiblingDeedID) {
			return true
		}
	}
	return false
}

// ─── Admin Day Controls ─────────────────────────────────────────────────────

// LockDay blocks further deed logging for today. Trades are unaffected.
func (s *Service) LockDay(userID string) {
	u := s.user(userID)
	today := s.todayKey()
	day := u.Day(today)
	day.Locked = true
	u.DailyData[today] = day
	s.save(userID, u)
}

// ResetDay wipes today's entry and removes today's candies from the lifetime
// total (floored at 0). Destructive: the day's deed log is lost.
func (s *Service) ResetDay(userID string) {
	u := s.user(userID)
	today := s.todayKey()
	day := u.Day(today)

	u.TotalCandies = max(0, u.TotalCandies-day.Candies)
	u.DailyData[today] = &domain.DayEntry{}
	s.save(userID, u)
}

// PenaltyArgue applies the standard arguing penalty of one candy.
func (s *Service) PenaltyArgue(userID string) {
	s.DeductCandies(userID, 1)
}

// SetParentApproval marks today's log as reviewed by a parent.
func (s *Service) SetParentApproval(userID string, approved bool) {
	u := s.user(userID)
	today := s.todayKey()
	day := u.Day(today)
	day.ParentApproved = approved
	u.DailyData[today] = day
	s.save(userID, u)
}
