// Package domain contains pure business types with ZERO infrastructure imports.
// This is the innermost ring of the application — it depends on nothing.
package domain

import "time"

// MaxDailyCandy is the hard cap on candy a child can earn in one calendar day.
// Anything above the cap is dropped for the day, never banked.
const MaxDailyCandy = 5

// DayKey formats a time as the calendar-date key used throughout the ledger.
func DayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// ─── User Record ────────────────────────────────────────────────────────────

// UserRecord is the full persisted state for one user. It is read, mutated,
// and written back as a unit by every ledger operation.
type UserRecord struct {
	TotalCandies int                  `json:"total_candies"`
	DailyData    map[string]*DayEntry `json:"daily_data"`
	Submissions  []Submission         `json:"submissions"`
	TradeHistory []Trade              `json:"trade_history"`
}

// NewUserRecord returns a zero-valued record for a user seen for the first time.
func NewUserRecord() *UserRecord {
	return &UserRecord{DailyData: map[string]*DayEntry{}}
}

// Normalize fills in nil collections on a record loaded from storage.
// Older records may predate a field; defaults are merged in at read time.
func (u *UserRecord) Normalize() {
	if u.DailyData == nil {
		u.DailyData = map[string]*DayEntry{}
	}
}

// Day returns the entry for the given day key, or a fresh zero entry if the
// day has not been touched yet. The entry is NOT inserted into DailyData;
// callers that mutate it must put it back before saving.
func (u *UserRecord) Day(key string) *DayEntry {
	if d, ok := u.DailyData[key]; ok && d != nil {
		return d
	}
	return &DayEntry{}
}

// ─── Day Entry ──────────────────────────────────────────────────────────────

// DayEntry tracks one user's candy and deed log for a single calendar day.
type DayEntry struct {
	Candies        int         `json:"candies"`
	Deeds          []DeedEvent `json:"deeds"`
	Locked         bool        `json:"locked"`
	ParentApproved bool        `json:"parent_approved"`
}

// DeedEvent is one append-only entry in a day's deed log.
type DeedEvent struct {
	DeedID string    `json:"deed_id"`
	Time   time.Time `json:"time"`
}

// HasDeed reports whether the day's log contains the given deed.
func (d *DayEntry) HasDeed(deedID string) bool {
	for _, ev := range d.Deeds {
		if ev.DeedID == deedID {
			return true
		}
	}
	return false
}

// ─── Catalog Types ──────────────────────────────────────────────────────────

// Deed is a static catalog entry describing a predefined good deed.
// Immutable configuration data, not user state.
type Deed struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Candy         int    `json:"candy"`
	Category      string `json:"category"`
	AllowMultiple bool   `json:"allow_multiple,omitempty"`
	CooldownDays  int    `json:"cooldown_days,omitempty"`
}

// Reward is a static catalog entry describing something candy can buy.
type Reward struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Candy    int    `json:"candy"`
	Category string `json:"category"`
	Emoji    string `json:"emoji"`
}

// ─── Submissions ────────────────────────────────────────────────────────────

// SubmissionStatus is the lifecycle state of a custom-deed submission.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Submission is a free-text deed proposal awaiting admin review.
// It transitions out of pending exactly once and is never deleted.
type Submission struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Description string           `json:"description"`
	Status      SubmissionStatus `json:"status"`
	SubmittedAt time.Time        `json:"submitted_at"`
	CandyAmount *int             `json:"candy_amount"`
	Bonus       bool             `json:"bonus"`
	AdminNote   *string          `json:"admin_note"`
	ResolvedAt  *time.Time       `json:"resolved_at"`
}

// ─── Trades ─────────────────────────────────────────────────────────────────

// Trade records a reward redemption. Created atomically with the balance
// deduction and immutable thereafter.
type Trade struct {
	RewardID    string    `json:"reward_id"`
	RewardLabel string    `json:"reward_label"`
	Emoji       string    `json:"emoji"`
	Candy       int       `json:"candy"`
	Date        time.Time `json:"date"`
}
