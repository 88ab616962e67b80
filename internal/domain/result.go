package domain

// ─── Operation Results ──────────────────────────────────────────────────────
// Domain-rule violations are values, not faults. Every user-facing mutation
// returns a Result; callers branch on OK and show Message as-is.

// Reason identifies which domain rule blocked an operation.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonDeedNotFound       Reason = "deed_not_found"
	ReasonDayLocked          Reason = "day_locked"
	ReasonDailyCapReached    Reason = "daily_cap_reached"
	ReasonAlreadyDone        Reason = "already_done"
	ReasonCooldownActive     Reason = "cooldown_active"
	ReasonRewardNotFound     Reason = "reward_not_found"
	ReasonInsufficientCandy  Reason = "insufficient_candy"
	ReasonAlreadyTradedToday Reason = "already_traded_today"
)

// Result is the outcome of a ledger mutation.
type Result struct {
	OK           bool   `json:"success"`
	Reason       Reason `json:"reason,omitempty"`
	Message      string `json:"message"`
	CandiesAdded int    `json:"candies_added,omitempty"`
}

// Ok builds a successful result.
func Ok(message string) Result {
	return Result{OK: true, Message: message}
}

// Fail builds a failed result for the given rule.
func Fail(reason Reason, message string) Result {
	return Result{Reason: reason, Message: message}
}
