package ledger

import (
	"testing"

	"github.com/candytrack/candyd/internal/domain"
)

func newTradeFixture() (*Service, *TradeService) {
	s := newTestService()
	return s, NewTradeService(s)
}

// bank credits the user across enough past days to reach the given total.
func bank(t *testing.T, s *Service, userID string, total int) {
	t.Helper()
	day := testDay
	for remaining := total; remaining > 0; remaining -= domain.MaxDailyCandy {
		day = day.AddDate(0, 0, -1)
		s.setDay(t, day)
		s.AddCandies(userID, min(remaining, domain.MaxDailyCandy))
	}
	s.setDay(t, testDay)
}

func TestTradeRewardSuccess(t *testing.T) {
	s, trades := newTradeFixture()
	bank(t, s, "musa", 20)

	res := trades.TradeReward("musa", "icecream")
	if !res.OK {
		t.Fatalf("TradeReward = %+v, want success", res)
	}
	if got := s.TotalCandies("musa"); got != 5 {
		t.Errorf("TotalCandies = %d, want 5", got)
	}

	history := trades.TradeHistory("musa")
	if len(history) != 1 {
		t.Fatalf("history len = %d, want 1", len(history))
	}
	tr := history[0]
	if tr.RewardID != "icecream" || tr.Candy != 15 {
		t.Errorf("trade = %+v, want icecream for 15", tr)
	}
	if tr.RewardLabel == "" || tr.Emoji == "" {
		t.Errorf("trade missing label/emoji: %+v", tr)
	}
	if !tr.Date.Equal(testDay) {
		t.Errorf("trade date = %v, want %v", tr.Date, testDay)
	}
}

func TestTradeRewardFailures(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		rewardID string
		want     domain.Reason
	}{
		{"unknown reward", 50, "pony", domain.ReasonRewardNotFound},
		{"cannot afford", 10, "icecream", domain.ReasonInsufficientCandy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, trades := newTradeFixture()
			bank(t, s, "musa", tt.total)

			res := trades.TradeReward("musa", tt.rewardID)
			if res.OK || res.Reason != tt.want {
				t.Errorf("TradeReward = %+v, want %s", res, tt.want)
			}
			if got := s.TotalCandies("musa"); got != tt.total {
				t.Errorf("TotalCandies = %d, want %d (unchanged)", got, tt.total)
			}
			if got := len(trades.TradeHistory("musa")); got != 0 {
				t.Errorf("history len = %d, want 0", got)
			}
		})
	}
}

func TestSecondTradeSameDayRejected(t *testing.T) {
	s, trades := newTradeFixture()
	bank(t, s, "musa", 50)

	if res := trades.TradeReward("musa", "icecream"); !res.OK {
		t.Fatalf("first trade failed: %+v", res)
	}

	// Regardless of which reward is chosen next.
	for _, rewardID := range []string{"icecream", "waffle", "popcorn"} {
		res := trades.TradeReward("musa", rewardID)
		if res.OK || res.Reason != domain.ReasonAlreadyTradedToday {
			t.Errorf("TradeReward(%s) = %+v, want already_traded_today", rewardID, res)
		}
	}
	if got := s.TotalCandies("musa"); got != 35 {
		t.Errorf("TotalCandies = %d, want 35", got)
	}
}

func TestTradeAllowedNextDay(t *testing.T) {
	s, trades := newTradeFixture()
	bank(t, s, "musa", 40)

	if res := trades.TradeReward("musa", "icecream"); !res.OK {
		t.Fatalf("first trade failed: %+v", res)
	}

	s.setDay(t, testDay.AddDate(0, 0, 1))
	if trades.HasTradeToday("musa") {
		t.Error("HasTradeToday = true on the next day")
	}
	if res := trades.TradeReward("musa", "waffle"); !res.OK {
		t.Errorf("next-day trade = %+v, want success", res)
	}
}

func TestTradeDoesNotTouchDailyCandies(t *testing.T) {
	s, trades := newTradeFixture()
	bank(t, s, "musa", 20)
	s.AddCandies("musa", 2)

	trades.TradeReward("musa", "icecream")
	if got := s.TodayCandies("musa"); got != 2 {
		t.Errorf("TodayCandies = %d, want 2 (trades spend the total only)", got)
	}
}

func TestTradeHistorySortedNewestFirst(t *testing.T) {
	s, trades := newTradeFixture()
	bank(t, s, "musa", 50)

	trades.TradeReward("musa", "icecream")
	s.setDay(t, testDay.AddDate(0, 0, 1))
	trades.TradeReward("musa", "waffle")

	history := trades.TradeHistory("musa")
	if len(history) != 2 {
		t.Fatalf("history len = %d, want 2", len(history))
	}
	if history[0].RewardID != "waffle" || history[1].RewardID != "icecream" {
		t.Errorf("order = [%s, %s], want newest first", history[0].RewardID, history[1].RewardID)
	}
}

func TestTradeAllowedOnLockedDay(t *testing.T) {
	s, trades := newTradeFixture()
	bank(t, s, "musa", 20)
	s.LockDay("musa")

	if res := trades.TradeReward("musa", "icecream"); !res.OK {
		t.Errorf("TradeReward on locked day = %+v, want success (lock blocks deeds only)", res)
	}
}
