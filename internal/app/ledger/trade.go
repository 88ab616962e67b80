package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/candytrack/candyd/internal/domain"
	"github.com/candytrack/candyd/internal/infra/catalog"
)

// ─── Reward Trades ──────────────────────────────────────────────────────────
// Trades spend the lifetime total, never the daily count, and each user is
// limited to one trade per calendar day.

// TradeService handles reward redemptions on top of the ledger.
type TradeService struct {
	ledger *Service
}

// NewTradeService creates the trade workflow over the given ledger.
func NewTradeService(ledger *Service) *TradeService {
	return &TradeService{ledger: ledger}
}

// TradeReward exchanges lifetime candy for a catalog reward. On success the
// cost is deducted from the total and a Trade record is appended.
func (s *TradeService) TradeReward(userID, rewardID string) domain.Result {
	reward := catalog.LookupReward(rewardID)
	if reward == nil {
		return domain.Fail(domain.ReasonRewardNotFound, "Reward not found")
	}

	u := s.ledger.user(userID)
	if u.TotalCandies < reward.Candy {
		return domain.Fail(domain.ReasonInsufficientCandy, "Not enough candies!")
	}
	if hasTradeOn(u.TradeHistory, s.ledger.todayKey()) {
		return domain.Fail(domain.ReasonAlreadyTradedToday, "Only 1 trade per day!")
	}

	u.TotalCandies -= reward.Candy
	u.TradeHistory = append(u.TradeHistory, domain.Trade{
		RewardID:    reward.ID,
		RewardLabel: reward.Label,
		Emoji:       reward.Emoji,
		Candy:       reward.Candy,
		Date:        s.ledger.now(),
	})
	s.ledger.save(userID, u)

	return domain.Ok(fmt.Sprintf("Traded for %s!", reward.Label))
}

// TradeHistory returns the user's trades, newest first.
func (s *TradeService) TradeHistory(userID string) []domain.Trade {
	trades := append([]domain.Trade(nil), s.ledger.user(userID).TradeHistory...)
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].Date.After(trades[j].Date)
	})
	return trades
}

// HasTradeToday reports whether the user already traded today.
func (s *TradeService) HasTradeToday(userID string) bool {
	return hasTradeOn(s.ledger.user(userID).TradeHistory, s.ledger.todayKey())
}

// hasTradeOn matches trades by calendar-date prefix of their timestamp.
func hasTradeOn(trades []domain.Trade, dayKey string) bool {
	for _, t := range trades {
		if strings.HasPrefix(t.Date.Format(time.RFC3339), dayKey) {
			return true
		}
	}
	return false
}
