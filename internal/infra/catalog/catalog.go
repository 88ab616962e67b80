// Package catalog holds the static deed and reward definitions.
// Entries are fixed configuration data; nothing here is user-editable at
// runtime, so the lookup tables are built once at package init.
package catalog

import "github.com/candytrack/candyd/internal/domain"

// SiblingDeedID is the one deed with a cooldown window between logs.
const SiblingDeedID = "sibling"

// Deeds is the full list of predefined good deeds.
var Deeds = []domain.Deed{
	{ID: "table", Label: "Help set the table", Candy: 1, Category: "home"},
	{ID: "toys", Label: "Clean up toys", Candy: 1, Category: "home"},
	{ID: "quran", Label: "Read Qur'an (per page)", Candy: 1, Category: "ibadah", AllowMultiple: true},
	{ID: "kitchen", Label: "Help in kitchen", Candy: 1, Category: "home"},
	{ID: "salah", Label: "Pray salah on time", Candy: 1, Category: "ibadah"},
	{ID: SiblingDeedID, Label: "Help sibling", Candy: 1, Category: "kindness", CooldownDays: 2},
	{ID: "unasked", Label: "Do something without being asked", Candy: 3, Category: "kindness"},
	{ID: "bighelp", Label: "Big help (clean room, etc.)", Candy: 3, Category: "home"},
}

// Rewards is the full list of redeemable rewards.
var Rewards = []domain.Reward{
	{ID: "icecream", Label: "Ice Cream Scoop", Candy: 15, Category: "small", Emoji: "🍦"},
	{ID: "waffle", Label: "Waffle", Candy: 15, Category: "small", Emoji: "🧇"},
	{ID: "cookie", Label: "Cookie", Candy: 15, Category: "small", Emoji: "🍪"},
	{ID: "popcorn", Label: "Popcorn Bowl", Candy: 20, Category: "small", Emoji: "🍿"},
	{ID: "smoothie", Label: "Drink or Smoothie", Candy: 20, Category: "small", Emoji: "🥤"},
	{ID: "fries", Label: "Fries", Candy: 20, Category: "medium", Emoji: "🍟"},
	{ID: "dinner", Label: "Pick dinner one day after Ramadan", Candy: 30, Category: "big", Emoji: "🍽️"},
	{ID: "eiddessert", Label: "Choose Eid dessert", Candy: 40, Category: "big", Emoji: "🎂"},
	{ID: "eidactivity", Label: "Pick family activity on Eid weekend", Candy: 50, Category: "big", Emoji: "🎉"},
}

var (
	deedsByID   = make(map[string]*domain.Deed, len(Deeds))
	rewardsByID = make(map[string]*domain.Reward, len(Rewards))
)

func init() {
	for i := range Deeds {
		deedsByID[Deeds[i].ID] = &Deeds[i]
	}
	for i := range Rewards {
		rewardsByID[Rewards[i].ID] = &Rewards[i]
	}
}

// LookupDeed returns the deed with the given id, or nil if unknown.
func LookupDeed(id string) *domain.Deed {
	return deedsByID[id]
}

// LookupReward returns the reward with the given id, or nil if unknown.
func LookupReward(id string) *domain.Reward {
	return rewardsByID[id]
}
