package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/candytrack/candyd/internal/infra/catalog"
)

func init() {
	rootCmd.AddCommand(rewardCmd)
	rewardCmd.AddCommand(rewardListCmd)
	rewardCmd.AddCommand(rewardTradeCmd)
	rewardCmd.AddCommand(rewardHistoryCmd)
}

var rewardCmd = &cobra.Command{
	Use:   "reward",
	Short: "List, trade, and review rewards",
}

var rewardListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the reward catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range catalog.Rewards {
			fmt.Printf("%s %-12s %-40s %d 🍬  [%s]\n", r.Emoji, r.ID, r.Label, r.Candy, r.Category)
		}
	},
}

var rewardTradeCmd = &cobra.Command{
	Use:   "trade USER REWARD",
	Short: "Trade lifetime candy for a reward (one trade per day)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.trades.TradeReward(args[0], args[1])
		fmt.Println(res.Message)
		if !res.OK {
			return fmt.Errorf("trade refused")
		}
		fmt.Printf("remaining total: %d\n", a.ledger.TotalCandies(args[0]))
		return nil
	},
}

var rewardHistoryCmd = &cobra.Command{
	Use:   "history USER",
	Short: "Show a user's trade history, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		trades := a.trades.TradeHistory(args[0])
		if len(trades) == 0 {
			fmt.Println("no trades yet")
			return nil
		}
		for _, tr := range trades {
			fmt.Printf("%s  %s %s (-%d)\n", tr.Date.Format("2006-01-02"), tr.Emoji, tr.RewardLabel, tr.Candy)
		}
		return nil
	},
}
