package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/candytrack/candyd/internal/domain"
	"github.com/candytrack/candyd/internal/infra/catalog"
)

func init() {
	rootCmd.AddCommand(deedCmd)
	deedCmd.AddCommand(deedListCmd)
	deedCmd.AddCommand(deedLogCmd)
	rootCmd.AddCommand(candyCmd)
	rootCmd.AddCommand(submitCmd)
}

var deedCmd = &cobra.Command{
	Use:   "deed",
	Short: "List and log good deeds",
}

var deedListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the deed catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, d := range catalog.Deeds {
			extra := ""
			if d.AllowMultiple {
				extra = " (repeatable)"
			}
			if d.CooldownDays > 0 {
				extra = fmt.Sprintf(" (every %d days)", d.CooldownDays)
			}
			fmt.Printf("%-10s %-38s +%d  [%s]%s\n", d.ID, d.Label, d.Candy, d.Category, extra)
		}
	},
}

var deedLogCmd = &cobra.Command{
	Use:   "log USER DEED",
	Short: "Log a deed for a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.ledger.LogDeed(args[0], args[1])
		fmt.Println(res.Message)
		if !res.OK {
			return fmt.Errorf("deed not logged")
		}
		fmt.Printf("today: %d/%d  total: %d\n",
			a.ledger.TodayCandies(args[0]), domain.MaxDailyCandy, a.ledger.TotalCandies(args[0]))
		return nil
	},
}

var candyCmd = &cobra.Command{
	Use:   "candy USER",
	Short: "Show a user's candy balances",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		userID := args[0]
		fmt.Printf("today: %d  total: %d\n",
			a.ledger.TodayCandies(userID), a.ledger.TotalCandies(userID))
		for _, ev := range a.ledger.DeedsForToday(userID) {
			d := catalog.LookupDeed(ev.DeedID)
			label := ev.DeedID
			if d != nil {
				label = d.Label
			}
			fmt.Printf("  %s  %s\n", ev.Time.Format("15:04"), label)
		}
		return nil
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit USER DESCRIPTION",
	Short: "Submit a custom deed for parent approval",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		sub := a.submissions.SubmitCustomDeed(args[0], args[1])
		fmt.Printf("submitted %s (pending review)\n", sub.ID)
		return nil
	},
}
