package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/candytrack/candyd/internal/domain"
)

// ─── Admin Commands ─────────────────────────────────────────────────────────
// Every admin subcommand verifies the shared PIN (via --pin) before acting,
// mirroring the PIN gate the UI presents.

var adminPin string

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.PersistentFlags().StringVar(&adminPin, "pin", "", "Admin PIN (required)")
	adminCmd.AddCommand(adminSubmissionsCmd)
	adminCmd.AddCommand(adminApproveCmd)
	adminCmd.AddCommand(adminRejectCmd)
	adminCmd.AddCommand(adminLockCmd)
	adminCmd.AddCommand(adminResetCmd)
	adminCmd.AddCommand(adminPenaltyCmd)
	adminCmd.AddCommand(adminGrantCmd)
	adminCmd.AddCommand(adminDeductCmd)

	adminApproveCmd.Flags().Int("amount", 1, "Candy to award")
	adminApproveCmd.Flags().Bool("bonus", false, "Mark as a bonus award")
	adminRejectCmd.Flags().String("note", "", "Optional note shown to the child")
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Parent-only ledger controls",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.pin.HasPIN() {
			return domain.ErrPINNotSet
		}
		if !a.pin.Verify(adminPin) {
			return domain.ErrPINMismatch
		}
		return nil
	},
}

var adminSubmissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "List all children's submissions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		subs := a.submissions.AllSubmissions()
		if len(subs) == 0 {
			fmt.Println("no submissions")
			return nil
		}
		for _, s := range subs {
			fmt.Printf("%s  %-8s %-10s %q\n",
				s.SubmittedAt.Format("2006-01-02 15:04"), s.UserID, s.Status, s.Description)
			if s.Status != domain.SubmissionPending {
				continue
			}
			fmt.Printf("         id: %s\n", s.ID)
		}
		return nil
	},
}

var adminApproveCmd = &cobra.Command{
	Use:   "approve USER SUBMISSION_ID",
	Short: "Approve a submission and award candy",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, _ := cmd.Flags().GetInt("amount")
		bonus, _ := cmd.Flags().GetBool("bonus")
		if amount < 1 {
			return fmt.Errorf("amount must be at least 1")
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.submissions.ApproveSubmission(args[0], args[1], amount, bonus)
		fmt.Printf("approved; %s total is now %d\n", args[0], a.ledger.TotalCandies(args[0]))
		return nil
	},
}

var adminRejectCmd = &cobra.Command{
	Use:   "reject USER SUBMISSION_ID",
	Short: "Reject a submission",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, _ := cmd.Flags().GetString("note")

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.submissions.RejectSubmission(args[0], args[1], note)
		fmt.Println("rejected")
		return nil
	},
}

var adminLockCmd = &cobra.Command{
	Use:   "lock USER",
	Short: "Lock today for a user (blocks deed logging, not trades)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.ledger.LockDay(args[0])
		fmt.Printf("locked today for %s\n", args[0])
		return nil
	},
}

var adminResetCmd = &cobra.Command{
	Use:   "reset USER",
	Short: "Reset today for a user (today's candy and deed log are lost)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.ledger.ResetDay(args[0])
		fmt.Printf("reset today for %s; total is now %d\n", args[0], a.ledger.TotalCandies(args[0]))
		return nil
	},
}

var adminPenaltyCmd = &cobra.Command{
	Use:   "penalty USER",
	Short: "Apply the arguing penalty (-1 candy)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.ledger.PenaltyArgue(args[0])
		fmt.Printf("%s total is now %d\n", args[0], a.ledger.TotalCandies(args[0]))
		return nil
	},
}

var adminGrantCmd = &cobra.Command{
	Use:   "grant USER AMOUNT",
	Short: "Grant candy directly (full amount counts toward the total)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.ledger.AddCandiesAdmin(args[0], amount)
		fmt.Printf("%s total is now %d\n", args[0], a.ledger.TotalCandies(args[0]))
		return nil
	},
}

var adminDeductCmd = &cobra.Command{
	Use:   "deduct USER AMOUNT",
	Short: "Deduct candy (full amount leaves the total, floored at 0)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.ledger.DeductCandies(args[0], amount)
		fmt.Printf("%s total is now %d\n", args[0], a.ledger.TotalCandies(args[0]))
		return nil
	},
}

func parseAmount(s string) (int, error) {
	amount, err := strconv.Atoi(s)
	if err != nil || amount < 1 {
		return 0, fmt.Errorf("amount must be a positive integer")
	}
	return amount, nil
}
