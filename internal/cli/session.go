package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/candytrack/candyd/internal/auth"
	"github.com/candytrack/candyd/internal/domain"
)

// ─── Session Commands ───────────────────────────────────────────────────────
// The login session is explicit state in the store, loaded and saved here at
// the process boundary. Child commands read it so USER arguments can be
// omitted interactively in the future; for now it mirrors the UI's login.

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().String("pin", "", "Admin PIN, required when logging in as the admin")
}

var loginCmd = &cobra.Command{
	Use:   "login USER",
	Short: "Sign in as a family member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := args[0]

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		sess := auth.LoadSession(a.kv)
		switch {
		case userID == a.cfg.Family.Admin:
			pin, _ := cmd.Flags().GetString("pin")
			if !a.pin.Verify(pin) {
				return domain.ErrPINMismatch
			}
			sess = sess.LoginAdmin(userID)
		case slices.Contains(a.cfg.Family.Children, userID):
			sess = sess.Login(userID)
		default:
			return fmt.Errorf("%w: %s", domain.ErrUnknownUser, userID)
		}

		if err := sess.Save(a.kv); err != nil {
			return err
		}
		fmt.Printf("signed in as %s\n", userID)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		return auth.LoadSession(a.kv).Logout().Save(a.kv)
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		sess := auth.LoadSession(a.kv)
		if sess.CurrentUser == "" {
			fmt.Println("not signed in")
			return nil
		}
		if sess.AdminUnlocked {
			fmt.Printf("%s (admin)\n", sess.CurrentUser)
			return nil
		}
		fmt.Println(sess.CurrentUser)
		return nil
	},
}
