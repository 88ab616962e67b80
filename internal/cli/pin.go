package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/candytrack/candyd/internal/auth"
	"github.com/candytrack/candyd/internal/domain"
)

func init() {
	rootCmd.AddCommand(pinCmd)
	pinCmd.AddCommand(pinSetCmd)
	pinCmd.AddCommand(pinVerifyCmd)

	pinSetCmd.Flags().String("current", "", "Current PIN (required when changing an existing PIN)")
}

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Manage the admin PIN",
}

var pinSetCmd = &cobra.Command{
	Use:   "set PIN",
	Short: "Set or change the 4-digit admin PIN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pin := args[0]
		if !auth.ValidFormat(pin) {
			return domain.ErrInvalidPIN
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if a.pin.HasPIN() {
			current, _ := cmd.Flags().GetString("current")
			if !a.pin.Verify(current) {
				return domain.ErrPINMismatch
			}
		}
		a.pin.SetPIN(pin)
		fmt.Println("PIN set")
		return nil
	},
}

var pinVerifyCmd = &cobra.Command{
	Use:   "verify PIN",
	Short: "Check a PIN against the stored one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.pin.HasPIN() {
			return domain.ErrPINNotSet
		}
		if a.pin.Verify(args[0]) {
			fmt.Println("ok")
			return nil
		}
		return domain.ErrPINMismatch
	},
}
