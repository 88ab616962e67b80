// Package cli implements the candyd command tree.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/candytrack/candyd/internal/app/ledger"
	"github.com/candytrack/candyd/internal/auth"
	"github.com/candytrack/candyd/internal/daemon"
	"github.com/candytrack/candyd/internal/infra/store"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "candyd",
	Short: "Household candy ledger",
	Long: `candyd tracks good deeds, candy balances, and reward trades for a
household. Children log deeds to earn capped daily candy; a parent reviews
custom-deed submissions and redeems rewards behind a PIN gate.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(),
		"Path to the candyd config file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "candyd.toml"
	}
	return filepath.Join(home, ".candytrack", "candyd.toml")
}

// app bundles everything a command needs. Close releases the store.
type app struct {
	cfg         daemon.Config
	kv          *store.SQLite
	ledger      *ledger.Service
	submissions *ledger.SubmissionService
	trades      *ledger.TradeService
	pin         *auth.PIN
}

func (a *app) Close() {
	a.kv.Close()
}

// openApp loads config and wires the services over the sqlite store.
func openApp() (*app, error) {
	cfg, err := daemon.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		return nil, err
	}
	kv, err := store.OpenSQLite(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	l := ledger.NewService(kv)
	return &app{
		cfg:         cfg,
		kv:          kv,
		ledger:      l,
		submissions: ledger.NewSubmissionService(l, cfg.Family.Children),
		trades:      ledger.NewTradeService(l),
		pin:         auth.NewPIN(kv),
	}, nil
}
