package cli

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/candytrack/candyd/internal/api"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the candyd HTTP API",
	Long:  `Start the HTTP server the UI talks to. Listens on the address from the config file.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	srv := api.NewServer(a.ledger, a.submissions, a.trades, a.pin)
	if a.cfg.API.Metrics {
		srv.EnableMetrics()
	}

	addr := a.cfg.ListenAddr()
	log.Printf("candyd listening on http://%s", addr)
	return http.ListenAndServe(addr, srv.Handler())
}
