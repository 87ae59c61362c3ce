// Package serve handles the HTTP API command.
package serve

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	cmdcommon "github.com/Tresor26/MOMO-Dashboard/cmd/common"
	"github.com/Tresor26/MOMO-Dashboard/cmd/root"
	"github.com/Tresor26/MOMO-Dashboard/internal/api"
)

var addr string

// Cmd represents the serve command.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the transaction query API",
	Long: `Serve starts the JSON HTTP API over the transaction database. The
dashboard frontend reads transactions, categories, and per-category and
per-month summaries from it.`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides configuration)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	s, err := cmdcommon.OpenStore()
	if err != nil {
		root.Log.Fatalf("Error opening database: %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			root.Log.Warnf("Failed to close database: %v", err)
		}
	}()

	listenAddr := root.Cfg.Server.Addr
	if addr != "" {
		listenAddr = addr
	}

	server := &http.Server{
		Addr:              listenAddr,
		Handler:           api.NewServer(s, root.Logger()).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	root.Log.Infof("Serving transaction API on %s", listenAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		root.Log.Fatalf("Server error: %v", err)
	}
}
