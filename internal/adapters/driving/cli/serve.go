package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/radar/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/radar/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serve verdicts over a JSON HTTP API.

Endpoints:
  GET  /health
  GET  /v1/domains
  POST /v1/analyze/{domain}   {"answers":{...},"normalise":true,"use_ai":true}
  POST /v1/normalize          {"text":"..."}
  POST /v1/entities           {"text":"..."}

Every response carries an X-Request-ID header. Edits to the custom slang
file are picked up while the server runs.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	server, err := httpapi.NewServer(&httpapi.Ports{
		Analysis:   analysisService,
		Normaliser: textNormaliser,
	})
	if err != nil {
		return err
	}

	if stop, err := startSlangWatcher(cmd.Context()); err != nil {
		logger.Warn("slang hot reload disabled: %v", err)
	} else {
		defer stop()
	}

	cmd.Printf("API listening on %s\n", serveAddr)
	return server.Run(cmd.Context(), serveAddr)
}
