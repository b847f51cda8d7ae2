package cmd

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rybkr/diagoku/internal/httpapi"
)

var (
	serveAddr    string
	serveTimeout time.Duration
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve the solver as a small JSON API.

POST /api/solve with {"puzzle": "<81 chars>", "trace": true} returns the
solution, solve statistics, and optionally the assignment trace.`,
		RunE: runServe,
	}

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address (env DIAGOKU_ADDR)")
	serveCmd.Flags().DurationVar(&serveTimeout, "timeout", 10*time.Second, "Per-request solve timeout")
	viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := viper.GetString("addr")
	if addr == "" {
		addr = serveAddr
	}

	mux := http.NewServeMux()
	httpapi.New(logger, serveTimeout).Register(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.RequestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("listening")
	return srv.ListenAndServe()
}
