package cli

import (
	"recruitflow/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for the recruitment pipeline",
	Long: `Start an HTTP server that provides REST API endpoints for the recruitment
pipeline.

Available endpoints:
- POST /api/v1/candidates/apply: Submit a candidate application
- GET /api/v1/candidates/{id}: Fetch a candidate record
- POST /api/v1/candidates/{id}/stages/{stage}/complete: Complete an interview stage
- POST /api/v1/candidates/{id}/finalize: Record the final hiring decision
- GET /api/v1/summary: Recruitment summary across all candidates
- GET /api/v1/openings: Registered job openings
- GET /health: Health check endpoint
- GET /stats: Server statistics and rate limiting info

With --roster, the server analyzes the given employee roster on startup,
registers the derived openings, and re-analyzes whenever the file changes.`,
	RunE: runServe,
}

var serveRosterFile string

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().String("host", "", "Host to bind to (default from config)")
	serveCmd.Flags().String("cert-file", "", "Server certificate file (PEM, overrides config)")
	serveCmd.Flags().String("key-file", "", "Server private key file (PEM, overrides config)")
	serveCmd.Flags().StringVar(&serveRosterFile, "roster", "", "Employee roster CSV to derive job openings from")

	// Bind flags to viper config keys
	bindFlag := func(key, flagName string) {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(flagName)); err != nil {
			panic(err)
		}
	}

	bindFlag("server.port", "port")
	bindFlag("server.host", "host")
	bindFlag("server.tls.certfile", "cert-file")
	bindFlag("server.tls.keyfile", "key-file")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	engine, err := buildWorkflowEngine(cfg, logger)
	if err != nil {
		return err
	}

	serverCfg := server.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Version:        Version,
		TLSConfig:      cfg.Server.TLS,
		APIKeys:        cfg.Server.APIKeys,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxRequestSize: cfg.App.MaxFileSize,
		RateLimit:      &cfg.Server.RateLimit,
		RosterFile:     serveRosterFile,
	}
	return server.NewServer(cfg, serverCfg, engine, logger).Start()
}
