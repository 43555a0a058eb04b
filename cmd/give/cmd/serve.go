package cmd

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/givefund/give/internal/app"
	"github.com/givefund/give/internal/config"
	"github.com/givefund/give/internal/logging"
	"github.com/givefund/give/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Run the web server until SIGINT or SIGTERM, then shut down gracefully.

Examples:
  give serve                 # listen on SERVER_ADDR (default :8080)
  give serve --addr :3000    # override the listen address`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logging.New()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ServerAddr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := server.New(ctx, cfg, server.Options{Modules: app.NewModules(), Version: version})
	if err != nil {
		return err
	}
	if err := s.RegisterRoutes(ctx); err != nil {
		return err
	}

	if err := s.Start(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		return err
	}
	slog.Info("Server stopped")
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides SERVER_ADDR")
	rootCmd.AddCommand(serveCmd)
}
