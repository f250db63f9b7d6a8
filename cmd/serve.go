package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	config "github.com/inference-gateway/coordpick/config"
	constants "github.com/inference-gateway/coordpick/internal/constants"
	container "github.com/inference-gateway/coordpick/internal/container"
	logger "github.com/inference-gateway/coordpick/internal/logger"
	cobra "github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gallery web server",
	Long: `Start the gallery web server. Open the printed URL in a browser, add images
by URL or from disk, and click on an image to copy its logical coordinates.

Modes:
  canonical  images are stretched to the logical resolution when loaded
  deferred   images are shown at their natural size; clicks are scaled through
             the natural size, which becomes known once the image is probed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromViper()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := applyServeFlags(cmd, cfg); err != nil {
			return err
		}

		return startGalleryServer(cmd, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "web server port (default: 8420)")
	serveCmd.Flags().String("host", "", "web server host (default: 127.0.0.1)")
	serveCmd.Flags().String("mode", "", "normalization mode: canonical or deferred")
	serveCmd.Flags().Bool("no-placeholder", false, "start with an empty gallery")
}

func applyServeFlags(cmd *cobra.Command, cfg *config.Config) error {
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Web.Port = port
	}
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Web.Host = host
	}
	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		cfg.Gallery.Mode = mode
	}
	if noPlaceholder, _ := cmd.Flags().GetBool("no-placeholder"); noPlaceholder {
		cfg.Gallery.SeedPlaceholder = false
	}
	return cfg.Validate()
}

func startGalleryServer(cmd *cobra.Command, cfg *config.Config) error {
	services, err := container.NewServiceContainer(cfg, V)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	addr := net.JoinHostPort(cfg.Web.Host, fmt.Sprint(cfg.Web.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- services.GetServer().Serve(listener)
	}()

	services.SeedPlaceholder(ctx)
	printServerInfo(cmd, listener.Addr().String(), cfg)

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down gallery server")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nShutting down gracefully...\n")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := services.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not stop server gracefully: %w", err)
	}
	return nil
}

func printServerInfo(cmd *cobra.Command, addr string, cfg *config.Config) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Gallery listening on http://%s\n", addr)
	_, _ = fmt.Fprintf(out, "   Mode: %s (%dx%d)\n", cfg.Gallery.Mode, cfg.Gallery.Width, cfg.Gallery.Height)
	_, _ = fmt.Fprintf(out, "   Clipboard: %t\n", cfg.Clipboard.Enabled)
	_, _ = fmt.Fprintf(out, "\nAvailable endpoints:\n")
	_, _ = fmt.Fprintf(out, "   GET  /                        - Gallery page\n")
	_, _ = fmt.Fprintf(out, "   WS   /ws                      - Gallery events\n")
	_, _ = fmt.Fprintf(out, "   GET  /api/images              - Gallery contents\n")
	_, _ = fmt.Fprintf(out, "   POST /api/images              - Add image by URL\n")
	_, _ = fmt.Fprintf(out, "   POST /api/images/upload       - Add image from a file\n")
	_, _ = fmt.Fprintf(out, "   GET  /api/images/{id}/source  - Image bytes\n")
	_, _ = fmt.Fprintf(out, "   POST /api/images/{id}/click   - Map a click to coordinates\n")
	_, _ = fmt.Fprintf(out, "   GET  /api/health              - Health check\n\n")
}
