package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getProjectRoot()
		if err != nil {
			return err
		}
		loadDotEnv(root)

		services, err := loadServices(root)
		if err != nil {
			return err
		}
		defer services.Close()

		addr := serveAddr
		if addr == "" {
			addr = services.Workspace.Config.HTTPAddr
		}
		logger := services.Workspace.Logger

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Serving kalkulation API on %s\n", addr)
		err = httpapi.Serve(ctx, addr, httpapi.NewRouter(services, logger), logger)
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	},
}

// loadDotEnv loads <root>/.env into the environment when present.
// Variables that are already set win.
func loadDotEnv(root string) {
	path := filepath.Join(root, ".env")
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", path, err)
	}
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to http_addr from config)")
	RootCmd.AddCommand(serveCmd)
}
