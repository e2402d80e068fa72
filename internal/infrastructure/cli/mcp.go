package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	inframcp "github.com/Laman1911/AS-Calculation/internal/infrastructure/mcp"
)

var (
	mcpTransport string
	mcpAddr      string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the kalkulation MCP server",
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

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server := inframcp.NewServer(services)
		switch strings.ToLower(mcpTransport) {
		case "stdio", "":
			err = server.ServeStdio(ctx)
		case "http":
			addr := mcpAddr
			if addr == "" {
				addr = services.Workspace.Config.MCPAddr
			}
			services.Workspace.Logger.Info("mcp server starting", "addr", addr)
			err = server.ServeHTTP(ctx, addr)
		default:
			return NewCLIError(fmt.Sprintf("unsupported transport: %s", mcpTransport), "Use --transport stdio or --transport http", nil)
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("mcp server failed: %w", err)
		}
		return nil
	},
}

func init() {
	mcpCmd.Flags().StringVar(&mcpTransport, "transport", "stdio", "Transport to use (stdio, http)")
	mcpCmd.Flags().StringVar(&mcpAddr, "addr", "", "Address for the http transport (defaults to mcp_addr from config)")
	RootCmd.AddCommand(mcpCmd)
}
