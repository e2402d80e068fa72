package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/config"
	"github.com/Laman1911/AS-Calculation/pkg/storage"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new kalkulation workspace",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getProjectRoot()
		if err != nil {
			return err
		}

		ws := storage.NewWorkspace(root)
		if ws.IsInitialized() {
			return NewCLIError("workspace already initialized", "Remove "+ws.Dir()+" to start over", nil)
		}
		if err := ws.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}

		cfg := config.Default()
		if err := config.Save(root, cfg); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		// Opening the database runs the migrations.
		repo, err := storage.OpenSQLite(cfg.ResolveDBPath(root))
		if err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
		if err := repo.Close(); err != nil {
			return err
		}

		fmt.Printf("Initialized kalkulation workspace in %s\n", ws.Dir())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
