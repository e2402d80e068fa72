package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/config"
	"github.com/Laman1911/AS-Calculation/pkg/application"
	"github.com/Laman1911/AS-Calculation/pkg/storage"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of the kalkulation workspace",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Running kalkulation doctor...")

		root, err := getProjectRoot()
		if err != nil {
			return err
		}
		ws := storage.NewWorkspace(root)

		hasIssues := false
		check := func(name string, fn func() error) {
			fmt.Printf("Checking %s... ", name)
			if err := fn(); err != nil {
				fmt.Printf("FAIL\n  Error: %v\n", err)
				hasIssues = true
			} else {
				fmt.Printf("PASS\n")
			}
		}

		check("Initialization", func() error {
			if !ws.IsInitialized() {
				return fmt.Errorf("%s directory not found (run 'kalkulation init')", storage.WorkspaceDir)
			}
			return nil
		})

		var cfg *config.Config
		check("Config File", func() error {
			cfg, err = config.Load(root)
			return err
		})

		check("Database", func() error {
			if cfg == nil {
				return fmt.Errorf("config not loaded")
			}
			repo, err := storage.OpenSQLite(cfg.ResolveDBPath(root))
			if err != nil {
				return err
			}
			defer repo.Close()
			projects, err := repo.ListProjects()
			if err != nil {
				return err
			}
			fmt.Printf("(%d projects) ", len(projects))
			return nil
		})

		check("Audit Integrity", func() error {
			path, err := ws.ResolvePath(storage.EventsFile)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return nil
			}
			violations, err := application.NewAuditService(storage.NewFileAuditStore(ws)).VerifyIntegrity()
			if err != nil {
				return err
			}
			if len(violations) > 0 {
				return fmt.Errorf("%d integrity violations found (run 'kalkulation audit verify')", len(violations))
			}
			return nil
		})

		if hasIssues {
			fmt.Println("\nIssues found! Please fix them before continuing.")
			return fmt.Errorf("doctor found issues")
		}
		fmt.Println("\nEverything looks good!")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}
