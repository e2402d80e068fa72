package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/wiring"
)

var importDryRun bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load projects, subprojects, tasks and time entries from a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		return withServices(func(s *wiring.AppServices) error {
			if importDryRun {
				doc, err := s.Import.Validate(data)
				if err != nil {
					return err
				}
				fmt.Printf("%s is valid (%d projects)\n", args[0], len(doc.Projects))
				return nil
			}

			res, err := s.Import.Import(data, actor)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d projects, %d subprojects, %d tasks and %d time entries\n",
				res.Projects, res.SubProjects, res.Tasks, res.TimeEntries)
			return nil
		})
	},
}

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Validate the document without writing anything")
	RootCmd.AddCommand(importCmd)
}
