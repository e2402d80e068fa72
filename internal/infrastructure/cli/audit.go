package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/wiring"
)

var auditLimit int

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect and verify the workspace audit trail",
}

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded changes, newest last",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(func(s *wiring.AppServices) error {
			events, err := s.Audit.GetTimeline()
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Println("No audit events.")
				return nil
			}
			if auditLimit > 0 && len(events) > auditLimit {
				events = events[len(events)-auditLimit:]
			}

			columns := []table.Column{
				{Title: "Time", Width: 19},
				{Title: "Action", Width: 20},
				{Title: "Actor", Width: 8},
				{Title: "Details", Width: 40},
			}
			rows := make([]table.Row, 0, len(events))
			for _, e := range events {
				rows = append(rows, table.Row{
					e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					e.Action,
					e.Actor,
					fmt.Sprintf("%v", e.Metadata),
				})
			}
			fmt.Println(renderTable(columns, rows))
			return nil
		})
	},
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the integrity of the audit trail",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(func(s *wiring.AppServices) error {
			fmt.Println("Verifying audit trail integrity...")
			violations, err := s.Audit.VerifyIntegrity()
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			if len(violations) == 0 {
				fmt.Println(okStyle.Render("Audit trail is intact and verified."))
				return nil
			}

			fmt.Printf("Found %d integrity violations:\n", len(violations))
			for _, v := range violations {
				fmt.Printf("  - %s\n", v)
			}
			return NewCLIError(fmt.Sprintf("audit trail has %d integrity violations", len(violations)), "", nil)
		})
	},
}

func init() {
	auditListCmd.Flags().IntVarP(&auditLimit, "limit", "n", 0, "Show only the most recent events")
	auditCmd.AddCommand(auditListCmd, auditVerifyCmd)
	RootCmd.AddCommand(auditCmd)
}
