package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/wiring"
	"github.com/Laman1911/AS-Calculation/pkg/domain/metrics"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

var statusJSON bool

// statusJSONOutput represents the JSON output format for status
type statusJSONOutput struct {
	Project tracking.Project `json:"project"`
	Metrics *metrics.Summary `json:"metrics"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show hours, pace and progress for every project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(func(s *wiring.AppServices) error {
			projects, err := s.Projects.List()
			if err != nil {
				return err
			}

			out := make([]statusJSONOutput, 0, len(projects))
			for _, p := range projects {
				sum, err := s.Calc.Summary(p.ID)
				if err != nil {
					return fmt.Errorf("failed to summarize project %d: %w", p.ID, err)
				}
				out = append(out, statusJSONOutput{Project: p, Metrics: sum})
			}

			if statusJSON {
				return printJSON(out)
			}
			if len(out) == 0 {
				fmt.Println("No projects yet. Create one with 'kalkulation project add <name>'.")
				return nil
			}

			columns := []table.Column{
				{Title: "ID", Width: 5},
				{Title: "Name", Width: 22},
				{Title: "Status", Width: 10},
				{Title: "Est", Width: 6},
				{Title: "Reg", Width: 6},
				{Title: "Left", Width: 6},
				{Title: "Per day", Width: 8},
				{Title: "Progress", Width: 9},
			}
			rows := make([]table.Row, 0, len(out))
			for _, o := range out {
				rows = append(rows, table.Row{
					strconv.FormatInt(o.Project.ID, 10),
					o.Project.Name,
					string(o.Project.Status),
					strconv.Itoa(o.Metrics.EstimatedHours),
					strconv.Itoa(o.Metrics.RegisteredHours),
					strconv.Itoa(o.Metrics.RemainingHours),
					fmt.Sprintf("%.2f", o.Metrics.RequiredPerDay),
					fmt.Sprintf("%.1f%%", o.Metrics.ProgressPercent),
				})
			}

			fmt.Printf("%d projects\n", len(out))
			fmt.Println(renderTable(columns, rows))
			return nil
		})
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(statusCmd)
}
