package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/wiring"
	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
	"github.com/Laman1911/AS-Calculation/pkg/domain/metrics"
)

var calcJSON bool

var calcCmd = &cobra.Command{
	Use:   "calc <project-id>",
	Short: "Show estimated, registered and remaining hours, required pace and progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(domain.KindProject, args[0])
		if err != nil {
			return MapError(err)
		}
		return withServices(func(s *wiring.AppServices) error {
			sum, err := s.Calc.Summary(id)
			if err != nil {
				return err
			}
			if calcJSON {
				return printJSON(sum)
			}
			printSummary(sum)
			return nil
		})
	},
}

var calcDaysCmd = &cobra.Command{
	Use:   "days <start> <end>",
	Short: "Count Monday to Friday days between two dates, both inclusive",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := calendar.ParseDate(args[0])
		if err != nil {
			return MapError(domain.InvalidArgument(err.Error()))
		}
		end, err := calendar.ParseDate(args[1])
		if err != nil {
			return MapError(domain.InvalidArgument(err.Error()))
		}
		fmt.Println(calendar.WorkingDaysBetween(&start, &end))
		return nil
	},
}

func printSummary(sum *metrics.Summary) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Project %d: %s", sum.ProjectID, sum.ProjectName)))

	columns := []table.Column{
		{Title: "Metric", Width: 22},
		{Title: "Value", Width: 26},
	}
	rows := []table.Row{
		{"Period", fmt.Sprintf("%s .. %s", orDash(sum.StartDate), orDash(sum.EndDate))},
		{"Estimated hours", fmt.Sprintf("%d", sum.EstimatedHours)},
		{"Registered hours", fmt.Sprintf("%d", sum.RegisteredHours)},
		{"Remaining hours", fmt.Sprintf("%d", sum.RemainingHours)},
		{"Working days", fmt.Sprintf("%d", sum.WorkingDays)},
		{"Required per day", fmt.Sprintf("%.2f", sum.RequiredPerDay)},
		{"Progress", fmt.Sprintf("%.1f%%", sum.ProgressPercent)},
	}
	if sum.HourlyRate > 0 || sum.Budget > 0 {
		rows = append(rows,
			table.Row{"Budget", money(sum.Budget, sum.Currency)},
			table.Row{"Estimated cost", money(sum.EstimatedCost, sum.Currency)},
			table.Row{"Actual cost", money(sum.ActualCost, sum.Currency)},
			table.Row{"Profit margin", fmt.Sprintf("%.1f%%", sum.ProfitMargin)},
		)
	}
	fmt.Println(renderTable(columns, rows))

	if sum.UnestimatedTasks > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("%d of %d tasks have no estimate and count as 0 hours", sum.UnestimatedTasks, sum.TaskCount)))
	}
	if sum.OverBudget {
		fmt.Println(warnStyle.Render("Actual cost exceeds the budget"))
	}
}

func money(v float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2f %s", v, currency)
}

func init() {
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "Output in JSON format")
	calcCmd.AddCommand(calcDaysCmd)
	RootCmd.AddCommand(calcCmd)
}
