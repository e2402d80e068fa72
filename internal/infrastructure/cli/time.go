package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/wiring"
	"github.com/Laman1911/AS-Calculation/pkg/domain"
)

var timeDate string

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Register hours worked on tasks",
}

var timeLogCmd = &cobra.Command{
	Use:   "log <task-id> <hours>",
	Short: "Log whole hours on a task (defaults to today)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(domain.KindTask, args[0])
		if err != nil {
			return MapError(err)
		}
		h, err := strconv.Atoi(args[1])
		if err != nil {
			return MapError(domain.InvalidArgument("Hours must be a whole number"))
		}
		date, err := parseDateFlag("date", timeDate)
		if err != nil {
			return MapError(err)
		}

		return withServices(func(s *wiring.AppServices) error {
			te, err := s.TimeEntries.Log(taskID, date, h, actor)
			if err != nil {
				return err
			}
			fmt.Printf("Logged %dh on task %d for %s (entry %d)\n",
				te.Hours, te.TaskID, te.WorkDate.Format("2006-01-02"), te.ID)
			return nil
		})
	},
}

var timeListCmd = &cobra.Command{
	Use:   "list <task-id>",
	Short: "List the time entries of a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(domain.KindTask, args[0])
		if err != nil {
			return MapError(err)
		}
		return withServices(func(s *wiring.AppServices) error {
			entries, err := s.TimeEntries.ListByTask(taskID)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No time entries.")
				return nil
			}
			columns := []table.Column{
				{Title: "ID", Width: 5},
				{Title: "Date", Width: 10},
				{Title: "Hours", Width: 6},
			}
			rows := make([]table.Row, 0, len(entries))
			total := 0
			for _, te := range entries {
				total += te.Hours
				rows = append(rows, table.Row{
					strconv.FormatInt(te.ID, 10),
					te.WorkDate.Format("2006-01-02"),
					strconv.Itoa(te.Hours),
				})
			}
			fmt.Println(renderTable(columns, rows))
			fmt.Printf("Total: %dh\n", total)
			return nil
		})
	},
}

var timeRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a time entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(domain.KindTimeEntry, args[0])
		if err != nil {
			return MapError(err)
		}
		return withServices(func(s *wiring.AppServices) error {
			if err := s.TimeEntries.Delete(id, actor); err != nil {
				return err
			}
			fmt.Printf("Deleted time entry %d\n", id)
			return nil
		})
	},
}

func init() {
	timeLogCmd.Flags().StringVar(&timeDate, "date", "", "Work date (YYYY-MM-DD), defaults to today")
	timeCmd.AddCommand(timeLogCmd, timeListCmd, timeRmCmd)
	RootCmd.AddCommand(timeCmd)
}
