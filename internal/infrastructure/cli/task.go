package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/wiring"
	"github.com/Laman1911/AS-Calculation/pkg/application"
	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

var (
	taskDescription string
	taskEstimate    int
	taskDeadline    string
	taskSubProject  int64
	taskJSON        bool
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <project-id> <name>",
	Short: "Create a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := parseID(domain.KindProject, args[0])
		if err != nil {
			return MapError(err)
		}
		in := application.TaskInput{Name: args[1], Description: taskDescription}
		if cmd.Flags().Changed("estimate") {
			est := taskEstimate
			in.EstimatedHours = &est
		}
		if cmd.Flags().Changed("sub") {
			sub := taskSubProject
			in.SubProjectID = &sub
		}
		if in.Deadline, err = parseDateFlag("deadline", taskDeadline); err != nil {
			return MapError(err)
		}

		return withServices(func(s *wiring.AppServices) error {
			t, err := s.Tasks.Create(projectID, in, actor)
			if err != nil {
				return err
			}
			fmt.Printf("Created task %d: %s (estimate %sh)\n", t.ID, t.Name, hours(t.EstimatedHours))
			return nil
		})
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List the tasks of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := parseID(domain.KindProject, args[0])
		if err != nil {
			return MapError(err)
		}
		return withServices(func(s *wiring.AppServices) error {
			var tasks []tracking.Task
			if cmd.Flags().Changed("sub") {
				tasks, err = s.Tasks.ListBySubProject(taskSubProject)
			} else {
				tasks, err = s.Tasks.ListByProject(projectID)
			}
			if err != nil {
				return err
			}
			if taskJSON {
				return printJSON(tasks)
			}
			printTasks(tasks)
			return nil
		})
	},
}

var taskRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task and its time entries",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(domain.KindTask, args[0])
		if err != nil {
			return MapError(err)
		}
		return withServices(func(s *wiring.AppServices) error {
			if err := s.Tasks.Delete(id, actor); err != nil {
				return err
			}
			fmt.Printf("Deleted task %d\n", id)
			return nil
		})
	},
}

func printTasks(tasks []tracking.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return
	}
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 28},
		{Title: "Sub", Width: 5},
		{Title: "Estimate", Width: 9},
		{Title: "Deadline", Width: 10},
	}
	rows := make([]table.Row, 0, len(tasks))
	for _, t := range tasks {
		sub := "-"
		if t.SubProjectID != nil {
			sub = strconv.FormatInt(*t.SubProjectID, 10)
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(t.ID, 10),
			t.Name,
			sub,
			hours(t.EstimatedHours),
			orDash(calendar.FormatDate(t.Deadline)),
		})
	}
	fmt.Println(renderTable(columns, rows))
}

func init() {
	taskAddCmd.Flags().StringVarP(&taskDescription, "description", "d", "", "Task description")
	taskAddCmd.Flags().IntVarP(&taskEstimate, "estimate", "e", 0, "Estimated hours")
	taskAddCmd.Flags().StringVar(&taskDeadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	taskAddCmd.Flags().Int64Var(&taskSubProject, "sub", 0, "Subproject id")
	taskListCmd.Flags().Int64Var(&taskSubProject, "sub", 0, "Only tasks of this subproject")
	taskListCmd.Flags().BoolVar(&taskJSON, "json", false, "Output in JSON format")

	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskRmCmd)
	RootCmd.AddCommand(taskCmd)
}
