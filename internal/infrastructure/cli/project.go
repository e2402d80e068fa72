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
	projectDescription string
	projectStart       string
	projectEnd         string
	projectBudget      float64
	projectRate        float64
	projectJSON        bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(func(s *wiring.AppServices) error {
			in := application.ProjectInput{Name: args[0]}
			if err := applyProjectFlags(cmd, &in); err != nil {
				return err
			}
			p, err := s.Projects.Create(in, actor)
			if err != nil {
				return err
			}
			fmt.Printf("Created project %d: %s\n", p.ID, p.Name)
			return nil
		})
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(func(s *wiring.AppServices) error {
			projects, err := s.Projects.List()
			if err != nil {
				return err
			}
			if projectJSON {
				return printJSON(projects)
			}
			if len(projects) == 0 {
				fmt.Println("No projects yet. Create one with 'kalkulation project add <name>'.")
				return nil
			}

			columns := []table.Column{
				{Title: "ID", Width: 5},
				{Title: "Name", Width: 24},
				{Title: "Status", Width: 10},
				{Title: "Start", Width: 10},
				{Title: "End", Width: 10},
				{Title: "Budget", Width: 10},
			}
			rows := make([]table.Row, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, table.Row{
					strconv.FormatInt(p.ID, 10),
					p.Name,
					string(p.Status),
					orDash(calendar.FormatDate(p.StartDate)),
					orDash(calendar.FormatDate(p.EndDate)),
					fmt.Sprintf("%.2f", p.Budget),
				})
			}
			fmt.Println(renderTable(columns, rows))
			return nil
		})
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a project with its subprojects and tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(domain.KindProject, args[0])
		if err != nil {
			return MapError(err)
		}
		return withServices(func(s *wiring.AppServices) error {
			p, err := s.Projects.Get(id)
			if err != nil {
				return err
			}
			subs, err := s.SubProjects.ListByProject(id)
			if err != nil {
				return err
			}
			tasks, err := s.Tasks.ListByProject(id)
			if err != nil {
				return err
			}
			if projectJSON {
				return printJSON(map[string]any{"project": p, "subprojects": subs, "tasks": tasks})
			}

			fmt.Println(titleStyle.Render(fmt.Sprintf("Project %d: %s", p.ID, p.Name)))
			if p.Description != "" {
				fmt.Println(p.Description)
			}
			fmt.Printf("Status: %s   Dates: %s .. %s\n", p.Status,
				orDash(calendar.FormatDate(p.StartDate)), orDash(calendar.FormatDate(p.EndDate)))
			fmt.Printf("Budget: %.2f   Hourly rate: %.2f\n", p.Budget, p.HourlyRate)

			if len(subs) > 0 {
				fmt.Println()
				fmt.Println(titleStyle.Render("Subprojects"))
				for _, sp := range subs {
					fmt.Printf("  %d  %s\n", sp.ID, sp.Name)
				}
			}
			fmt.Println()
			printTasks(tasks)
			return nil
		})
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a project's fields; omitted flags keep their value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(domain.KindProject, args[0])
		if err != nil {
			return MapError(err)
		}
		return withServices(func(s *wiring.AppServices) error {
			current, err := s.Projects.Get(id)
			if err != nil {
				return err
			}
			in := application.ProjectInput{
				Name:        current.Name,
				Description: current.Description,
				StartDate:   current.StartDate,
				EndDate:     current.EndDate,
				Budget:      current.Budget,
				HourlyRate:  current.HourlyRate,
			}
			if cmd.Flags().Changed("name") {
				in.Name, _ = cmd.Flags().GetString("name")
			}
			if err := applyProjectFlags(cmd, &in); err != nil {
				return err
			}
			p, err := s.Projects.Update(id, in, actor)
			if err != nil {
				return err
			}
			fmt.Printf("Updated project %d: %s\n", p.ID, p.Name)
			return nil
		})
	},
}

var projectRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a project with its subprojects, tasks and time entries",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(domain.KindProject, args[0])
		if err != nil {
			return MapError(err)
		}
		return withServices(func(s *wiring.AppServices) error {
			if err := s.Projects.Delete(id, actor); err != nil {
				return err
			}
			fmt.Printf("Deleted project %d\n", id)
			return nil
		})
	},
}

// applyProjectFlags copies the flags that were set on cmd into in.
func applyProjectFlags(cmd *cobra.Command, in *application.ProjectInput) error {
	flags := cmd.Flags()
	if flags.Changed("description") {
		in.Description = projectDescription
	}
	if flags.Changed("start") {
		start, err := parseDateFlag("start", projectStart)
		if err != nil {
			return err
		}
		in.StartDate = start
	}
	if flags.Changed("end") {
		end, err := parseDateFlag("end", projectEnd)
		if err != nil {
			return err
		}
		in.EndDate = end
	}
	if flags.Changed("budget") {
		in.Budget = projectBudget
	}
	if flags.Changed("rate") {
		in.HourlyRate = projectRate
	}
	return nil
}

func newTransitionCmd(event, short string) *cobra.Command {
	return &cobra.Command{
		Use:   event + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(domain.KindProject, args[0])
			if err != nil {
				return MapError(err)
			}
			return withServices(func(s *wiring.AppServices) error {
				p, err := s.Projects.Transition(id, event, actor)
				if err != nil {
					return err
				}
				fmt.Printf("Project %d is now %s\n", p.ID, p.Status)
				return nil
			})
		},
	}
}

func addProjectFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&projectDescription, "description", "d", "", "Project description")
	cmd.Flags().StringVar(&projectStart, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&projectEnd, "end", "", "End date, inclusive (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&projectBudget, "budget", 0, "Budget in the configured currency")
	cmd.Flags().Float64Var(&projectRate, "rate", 0, "Hourly rate in the configured currency")
}

func init() {
	addProjectFieldFlags(projectAddCmd)
	addProjectFieldFlags(projectUpdateCmd)
	projectUpdateCmd.Flags().String("name", "", "New project name")
	projectListCmd.Flags().BoolVar(&projectJSON, "json", false, "Output in JSON format")
	projectShowCmd.Flags().BoolVar(&projectJSON, "json", false, "Output in JSON format")

	projectCmd.AddCommand(projectAddCmd, projectListCmd, projectShowCmd, projectUpdateCmd, projectRmCmd)
	projectCmd.AddCommand(
		newTransitionCmd(tracking.EventStart, "Start a planned project"),
		newTransitionCmd(tracking.EventPause, "Put an active project on hold"),
		newTransitionCmd(tracking.EventResume, "Resume a project that is on hold"),
		newTransitionCmd(tracking.EventComplete, "Mark an active project completed"),
		newTransitionCmd(tracking.EventReopen, "Reopen a completed project"),
	)
	RootCmd.AddCommand(projectCmd)
}
