package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/wiring"
	"github.com/Laman1911/AS-Calculation/pkg/domain"
)

var subProjectDescription string

var subProjectCmd = &cobra.Command{
	Use:     "subproject",
	Aliases: []string{"sub"},
	Short:   "Manage subprojects",
}

var subProjectAddCmd = &cobra.Command{
	Use:   "add <project-id> <name>",
	Short: "Create a subproject",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := parseID(domain.KindProject, args[0])
		if err != nil {
			return MapError(err)
		}
		return withServices(func(s *wiring.AppServices) error {
			sp, err := s.SubProjects.Create(projectID, args[1], subProjectDescription, actor)
			if err != nil {
				return err
			}
			fmt.Printf("Created subproject %d: %s\n", sp.ID, sp.Name)
			return nil
		})
	},
}

var subProjectListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List the subprojects of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := parseID(domain.KindProject, args[0])
		if err != nil {
			return MapError(err)
		}
		return withServices(func(s *wiring.AppServices) error {
			subs, err := s.SubProjects.ListByProject(projectID)
			if err != nil {
				return err
			}
			if len(subs) == 0 {
				fmt.Println("No subprojects.")
				return nil
			}
			columns := []table.Column{
				{Title: "ID", Width: 5},
				{Title: "Name", Width: 24},
				{Title: "Description", Width: 40},
			}
			rows := make([]table.Row, 0, len(subs))
			for _, sp := range subs {
				rows = append(rows, table.Row{strconv.FormatInt(sp.ID, 10), sp.Name, sp.Description})
			}
			fmt.Println(renderTable(columns, rows))
			return nil
		})
	},
}

var subProjectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename a subproject or change its description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(domain.KindSubProject, args[0])
		if err != nil {
			return MapError(err)
		}
		return withServices(func(s *wiring.AppServices) error {
			current, err := s.SubProjects.Get(id)
			if err != nil {
				return err
			}
			name, description := current.Name, current.Description
			if cmd.Flags().Changed("name") {
				name, _ = cmd.Flags().GetString("name")
			}
			if cmd.Flags().Changed("description") {
				description, _ = cmd.Flags().GetString("description")
			}
			sp, err := s.SubProjects.Update(id, name, description, actor)
			if err != nil {
				return err
			}
			fmt.Printf("Updated subproject %d: %s\n", sp.ID, sp.Name)
			return nil
		})
	},
}

var subProjectRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a subproject; its tasks stay on the project",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(domain.KindSubProject, args[0])
		if err != nil {
			return MapError(err)
		}
		return withServices(func(s *wiring.AppServices) error {
			if err := s.SubProjects.Delete(id, actor); err != nil {
				return err
			}
			fmt.Printf("Deleted subproject %d\n", id)
			return nil
		})
	},
}

func init() {
	subProjectAddCmd.Flags().StringVarP(&subProjectDescription, "description", "d", "", "Subproject description")
	subProjectUpdateCmd.Flags().String("name", "", "New subproject name")
	subProjectUpdateCmd.Flags().StringP("description", "d", "", "New description")
	subProjectCmd.AddCommand(subProjectAddCmd, subProjectListCmd, subProjectUpdateCmd, subProjectRmCmd)
	RootCmd.AddCommand(subProjectCmd)
}
