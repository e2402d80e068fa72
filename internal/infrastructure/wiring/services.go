package wiring

import (
	"github.com/Laman1911/AS-Calculation/pkg/application"
)

// AppServices exposes the application layer services wired together with a workspace.
type AppServices struct {
	Workspace   *Workspace
	Calc        *application.CalculationService
	Projects    *application.ProjectService
	SubProjects *application.SubProjectService
	Tasks       *application.TaskService
	TimeEntries *application.TimeEntryService
	Import      *application.ImportService
	Audit       *application.AuditService
}

// BuildAppServices opens the workspace at root and wires every service against it.
// Callers own the result and must Close it.
func BuildAppServices(root string) (*AppServices, error) {
	ws, err := OpenWorkspace(root)
	if err != nil {
		return nil, err
	}
	return NewAppServices(ws), nil
}

// NewAppServices wires services against an already opened workspace.
func NewAppServices(ws *Workspace) *AppServices {
	projects := application.NewProjectService(ws.Repo, ws.Audit)
	subProjects := application.NewSubProjectService(ws.Repo, ws.Audit)
	tasks := application.NewTaskService(ws.Repo, ws.Audit)
	timeEntries := application.NewTimeEntryService(ws.Repo, ws.Audit)

	return &AppServices{
		Workspace:   ws,
		Calc:        application.NewCalculationService(ws.Repo).WithCurrency(ws.Config.Currency),
		Projects:    projects,
		SubProjects: subProjects,
		Tasks:       tasks,
		TimeEntries: timeEntries,
		Import:      application.NewImportService(projects, subProjects, tasks, timeEntries),
		Audit:       ws.Audit,
	}
}

func (s *AppServices) Close() error {
	return s.Workspace.Close()
}
