package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/wiring"
	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
)

// Actor recorded in the audit trail for mutations made through MCP.
const actor = "mcp"

type Server struct {
	mcpServer *mcp.Server
	services  *wiring.AppServices
}

var (
	Version     = "dev"
	BuildCommit = "unknown"
	BuildDate   = "unknown"
)

// mcpErr returns a user-friendly error for MCP clients.
// Validation messages are passed through; other internal details are omitted.
func mcpErr(friendly string, err error) error {
	if errors.Is(err, domain.ErrInvalidArgument) || errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %s", friendly, err.Error())
	}
	return fmt.Errorf("%s", friendly)
}

func NewServer(services *wiring.AppServices) *Server {
	info := mcp.ServerInfo{
		Name:    "kalkulation",
		Version: Version,
	}

	s := &Server{
		mcpServer: mcp.NewServer(info,
			mcp.WithTitle("Kalkulation MCP Server"),
			mcp.WithDescription("Kalkulation exposes project estimates, registered hours, required pace and progress to MCP clients."),
			mcp.WithBuildInfo(BuildCommit, BuildDate),
			mcp.WithInstructions("Use kalk_list_projects to find project ids, then kalk_project_summary for the full picture."),
		),
		services: services,
	}

	s.registerTools()
	return s
}

type ProjectArgs struct {
	ProjectID int64 `json:"project_id" jsonschema:"required,description=Numeric id of the project"`
}

type WorkingDaysArgs struct {
	Start string `json:"start" jsonschema:"description=First day of the range (YYYY-MM-DD)"`
	End   string `json:"end" jsonschema:"description=Last day of the range, inclusive (YYYY-MM-DD)"`
}

type LogTimeArgs struct {
	TaskID   int64  `json:"task_id" jsonschema:"required,description=Numeric id of the task"`
	Hours    int    `json:"hours" jsonschema:"required,description=Whole hours worked (1-24)"`
	WorkDate string `json:"work_date,omitempty" jsonschema:"description=Day the work was done (YYYY-MM-DD). Defaults to today"`
}

func (s *Server) registerTools() {
	s.mcpServer.Tool("kalk_list_projects").
		Description("List all projects with their status and date range").
		Handler(s.handleListProjects)

	s.mcpServer.Tool("kalk_project_summary").
		Description("Estimated, registered and remaining hours, required pace, progress and cost figures for a project").
		Handler(s.handleProjectSummary)

	s.mcpServer.Tool("kalk_progress").
		Description("Registered hours as a percentage of estimated hours, capped at 100").
		Handler(s.handleProgress)

	s.mcpServer.Tool("kalk_required_pace").
		Description("Hours per working day needed to finish the remaining estimate within the project's dates").
		Handler(s.handleRequiredPace)

	s.mcpServer.Tool("kalk_working_days").
		Description("Count Monday to Friday days in an inclusive date range").
		Handler(s.handleWorkingDays)

	s.mcpServer.Tool("kalk_log_time").
		Description("Log hours worked on a task").
		Handler(s.handleLogTime)
}

func (s *Server) handleListProjects(ctx context.Context, args struct{}) (any, error) {
	projects, err := s.services.Projects.List()
	if err != nil {
		return nil, mcpErr("Failed to list projects", err)
	}
	return projects, nil
}

func (s *Server) handleProjectSummary(ctx context.Context, args ProjectArgs) (any, error) {
	sum, err := s.services.Calc.Summary(args.ProjectID)
	if err != nil {
		return nil, mcpErr("Failed to compute project summary", err)
	}
	return sum, nil
}

func (s *Server) handleProgress(ctx context.Context, args ProjectArgs) (any, error) {
	pct, err := s.services.Calc.ProgressPercentage(args.ProjectID)
	if err != nil {
		return nil, mcpErr("Failed to compute progress", err)
	}
	return map[string]any{"project_id": args.ProjectID, "progress_percent": pct}, nil
}

func (s *Server) handleRequiredPace(ctx context.Context, args ProjectArgs) (any, error) {
	project, err := s.services.Projects.Get(args.ProjectID)
	if err != nil {
		return nil, mcpErr("Failed to load project", err)
	}
	perDay, err := s.services.Calc.RequiredHoursPerWorkday(project)
	if err != nil {
		return nil, mcpErr("Failed to compute required pace", err)
	}
	return map[string]any{
		"project_id":       project.ID,
		"working_days":     s.services.Calc.WorkingDaysBetween(project.StartDate, project.EndDate),
		"required_per_day": perDay,
	}, nil
}

func (s *Server) handleWorkingDays(ctx context.Context, args WorkingDaysArgs) (any, error) {
	start, err := calendar.ParseOptional(args.Start)
	if err != nil {
		return nil, mcpErr("Invalid start date", domain.InvalidArgument(err.Error()))
	}
	end, err := calendar.ParseOptional(args.End)
	if err != nil {
		return nil, mcpErr("Invalid end date", domain.InvalidArgument(err.Error()))
	}
	return map[string]any{"working_days": s.services.Calc.WorkingDaysBetween(start, end)}, nil
}

func (s *Server) handleLogTime(ctx context.Context, args LogTimeArgs) (string, error) {
	date, err := calendar.ParseOptional(args.WorkDate)
	if err != nil {
		return "", mcpErr("Invalid work date", domain.InvalidArgument(err.Error()))
	}
	te, err := s.services.TimeEntries.Log(args.TaskID, date, args.Hours, actor)
	if err != nil {
		return "", mcpErr("Failed to log time", err)
	}
	return fmt.Sprintf("Logged %dh on task %d for %s (entry %d)", te.Hours, te.TaskID, te.WorkDate.Format(calendar.Layout), te.ID), nil
}

func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}

func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	return mcp.ServeHTTP(ctx, s.mcpServer, addr, mcp.WithDefaultCORS())
}
