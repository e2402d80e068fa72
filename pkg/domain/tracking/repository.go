package tracking

// ProjectRepository persists projects. Get on a missing id returns a domain.NotFoundError.
type ProjectRepository interface {
	ListProjects() ([]Project, error)
	GetProject(id int64) (*Project, error)
	CreateProject(p *Project) error
	UpdateProject(p *Project) error
	DeleteProject(id int64) error
}

type SubProjectRepository interface {
	ListSubProjects(projectID int64) ([]SubProject, error)
	GetSubProject(id int64) (*SubProject, error)
	CreateSubProject(sp *SubProject) error
	UpdateSubProject(sp *SubProject) error
	DeleteSubProject(id int64) error
}

type TaskRepository interface {
	ListTasksByProject(projectID int64) ([]Task, error)
	ListTasksBySubProject(subProjectID int64) ([]Task, error)
	GetTask(id int64) (*Task, error)
	CreateTask(t *Task) error
	UpdateTask(t *Task) error
	DeleteTask(id int64) error
}

type TimeEntryRepository interface {
	ListTimeEntriesByTask(taskID int64) ([]TimeEntry, error)
	GetTimeEntry(id int64) (*TimeEntry, error)
	CreateTimeEntry(te *TimeEntry) error
	UpdateTimeEntry(te *TimeEntry) error
	DeleteTimeEntry(id int64) error
	SumHoursByProject(projectID int64) (int, error)
}

// MetricsSource is the narrow read view the calculation layer depends on.
type MetricsSource interface {
	ListTasksByProject(projectID int64) ([]Task, error)
	SumHoursByProject(projectID int64) (int, error)
	GetProject(id int64) (*Project, error)
}

// Repository is the full persistence surface.
type Repository interface {
	ProjectRepository
	SubProjectRepository
	TaskRepository
	TimeEntryRepository
}
