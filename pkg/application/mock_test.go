package application_test

import (
	"errors"
	"sort"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

// MockRepo is an in-memory tracking.Repository that counts reads.
type MockRepo struct {
	Projects    map[int64]*tracking.Project
	SubProjects map[int64]*tracking.SubProject
	Tasks       map[int64]*tracking.Task
	Entries     map[int64]*tracking.TimeEntry

	LoadError error
	SaveError error

	Reads  int
	nextID int64
}

func NewMockRepo() *MockRepo {
	return &MockRepo{
		Projects:    map[int64]*tracking.Project{},
		SubProjects: map[int64]*tracking.SubProject{},
		Tasks:       map[int64]*tracking.Task{},
		Entries:     map[int64]*tracking.TimeEntry{},
	}
}

func (m *MockRepo) id() int64 { m.nextID++; return m.nextID }

func notFound(kind string, id int64) error { return &domain.NotFoundError{Kind: kind, ID: id} }

func sortedKeys[T any](in map[int64]T) []int64 {
	keys := make([]int64, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (m *MockRepo) ListProjects() ([]tracking.Project, error) {
	m.Reads++
	out := []tracking.Project{}
	for _, k := range sortedKeys(m.Projects) {
		out = append(out, *m.Projects[k])
	}
	return out, m.LoadError
}

func (m *MockRepo) GetProject(id int64) (*tracking.Project, error) {
	m.Reads++
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	p, ok := m.Projects[id]
	if !ok {
		return nil, notFound(domain.KindProject, id)
	}
	cp := *p
	return &cp, nil
}

func (m *MockRepo) CreateProject(p *tracking.Project) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	p.ID = m.id()
	cp := *p
	m.Projects[p.ID] = &cp
	return nil
}

func (m *MockRepo) UpdateProject(p *tracking.Project) error {
	if _, ok := m.Projects[p.ID]; !ok {
		return notFound(domain.KindProject, p.ID)
	}
	cp := *p
	m.Projects[p.ID] = &cp
	return m.SaveError
}

func (m *MockRepo) DeleteProject(id int64) error {
	if _, ok := m.Projects[id]; !ok {
		return notFound(domain.KindProject, id)
	}
	delete(m.Projects, id)
	return m.SaveError
}

func (m *MockRepo) ListSubProjects(projectID int64) ([]tracking.SubProject, error) {
	m.Reads++
	out := []tracking.SubProject{}
	for _, k := range sortedKeys(m.SubProjects) {
		if m.SubProjects[k].ProjectID == projectID {
			out = append(out, *m.SubProjects[k])
		}
	}
	return out, m.LoadError
}

func (m *MockRepo) GetSubProject(id int64) (*tracking.SubProject, error) {
	m.Reads++
	sp, ok := m.SubProjects[id]
	if !ok {
		return nil, notFound(domain.KindSubProject, id)
	}
	cp := *sp
	return &cp, m.LoadError
}

func (m *MockRepo) CreateSubProject(sp *tracking.SubProject) error {
	sp.ID = m.id()
	cp := *sp
	m.SubProjects[sp.ID] = &cp
	return m.SaveError
}

func (m *MockRepo) UpdateSubProject(sp *tracking.SubProject) error {
	cp := *sp
	m.SubProjects[sp.ID] = &cp
	return m.SaveError
}

func (m *MockRepo) DeleteSubProject(id int64) error {
	if _, ok := m.SubProjects[id]; !ok {
		return notFound(domain.KindSubProject, id)
	}
	delete(m.SubProjects, id)
	return m.SaveError
}

func (m *MockRepo) listTasks(match func(*tracking.Task) bool) ([]tracking.Task, error) {
	m.Reads++
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	out := []tracking.Task{}
	for _, k := range sortedKeys(m.Tasks) {
		if match(m.Tasks[k]) {
			out = append(out, *m.Tasks[k])
		}
	}
	return out, nil
}

func (m *MockRepo) ListTasksByProject(projectID int64) ([]tracking.Task, error) {
	return m.listTasks(func(t *tracking.Task) bool { return t.ProjectID == projectID })
}

func (m *MockRepo) ListTasksBySubProject(subProjectID int64) ([]tracking.Task, error) {
	return m.listTasks(func(t *tracking.Task) bool { return t.SubProjectID != nil && *t.SubProjectID == subProjectID })
}

func (m *MockRepo) GetTask(id int64) (*tracking.Task, error) {
	m.Reads++
	t, ok := m.Tasks[id]
	if !ok {
		return nil, notFound(domain.KindTask, id)
	}
	cp := *t
	return &cp, m.LoadError
}

func (m *MockRepo) CreateTask(t *tracking.Task) error {
	t.ID = m.id()
	cp := *t
	m.Tasks[t.ID] = &cp
	return m.SaveError
}

func (m *MockRepo) UpdateTask(t *tracking.Task) error {
	cp := *t
	m.Tasks[t.ID] = &cp
	return m.SaveError
}

func (m *MockRepo) DeleteTask(id int64) error {
	if _, ok := m.Tasks[id]; !ok {
		return notFound(domain.KindTask, id)
	}
	delete(m.Tasks, id)
	return m.SaveError
}

func (m *MockRepo) ListTimeEntriesByTask(taskID int64) ([]tracking.TimeEntry, error) {
	m.Reads++
	out := []tracking.TimeEntry{}
	for _, k := range sortedKeys(m.Entries) {
		if m.Entries[k].TaskID == taskID {
			out = append(out, *m.Entries[k])
		}
	}
	return out, m.LoadError
}

func (m *MockRepo) GetTimeEntry(id int64) (*tracking.TimeEntry, error) {
	m.Reads++
	te, ok := m.Entries[id]
	if !ok {
		return nil, notFound(domain.KindTimeEntry, id)
	}
	cp := *te
	return &cp, m.LoadError
}

func (m *MockRepo) CreateTimeEntry(te *tracking.TimeEntry) error {
	te.ID = m.id()
	cp := *te
	m.Entries[te.ID] = &cp
	return m.SaveError
}

func (m *MockRepo) UpdateTimeEntry(te *tracking.TimeEntry) error {
	cp := *te
	m.Entries[te.ID] = &cp
	return m.SaveError
}

func (m *MockRepo) DeleteTimeEntry(id int64) error {
	if _, ok := m.Entries[id]; !ok {
		return notFound(domain.KindTimeEntry, id)
	}
	delete(m.Entries, id)
	return m.SaveError
}

func (m *MockRepo) SumHoursByProject(projectID int64) (int, error) {
	m.Reads++
	if m.LoadError != nil {
		return 0, m.LoadError
	}
	total := 0
	for _, te := range m.Entries {
		if t, ok := m.Tasks[te.TaskID]; ok && t.ProjectID == projectID {
			total += te.Hours
		}
	}
	return total, nil
}

// MockAudit records logged actions.
type MockAudit struct {
	Actions []string
	Actors  []string
}

func (m *MockAudit) Log(action, actor string, metadata map[string]any) error {
	m.Actions = append(m.Actions, action)
	m.Actors = append(m.Actors, actor)
	return nil
}

// MockAuditRepo keeps events in memory.
type MockAuditRepo struct {
	Events    []domain.Event
	LoadError error
}

func (m *MockAuditRepo) RecordEvent(e domain.Event) error { m.Events = append(m.Events, e); return nil }
func (m *MockAuditRepo) LoadEvents() ([]domain.Event, error) {
	return append([]domain.Event(nil), m.Events...), m.LoadError
}

var errBoom = errors.New("boom")

var _ tracking.Repository = (*MockRepo)(nil)
