package application

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

const importSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["projects"],
  "additionalProperties": false,
  "definitions": {
    "date": { "type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$" }
  },
  "properties": {
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": { "type": "string", "minLength": 1 },
          "description": { "type": "string" },
          "start_date": { "$ref": "#/definitions/date" },
          "end_date": { "$ref": "#/definitions/date" },
          "budget": { "type": "number", "minimum": 0 },
          "hourly_rate": { "type": "number", "minimum": 0 },
          "subprojects": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name"],
              "properties": {
                "name": { "type": "string", "minLength": 1 },
                "description": { "type": "string" }
              }
            }
          },
          "tasks": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name"],
              "properties": {
                "name": { "type": "string", "minLength": 1 },
                "description": { "type": "string" },
                "subproject": { "type": "string" },
                "estimated_hours": { "type": ["integer", "null"], "minimum": 0 },
                "deadline": { "$ref": "#/definitions/date" },
                "time_entries": {
                  "type": "array",
                  "items": {
                    "type": "object",
                    "required": ["work_date", "hours"],
                    "properties": {
                      "work_date": { "$ref": "#/definitions/date" },
                      "hours": { "type": "integer", "minimum": 1, "maximum": 24 }
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

var importSchemaLoader = gojsonschema.NewStringLoader(importSchemaJSON)

// ImportDocument is the bulk-load format accepted by ImportService.
type ImportDocument struct {
	Projects []ImportProject `json:"projects"`
}

type ImportProject struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	Budget      float64            `json:"budget"`
	HourlyRate  float64            `json:"hourly_rate"`
	SubProjects []ImportSubProject `json:"subprojects"`
	Tasks       []ImportTask       `json:"tasks"`
}

type ImportSubProject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ImportTask struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	SubProject     string            `json:"subproject"`
	EstimatedHours *int              `json:"estimated_hours"`
	Deadline       string            `json:"deadline"`
	TimeEntries    []ImportTimeEntry `json:"time_entries"`
}

type ImportTimeEntry struct {
	WorkDate string `json:"work_date"`
	Hours    int    `json:"hours"`
}

// ImportResult counts the records written.
type ImportResult struct {
	Projects    int `json:"projects"`
	SubProjects int `json:"subprojects"`
	Tasks       int `json:"tasks"`
	TimeEntries int `json:"time_entries"`
}

type ImportService struct {
	projects    *ProjectService
	subProjects *SubProjectService
	tasks       *TaskService
	timeEntries *TimeEntryService
	now         func() time.Time
}

func NewImportService(projects *ProjectService, subProjects *SubProjectService, tasks *TaskService, timeEntries *TimeEntryService) *ImportService {
	return &ImportService{
		projects:    projects,
		subProjects: subProjects,
		tasks:       tasks,
		timeEntries: timeEntries,
		now:         time.Now,
	}
}

// WithClock replaces the clock used to reject future time entries.
func (s *ImportService) WithClock(now func() time.Time) *ImportService {
	s.now = now
	return s
}

// Validate checks data against the import schema and the domain rules without writing anything.
func (s *ImportService) Validate(data []byte) (*ImportDocument, error) {
	result, err := gojsonschema.Validate(importSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, domain.InvalidArgument("Import document is not valid JSON: " + err.Error())
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, domain.InvalidArgument("Import document does not match schema: " + strings.Join(issues, "; "))
	}

	var doc ImportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.InvalidArgument("Import document is not valid JSON: " + err.Error())
	}
	if err := s.check(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Import validates data and then writes every record through the CRUD services.
func (s *ImportService) Import(data []byte, actor string) (*ImportResult, error) {
	doc, err := s.Validate(data)
	if err != nil {
		return nil, err
	}

	res := &ImportResult{}
	for _, ip := range doc.Projects {
		start, _ := calendar.ParseOptional(ip.StartDate)
		end, _ := calendar.ParseOptional(ip.EndDate)
		p, err := s.projects.Create(ProjectInput{
			Name:        ip.Name,
			Description: ip.Description,
			StartDate:   start,
			EndDate:     end,
			Budget:      ip.Budget,
			HourlyRate:  ip.HourlyRate,
		}, actor)
		if err != nil {
			return res, fmt.Errorf("failed to import project %q: %w", ip.Name, err)
		}
		res.Projects++

		subIDs := make(map[string]int64, len(ip.SubProjects))
		for _, isp := range ip.SubProjects {
			sp, err := s.subProjects.Create(p.ID, isp.Name, isp.Description, actor)
			if err != nil {
				return res, fmt.Errorf("failed to import subproject %q: %w", isp.Name, err)
			}
			subIDs[sp.Name] = sp.ID
			res.SubProjects++
		}

		for _, it := range ip.Tasks {
			in := TaskInput{Name: it.Name, Description: it.Description, EstimatedHours: it.EstimatedHours}
			in.Deadline, _ = calendar.ParseOptional(it.Deadline)
			if it.SubProject != "" {
				id := subIDs[strings.TrimSpace(it.SubProject)]
				in.SubProjectID = &id
			}
			t, err := s.tasks.Create(p.ID, in, actor)
			if err != nil {
				return res, fmt.Errorf("failed to import task %q: %w", it.Name, err)
			}
			res.Tasks++

			for _, ie := range it.TimeEntries {
				d, _ := calendar.ParseDate(ie.WorkDate)
				if _, err := s.timeEntries.Log(t.ID, &d, ie.Hours, actor); err != nil {
					return res, fmt.Errorf("failed to import time entry for task %q: %w", it.Name, err)
				}
				res.TimeEntries++
			}
		}
	}
	return res, nil
}

// check runs the domain constructors over every record so an invalid document fails before any write.
func (s *ImportService) check(doc *ImportDocument) error {
	today := s.now()
	for i, ip := range doc.Projects {
		start, err := calendar.ParseOptional(ip.StartDate)
		if err != nil {
			return domain.InvalidArgument(fmt.Sprintf("projects[%d]: %v", i, err))
		}
		end, err := calendar.ParseOptional(ip.EndDate)
		if err != nil {
			return domain.InvalidArgument(fmt.Sprintf("projects[%d]: %v", i, err))
		}
		if _, err := tracking.NewProject(ip.Name, ip.Description, start, end, ip.Budget, ip.HourlyRate); err != nil {
			return domain.InvalidArgument(fmt.Sprintf("projects[%d]: %v", i, err))
		}

		subs := make(map[string]bool, len(ip.SubProjects))
		for j, isp := range ip.SubProjects {
			sp, err := tracking.NewSubProject(1, isp.Name, isp.Description)
			if err != nil {
				return domain.InvalidArgument(fmt.Sprintf("projects[%d].subprojects[%d]: %v", i, j, err))
			}
			subs[sp.Name] = true
		}

		for j, it := range ip.Tasks {
			if it.SubProject != "" && !subs[strings.TrimSpace(it.SubProject)] {
				return domain.InvalidArgument(fmt.Sprintf("projects[%d].tasks[%d]: unknown subproject %q", i, j, it.SubProject))
			}
			deadline, err := calendar.ParseOptional(it.Deadline)
			if err != nil {
				return domain.InvalidArgument(fmt.Sprintf("projects[%d].tasks[%d]: %v", i, j, err))
			}
			if _, err := tracking.NewTask(1, nil, it.Name, it.Description, it.EstimatedHours, deadline); err != nil {
				return domain.InvalidArgument(fmt.Sprintf("projects[%d].tasks[%d]: %v", i, j, err))
			}
			for k, ie := range it.TimeEntries {
				d, err := calendar.ParseDate(ie.WorkDate)
				if err != nil {
					return domain.InvalidArgument(fmt.Sprintf("projects[%d].tasks[%d].time_entries[%d]: %v", i, j, k, err))
				}
				if _, err := tracking.NewTimeEntry(1, &d, ie.Hours, today); err != nil {
					return domain.InvalidArgument(fmt.Sprintf("projects[%d].tasks[%d].time_entries[%d]: %v", i, j, k, err))
				}
			}
		}
	}
	return nil
}
