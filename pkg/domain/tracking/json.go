package tracking

import (
	"encoding/json"
	"time"

	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
)

// Dates travel as YYYY-MM-DD, the same form the API and import accept.

type projectAlias Project

type projectJSON struct {
	projectAlias
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

func (p Project) MarshalJSON() ([]byte, error) {
	return json.Marshal(projectJSON{
		projectAlias: projectAlias(p),
		StartDate:    calendar.FormatDate(p.StartDate),
		EndDate:      calendar.FormatDate(p.EndDate),
	})
}

func (p *Project) UnmarshalJSON(data []byte) error {
	var v projectJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	start, err := calendar.ParseOptional(v.StartDate)
	if err != nil {
		return err
	}
	end, err := calendar.ParseOptional(v.EndDate)
	if err != nil {
		return err
	}
	*p = Project(v.projectAlias)
	p.StartDate, p.EndDate = start, end
	return nil
}

type taskAlias Task

type taskJSON struct {
	taskAlias
	Deadline string `json:"deadline,omitempty"`
}

func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskJSON{
		taskAlias: taskAlias(t),
		Deadline:  calendar.FormatDate(t.Deadline),
	})
}

func (t *Task) UnmarshalJSON(data []byte) error {
	var v taskJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	deadline, err := calendar.ParseOptional(v.Deadline)
	if err != nil {
		return err
	}
	*t = Task(v.taskAlias)
	t.Deadline = deadline
	return nil
}

type timeEntryAlias TimeEntry

type timeEntryJSON struct {
	timeEntryAlias
	WorkDate string `json:"work_date"`
}

func (te TimeEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(timeEntryJSON{
		timeEntryAlias: timeEntryAlias(te),
		WorkDate:       te.WorkDate.Format(calendar.Layout),
	})
}

func (te *TimeEntry) UnmarshalJSON(data []byte) error {
	var v timeEntryJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	d, err := calendar.ParseOptional(v.WorkDate)
	if err != nil {
		return err
	}
	*te = TimeEntry(v.timeEntryAlias)
	te.WorkDate = time.Time{}
	if d != nil {
		te.WorkDate = *d
	}
	return nil
}
