package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Laman1911/AS-Calculation/pkg/application"
	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
)

type subProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type taskRequest struct {
	SubProjectID   *int64 `json:"subproject_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	EstimatedHours *int   `json:"estimated_hours"`
	Deadline       string `json:"deadline"`
}

func (r taskRequest) input() (application.TaskInput, error) {
	deadline, err := calendar.ParseOptional(r.Deadline)
	if err != nil {
		return application.TaskInput{}, domain.InvalidArgument(err.Error())
	}
	return application.TaskInput{
		SubProjectID:   r.SubProjectID,
		Name:           r.Name,
		Description:    r.Description,
		EstimatedHours: r.EstimatedHours,
		Deadline:       deadline,
	}, nil
}

type timeEntryRequest struct {
	WorkDate string `json:"work_date"`
	Hours    int    `json:"hours"`
}

func (r timeEntryRequest) date() (*time.Time, error) {
	d, err := calendar.ParseOptional(r.WorkDate)
	if err != nil {
		return nil, domain.InvalidArgument(err.Error())
	}
	return d, nil
}

func (h *Handlers) ListSubProjects(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindProject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	subs, err := h.services.SubProjects.ListByProject(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *Handlers) CreateSubProject(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindProject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var req subProjectRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}
	sp, err := h.services.SubProjects.Create(id, req.Name, req.Description, actor)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sp)
}

func (h *Handlers) GetSubProject(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindSubProject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	sp, err := h.services.SubProjects.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (h *Handlers) UpdateSubProject(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindSubProject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var req subProjectRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}
	sp, err := h.services.SubProjects.Update(id, req.Name, req.Description, actor)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (h *Handlers) DeleteSubProject(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindSubProject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := h.services.SubProjects.Delete(id, actor); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSubProjectTasks lists the tasks grouped under one subproject.
func (h *Handlers) ListSubProjectTasks(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindSubProject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if _, err := h.services.SubProjects.Get(id); err != nil {
		h.respondError(c, err)
		return
	}
	tasks, err := h.services.Tasks.ListBySubProject(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handlers) ListTasks(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindProject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	tasks, err := h.services.Tasks.ListByProject(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handlers) CreateTask(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindProject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var req taskRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		h.respondError(c, err)
		return
	}
	t, err := h.services.Tasks.Create(id, in, actor)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handlers) GetTask(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindTask)
	if err != nil {
		h.respondError(c, err)
		return
	}
	t, err := h.services.Tasks.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handlers) UpdateTask(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindTask)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var req taskRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		h.respondError(c, err)
		return
	}
	t, err := h.services.Tasks.Update(id, in, actor)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handlers) DeleteTask(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindTask)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := h.services.Tasks.Delete(id, actor); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) ListTimeEntries(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindTask)
	if err != nil {
		h.respondError(c, err)
		return
	}
	entries, err := h.services.TimeEntries.ListByTask(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handlers) LogTime(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindTask)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var req timeEntryRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}
	date, err := req.date()
	if err != nil {
		h.respondError(c, err)
		return
	}
	te, err := h.services.TimeEntries.Log(id, date, req.Hours, actor)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, te)
}

func (h *Handlers) UpdateTimeEntry(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindTimeEntry)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var req timeEntryRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}
	date, err := req.date()
	if err != nil {
		h.respondError(c, err)
		return
	}
	te, err := h.services.TimeEntries.Update(id, date, req.Hours, actor)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, te)
}

func (h *Handlers) DeleteTimeEntry(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindTimeEntry)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := h.services.TimeEntries.Delete(id, actor); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
