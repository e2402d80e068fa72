package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Laman1911/AS-Calculation/pkg/application"
	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
)

type projectRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	HourlyRate  float64 `json:"hourly_rate"`
}

func (r projectRequest) input() (application.ProjectInput, error) {
	start, err := calendar.ParseOptional(r.StartDate)
	if err != nil {
		return application.ProjectInput{}, domain.InvalidArgument(err.Error())
	}
	end, err := calendar.ParseOptional(r.EndDate)
	if err != nil {
		return application.ProjectInput{}, domain.InvalidArgument(err.Error())
	}
	return application.ProjectInput{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   start,
		EndDate:     end,
		Budget:      r.Budget,
		HourlyRate:  r.HourlyRate,
	}, nil
}

type transitionRequest struct {
	Event string `json:"event"`
}

func (h *Handlers) ListProjects(c *gin.Context) {
	projects, err := h.services.Projects.List()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handlers) GetProject(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindProject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	p, err := h.services.Projects.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handlers) CreateProject(c *gin.Context) {
	var req projectRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		h.respondError(c, err)
		return
	}
	p, err := h.services.Projects.Create(in, actor)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handlers) UpdateProject(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindProject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var req projectRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		h.respondError(c, err)
		return
	}
	p, err := h.services.Projects.Update(id, in, actor)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handlers) DeleteProject(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindProject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := h.services.Projects.Delete(id, actor); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) TransitionProject(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindProject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var req transitionRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}
	p, err := h.services.Projects.Transition(id, req.Event, actor)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ProjectCalc returns the full metrics summary of a project.
func (h *Handlers) ProjectCalc(c *gin.Context) {
	id, err := paramID(c, "id", domain.KindProject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	sum, err := h.services.Calc.Summary(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handlers) WorkingDays(c *gin.Context) {
	start, err := calendar.ParseOptional(c.Query("start"))
	if err != nil {
		h.respondError(c, domain.InvalidArgument(err.Error()))
		return
	}
	end, err := calendar.ParseOptional(c.Query("end"))
	if err != nil {
		h.respondError(c, domain.InvalidArgument(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"start":        calendar.FormatDate(start),
		"end":          calendar.FormatDate(end),
		"working_days": h.services.Calc.WorkingDaysBetween(start, end),
	})
}
