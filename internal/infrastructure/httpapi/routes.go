package httpapi

import (
	"github.com/gin-gonic/gin"
)

func Setup(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	api.GET("/health", h.Health)
	api.GET("/events", h.Events)

	projects := api.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/:id", h.GetProject)
		projects.PUT("/:id", h.UpdateProject)
		projects.DELETE("/:id", h.DeleteProject)
		projects.POST("/:id/transitions", h.TransitionProject)
		projects.GET("/:id/calc", h.ProjectCalc)
		projects.GET("/:id/subprojects", h.ListSubProjects)
		projects.POST("/:id/subprojects", h.CreateSubProject)
		projects.GET("/:id/tasks", h.ListTasks)
		projects.POST("/:id/tasks", h.CreateTask)
	}

	subprojects := api.Group("/subprojects")
	{
		subprojects.GET("/:id", h.GetSubProject)
		subprojects.PUT("/:id", h.UpdateSubProject)
		subprojects.DELETE("/:id", h.DeleteSubProject)
		subprojects.GET("/:id/tasks", h.ListSubProjectTasks)
	}

	tasks := api.Group("/tasks")
	{
		tasks.GET("/:id", h.GetTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
		tasks.GET("/:id/time", h.ListTimeEntries)
		tasks.POST("/:id/time", h.LogTime)
	}

	api.PUT("/time/:id", h.UpdateTimeEntry)
	api.DELETE("/time/:id", h.DeleteTimeEntry)

	api.GET("/calendar/working-days", h.WorkingDays)
}
