package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/content-mock-backend/database"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		projectRepo: projectRepo,
	}
}

// getAllProjects retrieves all projects
// @Summary Get all projects
// @Description Retrieves every portfolio project in insertion order
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project "List of projects"
// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, r, h.projectRepo.FindAll())
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Description Retrieves a single portfolio project by its ID
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} models.Project "Project details"
// @Failure 404 {string} string "Project not found"
// @Router /api/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.projectRepo.FindByID(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, r, project)
	}
}
