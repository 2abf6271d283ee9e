package handler

import (
	"errors"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

const msgProjectNotFound = "Project not found"

// ProjectHandler はプロジェクトカタログの HTTP ハンドラ
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler は ProjectHandler を生成する
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List は GET /api/projects を処理する
// Query: category (omitted or "all" = every category), featured ("true" restricts).
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.ProjectFilter{
		Category: r.URL.Query().Get("category"),
		Featured: r.URL.Query().Get("featured") == "true",
	}

	projects, err := h.projectService.List(r.Context(), filter)
	if err != nil {
		writeInternalError(w, r, "list projects failed", err)
		return
	}

	// Return [] not null for empty lists
	if projects == nil {
		projects = []*model.Project{}
	}

	writeJSON(w, http.StatusOK, listResponse{Success: true, Count: len(projects), Data: projects})
}

// Get は GET /api/projects/{id} を処理する
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	project, err := h.projectService.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, msgProjectNotFound)
		return
	}
	if err != nil {
		writeInternalError(w, r, "get project failed", err)
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: project})
}
