package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vortexlabs/portfolio-backend/errs"
	"github.com/vortexlabs/portfolio-backend/models"
	"github.com/vortexlabs/portfolio-backend/policy"
	"github.com/vortexlabs/portfolio-backend/slugify"
	"gorm.io/datatypes"
)

type projectStore interface {
	FindByID(id uuid.UUID) (*models.Project, error)
	Add(project *models.Project) error
	Update(id uuid.UUID, update models.ProjectUpdate, slug *string) (*models.Project, error)
	Delete(id uuid.UUID) (bool, error)
}

// projectViews is the read side: assembled composites with relations
// attached and the author already redacted.
type projectViews interface {
	ProjectByID(id uuid.UUID) (*models.ProjectView, error)
	ProjectBySlug(slug string) (*models.ProjectView, error)
	AllProjects() ([]models.ProjectView, error)
	PublishedProjects() ([]models.ProjectView, error)
}

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  projectStore
	views     projectViews
}

func newProjectHandler(projects projectStore, views projectViews) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
		views:     views,
	}
}

// listAllProjects returns every project regardless of status. The
// route is behind requireAuth.
func (h projectHandler) listAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := h.views.AllProjects()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}
		h.responder.WriteJSON(w, views)
	}
}

// listPublishedProjects is the public catalog: published only.
func (h projectHandler) listPublishedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := h.views.PublishedProjects()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}
		h.responder.WriteJSON(w, views)
	}
}

// getProject returns one composite. Anonymous callers only see
// published projects: an existing draft yields 403, a missing id 404.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseIDParam(r, "projectID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		view, err := h.views.ProjectByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		h.writeProjectView(w, r, view)
	}
}

func (h projectHandler) getProjectBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		view, err := h.views.ProjectBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		h.writeProjectView(w, r, view)
	}
}

func (h projectHandler) writeProjectView(w http.ResponseWriter, r *http.Request, view *models.ProjectView) {
	var project *models.Project
	if view != nil {
		project = &view.Project
	}
	if err := policy.CanViewProject(callerFromCtx(r.Context()), project); err != nil {
		h.responder.WriteError(w, err)
		return
	}
	h.responder.WriteJSON(w, view)
}

type createProjectRequest struct {
	Title            string        `json:"title"`
	ShortDescription string        `json:"shortDescription"`
	Content          string        `json:"content"`
	CategoryID       *uuid.UUID    `json:"categoryId"`
	ToolID           *uuid.UUID    `json:"toolId"`
	Status           string        `json:"status"`
	Links            []models.Link `json:"links"`
	ThumbnailURL     *string       `json:"thumbnailUrl"`
}

// createProject creates a project in draft by default, authored by
// the session user, with the slug derived from the title.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req createProjectRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.Malformed("project payload"))
			return
		}
		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Status != "" && !models.ValidStatus(req.Status) {
			h.responder.WriteValidationError(w, "status", "must be draft, published, or archived")
			return
		}

		project := models.Project{
			Title:            req.Title,
			Slug:             slugify.Make(req.Title),
			ShortDescription: req.ShortDescription,
			Content:          req.Content,
			CategoryID:       req.CategoryID,
			ToolID:           req.ToolID,
			Status:           req.Status,
			Links:            datatypes.NewJSONSlice(req.Links),
			ThumbnailURL:     req.ThumbnailURL,
		}
		if userID, ok := callerFromCtx(r.Context()).UserID(); ok {
			authorID := userID
			project.AuthorID = &authorID
		}

		if err := h.projects.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject applies a partial merge. The slug is recomputed only
// when the payload carries a title.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseIDParam(r, "projectID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var update models.ProjectUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			h.responder.WriteError(w, errs.Malformed("project payload"))
			return
		}
		if update.Status != nil && !models.ValidStatus(*update.Status) {
			h.responder.WriteValidationError(w, "status", "must be draft, published, or archived")
			return
		}

		var slug *string
		if update.Title != nil {
			s := slugify.Make(*update.Title)
			slug = &s
		}

		project, err := h.projects.Update(projectID, update, slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject removes the project and, atomically, its images.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseIDParam(r, "projectID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existed, err := h.projects.Delete(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}
		if !existed {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
