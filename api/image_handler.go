package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vortexlabs/portfolio-backend/errs"
	"github.com/vortexlabs/portfolio-backend/models"
	"github.com/vortexlabs/portfolio-backend/policy"
)

type imageStore interface {
	FindByProject(projectID uuid.UUID) ([]models.ProjectImage, error)
	FindByID(id uuid.UUID) (*models.ProjectImage, error)
	Add(image *models.ProjectImage) error
	Delete(id uuid.UUID) (bool, error)
}

// projectFinder is the slice of the project store the image handler
// needs: ownership and visibility checks only.
type projectFinder interface {
	FindByID(id uuid.UUID) (*models.Project, error)
}

type imageHandler struct {
	responder Responder
	logger    zerolog.Logger
	images    imageStore
	projects  projectFinder
}

func newImageHandler(images imageStore, projects projectFinder) imageHandler {
	logger := log.With().Str("handlerName", "imageHandler").Logger()

	return imageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		images:    images,
		projects:  projects,
	}
}

// listImages returns a project's gallery in sort order. The gallery
// follows the owning project's visibility.
func (h imageHandler) listImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseIDParam(r, "projectID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if err := policy.CanViewProject(callerFromCtx(r.Context()), project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		images, err := h.images.FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find images", "project images", err))
			return
		}
		if images == nil {
			images = []models.ProjectImage{}
		}
		h.responder.WriteJSON(w, images)
	}
}

type createImageRequest struct {
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	SortOrder string `json:"order"`
}

func (h imageHandler) createImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseIDParam(r, "projectID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var req createImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.Malformed("image payload"))
			return
		}
		if req.URL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("url"))
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		image := models.ProjectImage{
			ProjectID: projectID,
			URL:       req.URL,
			Alt:       req.Alt,
			SortOrder: req.SortOrder,
		}
		if err := h.images.Add(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project image", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, image)
	}
}

func (h imageHandler) deleteImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, apiErr := parseIDParam(r, "imageID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existed, err := h.images.Delete(imageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project image", err))
			return
		}
		if !existed {
			h.responder.WriteError(w, errs.NewNotFoundError("image not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "image deleted successfully",
		})
	}
}
