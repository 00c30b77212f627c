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
	"github.com/vortexlabs/portfolio-backend/slugify"
)

type categoryStore interface {
	FindAll() ([]models.Category, error)
	FindByID(id uuid.UUID) (*models.Category, error)
	Add(category *models.Category) error
	Update(id uuid.UUID, update models.CategoryUpdate) (*models.Category, error)
	Delete(id uuid.UUID) (bool, error)
}

type categoryHandler struct {
	responder  Responder
	logger     zerolog.Logger
	categories categoryStore
}

func newCategoryHandler(categories categoryStore) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		categories: categories,
	}
}

// listCategories retrieves all categories ordered alphabetically.
// Reads are public by design; only mutations require a session.
func (h categoryHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categories.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "categories", err))
			return
		}
		h.responder.WriteJSON(w, categories)
	}
}

type createCategoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Color       string  `json:"color"`
	Description *string `json:"description"`
}

// createCategory creates a new category. The slug defaults to the
// slugified name when not supplied.
func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req createCategoryRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.Malformed("category payload"))
			return
		}
		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		slug := req.Slug
		if slug == "" {
			slug = slugify.Make(req.Name)
		}

		category := models.Category{
			Name:        req.Name,
			Slug:        slug,
			Color:       req.Color,
			Description: req.Description,
		}
		if err := h.categories.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "category", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, category)
	}
}

// updateCategory applies a partial update to an existing category.
func (h categoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, apiErr := parseIDParam(r, "categoryID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var update models.CategoryUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			h.responder.WriteError(w, errs.Malformed("category payload"))
			return
		}

		category, err := h.categories.Update(categoryID, update)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// deleteCategory removes a category; referencing tools and projects
// keep existing with their reference nulled out.
func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, apiErr := parseIDParam(r, "categoryID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existed, err := h.categories.Delete(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "category", err))
			return
		}
		if !existed {
			h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "category deleted successfully",
		})
	}
}

// parseIDParam extracts and validates a uuid path parameter.
func parseIDParam(r *http.Request, name string) (uuid.UUID, *errs.ApiErr) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
