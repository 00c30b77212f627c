package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vortexlabs/portfolio-backend/errs"
	"github.com/vortexlabs/portfolio-backend/models"
	"github.com/vortexlabs/portfolio-backend/slugify"
)

type toolStore interface {
	FindAll() ([]models.Tool, error)
	FindByCategory(categoryID uuid.UUID) ([]models.Tool, error)
	FindByID(id uuid.UUID) (*models.Tool, error)
	Add(tool *models.Tool) error
	Update(id uuid.UUID, update models.ToolUpdate) (*models.Tool, error)
	Delete(id uuid.UUID) (bool, error)
}

type toolHandler struct {
	responder Responder
	logger    zerolog.Logger
	tools     toolStore
}

func newToolHandler(tools toolStore) toolHandler {
	logger := log.With().Str("handlerName", "toolHandler").Logger()

	return toolHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tools:     tools,
	}
}

func (h toolHandler) listTools() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tools, err := h.tools.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tools", "tools", err))
			return
		}
		h.responder.WriteJSON(w, tools)
	}
}

func (h toolHandler) listToolsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, apiErr := parseIDParam(r, "categoryID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		tools, err := h.tools.FindByCategory(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tools", "tools", err))
			return
		}
		h.responder.WriteJSON(w, tools)
	}
}

type createToolRequest struct {
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	Description *string    `json:"description"`
}

func (h toolHandler) createTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createToolRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.Malformed("tool payload"))
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

		tool := models.Tool{
			Name:        req.Name,
			Slug:        slug,
			CategoryID:  req.CategoryID,
			Description: req.Description,
		}
		if err := h.tools.Add(&tool); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "tool", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, tool)
	}
}

func (h toolHandler) updateTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toolID, apiErr := parseIDParam(r, "toolID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var update models.ToolUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			h.responder.WriteError(w, errs.Malformed("tool payload"))
			return
		}

		tool, err := h.tools.Update(toolID, update)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "tool", err))
			return
		}
		if tool == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("tool not found"))
			return
		}

		h.responder.WriteJSON(w, tool)
	}
}

func (h toolHandler) deleteTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toolID, apiErr := parseIDParam(r, "toolID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existed, err := h.tools.Delete(toolID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "tool", err))
			return
		}
		if !existed {
			h.responder.WriteError(w, errs.NewNotFoundError("tool not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "tool deleted successfully",
		})
	}
}
