package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/vortexlabs/portfolio-backend/errs"
	"github.com/vortexlabs/portfolio-backend/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	setupAdminEmail    = "admin@sistema.com"
	setupAdminPassword = "admin123"
)

// setup seeds the first admin user plus the default categories and
// tools. Running it twice returns 409.
func (h authHandler) setup() http.HandlerFunc {
	type seedCategory struct {
		name, slug, color string
	}
	type seedTool struct {
		name, slug, categorySlug string
	}

	seedCategories := []seedCategory{
		{"Inteligência Artificial", "inteligencia-artificial", "#8B5CF6"},
		{"N8N", "n8n", "#FF6D5A"},
		{"Automação", "automacao", "#10B981"},
		{"Integração", "integracao", "#F59E0B"},
	}
	seedTools := []seedTool{
		{"OpenAI GPT-4", "openai-gpt4", "inteligencia-artificial"},
		{"Claude AI", "claude-ai", "inteligencia-artificial"},
		{"Gemini", "gemini", "inteligencia-artificial"},
		{"N8N Workflows", "n8n-workflows", "n8n"},
		{"N8N API", "n8n-api", "n8n"},
		{"Make (Integromat)", "make", "automacao"},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		existing, err := h.users.FindByEmail(setupAdminEmail)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewConflictError("system is already configured"))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(setupAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}
		admin := models.User{
			Email:    setupAdminEmail,
			Password: string(hash),
			Name:     "Administrador",
			Role:     "Administrador",
		}
		if err := h.users.Add(&admin); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "user", err))
			return
		}

		categoryIDs := make(map[string]uuid.UUID, len(seedCategories))
		for _, c := range seedCategories {
			category := models.Category{Name: c.name, Slug: c.slug, Color: c.color}
			if err := h.categories.Add(&category); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("create", "category", err))
				return
			}
			categoryIDs[c.slug] = category.ID
		}

		for _, t := range seedTools {
			tool := models.Tool{Name: t.name, Slug: t.slug}
			if id, ok := categoryIDs[t.categorySlug]; ok {
				categoryID := id
				tool.CategoryID = &categoryID
			}
			if err := h.tools.Add(&tool); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("create", "tool", err))
				return
			}
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"message": "system configured successfully",
			"credentials": map[string]string{
				"email":    setupAdminEmail,
				"password": setupAdminPassword,
			},
		})
	}
}
