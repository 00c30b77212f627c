package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vortexlabs/portfolio-backend/models"
	"github.com/vortexlabs/portfolio-backend/policy"
)

func newProjectRouter(h projectHandler, caller policy.Caller) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(ctxWithCaller(req.Context(), caller)))
		})
	})
	r.Get("/projects/public", h.listPublishedProjects())
	r.Get("/projects/slug/{slug}", h.getProjectBySlug())
	r.Get("/projects/{projectID}", h.getProject())
	r.Get("/projects", h.listAllProjects())
	r.Post("/projects", h.createProject())
	r.Put("/projects/{projectID}", h.updateProject())
	r.Delete("/projects/{projectID}", h.deleteProject())
	return r
}

func seedProjectView(views *fakeProjectViews, status string) models.ProjectView {
	view := models.ProjectView{
		Project: models.Project{
			ID:     uuid.New(),
			Title:  "Pipeline",
			Slug:   "pipeline-" + status,
			Status: status,
		},
		Images: []models.ProjectImage{},
	}
	views.add(view)
	return view
}

func TestGetProjectVisibility(t *testing.T) {
	views := newFakeProjectViews()
	published := seedProjectView(views, models.StatusPublished)
	draft := seedProjectView(views, models.StatusDraft)
	h := newProjectHandler(newFakeProjectStore(), views)

	cases := []struct {
		name   string
		caller policy.Caller
		id     uuid.UUID
		want   int
	}{
		{"anonymous published", policy.Anonymous(), published.Project.ID, http.StatusOK},
		{"anonymous draft", policy.Anonymous(), draft.Project.ID, http.StatusForbidden},
		{"anonymous missing", policy.Anonymous(), uuid.New(), http.StatusNotFound},
		{"operator draft", policy.Authenticated(uuid.New()), draft.Project.ID, http.StatusOK},
		{"operator missing", policy.Authenticated(uuid.New()), uuid.New(), http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newProjectRouter(h, tc.caller)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/"+tc.id.String(), nil))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestGetProjectBySlugVisibility(t *testing.T) {
	views := newFakeProjectViews()
	published := seedProjectView(views, models.StatusPublished)
	draft := seedProjectView(views, models.StatusDraft)
	h := newProjectHandler(newFakeProjectStore(), views)

	anon := newProjectRouter(h, policy.Anonymous())

	rec := httptest.NewRecorder()
	anon.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/slug/"+published.Project.Slug, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	anon.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/slug/"+draft.Project.Slug, nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	anon.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/slug/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPublishedProjects(t *testing.T) {
	views := newFakeProjectViews()
	seedProjectView(views, models.StatusPublished)
	seedProjectView(views, models.StatusDraft)
	seedProjectView(views, models.StatusArchived)
	h := newProjectHandler(newFakeProjectStore(), views)

	rec := httptest.NewRecorder()
	newProjectRouter(h, policy.Anonymous()).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/public", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.ProjectView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, models.StatusPublished, got[0].Status)
}

func TestCreateProject(t *testing.T) {
	store := newFakeProjectStore()
	h := newProjectHandler(store, newFakeProjectViews())
	operator := uuid.New()

	rec := httptest.NewRecorder()
	newProjectRouter(h, policy.Authenticated(operator)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/projects",
			strings.NewReader(`{"title":"Integração N8N!!","content":"# doc"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "integracao-n8n", got.Slug)
	assert.Equal(t, models.StatusDraft, got.Status)
	require.NotNil(t, got.AuthorID)
	assert.Equal(t, operator, *got.AuthorID)
}

func TestCreateProjectValidation(t *testing.T) {
	h := newProjectHandler(newFakeProjectStore(), newFakeProjectViews())
	router := newProjectRouter(h, policy.Authenticated(uuid.New()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/projects",
		strings.NewReader(`{"content":"no title"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/projects",
		strings.NewReader(`{"title":"x","status":"live"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"status"`)
}

func TestUpdateProjectSlugFollowsTitle(t *testing.T) {
	store := newFakeProjectStore()
	project := models.Project{Title: "Old", Slug: "old", Status: models.StatusDraft}
	require.NoError(t, store.Add(&project))
	h := newProjectHandler(store, newFakeProjectViews())
	router := newProjectRouter(h, policy.Authenticated(uuid.New()))

	// A title change recomputes the slug.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/projects/"+project.ID.String(),
		strings.NewReader(`{"title":"Automação Total"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "automacao-total", got.Slug)

	// A status-only change leaves the slug alone.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/projects/"+project.ID.String(),
		strings.NewReader(`{"status":"published"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "automacao-total", got.Slug)
	assert.Equal(t, models.StatusPublished, got.Status)
}

func TestUpdateProjectMissing(t *testing.T) {
	h := newProjectHandler(newFakeProjectStore(), newFakeProjectViews())
	router := newProjectRouter(h, policy.Authenticated(uuid.New()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/projects/"+uuid.NewString(),
		strings.NewReader(`{"title":"x"}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProject(t *testing.T) {
	store := newFakeProjectStore()
	project := models.Project{Title: "Doomed", Slug: "doomed"}
	require.NoError(t, store.Add(&project))
	h := newProjectHandler(store, newFakeProjectViews())
	router := newProjectRouter(h, policy.Authenticated(uuid.New()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/projects/"+project.ID.String(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/projects/"+project.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectInvalidID(t *testing.T) {
	h := newProjectHandler(newFakeProjectStore(), newFakeProjectViews())
	router := newProjectRouter(h, policy.Authenticated(uuid.New()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
