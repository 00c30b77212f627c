package services

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vortexlabs/portfolio-backend/models"
)

type fakeSource struct {
	categories []models.Category
	tools      []models.Tool
	projects   []models.Project
	images     map[uuid.UUID][]models.ProjectImage
	users      map[uuid.UUID]models.User
}

func (f *fakeSource) AllCategories() ([]models.Category, error) { return f.categories, nil }
func (f *fakeSource) AllTools() ([]models.Tool, error)          { return f.tools, nil }
func (f *fakeSource) AllProjects() ([]models.Project, error)    { return f.projects, nil }

func (f *fakeSource) ImagesByProject(projectID uuid.UUID) ([]models.ProjectImage, error) {
	return f.images[projectID], nil
}

func (f *fakeSource) UserByID(id uuid.UUID) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func TestExport(t *testing.T) {
	author := models.User{
		ID:       uuid.New(),
		Email:    "admin@sistema.com",
		Name:     "Admin",
		Password: "$2a$10$secret-hash",
	}
	missingAuthor := uuid.New()
	first := models.Project{ID: uuid.New(), Slug: "first", AuthorID: &author.ID}
	second := models.Project{ID: uuid.New(), Slug: "second", AuthorID: &author.ID}
	orphan := models.Project{ID: uuid.New(), Slug: "orphan", AuthorID: &missingAuthor}

	source := &fakeSource{
		categories: []models.Category{{ID: uuid.New(), Name: "N8N", Slug: "n8n"}},
		tools:      []models.Tool{{ID: uuid.New(), Name: "Make", Slug: "make"}},
		projects:   []models.Project{first, second, orphan},
		images: map[uuid.UUID][]models.ProjectImage{
			first.ID: {
				{ID: uuid.New(), ProjectID: first.ID, URL: "https://cdn.example/1.png"},
				{ID: uuid.New(), ProjectID: first.ID, URL: "https://cdn.example/2.png"},
			},
		},
		users: map[uuid.UUID]models.User{author.ID: author},
	}

	doc, err := NewExporter(source).Export()
	require.NoError(t, err)

	assert.Len(t, doc.Categories, 1)
	assert.Len(t, doc.Tools, 1)
	assert.Len(t, doc.Projects, 3)
	assert.Len(t, doc.Images, 2)
	assert.Len(t, doc.Users, 1, "authors are deduplicated, dangling authors skipped")
	assert.False(t, doc.ExportedAt.IsZero())

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-hash", "export must never carry password hashes")
}

func TestExportEmptyStore(t *testing.T) {
	doc, err := NewExporter(&fakeSource{}).Export()
	require.NoError(t, err)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	// Collections serialize as arrays even when empty.
	assert.Contains(t, string(raw), `"users":[]`)
	assert.Contains(t, string(raw), `"images":[]`)
}
