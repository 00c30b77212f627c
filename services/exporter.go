package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/vortexlabs/portfolio-backend/models"
)

// ExportDocument is the downloadable snapshot of the content store.
// Users are included in redacted form only.
type ExportDocument struct {
	ExportedAt time.Time             `json:"exportedAt"`
	Users      []models.PublicUser   `json:"users"`
	Categories []models.Category     `json:"categories"`
	Tools      []models.Tool         `json:"tools"`
	Projects   []models.Project      `json:"projects"`
	Images     []models.ProjectImage `json:"images"`
}

// ExportSource is the read surface the exporter walks.
// database.Database satisfies it.
type ExportSource interface {
	AllCategories() ([]models.Category, error)
	AllTools() ([]models.Tool, error)
	AllProjects() ([]models.Project, error)
	ImagesByProject(projectID uuid.UUID) ([]models.ProjectImage, error)
	UserByID(id uuid.UUID) (*models.User, error)
}

// Exporter serializes current store contents for download. Import is
// intentionally not implemented; the handler parses and logs only.
type Exporter struct {
	source ExportSource
}

func NewExporter(source ExportSource) Exporter {
	return Exporter{source: source}
}

func (e Exporter) Export() (*ExportDocument, error) {
	doc := ExportDocument{
		ExportedAt: time.Now(),
		Users:      []models.PublicUser{},
		Images:     []models.ProjectImage{},
	}

	categories, err := e.source.AllCategories()
	if err != nil {
		return nil, err
	}
	doc.Categories = categories

	tools, err := e.source.AllTools()
	if err != nil {
		return nil, err
	}
	doc.Tools = tools

	projects, err := e.source.AllProjects()
	if err != nil {
		return nil, err
	}
	doc.Projects = projects

	seenAuthors := map[uuid.UUID]bool{}
	for _, p := range projects {
		images, err := e.source.ImagesByProject(p.ID)
		if err != nil {
			return nil, err
		}
		doc.Images = append(doc.Images, images...)

		if p.AuthorID == nil || seenAuthors[*p.AuthorID] {
			continue
		}
		seenAuthors[*p.AuthorID] = true
		author, err := e.source.UserByID(*p.AuthorID)
		if err != nil {
			return nil, err
		}
		if author != nil {
			doc.Users = append(doc.Users, author.Public())
		}
	}

	return &doc, nil
}
