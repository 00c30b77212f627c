package database

import (
	"github.com/google/uuid"
	"github.com/vortexlabs/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	userRepo         *UserRepo
	categoryRepo     *CategoryRepo
	toolRepo         *ToolRepo
	projectRepo      *ProjectRepo
	projectImageRepo *ProjectImageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:         NewUserRepo(db),
		categoryRepo:     NewCategoryRepo(db),
		toolRepo:         NewToolRepo(db),
		projectRepo:      NewProjectRepo(db),
		projectImageRepo: NewProjectImageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ToolRepo() *ToolRepo {
	return d.toolRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectImageRepo() *ProjectImageRepo {
	return d.projectImageRepo
}

// Read delegates so the relation assembler can depend on one narrow
// surface instead of five repositories.

func (d Database) ProjectByID(id uuid.UUID) (*models.Project, error) {
	return d.projectRepo.FindByID(id)
}

func (d Database) ProjectBySlug(slug string) (*models.Project, error) {
	return d.projectRepo.FindBySlug(slug)
}

func (d Database) AllProjects() ([]models.Project, error) {
	return d.projectRepo.FindAll()
}

func (d Database) PublishedProjects() ([]models.Project, error) {
	return d.projectRepo.FindPublished()
}

func (d Database) CategoryByID(id uuid.UUID) (*models.Category, error) {
	return d.categoryRepo.FindByID(id)
}

func (d Database) ToolByID(id uuid.UUID) (*models.Tool, error) {
	return d.toolRepo.FindByID(id)
}

func (d Database) UserByID(id uuid.UUID) (*models.User, error) {
	return d.userRepo.FindByID(id)
}

func (d Database) ImagesByProject(projectID uuid.UUID) ([]models.ProjectImage, error) {
	return d.projectImageRepo.FindByProject(projectID)
}

func (d Database) AllCategories() ([]models.Category, error) {
	return d.categoryRepo.FindAll()
}

func (d Database) AllTools() ([]models.Tool, error) {
	return d.toolRepo.FindAll()
}
