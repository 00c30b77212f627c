package api

import (
	"github.com/vortexlabs/portfolio-backend/assembler"
	"github.com/vortexlabs/portfolio-backend/config"
	"github.com/vortexlabs/portfolio-backend/database"
	"github.com/vortexlabs/portfolio-backend/services"
	"github.com/vortexlabs/portfolio-backend/session"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, sessions session.Store, storage services.ObjectStorage, cfg config.Config) *routeHandlers {
	views := assembler.New(db)

	return &routeHandlers{
		authHandler: newAuthHandler(
			db.UserRepo(), db.CategoryRepo(), db.ToolRepo(),
			sessions, []byte(cfg.SessionSecret), cfg.SessionTTL),
		categoryHandler: newCategoryHandler(db.CategoryRepo()),
		toolHandler:     newToolHandler(db.ToolRepo()),
		projectHandler:  newProjectHandler(db.ProjectRepo(), views),
		imageHandler:    newImageHandler(db.ProjectImageRepo(), db.ProjectRepo()),
		uploadHandler:   newUploadHandler(storage),
		exportHandler:   newExportHandler(services.NewExporter(db)),
	}
}
