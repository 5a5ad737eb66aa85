package handler

import (
	"go.uber.org/zap"

	"github.com/6394981696/Lecture-Scheduling/config"
	"github.com/6394981696/Lecture-Scheduling/internal/apiclient"
	"github.com/6394981696/Lecture-Scheduling/internal/service"
	"github.com/6394981696/Lecture-Scheduling/internal/session"
	"github.com/6394981696/Lecture-Scheduling/pkg/token"
)

// Handler aggregates the per-view handlers.
type Handler struct {
	Auth       *AuthHandler
	Admin      *AdminHandler
	Course     *CourseHandler
	Instructor *InstructorHandler
	Export     *ExportHandler
}

// NewHandler wires the handlers to the API client, session store and
// export service.
func NewHandler(
	cfg *config.Config,
	api *apiclient.Client,
	store session.Store,
	tokens *token.Manager,
	exportSvc service.ExportService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(api, store, tokens, &cfg.Session, logger),
		Admin:      NewAdminHandler(api, api, logger),
		Course:     NewCourseHandler(api, api, api, logger),
		Instructor: NewInstructorHandler(api, api, logger),
		Export:     NewExportHandler(exportSvc, logger),
	}
}
