package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/6394981696/Lecture-Scheduling/internal/api/middleware"
	"github.com/6394981696/Lecture-Scheduling/internal/service"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar"
)

// ExportHandler serves schedule downloads for the signed-in
// instructor.
type ExportHandler struct {
	exportSvc service.ExportService
	logger    *zap.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, logger: logger}
}

// Workbook downloads the schedule as an Excel workbook.
// GET /instructor/export/xlsx
func (h *ExportHandler) Workbook(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	buf, filename, err := h.exportSvc.ScheduleWorkbook(c.Request.Context(), p.Username)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, xlsxContentType, filename, buf.Bytes())
}

// Calendar downloads the schedule as an iCalendar feed.
// GET /instructor/export/ics
func (h *ExportHandler) Calendar(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	buf, filename, err := h.exportSvc.ScheduleCalendar(c.Request.Context(), p.Username)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, icsContentType, filename, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrExportNoLectures) {
		setFlash(c, "No upcoming lectures found.")
	} else {
		h.logger.Error("schedule export failed", zap.Error(err))
		setFlash(c, "Export failed. Please try again.")
	}
	c.Redirect(http.StatusSeeOther, "/instructor")
}

func writeDownload(c *gin.Context, contentType, filename string, body []byte) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, contentType, body)
}
