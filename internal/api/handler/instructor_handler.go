package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/6394981696/Lecture-Scheduling/internal/api/middleware"
	"github.com/6394981696/Lecture-Scheduling/internal/apiclient"
)

// InstructorHandler serves the instructor dashboard and the admin's
// per-instructor detail page.
type InstructorHandler struct {
	instructors apiclient.InstructorAPI
	schedules   apiclient.ScheduleAPI
	logger      *zap.Logger
}

// NewInstructorHandler creates an InstructorHandler.
func NewInstructorHandler(instructors apiclient.InstructorAPI, schedules apiclient.ScheduleAPI, logger *zap.Logger) *InstructorHandler {
	return &InstructorHandler{instructors: instructors, schedules: schedules, logger: logger}
}

// Dashboard renders the signed-in instructor's upcoming lectures.
// GET /instructor
func (h *InstructorHandler) Dashboard(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	schedules, err := h.schedules.GetUserSchedule(c.Request.Context(), p.Username)
	data := gin.H{"Schedules": schedules}
	if err != nil {
		h.logger.Error("fetching schedule failed",
			zap.String("username", p.Username), zap.Error(err))
		data["Flash"] = "Failed to fetch schedule. Please try again."
	}

	c.HTML(http.StatusOK, "instructor", pageData(c, "Your Lectures", data))
}

// Show renders one instructor and their scheduled lectures.
// GET /individual-instructor/:username
func (h *InstructorHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.Param("username")

	instructors, err := h.instructors.ListInstructors(ctx)
	if err != nil {
		h.logger.Error("fetching instructors failed", zap.Error(err))
		setFlash(c, "Failed to fetch instructors. Please check your connection.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	var instructor *apiclient.Instructor
	for i := range instructors {
		if instructors[i].Name == username {
			instructor = &instructors[i]
			break
		}
	}
	if instructor == nil {
		NotFound(c)
		return
	}

	schedules, err := h.schedules.GetUserSchedule(ctx, username)
	data := gin.H{"Instructor": instructor, "Schedules": schedules}
	if err != nil {
		h.logger.Error("fetching schedule failed",
			zap.String("username", username), zap.Error(err))
		data["Flash"] = "Failed to fetch schedule. Please try again."
	}

	c.HTML(http.StatusOK, "instructor_detail", pageData(c, instructor.Name, data))
}
