package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/6394981696/Lecture-Scheduling/internal/apiclient"
	"github.com/6394981696/Lecture-Scheduling/internal/dto"
)

// AdminHandler serves the admin dashboard: course and instructor
// forms plus both lists.
type AdminHandler struct {
	courses     apiclient.CourseAPI
	instructors apiclient.InstructorAPI
	logger      *zap.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(courses apiclient.CourseAPI, instructors apiclient.InstructorAPI, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{courses: courses, instructors: instructors, logger: logger}
}

// Dashboard renders the admin dashboard with fresh lists.
// GET /admin
func (h *AdminHandler) Dashboard(c *gin.Context) {
	h.render(c, gin.H{})
}

// AddCourse validates and submits the course form.
// POST /admin/courses
func (h *AdminHandler) AddCourse(c *gin.Context) {
	var form dto.CourseForm
	_ = c.ShouldBind(&form)

	if err := form.Validate(); err != nil {
		h.render(c, gin.H{"CourseForm": form, "Flash": err.Error()})
		return
	}

	if _, err := h.courses.AddCourse(c.Request.Context(), form.Payload()); err != nil {
		h.render(c, gin.H{
			"CourseForm": form,
			"Flash":      h.failureMessage(err, "Failed to add course. Please try again."),
		})
		return
	}

	// success: draft resets and the list is re-fetched on landing
	c.Redirect(http.StatusSeeOther, "/admin")
}

// AddInstructor validates and submits the instructor form.
// POST /admin/instructors
func (h *AdminHandler) AddInstructor(c *gin.Context) {
	var form dto.InstructorForm
	_ = c.ShouldBind(&form)

	if err := form.Validate(); err != nil {
		h.render(c, gin.H{"InstructorForm": form, "Flash": err.Error()})
		return
	}

	if _, err := h.instructors.AddInstructor(c.Request.Context(), form.Payload()); err != nil {
		h.render(c, gin.H{
			"InstructorForm": form,
			"Flash":          h.failureMessage(err, "Failed to add instructor. Please try again."),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

// render fetches both lists and renders the dashboard. A fetch
// failure degrades to an empty list with a notification; the page
// stays usable and retryable.
func (h *AdminHandler) render(c *gin.Context, extra gin.H) {
	ctx := c.Request.Context()

	courses, err := h.courses.ListCourses(ctx)
	if err != nil {
		h.logger.Error("fetching courses failed", zap.Error(err))
		if _, ok := extra["Flash"]; !ok {
			extra["Flash"] = "Failed to fetch courses. Please check your connection."
		}
	}

	instructors, err := h.instructors.ListInstructors(ctx)
	if err != nil {
		h.logger.Error("fetching instructors failed", zap.Error(err))
		if _, ok := extra["Flash"]; !ok {
			extra["Flash"] = "Failed to fetch instructors. Please check your connection."
		}
	}

	data := gin.H{
		"Courses":        courses,
		"Instructors":    instructors,
		"CourseForm":     dto.CourseForm{},
		"InstructorForm": dto.InstructorForm{},
	}
	for k, v := range extra {
		data[k] = v
	}

	c.HTML(http.StatusOK, "admin", pageData(c, "Admin", data))
}

func (h *AdminHandler) failureMessage(err error, fallback string) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	h.logger.Error("admin request failed", zap.Error(err))
	return fallback
}
