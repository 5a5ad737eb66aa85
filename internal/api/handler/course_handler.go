package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/6394981696/Lecture-Scheduling/internal/apiclient"
	"github.com/6394981696/Lecture-Scheduling/internal/dto"
)

// CourseHandler serves the course detail page with its
// schedule-a-lecture form.
type CourseHandler struct {
	courses     apiclient.CourseAPI
	instructors apiclient.InstructorAPI
	schedules   apiclient.ScheduleAPI
	logger      *zap.Logger
}

// NewCourseHandler creates a CourseHandler.
func NewCourseHandler(
	courses apiclient.CourseAPI,
	instructors apiclient.InstructorAPI,
	schedules apiclient.ScheduleAPI,
	logger *zap.Logger,
) *CourseHandler {
	return &CourseHandler{courses: courses, instructors: instructors, schedules: schedules, logger: logger}
}

// Show renders one course with the lecture scheduling form.
// GET /individual-course/:courseId
func (h *CourseHandler) Show(c *gin.Context) {
	course, instructors, ok := h.load(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "course", pageData(c, course.Name, gin.H{
		"Course":      course,
		"Instructors": instructors,
		"Form":        dto.LectureForm{},
	}))
}

// Schedule validates and submits the lecture form.
// POST /individual-course/:courseId/schedule
func (h *CourseHandler) Schedule(c *gin.Context) {
	course, instructors, ok := h.load(c)
	if !ok {
		return
	}

	var form dto.LectureForm
	_ = c.ShouldBind(&form)

	if err := form.ValidateAgainst(instructors); err != nil {
		c.HTML(http.StatusOK, "course", pageData(c, course.Name, gin.H{
			"Course":      course,
			"Instructors": instructors,
			"Form":        form,
			"Flash":       err.Error(),
		}))
		return
	}

	if err := h.schedules.AddScheduleEntry(c.Request.Context(), form.Payload()); err != nil {
		msg := "Failed to schedule lecture. Please try again."
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			msg = apiErr.Message
		} else {
			h.logger.Error("scheduling lecture failed", zap.Error(err))
		}
		c.HTML(http.StatusOK, "course", pageData(c, course.Name, gin.H{
			"Course":      course,
			"Instructors": instructors,
			"Form":        form,
			"Flash":       msg,
		}))
		return
	}

	setFlash(c, "Lecture scheduled.")
	c.Redirect(http.StatusSeeOther, "/individual-course/"+course.ID)
}

// load resolves the course from the path and the instructor list for
// the select. The upstream API has no fetch-one endpoint, so the
// course is picked out of the full list.
func (h *CourseHandler) load(c *gin.Context) (*apiclient.Course, []apiclient.Instructor, bool) {
	ctx := c.Request.Context()
	courseID := c.Param("courseId")

	courses, err := h.courses.ListCourses(ctx)
	if err != nil {
		h.logger.Error("fetching courses failed", zap.Error(err))
		setFlash(c, "Failed to fetch courses. Please check your connection.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return nil, nil, false
	}

	var course *apiclient.Course
	for i := range courses {
		if courses[i].ID == courseID {
			course = &courses[i]
			break
		}
	}
	if course == nil {
		NotFound(c)
		return nil, nil, false
	}

	instructors, err := h.instructors.ListInstructors(ctx)
	if err != nil {
		h.logger.Error("fetching instructors failed", zap.Error(err))
		// the page still renders; the select shows its empty state
	}

	return course, instructors, true
}
