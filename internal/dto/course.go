package dto

import (
	"errors"

	"github.com/6394981696/Lecture-Scheduling/internal/apiclient"
)

// CourseForm is the add-course draft state on the admin dashboard.
type CourseForm struct {
	Name        string `form:"name"`
	Level       string `form:"level"`
	Description string `form:"description"`
	Image       string `form:"image"`
}

// Validate checks the course rules. Image is optional.
func (f *CourseForm) Validate() error {
	if f.Name == "" {
		return errors.New("Course name is required.")
	}
	switch f.Level {
	case apiclient.LevelBeginner, apiclient.LevelIntermediate, apiclient.LevelAdvanced:
	default:
		return errors.New("Select a course level.")
	}
	if f.Description == "" {
		return errors.New("Description is required.")
	}
	return nil
}

// Payload converts the validated form into the upstream request.
func (f *CourseForm) Payload() apiclient.NewCourse {
	return apiclient.NewCourse{
		Name:        f.Name,
		Level:       f.Level,
		Description: f.Description,
		Image:       f.Image,
	}
}
