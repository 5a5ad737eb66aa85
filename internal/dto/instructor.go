package dto

import (
	"errors"

	"github.com/6394981696/Lecture-Scheduling/internal/apiclient"
)

// InstructorForm is the add-instructor draft state on the admin
// dashboard.
type InstructorForm struct {
	Name  string `form:"name"`
	Email string `form:"email"`
}

// Validate checks the instructor rules.
func (f *InstructorForm) Validate() error {
	if f.Name == "" {
		return errors.New("Instructor name is required.")
	}
	if f.Email == "" {
		return errors.New("Instructor email is required.")
	}
	return nil
}

// Payload converts the validated form into the upstream request.
func (f *InstructorForm) Payload() apiclient.NewInstructor {
	return apiclient.NewInstructor{Name: f.Name, Email: f.Email}
}
