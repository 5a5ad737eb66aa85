package dto

import (
	"errors"

	"github.com/6394981696/Lecture-Scheduling/internal/apiclient"
)

// LectureForm is the schedule-a-lecture draft state on the course
// detail page. Instructor is picked from the populated select, never
// free text; ValidateAgainst re-checks that server-side.
type LectureForm struct {
	Instructor string `form:"instructor"`
	Date       string `form:"date"`
	Lecture    string `form:"lecture"`
	Location   string `form:"location"`
}

// Validate checks that every field is present.
func (f *LectureForm) Validate() error {
	if f.Instructor == "" {
		return errors.New("Select an instructor.")
	}
	if f.Date == "" {
		return errors.New("Date is required.")
	}
	if f.Lecture == "" {
		return errors.New("Lecture topic is required.")
	}
	if f.Location == "" {
		return errors.New("Location is required.")
	}
	return nil
}

// ValidateAgainst runs Validate and additionally requires the chosen
// instructor to be one of the known ones.
func (f *LectureForm) ValidateAgainst(instructors []apiclient.Instructor) error {
	if err := f.Validate(); err != nil {
		return err
	}
	for _, ins := range instructors {
		if ins.Name == f.Instructor {
			return nil
		}
	}
	return errors.New("Select an instructor.")
}

// Payload converts the validated form into the upstream request.
func (f *LectureForm) Payload() apiclient.NewScheduleEntry {
	return apiclient.NewScheduleEntry{
		Instructor: f.Instructor,
		Date:       f.Date,
		Lecture:    f.Lecture,
		Location:   f.Location,
	}
}
