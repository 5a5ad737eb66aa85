package apiclient

import "context"

// Instructor is an instructor as stored upstream. Schedule entries
// reference instructors by name; that is the upstream contract.
type Instructor struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewInstructor is the payload for creating an instructor.
type NewInstructor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// InstructorAPI covers the upstream instructor endpoints.
type InstructorAPI interface {
	ListInstructors(ctx context.Context) ([]Instructor, error)
	AddInstructor(ctx context.Context, instructor NewInstructor) (*Instructor, error)
}

type listInstructorsResponse struct {
	Instructors []Instructor `json:"instructors"`
}

type addInstructorResponse struct {
	Instructor Instructor `json:"instructor"`
}

// ListInstructors fetches all instructors.
// GET /instructors
func (c *Client) ListInstructors(ctx context.Context) ([]Instructor, error) {
	var resp listInstructorsResponse
	if err := c.get(ctx, "/instructors", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Instructors, nil
}

// AddInstructor creates an instructor.
// POST /instructors
func (c *Client) AddInstructor(ctx context.Context, instructor NewInstructor) (*Instructor, error) {
	var resp addInstructorResponse
	if err := c.post(ctx, "/instructors", instructor, &resp); err != nil {
		return nil, err
	}
	return &resp.Instructor, nil
}
