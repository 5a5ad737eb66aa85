package apiclient

import "context"

// Course levels accepted by the upstream API.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course is a course as stored upstream.
type Course struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Level       string `json:"level"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// NewCourse is the payload for creating a course. Image is optional.
type NewCourse struct {
	Name        string `json:"name"`
	Level       string `json:"level"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CourseAPI covers the upstream course endpoints.
type CourseAPI interface {
	ListCourses(ctx context.Context) ([]Course, error)
	AddCourse(ctx context.Context, course NewCourse) (*Course, error)
}

type listCoursesResponse struct {
	Courses []Course `json:"courses"`
}

type addCourseResponse struct {
	Course Course `json:"course"`
}

// ListCourses fetches all courses.
// GET /courses
func (c *Client) ListCourses(ctx context.Context) ([]Course, error) {
	var resp listCoursesResponse
	if err := c.get(ctx, "/courses", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Courses, nil
}

// AddCourse creates a course.
// POST /courses
func (c *Client) AddCourse(ctx context.Context, course NewCourse) (*Course, error) {
	var resp addCourseResponse
	if err := c.post(ctx, "/courses", course, &resp); err != nil {
		return nil, err
	}
	return &resp.Course, nil
}
