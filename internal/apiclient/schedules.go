package apiclient

import (
	"context"
	"net/url"
)

// ScheduleItem is one upcoming lecture in an instructor's schedule.
// Date keeps the upstream value untouched; display formatting happens
// at render time.
type ScheduleItem struct {
	Course   string `json:"course"`
	Lecture  string `json:"lecture"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// NewScheduleEntry is the payload for scheduling a lecture.
type NewScheduleEntry struct {
	Instructor string `json:"instructor"`
	Date       string `json:"date"`
	Lecture    string `json:"lecture"`
	Location   string `json:"location"`
}

// ScheduleAPI covers the upstream schedule endpoints.
type ScheduleAPI interface {
	GetUserSchedule(ctx context.Context, username string) ([]ScheduleItem, error)
	AddScheduleEntry(ctx context.Context, entry NewScheduleEntry) error
}

type getScheduleResponse struct {
	Schedules []ScheduleItem `json:"schedules"`
}

// GetUserSchedule fetches the schedule for one instructor, filtered
// upstream by username.
// GET /schedules?username=...
func (c *Client) GetUserSchedule(ctx context.Context, username string) ([]ScheduleItem, error) {
	q := url.Values{}
	q.Set("username", username)

	var resp getScheduleResponse
	if err := c.get(ctx, "/schedules", q, &resp); err != nil {
		return nil, err
	}
	return resp.Schedules, nil
}

// AddScheduleEntry schedules a lecture.
// POST /schedules
func (c *Client) AddScheduleEntry(ctx context.Context, entry NewScheduleEntry) error {
	return c.post(ctx, "/schedules", entry, nil)
}
