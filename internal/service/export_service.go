package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/6394981696/Lecture-Scheduling/internal/apiclient"
)

var (
	ErrExportNoLectures = errors.New("no upcoming lectures to export")
)

// ExportService builds downloadable renditions of an instructor's
// lecture schedule.
type ExportService interface {
	// ScheduleWorkbook renders the schedule as an Excel workbook.
	ScheduleWorkbook(ctx context.Context, username string) (*bytes.Buffer, string, error)
	// ScheduleCalendar renders the schedule as an iCalendar feed.
	ScheduleCalendar(ctx context.Context, username string) (*bytes.Buffer, string, error)
}

type exportService struct {
	api    apiclient.ScheduleAPI
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(api apiclient.ScheduleAPI, logger *zap.Logger) ExportService {
	return &exportService{api: api, logger: logger}
}

const worksheetName = "Lecture Schedule"

func (s *exportService) ScheduleWorkbook(ctx context.Context, username string) (*bytes.Buffer, string, error) {
	items, err := s.fetch(ctx, username)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", worksheetName)

	headers := []string{"Course", "Lecture", "Date", "Location"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", fmt.Errorf("building header cell: %w", err)
		}
		if err := f.SetCellValue(worksheetName, cell, h); err != nil {
			return nil, "", fmt.Errorf("writing header: %w", err)
		}
	}

	for row, item := range items {
		values := []string{item.Course, item.Lecture, item.Date, item.Location}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, "", fmt.Errorf("building cell: %w", err)
			}
			if err := f.SetCellValue(worksheetName, cell, v); err != nil {
				return nil, "", fmt.Errorf("writing cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("generating schedule workbook failed", zap.Error(err))
		return nil, "", fmt.Errorf("generating workbook: %w", err)
	}

	return buf, fmt.Sprintf("schedule-%s.xlsx", username), nil
}

func (s *exportService) ScheduleCalendar(ctx context.Context, username string) (*bytes.Buffer, string, error) {
	items, err := s.fetch(ctx, username)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Lecture Scheduling//EN")

	for i, item := range items {
		event := cal.AddEvent(fmt.Sprintf("%s-%d@lecture-scheduling", username, i))
		event.SetSummary(fmt.Sprintf("%s: %s", item.Course, item.Lecture))
		event.SetLocation(item.Location)

		if start, ok := parseScheduleDate(item.Date); ok {
			event.SetStartAt(start)
			event.SetEndAt(start.Add(time.Hour))
		} else {
			// unparseable dates still export, carried in the description
			event.SetDescription("Date: " + item.Date)
		}
	}

	var buf bytes.Buffer
	if err := cal.SerializeTo(&buf); err != nil {
		s.logger.Error("generating schedule calendar failed", zap.Error(err))
		return nil, "", fmt.Errorf("generating calendar: %w", err)
	}

	return &buf, fmt.Sprintf("schedule-%s.ics", username), nil
}

func (s *exportService) fetch(ctx context.Context, username string) ([]apiclient.ScheduleItem, error) {
	items, err := s.api.GetUserSchedule(ctx, username)
	if err != nil {
		s.logger.Error("fetching schedule for export failed",
			zap.String("username", username), zap.Error(err))
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrExportNoLectures
	}
	return items, nil
}

// parseScheduleDate accepts the date formats the upstream API has
// been seen returning.
func parseScheduleDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
