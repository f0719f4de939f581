package testutil

import (
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
)

// Day is the calendar date most fixtures are pinned to.
var Day = time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)

// At returns hour:min on Day in local time.
func At(hour, min int) time.Time {
	return time.Date(Day.Year(), Day.Month(), Day.Day(), hour, min, 0, 0, time.Local)
}

// Closed builds a finished record.
func Closed(start, end time.Time) domain.WorkTimeRecord {
	return domain.WorkTimeRecord{StartTime: start, EndTime: &end}
}

// Open builds an in-progress record.
func Open(start time.Time) domain.WorkTimeRecord {
	return domain.WorkTimeRecord{StartTime: start}
}

// StateOption customises a fixture DayState.
type StateOption func(*domain.DayState)

func WithRecords(records ...domain.WorkTimeRecord) StateOption {
	return func(s *domain.DayState) {
		s.TodayRecords = append(s.TodayRecords, records...)
		s.CurrentStatus = s.DerivedStatus()
	}
}

func WithStatus(status domain.WorkStatus) StateOption {
	return func(s *domain.DayState) {
		s.CurrentStatus = status
	}
}

func WithLastUpdated(t time.Time) StateOption {
	return func(s *domain.DayState) {
		s.LastUpdated = t
	}
}

// NewTestDayState returns a free state for Day, last updated at 08:00.
func NewTestDayState(opts ...StateOption) domain.DayState {
	s := domain.NewDayState(At(8, 0))
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
