package domain

import (
	"fmt"
	"time"
)

// ManyRecordsThreshold is the record count from which a new start is
// reported as unusual.
const ManyRecordsThreshold = 10

// DayState is the tracked state of the current calendar day.
type DayState struct {
	CurrentStatus WorkStatus
	TodayRecords  []WorkTimeRecord
	LastUpdated   time.Time
}

// NewDayState returns an empty, free state stamped with now.
func NewDayState(now time.Time) DayState {
	return DayState{
		CurrentStatus: StatusFree,
		TodayRecords:  []WorkTimeRecord{},
		LastUpdated:   now,
	}
}

// LastRecord returns the most recent record, or nil when there are none.
func (s *DayState) LastRecord() *WorkTimeRecord {
	if len(s.TodayRecords) == 0 {
		return nil
	}
	return &s.TodayRecords[len(s.TodayRecords)-1]
}

// OpenRecord returns the trailing open record, or nil.
func (s *DayState) OpenRecord() *WorkTimeRecord {
	last := s.LastRecord()
	if last == nil || !last.IsOpen() {
		return nil
	}
	return last
}

// DerivedStatus is the status implied by the records alone.
func (s DayState) DerivedStatus() WorkStatus {
	if s.OpenRecord() != nil {
		return StatusWorking
	}
	return StatusFree
}

// CheckInvariants verifies that only the last record may be open and that
// closed records do not end before they start.
func (s DayState) CheckInvariants() error {
	n := len(s.TodayRecords)
	for i, r := range s.TodayRecords {
		if r.IsOpen() {
			if i != n-1 {
				return fmt.Errorf("record %d is open but not last", i+1)
			}
			continue
		}
		if r.EndTime.Before(r.StartTime) {
			return fmt.Errorf("record %d: %w", i+1, ErrEndBeforeStart)
		}
	}
	return nil
}

// ReferenceTime is the instant used to decide which day the state belongs
// to: the start of the latest record, or LastUpdated when there is none.
func (s DayState) ReferenceTime() time.Time {
	if last := s.LastRecord(); last != nil {
		return last.StartTime
	}
	return s.LastUpdated
}

// WorkedDuration sums every record, counting an open one up to now.
func (s DayState) WorkedDuration(now time.Time) time.Duration {
	var total time.Duration
	for _, r := range s.TodayRecords {
		total += r.Duration(now)
	}
	return total
}

// Clone returns a deep copy so callers cannot alias the owner's records.
func (s DayState) Clone() DayState {
	out := s
	out.TodayRecords = make([]WorkTimeRecord, len(s.TodayRecords))
	for i, r := range s.TodayRecords {
		out.TodayRecords[i] = WorkTimeRecord{StartTime: r.StartTime}
		if r.EndTime != nil {
			end := *r.EndTime
			out.TodayRecords[i].EndTime = &end
		}
	}
	return out
}

func (s DayState) Equal(o DayState) bool {
	if s.CurrentStatus != o.CurrentStatus || !s.LastUpdated.Equal(o.LastUpdated) {
		return false
	}
	if len(s.TodayRecords) != len(o.TodayRecords) {
		return false
	}
	for i := range s.TodayRecords {
		if !s.TodayRecords[i].Equal(o.TodayRecords[i]) {
			return false
		}
	}
	return true
}

// SameDay reports whether a and b fall on the same calendar date in b's
// location.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.In(b.Location()).Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DayKeyPrefix prefixes every stored day entry.
const DayKeyPrefix = "timecard_"

// DayKey returns the storage key for the calendar date of t.
func DayKey(t time.Time) string {
	return DayKeyPrefix + t.Format("2006-01-02")
}
