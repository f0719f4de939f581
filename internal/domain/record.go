package domain

import "time"

// WorkTimeRecord is one start/stop session. A nil EndTime marks a session
// that is still in progress.
type WorkTimeRecord struct {
	StartTime time.Time
	EndTime   *time.Time
}

func (r WorkTimeRecord) IsOpen() bool {
	return r.EndTime == nil
}

// Duration returns the length of the session. Open sessions are measured
// up to now.
func (r WorkTimeRecord) Duration(now time.Time) time.Duration {
	end := now
	if r.EndTime != nil {
		end = *r.EndTime
	}
	if end.Before(r.StartTime) {
		return 0
	}
	return end.Sub(r.StartTime)
}

// Equal compares instants, ignoring location and monotonic readings.
func (r WorkTimeRecord) Equal(o WorkTimeRecord) bool {
	if !r.StartTime.Equal(o.StartTime) {
		return false
	}
	if r.EndTime == nil || o.EndTime == nil {
		return r.EndTime == nil && o.EndTime == nil
	}
	return r.EndTime.Equal(*o.EndTime)
}

// ValidateRecord checks a candidate record against the current time.
// A start after now or an end before the start is rejected. Sessions
// longer than 24 hours pass but are reported as an advisory.
func ValidateRecord(start time.Time, end *time.Time, now time.Time) ([]Advisory, error) {
	if start.After(now) {
		return nil, ErrFutureStart
	}
	if end == nil {
		return nil, nil
	}
	if end.Before(start) {
		return nil, ErrEndBeforeStart
	}
	if end.Sub(start) > 24*time.Hour {
		return []Advisory{AdvisoryLongSession}, nil
	}
	return nil, nil
}
