package repository

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/timecard/internal/domain"
)

// dayStateDoc is the stored JSON layout of a DayState.
type dayStateDoc struct {
	CurrentStatus string      `json:"currentStatus"`
	TodayRecords  []recordDoc `json:"todayRecords"`
	LastUpdated   string      `json:"lastUpdated"`
}

type recordDoc struct {
	StartTime string  `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

// EncodeDayState serializes s with ISO-8601 timestamps. An open record is
// written with a null endTime.
func EncodeDayState(s domain.DayState) ([]byte, error) {
	doc := dayStateDoc{
		CurrentStatus: string(s.CurrentStatus),
		TodayRecords:  make([]recordDoc, 0, len(s.TodayRecords)),
		LastUpdated:   formatTimestamp(s.LastUpdated),
	}
	for _, r := range s.TodayRecords {
		rd := recordDoc{StartTime: formatTimestamp(r.StartTime)}
		if r.EndTime != nil {
			end := formatTimestamp(*r.EndTime)
			rd.EndTime = &end
		}
		doc.TodayRecords = append(doc.TodayRecords, rd)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding day state: %w", err)
	}
	return data, nil
}

// DecodeDayState parses a stored DayState. Malformed JSON, unparseable
// timestamps, an unknown status or records that break the open-record
// rules all yield an error wrapping ErrCorrupt.
//
// The stored status is returned as written even when it disagrees with
// the records; reconciling the two is the caller's decision.
func DecodeDayState(data []byte) (*domain.DayState, error) {
	var doc dayStateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	status := domain.WorkStatus(doc.CurrentStatus)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrCorrupt, doc.CurrentStatus)
	}

	lastUpdated, err := parseTimestamp(doc.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("%w: lastUpdated: %v", ErrCorrupt, err)
	}

	s := &domain.DayState{
		CurrentStatus: status,
		TodayRecords:  make([]domain.WorkTimeRecord, 0, len(doc.TodayRecords)),
		LastUpdated:   lastUpdated,
	}
	for i, rd := range doc.TodayRecords {
		start, err := parseTimestamp(rd.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d startTime: %v", ErrCorrupt, i+1, err)
		}
		rec := domain.WorkTimeRecord{StartTime: start}
		if rd.EndTime != nil {
			end, err := parseTimestamp(*rd.EndTime)
			if err != nil {
				return nil, fmt.Errorf("%w: record %d endTime: %v", ErrCorrupt, i+1, err)
			}
			rec.EndTime = &end
		}
		s.TodayRecords = append(s.TodayRecords, rec)
	}

	if err := s.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return s, nil
}
