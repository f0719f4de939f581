package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 15, hour, min, 0, 0, time.UTC)
}

func closed(start, end time.Time) WorkTimeRecord {
	return WorkTimeRecord{StartTime: start, EndTime: &end}
}

func TestValidateRecord(t *testing.T) {
	cases := []struct {
		name     string
		start    time.Time
		end      *time.Time
		wantErr  error
		advisory []Advisory
	}{
		{"open start now", testNow, nil, nil, nil},
		{"open start in past", at(8, 0), nil, nil, nil},
		{"future start", testNow.Add(time.Second), nil, ErrFutureStart, nil},
		{"end before start", at(9, 0), ptr(at(8, 59)), ErrEndBeforeStart, nil},
		{"zero length", at(9, 0), ptr(at(9, 0)), nil, nil},
		{"normal", at(9, 0), ptr(at(9, 30)), nil, nil},
		{"long session", testNow.Add(-30 * time.Hour), ptr(testNow), nil, []Advisory{AdvisoryLongSession}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			adv, err := ValidateRecord(tc.start, tc.end, testNow)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.advisory, adv)
		})
	}
}

func TestValidateRecord_ExactlyTwentyFourHoursIsNotAdvisory(t *testing.T) {
	start := testNow.Add(-24 * time.Hour)
	adv, err := ValidateRecord(start, &testNow, testNow)
	require.NoError(t, err)
	assert.Empty(t, adv)
}

func TestDayState_DerivedStatus(t *testing.T) {
	s := NewDayState(testNow)
	assert.Equal(t, StatusFree, s.DerivedStatus())
	assert.Nil(t, s.OpenRecord())

	s.TodayRecords = append(s.TodayRecords, closed(at(8, 0), at(9, 0)))
	assert.Equal(t, StatusFree, s.DerivedStatus())

	s.TodayRecords = append(s.TodayRecords, WorkTimeRecord{StartTime: at(9, 30)})
	assert.Equal(t, StatusWorking, s.DerivedStatus())
	require.NotNil(t, s.OpenRecord())
	assert.Equal(t, at(9, 30), s.OpenRecord().StartTime)
}

func TestDayState_CheckInvariants(t *testing.T) {
	ok := DayState{TodayRecords: []WorkTimeRecord{
		closed(at(8, 0), at(9, 0)),
		{StartTime: at(9, 30)},
	}}
	assert.NoError(t, ok.CheckInvariants())

	openInMiddle := DayState{TodayRecords: []WorkTimeRecord{
		{StartTime: at(8, 0)},
		closed(at(9, 0), at(9, 30)),
	}}
	assert.Error(t, openInMiddle.CheckInvariants())

	backwards := DayState{TodayRecords: []WorkTimeRecord{closed(at(9, 0), at(8, 0))}}
	err := backwards.CheckInvariants()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestDayState_ReferenceTime(t *testing.T) {
	s := NewDayState(testNow)
	assert.Equal(t, testNow, s.ReferenceTime())

	s.TodayRecords = append(s.TodayRecords, closed(at(7, 0), at(8, 0)))
	assert.Equal(t, at(7, 0), s.ReferenceTime())
}

func TestDayState_WorkedDuration(t *testing.T) {
	s := DayState{TodayRecords: []WorkTimeRecord{
		closed(at(7, 0), at(8, 0)),
		{StartTime: at(9, 30)},
	}}
	assert.Equal(t, 90*time.Minute, s.WorkedDuration(testNow))
}

func TestDayState_CloneDoesNotAlias(t *testing.T) {
	s := DayState{TodayRecords: []WorkTimeRecord{closed(at(7, 0), at(8, 0))}}
	c := s.Clone()
	*c.TodayRecords[0].EndTime = at(8, 30)
	c.TodayRecords = append(c.TodayRecords, WorkTimeRecord{StartTime: at(9, 0)})

	assert.Equal(t, at(8, 0), *s.TodayRecords[0].EndTime)
	assert.Len(t, s.TodayRecords, 1)
}

func TestDayState_EqualIgnoresLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	a := DayState{CurrentStatus: StatusFree, LastUpdated: testNow, TodayRecords: []WorkTimeRecord{closed(at(7, 0), at(8, 0))}}
	b := DayState{CurrentStatus: StatusFree, LastUpdated: testNow.In(tokyo), TodayRecords: []WorkTimeRecord{closed(at(7, 0).In(tokyo), at(8, 0).In(tokyo))}}
	assert.True(t, a.Equal(b))

	b.TodayRecords[0].EndTime = nil
	assert.False(t, a.Equal(b))
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(at(0, 0), at(23, 59)))
	assert.False(t, SameDay(at(23, 59), at(23, 59).Add(time.Minute)))

	// 23:30 UTC is already the next day in Tokyo.
	tokyo := time.FixedZone("JST", 9*3600)
	assert.False(t, SameDay(at(23, 30), at(23, 30).In(tokyo).Add(-12*time.Hour)))
	assert.True(t, SameDay(at(23, 30), at(23, 30).In(tokyo)))
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "timecard_2025-06-15", DayKey(testNow))
}

func TestParseCopyFormat(t *testing.T) {
	f, err := ParseCopyFormat(" Simple ")
	require.NoError(t, err)
	assert.Equal(t, FormatSimple, f)

	f, err = ParseCopyFormat("tsv")
	require.NoError(t, err)
	assert.Equal(t, FormatSpreadsheet, f)

	_, err = ParseCopyFormat("csv")
	assert.Error(t, err)
}

func ptr(t time.Time) *time.Time { return &t }
