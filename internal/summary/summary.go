// Package summary renders a day's work records as text for the clipboard.
//
// Every renderer is a pure function of its inputs: the records and the
// current time, which supplies the date header, the end of an
// in-progress session and the time zone all times are shown in.
package summary

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
)

// InProgress marks the missing end of an open record.
const InProgress = "in progress"

// ErrUnknownFormat is returned for a CopyFormat with no renderer.
var ErrUnknownFormat = errors.New("unknown summary format")

// Render produces the text for format.
func Render(format domain.CopyFormat, records []domain.WorkTimeRecord, now time.Time) (string, error) {
	switch format {
	case domain.FormatSimple:
		return Simple(records, now), nil
	case domain.FormatDetailed:
		return Detailed(records, now), nil
	case domain.FormatSpreadsheet:
		return Spreadsheet(records, now), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Simple renders "2006/01/02: 09:00-12:00, 13:00-in progress".
// With no records only the header remains.
func Simple(records []domain.WorkTimeRecord, now time.Time) string {
	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, Clock(r.StartTime, now.Location())+"-"+endLabel(r, now.Location()))
	}
	return Date(now) + ": " + strings.Join(parts, ", ")
}

// Detailed renders a tab-separated table: the date, a header row, one row
// per record with its closed duration in minutes, and a total over the
// closed records.
func Detailed(records []domain.WorkTimeRecord, now time.Time) string {
	loc := now.Location()
	var b strings.Builder
	b.WriteString(Date(now))
	b.WriteString("\n#\tStart\tEnd\tMinutes\n")

	total := 0
	for i, r := range records {
		minutes := ""
		if !r.IsOpen() {
			m := wholeMinutes(r.EndTime.Sub(r.StartTime))
			total += m
			minutes = strconv.Itoa(m)
		}
		fmt.Fprintf(&b, "%d\t%s\t%s\t%s\n", i+1, Clock(r.StartTime, loc), endLabel(r, loc), minutes)
	}
	fmt.Fprintf(&b, "Total\t\t\t%d", total)
	return b.String()
}

// Spreadsheet renders "first start<TAB>last end<TAB>break" for pasting into
// a time sheet row. An open last record ends at now. The break sums the
// gaps between each closed record and the record after it. No records
// yields an empty string.
func Spreadsheet(records []domain.WorkTimeRecord, now time.Time) string {
	if len(records) == 0 {
		return ""
	}
	loc := now.Location()
	first := records[0]
	last := records[len(records)-1]

	end := now
	if last.EndTime != nil {
		end = *last.EndTime
	}

	return Clock(first.StartTime, loc) + "\t" + Clock(end, loc) + "\t" + HourMinutes(BreakMinutes(records))
}

// BreakMinutes sums next.StartTime - prev.EndTime in whole minutes over
// consecutive pairs whose first record is closed.
func BreakMinutes(records []domain.WorkTimeRecord) int {
	total := 0
	for i := 0; i+1 < len(records); i++ {
		prev := records[i]
		if prev.EndTime == nil {
			continue
		}
		total += wholeMinutes(records[i+1].StartTime.Sub(*prev.EndTime))
	}
	return total
}

// Date formats the calendar date of now.
func Date(now time.Time) string {
	return now.Format("2006/01/02")
}

// Clock formats t as zero-padded 24-hour "15:04" in loc.
func Clock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

// HourMinutes formats a minute count as "HH:MM".
func HourMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

// Elapsed formats d as "HH:MM:SS", truncating to the second.
func Elapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}

func endLabel(r domain.WorkTimeRecord, loc *time.Location) string {
	if r.EndTime == nil {
		return InProgress
	}
	return Clock(*r.EndTime, loc)
}

// wholeMinutes floors d to minutes, also for negative gaps.
func wholeMinutes(d time.Duration) int {
	m := int(d / time.Minute)
	if d < 0 && d%time.Minute != 0 {
		m--
	}
	return m
}
