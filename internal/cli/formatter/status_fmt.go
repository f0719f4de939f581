package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/summary"
)

// FormatDay renders the day as a boxed dashboard: status, clock, the
// running session and totals, followed by the record table.
func FormatDay(s domain.DayState, now time.Time) string {
	loc := now.Location()

	pairs := [][2]string{
		{"Status", StatusPill(s.CurrentStatus)},
		{"Now", StyleFg.Render(now.Format("15:04:05"))},
	}
	if open := s.OpenRecord(); open != nil {
		pairs = append(pairs, [2]string{
			"Session",
			StyleGreen.Render(summary.Elapsed(open.Duration(now))) +
				Dim(" since "+summary.Clock(open.StartTime, loc)),
		})
	}
	pairs = append(pairs, [2]string{"Worked", Bold(summary.Elapsed(s.WorkedDuration(now)))})
	if len(s.TodayRecords) > 1 {
		pairs = append(pairs, [2]string{"Break", StyleFg.Render(summary.HourMinutes(summary.BreakMinutes(s.TodayRecords)))})
	}

	var b strings.Builder
	b.WriteString(KeyValue(pairs))
	b.WriteString("\n\n")
	b.WriteString(FormatRecords(s.TodayRecords, now))

	return RenderBox("Today "+summary.Date(now), strings.TrimRight(b.String(), "\n"))
}

// FormatRecords renders today's records as a table, or a hint when there
// are none.
func FormatRecords(records []domain.WorkTimeRecord, now time.Time) string {
	if len(records) == 0 {
		return Dim("No work recorded today.")
	}
	loc := now.Location()
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		end := StyleGreen.Render(summary.InProgress)
		if r.EndTime != nil {
			end = summary.Clock(*r.EndTime, loc)
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			summary.Clock(r.StartTime, loc),
			end,
			summary.HourMinutes(int(r.Duration(now) / time.Minute)),
		})
	}
	return RenderTable([]string{"#", "START", "END", "TIME"}, rows, 0, 3)
}

// FormatAdvisory explains a non-blocking warning to the user.
func FormatAdvisory(a domain.Advisory) string {
	switch a {
	case domain.AdvisoryLongSession:
		return Warning("This session is longer than 24 hours. Check that the start time is right.")
	case domain.AdvisoryManyRecords:
		return Warning(fmt.Sprintf("You already have %d or more records today.", domain.ManyRecordsThreshold))
	default:
		return Warning(string(a))
	}
}

// FormatStarted confirms a new session.
func FormatStarted(at time.Time) string {
	return Success("Started work at " + at.Format("15:04"))
}

// FormatEnded confirms a closed session and its length.
func FormatEnded(r domain.WorkTimeRecord, now time.Time) string {
	return Success(fmt.Sprintf("Ended work at %s (%s)",
		summary.Clock(now, now.Location()),
		summary.HourMinutes(int(r.Duration(now)/time.Minute))))
}
