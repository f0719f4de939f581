package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/testutil"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var at = testutil.At

func TestFormatDay_Working(t *testing.T) {
	s := testutil.NewTestDayState(testutil.WithRecords(
		testutil.Closed(at(9, 0), at(12, 0)),
		testutil.Open(at(13, 0)),
	))

	out := FormatDay(s, at(14, 30).Add(15*time.Second))
	assert.Contains(t, out, "TODAY 2025/06/15")
	assert.Contains(t, out, "● Working")
	assert.Contains(t, out, "14:30:15")
	assert.Contains(t, out, "01:30:15 since 13:00")
	assert.Contains(t, out, "04:30:15")
	assert.Contains(t, out, "Break")
	assert.Contains(t, out, "in progress")
	assert.Contains(t, out, "03:00")
}

func TestFormatDay_Empty(t *testing.T) {
	out := FormatDay(domain.NewDayState(at(8, 0)), at(8, 0))
	assert.Contains(t, out, "○ Free")
	assert.Contains(t, out, "No work recorded today.")
	assert.NotContains(t, out, "Session")
	assert.NotContains(t, out, "Break")
}

func TestFormatRecords_AlignsColumns(t *testing.T) {
	records := []domain.WorkTimeRecord{
		testutil.Closed(at(9, 0), at(9, 45)),
		testutil.Closed(at(10, 0), at(12, 0)),
	}
	out := FormatRecords(records, at(13, 0))
	assert.Equal(t,
		"#  START  END     TIME\n"+
			"─  ─────  ─────  ─────\n"+
			"1  09:00  09:45  00:45\n"+
			"2  10:00  12:00  02:00\n",
		out)
}

func TestRenderTable_RightAligned(t *testing.T) {
	out := RenderTable([]string{"N", "NAME"}, [][]string{{"10", "a"}, {"2", "bb"}}, 0)
	assert.Equal(t, " N  NAME\n──  ────\n10  a\n 2  bb\n", out)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestFormatAdvisory(t *testing.T) {
	assert.Contains(t, FormatAdvisory(domain.AdvisoryLongSession), "24 hours")
	assert.Contains(t, FormatAdvisory(domain.AdvisoryManyRecords), "10 or more")
}

func TestFormatEnded(t *testing.T) {
	out := FormatEnded(testutil.Closed(at(9, 0), at(10, 5)), at(10, 5))
	assert.Equal(t, "✔ Ended work at 10:05 (01:05)", out)
}
