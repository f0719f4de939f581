package domain

import (
	"fmt"
	"strings"
)

type WorkStatus string

const (
	StatusFree    WorkStatus = "free"
	StatusWorking WorkStatus = "working"
)

// Valid reports whether s is one of the known statuses.
func (s WorkStatus) Valid() bool {
	return s == StatusFree || s == StatusWorking
}

// CopyFormat selects the text layout used when exporting the day.
type CopyFormat string

const (
	FormatSimple      CopyFormat = "simple"
	FormatDetailed    CopyFormat = "detailed"
	FormatSpreadsheet CopyFormat = "spreadsheet"
)

// CopyFormats lists the supported formats in display order.
var CopyFormats = []CopyFormat{FormatSimple, FormatDetailed, FormatSpreadsheet}

// ParseCopyFormat converts user input into a CopyFormat. Matching is
// case-insensitive; "tsv" and "tab" are accepted for the spreadsheet layout.
func ParseCopyFormat(s string) (CopyFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple":
		return FormatSimple, nil
	case "detailed":
		return FormatDetailed, nil
	case "spreadsheet", "tsv", "tab":
		return FormatSpreadsheet, nil
	default:
		return "", fmt.Errorf("unknown copy format %q (want simple, detailed or spreadsheet)", s)
	}
}

// Advisory is a non-blocking condition noticed while applying a change.
type Advisory string

const (
	AdvisoryLongSession Advisory = "long_session"
	AdvisoryManyRecords Advisory = "many_records"
)
