package cli

import (
	"github.com/alexanderramin/timecard/internal/cli/formatter"
	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// timecardHuhTheme returns a huh theme using the gruvbox palette.
func timecardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

var copyFormatLabels = map[domain.CopyFormat]string{
	domain.FormatSimple:      "Simple      one line, start-end pairs",
	domain.FormatDetailed:    "Detailed    table with minutes per record",
	domain.FormatSpreadsheet: "Spreadsheet first start, last end, break",
}

// formatSelectForm builds the picker shown by "copy" without --format.
func formatSelectForm(result *domain.CopyFormat) *huh.Form {
	options := make([]huh.Option[domain.CopyFormat], 0, len(domain.CopyFormats))
	for _, f := range domain.CopyFormats {
		options = append(options, huh.NewOption(copyFormatLabels[f], f))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.CopyFormat]().
				Title("Copy today as").
				Options(options...).
				Value(result),
		),
	).WithTheme(timecardHuhTheme()).WithShowHelp(false)
}

func runFormatSelect() (domain.CopyFormat, error) {
	format := domain.FormatSimple
	if err := formatSelectForm(&format).Run(); err != nil {
		return "", err
	}
	return format, nil
}
