package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timecard/internal/cli/formatter"
	"github.com/alexanderramin/timecard/internal/config"
	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// displayTickMsg redraws the clock and elapsed time. It never mutates state.
type displayTickMsg time.Time

// rolloverTickMsg asks the tracker whether the calendar day has changed.
type rolloverTickMsg time.Time

// clipboardResultMsg reports a finished background clipboard write.
type clipboardResultMsg struct {
	format domain.CopyFormat
	err    error
}

// watchModel is the live widget: a status box with a running clock and
// single-key actions.
type watchModel struct {
	ctx  context.Context
	tc   service.TimeCard
	keys watchKeyMap
	help help.Model

	refresh       time.Duration
	rolloverEvery time.Duration

	now      time.Time
	flash    string
	quitting bool
}

func newWatchModel(ctx context.Context, app *App) watchModel {
	defaults := config.DefaultConfig()
	refresh, rolloverEvery := app.Config.RefreshInterval, app.Config.RolloverCheck
	if refresh <= 0 {
		refresh = defaults.RefreshInterval
	}
	if rolloverEvery <= 0 {
		rolloverEvery = defaults.RolloverCheck
	}
	return watchModel{
		ctx:           ctx,
		tc:            app.TimeCard,
		keys:          newWatchKeyMap(),
		help:          help.New(),
		refresh:       refresh,
		rolloverEvery: rolloverEvery,
		now:           app.TimeCard.Now(),
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(displayTick(m.refresh), rolloverTick(m.rolloverEvery))
}

func displayTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return displayTickMsg(t) })
}

func rolloverTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return rolloverTickMsg(t) })
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case displayTickMsg:
		if m.quitting {
			return m, nil
		}
		m.now = m.tc.Now()
		return m, displayTick(m.refresh)

	case rolloverTickMsg:
		if m.quitting {
			return m, nil
		}
		if m.tc.CheckRollover(m.ctx) {
			m.flash = formatter.Warning("A new day has started. The time card was reset.")
		}
		m.now = m.tc.Now()
		return m, rolloverTick(m.rolloverEvery)

	case clipboardResultMsg:
		if msg.err != nil {
			m.flash = formatter.Failure(fmt.Sprintf("Copy failed: %v", msg.err))
		} else {
			m.flash = formatter.Success(fmt.Sprintf("Copied %s summary", msg.format))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m watchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Start):
		advisories, err := m.tc.StartWork(m.ctx)
		m.now = m.tc.Now()
		m.flash = transitionFlash(err, advisories, "Already working.", formatter.FormatStarted(m.now))
		return m, nil

	case key.Matches(msg, m.keys.End):
		advisories, err := m.tc.EndWork(m.ctx)
		m.now = m.tc.Now()
		done := ""
		if state := m.tc.State(); state.LastRecord() != nil {
			done = formatter.FormatEnded(*state.LastRecord(), m.now)
		}
		m.flash = transitionFlash(err, advisories, "Not working.", done)
		return m, nil

	case key.Matches(msg, m.keys.CopySimple):
		return m.copy(domain.FormatSimple)
	case key.Matches(msg, m.keys.CopyDetailed):
		return m.copy(domain.FormatDetailed)
	case key.Matches(msg, m.keys.CopySpreadsheet):
		return m.copy(domain.FormatSpreadsheet)
	}
	return m, nil
}

// copy renders now and hands the text to a background write, so a slow
// clipboard never blocks the widget.
func (m watchModel) copy(format domain.CopyFormat) (tea.Model, tea.Cmd) {
	text, err := m.tc.Summary(format)
	if err != nil {
		m.flash = formatter.Failure(err.Error())
		return m, nil
	}
	m.flash = formatter.Dim("Copying...")
	ctx, tc := m.ctx, m.tc
	return m, func() tea.Msg {
		return clipboardResultMsg{format: format, err: tc.WriteClipboard(ctx, format, text)}
	}
}

func transitionFlash(err error, advisories []domain.Advisory, rejected, done string) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return formatter.Warning(rejected)
	case err != nil:
		return formatter.Failure(err.Error())
	}
	lines := make([]string, 0, len(advisories)+1)
	for _, a := range advisories {
		lines = append(lines, formatter.FormatAdvisory(a))
	}
	lines = append(lines, done)
	return strings.Join(lines, "\n")
}

func (m watchModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.FormatDay(m.tc.State(), m.now))
	b.WriteString("\n")
	if m.flash != "" {
		b.WriteString(m.flash)
		b.WriteString("\n")
	}
	if !m.quitting {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
		b.WriteString("\n")
	}
	return b.String()
}
