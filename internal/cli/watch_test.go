package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/teatest"
	"github.com/alexanderramin/timecard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// watchDriver wraps teatest.Driver with access to the widget model.
type watchDriver struct {
	*teatest.Driver
}

func newWatchDriver(t *testing.T, env *testEnv) *watchDriver {
	t.Helper()
	d := teatest.New(t, newWatchModel(context.Background(), env.app), teatest.WithSize(100, 40))
	d.DrainInit()
	return &watchDriver{Driver: d}
}

func (d *watchDriver) model() watchModel {
	return d.Model.(watchModel)
}

func TestWatch_InitialView(t *testing.T) {
	env := newTestEnv(t)
	d := newWatchDriver(t, env)

	view := d.View()
	assert.Contains(t, view, "○ Free")
	assert.Contains(t, view, "09:00:00")
	assert.Contains(t, view, "s start")
	assert.Contains(t, view, "q quit")
	assert.False(t, d.Quitting, "timer commands are not drained")
}

func TestWatch_StartAndEnd(t *testing.T) {
	env := newTestEnv(t)
	d := newWatchDriver(t, env)

	d.PressKey('s')
	assert.Contains(t, d.View(), "Started work at 09:00")
	assert.Contains(t, d.View(), "● Working")

	env.clock.Set(testutil.At(10, 30))
	d.PressKey('e')
	assert.Contains(t, d.View(), "Ended work at 10:30 (01:30)")
	assert.Equal(t, domain.StatusFree, env.app.TimeCard.State().CurrentStatus)
}

func TestWatch_RejectedTransitions(t *testing.T) {
	env := newTestEnv(t)
	d := newWatchDriver(t, env)

	d.PressKey('e')
	assert.Contains(t, d.View(), "Not working.")

	d.PressKey('s')
	d.PressKey('s')
	assert.Contains(t, d.View(), "Already working.")
	assert.Len(t, env.app.TimeCard.State().TodayRecords, 1)
}

func TestWatch_DisplayTickOnlyRedraws(t *testing.T) {
	env := newTestEnv(t)
	d := newWatchDriver(t, env)
	d.PressKey('s')
	before := env.app.TimeCard.State()

	env.clock.Set(testutil.At(9, 5).Add(7 * time.Second))
	d.Send(displayTickMsg(env.clock.Now()))

	assert.Contains(t, d.View(), "09:05:07")
	assert.Contains(t, d.View(), "00:05:07 since 09:00")
	assert.True(t, before.Equal(env.app.TimeCard.State()))
}

func TestWatch_CopyKeys(t *testing.T) {
	env := newTestEnv(t)
	d := newWatchDriver(t, env)
	d.PressKey('s')
	env.clock.Set(testutil.At(12, 0))
	d.PressKey('e')

	d.PressKey('c')
	assert.Contains(t, d.View(), "Copied simple summary")
	last, _ := env.clipboard.Last()
	assert.Equal(t, "2025/06/15: 09:00-12:00", last)

	d.PressKey('t')
	last, _ = env.clipboard.Last()
	assert.Equal(t, "09:00\t12:00\t00:00", last)

	d.PressKey('d')
	last, _ = env.clipboard.Last()
	assert.Contains(t, last, "1\t09:00\t12:00\t180")
	assert.Len(t, env.clipboard.Writes(), 3)
}

func TestWatch_CopyFailureIsShown(t *testing.T) {
	env := newTestEnv(t)
	env.clipboard.Err = errors.New("no display")
	d := newWatchDriver(t, env)
	before := env.app.TimeCard.State()

	d.PressKey('c')
	assert.Contains(t, d.View(), "Copy failed")
	assert.Contains(t, d.View(), "no display")
	assert.True(t, before.Equal(env.app.TimeCard.State()))
}

func TestWatch_RolloverTickResetsDay(t *testing.T) {
	env := newTestEnv(t)
	d := newWatchDriver(t, env)
	d.PressKey('s')

	d.Send(rolloverTickMsg(env.clock.Now()))
	assert.NotContains(t, d.View(), "new day")

	env.clock.Set(testutil.At(0, 5).AddDate(0, 0, 1))
	d.Send(rolloverTickMsg(env.clock.Now()))

	assert.Contains(t, d.View(), "A new day has started")
	s := env.app.TimeCard.State()
	assert.Equal(t, domain.StatusFree, s.CurrentStatus)
	assert.Empty(t, s.TodayRecords)
}

func TestWatch_HelpToggle(t *testing.T) {
	env := newTestEnv(t)
	d := newWatchDriver(t, env)
	assert.NotContains(t, d.View(), "copy for spreadsheet")

	d.PressKey('?')
	assert.Contains(t, d.View(), "copy for spreadsheet")
	assert.True(t, d.model().help.ShowAll)
}

func TestWatch_QuitStopsTimers(t *testing.T) {
	env := newTestEnv(t)
	d := newWatchDriver(t, env)

	d.PressKey('q')
	require.True(t, d.Quitting)

	m := d.model()
	assert.True(t, m.quitting)
	_, cmd := m.Update(displayTickMsg(time.Now()))
	assert.Nil(t, cmd)
	_, cmd = m.Update(rolloverTickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "q quit")
}

func TestWatch_CtrlCQuits(t *testing.T) {
	env := newTestEnv(t)
	d := newWatchDriver(t, env)

	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

func TestWatch_ZeroIntervalsFallBackToDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.app.Config.RefreshInterval = 0
	env.app.Config.RolloverCheck = -1

	m := newWatchModel(context.Background(), env.app)
	assert.Equal(t, time.Second, m.refresh)
	assert.Equal(t, time.Minute, m.rolloverEvery)
}
