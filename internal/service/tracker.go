package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/timecard/internal/clipboard"
	"github.com/alexanderramin/timecard/internal/clock"
	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/repository"
	"github.com/alexanderramin/timecard/internal/summary"
	"github.com/google/uuid"
)

// ErrClipboard wraps every failure to hand text to the clipboard.
var ErrClipboard = errors.New("clipboard write failed")

// Tracker owns the DayState for one running session of the time card.
// It is not safe for concurrent use, with the exception of
// WriteClipboard, which never touches the state.
type Tracker struct {
	days      repository.DayStateRepo
	clock     clock.Clock
	clipboard clipboard.Clipboard
	observer  Observer
	runID     string

	state domain.DayState
}

var _ TimeCard = (*Tracker)(nil)

// TrackerOption customises a Tracker.
type TrackerOption func(*Tracker)

func WithObserver(o Observer) TrackerOption {
	return func(t *Tracker) {
		if o != nil {
			t.observer = o
		}
	}
}

// NewTracker returns a tracker holding an empty day. Call Load to restore
// persisted state.
func NewTracker(days repository.DayStateRepo, clk clock.Clock, cb clipboard.Clipboard, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		days:      days,
		clock:     clk,
		clipboard: cb,
		observer:  NoopObserver{},
		runID:     uuid.New().String(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.state = domain.NewDayState(clk.Now())
	return t
}

func (t *Tracker) Now() time.Time { return t.clock.Now() }

// State returns a copy of the current day.
func (t *Tracker) State() domain.DayState { return t.state.Clone() }

func (t *Tracker) Load(ctx context.Context) error {
	now := t.clock.Now()
	t.state = domain.NewDayState(now)
	key := domain.DayKey(now)

	loaded, err := t.days.Load(ctx, now)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case err != nil:
		t.emit(ctx, EventLoadFailed, slog.LevelError, err, map[string]any{"key": key})
		return nil
	}

	if !domain.SameDay(loaded.LastUpdated, now) {
		t.emit(ctx, EventStaleDiscarded, slog.LevelWarn, nil, map[string]any{
			"key":          key,
			"last_updated": loaded.LastUpdated.Format(time.RFC3339),
		})
		return nil
	}

	if derived := loaded.DerivedStatus(); loaded.CurrentStatus != derived {
		t.emit(ctx, EventStatusCorrected, slog.LevelWarn, nil, map[string]any{
			"stored":  string(loaded.CurrentStatus),
			"derived": string(derived),
		})
		loaded.CurrentStatus = derived
	}

	t.state = *loaded
	t.emit(ctx, EventLoaded, slog.LevelDebug, nil, map[string]any{
		"key":     key,
		"records": len(loaded.TodayRecords),
		"status":  string(loaded.CurrentStatus),
	})
	return nil
}

// StartWork opens a new record at the current time.
func (t *Tracker) StartWork(ctx context.Context) ([]domain.Advisory, error) {
	now := t.clock.Now()
	t.rollover(ctx, now)

	if t.state.CurrentStatus == domain.StatusWorking {
		err := fmt.Errorf("start while %s: %w", t.state.CurrentStatus, domain.ErrInvalidTransition)
		t.emit(ctx, EventInvalidTransition, slog.LevelWarn, err, map[string]any{"op": "start"})
		return nil, err
	}
	if open := t.state.OpenRecord(); open != nil {
		err := fmt.Errorf("record started at %s: %w", open.StartTime.Format(time.RFC3339), domain.ErrUnterminatedRecord)
		t.emit(ctx, EventInconsistentState, slog.LevelWarn, err, map[string]any{"op": "start"})
		return nil, err
	}

	var advisories []domain.Advisory
	if n := len(t.state.TodayRecords); n >= domain.ManyRecordsThreshold {
		advisories = append(advisories, domain.AdvisoryManyRecords)
		t.emit(ctx, EventAdvisory, slog.LevelWarn, nil, map[string]any{
			"advisory": string(domain.AdvisoryManyRecords),
			"records":  n,
		})
	}

	more, err := domain.ValidateRecord(now, nil, now)
	if err != nil {
		t.emit(ctx, EventValidationFailed, slog.LevelError, err, map[string]any{"op": "start"})
		return nil, err
	}
	advisories = append(advisories, more...)

	t.state.TodayRecords = append(t.state.TodayRecords, domain.WorkTimeRecord{StartTime: now})
	t.state.CurrentStatus = domain.StatusWorking
	t.state.LastUpdated = now
	t.emit(ctx, EventWorkStarted, slog.LevelInfo, nil, map[string]any{
		"start":   now.Format(time.RFC3339),
		"records": len(t.state.TodayRecords),
	})
	t.save(ctx, now)
	return advisories, nil
}

// EndWork closes the open record at the current time.
func (t *Tracker) EndWork(ctx context.Context) ([]domain.Advisory, error) {
	now := t.clock.Now()
	t.rollover(ctx, now)

	if t.state.CurrentStatus != domain.StatusWorking {
		err := fmt.Errorf("end while %s: %w", t.state.CurrentStatus, domain.ErrInvalidTransition)
		t.emit(ctx, EventInvalidTransition, slog.LevelWarn, err, map[string]any{"op": "end"})
		return nil, err
	}

	open := t.state.OpenRecord()
	if open == nil {
		// Leave the user able to start again rather than stuck in working.
		err := fmt.Errorf("status is working: %w", domain.ErrNoOpenRecord)
		t.emit(ctx, EventInconsistentState, slog.LevelError, err, map[string]any{"op": "end"})
		t.state.CurrentStatus = domain.StatusFree
		t.state.LastUpdated = now
		t.save(ctx, now)
		return nil, err
	}

	advisories, err := domain.ValidateRecord(open.StartTime, &now, now)
	if err != nil {
		t.emit(ctx, EventValidationFailed, slog.LevelError, err, map[string]any{
			"op":    "end",
			"start": open.StartTime.Format(time.RFC3339),
			"end":   now.Format(time.RFC3339),
		})
		return nil, err
	}
	for _, a := range advisories {
		t.emit(ctx, EventAdvisory, slog.LevelWarn, nil, map[string]any{
			"advisory": string(a),
			"start":    open.StartTime.Format(time.RFC3339),
			"hours":    int(now.Sub(open.StartTime).Hours()),
		})
	}

	end := now
	open.EndTime = &end
	t.state.CurrentStatus = domain.StatusFree
	t.state.LastUpdated = now
	t.emit(ctx, EventWorkEnded, slog.LevelInfo, nil, map[string]any{
		"start":   open.StartTime.Format(time.RFC3339),
		"end":     now.Format(time.RFC3339),
		"minutes": int(now.Sub(open.StartTime) / time.Minute),
		"records": len(t.state.TodayRecords),
	})
	t.save(ctx, now)
	return advisories, nil
}

// CheckRollover resets the day when the calendar date has moved on since
// the latest record (or the last update of an empty day). It reports
// whether a reset happened.
func (t *Tracker) CheckRollover(ctx context.Context) bool {
	return t.rollover(ctx, t.clock.Now())
}

func (t *Tracker) rollover(ctx context.Context, now time.Time) bool {
	ref := t.state.ReferenceTime()
	if domain.SameDay(ref, now) {
		return false
	}
	previous := t.state
	t.state = domain.NewDayState(now)
	t.emit(ctx, EventDayRollover, slog.LevelInfo, nil, map[string]any{
		"previous_day":     ref.In(now.Location()).Format("2006-01-02"),
		"previous_records": len(previous.TodayRecords),
		"dropped_open":     previous.OpenRecord() != nil,
	})
	t.save(ctx, now)
	return true
}

// Summary renders the current day in format.
func (t *Tracker) Summary(format domain.CopyFormat) (string, error) {
	return summary.Render(format, t.state.TodayRecords, t.clock.Now())
}

// CopyToClipboard renders the day and writes it to the clipboard,
// returning the text that was written.
func (t *Tracker) CopyToClipboard(ctx context.Context, format domain.CopyFormat) (string, error) {
	text, err := t.Summary(format)
	if err != nil {
		return "", err
	}
	return text, t.WriteClipboard(ctx, format, text)
}

// WriteClipboard hands pre-rendered text to the clipboard. Failures are
// reported and returned wrapped in ErrClipboard.
func (t *Tracker) WriteClipboard(ctx context.Context, format domain.CopyFormat, text string) error {
	fields := map[string]any{"format": string(format), "chars": len(text)}
	if t.clipboard == nil {
		err := fmt.Errorf("%w: no clipboard configured", ErrClipboard)
		t.emit(ctx, EventCopyFailed, slog.LevelError, err, fields)
		return err
	}
	if err := t.clipboard.Write(ctx, text); err != nil {
		err = fmt.Errorf("%w: %w", ErrClipboard, err)
		t.emit(ctx, EventCopyFailed, slog.LevelError, err, fields)
		return err
	}
	t.emit(ctx, EventCopied, slog.LevelInfo, nil, fields)
	return nil
}

// Purge deletes stored days other than today.
func (t *Tracker) Purge(ctx context.Context) (int, error) {
	n, err := t.days.Purge(ctx, t.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("purging stored days: %w", err)
	}
	t.emit(ctx, EventPurged, slog.LevelInfo, nil, map[string]any{"removed": n})
	return n, nil
}

// save persists the state. The in-memory state stays authoritative when
// the write fails.
func (t *Tracker) save(ctx context.Context, now time.Time) {
	if err := t.days.Save(ctx, now, t.state); err != nil {
		t.emit(ctx, EventSaveFailed, slog.LevelError, err, map[string]any{"key": domain.DayKey(now)})
	}
}

func (t *Tracker) emit(ctx context.Context, kind EventKind, level slog.Level, err error, fields map[string]any) {
	t.observer.Observe(ctx, Event{
		Kind:   kind,
		Level:  level,
		RunID:  t.runID,
		At:     t.clock.Now(),
		Err:    err,
		Fields: fields,
	})
}
