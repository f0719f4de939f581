package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

// EventKind names a diagnostic emitted by the tracker.
type EventKind string

const (
	EventLoaded            EventKind = "loaded"
	EventLoadFailed        EventKind = "load_failed"
	EventStaleDiscarded    EventKind = "stale_discarded"
	EventStatusCorrected   EventKind = "status_corrected"
	EventWorkStarted       EventKind = "work_started"
	EventWorkEnded         EventKind = "work_ended"
	EventValidationFailed  EventKind = "validation_failed"
	EventInvalidTransition EventKind = "invalid_transition"
	EventInconsistentState EventKind = "inconsistent_state"
	EventAdvisory          EventKind = "advisory"
	EventDayRollover       EventKind = "day_rollover"
	EventSaveFailed        EventKind = "save_failed"
	EventCopied            EventKind = "copied"
	EventCopyFailed        EventKind = "copy_failed"
	EventPurged            EventKind = "purged"
)

// Event is one structured diagnostic.
type Event struct {
	Kind   EventKind
	Level  slog.Level
	RunID  string
	At     time.Time
	Err    error
	Fields map[string]any
}

// Observer receives tracker events. Implementations must be safe for
// concurrent use: clipboard results arrive from a background goroutine.
type Observer interface {
	Observe(ctx context.Context, event Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) Observe(context.Context, Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes events at or above level to w as slog text lines.
func NewLogObserver(w io.Writer, level slog.Level) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *logObserver) Observe(ctx context.Context, event Event) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs, "event", string(event.Kind), "run_id", event.RunID)
	if !event.At.IsZero() {
		attrs = append(attrs, "at", event.At.Format(time.RFC3339))
	}
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
	}
	o.logger.Log(ctx, event.Level, "timecard", attrs...)
}

// RecordingObserver keeps every event in memory so tests can assert on
// what the tracker reported.
type RecordingObserver struct {
	mu     sync.Mutex
	events []Event
}

func (r *RecordingObserver) Observe(_ context.Context, event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *RecordingObserver) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Kinds lists recorded event kinds in order.
func (r *RecordingObserver) Kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

// Find returns the first event of kind.
func (r *RecordingObserver) Find(kind EventKind) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

func (r *RecordingObserver) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
