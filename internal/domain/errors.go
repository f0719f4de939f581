package domain

import "errors"

var (
	// ErrFutureStart indicates a record whose start lies after the current time.
	ErrFutureStart = errors.New("start time is in the future")

	// ErrEndBeforeStart indicates a record that ends before it starts.
	ErrEndBeforeStart = errors.New("end time is before start time")

	// ErrInvalidTransition indicates start while working or end while free.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrUnterminatedRecord indicates a start attempt while the previous
	// record is still open.
	ErrUnterminatedRecord = errors.New("previous record has not ended")

	// ErrNoOpenRecord indicates an end attempt with no open record to close.
	ErrNoOpenRecord = errors.New("no open record to end")
)
