package service

import (
	"context"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
)

// TimeCard is the surface the presentation layer drives.
type TimeCard interface {
	// Load restores today's state from storage. Storage problems are
	// reported through the observer and leave an empty day.
	Load(ctx context.Context) error
	State() domain.DayState
	Now() time.Time

	StartWork(ctx context.Context) ([]domain.Advisory, error)
	EndWork(ctx context.Context) ([]domain.Advisory, error)
	CheckRollover(ctx context.Context) bool

	Summary(format domain.CopyFormat) (string, error)
	CopyToClipboard(ctx context.Context, format domain.CopyFormat) (string, error)
	WriteClipboard(ctx context.Context, format domain.CopyFormat, text string) error

	Purge(ctx context.Context) (int, error)
}
