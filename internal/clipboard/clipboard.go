// Package clipboard writes exported summaries to the user's clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard accepts text for the user to paste elsewhere.
type Clipboard interface {
	Write(ctx context.Context, text string) error
}

// ErrUnavailable indicates no clipboard backend could be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Mode selects the backend.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeSystem Mode = "system"
	ModeOSC52  Mode = "osc52"
)

// ParseMode converts a config value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeSystem:
		return ModeSystem, nil
	case ModeOSC52:
		return ModeOSC52, nil
	default:
		return "", fmt.Errorf("unknown clipboard mode %q", s)
	}
}

// New returns the backend for mode. Terminal escape sequences go to term.
// Auto prefers the system clipboard and falls back to OSC 52.
func New(mode Mode, term io.Writer) Clipboard {
	switch mode {
	case ModeSystem:
		return System{}
	case ModeOSC52:
		return NewOSC52(term)
	default:
		return Fallback{Primary: System{}, Secondary: NewOSC52(term)}
	}
}

// System uses the platform clipboard utilities (pbcopy, xclip, wl-copy,
// the Windows API).
type System struct{}

func (System) Write(ctx context.Context, text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no system clipboard utility found", ErrUnavailable)
	}
	done := make(chan error, 1)
	go func() {
		done <- clipboard.WriteAll(text)
	}()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("writing system clipboard: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OSC52 asks the terminal emulator to set the clipboard. It works over SSH
// but cannot confirm that the terminal honoured the request.
type OSC52 struct {
	w io.Writer
}

func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{w: w}
}

func (o *OSC52) Write(ctx context.Context, text string) error {
	if o.w == nil {
		return fmt.Errorf("%w: no terminal attached", ErrUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := osc52.New(text).WriteTo(o.w); err != nil {
		return fmt.Errorf("writing osc52 sequence: %w", err)
	}
	return nil
}

// Fallback tries Primary and, if it fails, Secondary.
type Fallback struct {
	Primary   Clipboard
	Secondary Clipboard
}

func (f Fallback) Write(ctx context.Context, text string) error {
	err := f.Primary.Write(ctx, text)
	if err == nil || ctx.Err() != nil {
		return err
	}
	if err2 := f.Secondary.Write(ctx, text); err2 != nil {
		return errors.Join(err, err2)
	}
	return nil
}
