package testutil

import (
	"context"
	"sync"
)

// FakeClipboard records every write. When Err is set, writes fail and
// nothing is recorded.
type FakeClipboard struct {
	mu     sync.Mutex
	Err    error
	writes []string
}

func (c *FakeClipboard) Write(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	c.writes = append(c.writes, text)
	return nil
}

// Last returns the most recent successful write.
func (c *FakeClipboard) Last() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.writes) == 0 {
		return "", false
	}
	return c.writes[len(c.writes)-1], true
}

func (c *FakeClipboard) Writes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.writes...)
}
