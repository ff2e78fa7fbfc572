package ports

import (
	"context"
	"time"
)

// ActivityEntry is one dispatched mutation and how it ended
type ActivityEntry struct {
	ID        string
	Action    string
	Target    string
	OK        bool
	Message   string
	StartedAt time.Time
	Duration  time.Duration
}

// ActivityJournal keeps a local, append-only log of mutations.
// It is never read to build views.
type ActivityJournal interface {
	Record(ctx context.Context, entry ActivityEntry) error
	Recent(ctx context.Context, limit int) ([]ActivityEntry, error)
	Close() error
}
