package repository

import (
	"context"

	"github-event-monitor/internal/model"
)

// Repository is the composed interface for the event data store.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for the canonical event
// record. The store is append-only: there is deliberately no update or
// delete — a PR and its later merge are separate rows.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	// ListEvents returns all records sorted by timestamp descending.
	// Relative order between identical timestamps is storage-defined.
	ListEvents(ctx context.Context) ([]model.Event, error)
}
