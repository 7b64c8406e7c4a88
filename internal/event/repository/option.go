package repository

import "github-event-monitor/internal/model"

// CreateEventOptions holds parameters for inserting a new event record.
// The record must arrive complete: id, timestamp and action are required.
type CreateEventOptions struct {
	Event model.Event
}
