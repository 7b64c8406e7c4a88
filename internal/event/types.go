package event

import "github-event-monitor/internal/model"

// --- UseCase Inputs ---

// IngestInput carries a normalized event record from the delivery layer.
// ID and Timestamp are ignored; the use case assigns both.
type IngestInput struct {
	Event model.Event
}

// --- UseCase Outputs ---

type IngestOutput struct {
	Event model.Event
}

type ListOutput struct {
	Events []model.Event
}
