package usecase

import (
	"context"

	"github.com/google/uuid"

	"github-event-monitor/internal/event"
	repo "github-event-monitor/internal/event/repository"
	"github-event-monitor/internal/model"
)

// Ingest stamps a normalized record with its id and receipt time and
// persists it. The timestamp is always assigned here, never taken from the
// delivery payload.
func (uc *implUseCase) Ingest(ctx context.Context, input event.IngestInput) (event.IngestOutput, error) {
	e := input.Event
	e.ID = uuid.NewString()
	e.Timestamp = uc.now().UTC().Format(model.TimestampLayout)

	created, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{Event: e})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Ingest CreateEvent: %v", err)
		return event.IngestOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Ingest: stored %s event %s", created.Action, created.ID)
	return event.IngestOutput{Event: created}, nil
}
