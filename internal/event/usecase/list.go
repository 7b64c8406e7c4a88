package usecase

import (
	"context"

	"github-event-monitor/internal/event"
)

// List returns all persisted records, most recent first.
func (uc *implUseCase) List(ctx context.Context) (event.ListOutput, error) {
	events, err := uc.repo.ListEvents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListOutput{}, err
	}

	return event.ListOutput{Events: events}, nil
}
