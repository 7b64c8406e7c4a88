package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github-event-monitor/internal/event"
	repo "github-event-monitor/internal/event/repository"
	"github-event-monitor/internal/model"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockRepository struct {
	created   []model.Event
	createErr error
	events    []model.Event
	listErr   error
}

func (m *mockRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	if m.createErr != nil {
		return model.Event{}, m.createErr
	}
	m.created = append(m.created, opt.Event)
	return opt.Event, nil
}

func (m *mockRepository) ListEvents(ctx context.Context) ([]model.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestIngest(t *testing.T) {
	t.Run("assigns id and UTC timestamp", func(t *testing.T) {
		repository := &mockRepository{}
		uc := New(repository, &mockLogger{})
		fixed := time.Date(2024, 3, 4, 21, 15, 30, 123456000, time.UTC)
		uc.now = func() time.Time { return fixed }

		out, err := uc.Ingest(context.Background(), event.IngestInput{
			Event: model.NewPushEvent("abc123", "alice", "main"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Event.ID == "" {
			t.Error("expected a generated id")
		}
		if out.Event.Timestamp != "2024-03-04T21:15:30.123456Z" {
			t.Errorf("unexpected timestamp: %s", out.Event.Timestamp)
		}
		if _, err := time.Parse(model.TimestampLayout, out.Event.Timestamp); err != nil {
			t.Errorf("timestamp not parseable with its own layout: %v", err)
		}
		if len(repository.created) != 1 {
			t.Fatalf("expected 1 insert, got %d", len(repository.created))
		}
	})

	t.Run("timestamp is server-assigned, input values ignored", func(t *testing.T) {
		repository := &mockRepository{}
		uc := New(repository, &mockLogger{})

		in := model.NewPushEvent("abc123", "alice", "main")
		in.ID = "attacker-chosen"
		in.Timestamp = "1999-01-01T00:00:00.000000Z"

		out, err := uc.Ingest(context.Background(), event.IngestInput{Event: in})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Event.ID == "attacker-chosen" {
			t.Error("input id must be replaced")
		}
		if out.Event.Timestamp == "1999-01-01T00:00:00.000000Z" {
			t.Error("input timestamp must be replaced")
		}
	})

	t.Run("append-only, no dedup", func(t *testing.T) {
		repository := &mockRepository{}
		uc := New(repository, &mockLogger{})

		in := event.IngestInput{Event: model.NewMergeEvent("42", "bob", "feature", "main")}
		if _, err := uc.Ingest(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Ingest(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repository.created) != 2 {
			t.Fatalf("expected 2 inserts, got %d", len(repository.created))
		}
		if repository.created[0].ID == repository.created[1].ID {
			t.Error("each insert must get its own id")
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		repository := &mockRepository{createErr: repo.ErrFailedToInsert}
		uc := New(repository, &mockLogger{})

		_, err := uc.Ingest(context.Background(), event.IngestInput{
			Event: model.NewPushEvent("abc123", "alice", "main"),
		})
		if !errors.Is(err, repo.ErrFailedToInsert) {
			t.Errorf("expected ErrFailedToInsert, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	t.Run("passes records through", func(t *testing.T) {
		stored := []model.Event{
			model.NewMergeEvent("42", "bob", "feature", "main"),
			model.NewPushEvent("abc123", "alice", "main"),
		}
		uc := New(&mockRepository{events: stored}, &mockLogger{})

		out, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(out.Events))
		}
		if out.Events[0].Action != model.ActionMerge {
			t.Errorf("repository order must be preserved")
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		uc := New(&mockRepository{listErr: repo.ErrFailedToList}, &mockLogger{})

		_, err := uc.List(context.Background())
		if !errors.Is(err, repo.ErrFailedToList) {
			t.Errorf("expected ErrFailedToList, got %v", err)
		}
	})
}
