package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github-event-monitor/internal/model"
)

func timestamped(e model.Event, ts string) model.Event {
	e.Timestamp = ts
	return e
}

func TestFormat(t *testing.T) {
	const ts = "2024-03-04T21:15:30.123456Z"
	const when = "04 March 2024 - 09:15 PM UTC"

	tests := []struct {
		name  string
		event model.Event
		want  string
	}{
		{
			name:  "push",
			event: timestamped(model.NewPushEvent("abc123", "alice", "main"), ts),
			want:  `"alice" pushed to "main" on ` + when,
		},
		{
			name:  "pull request",
			event: timestamped(model.NewPullRequestEvent("42", "bob", "feature", "main"), ts),
			want:  `"bob" submitted a pull request from "feature" to "main" on ` + when,
		},
		{
			name:  "merge",
			event: timestamped(model.NewMergeEvent("42", "bob", "feature", "main"), ts),
			want:  `"bob" merged branch "feature" to "main" on ` + when,
		},
		{
			name:  "morning hour keeps AM and zero padding",
			event: timestamped(model.NewPushEvent("abc123", "alice", "main"), "2024-03-04T09:05:00.000000Z"),
			want:  `"alice" pushed to "main" on 04 March 2024 - 09:05 AM UTC`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.event))

			// Purity: same record, same string.
			assert.Equal(t, Format(tt.event), Format(tt.event))
		})
	}
}

func TestFormatFallsBackOnMalformedRecords(t *testing.T) {
	t.Run("unparseable timestamp", func(t *testing.T) {
		event := timestamped(model.NewPushEvent("abc123", "alice", "main"), "yesterday")
		got := Format(event)
		assert.Contains(t, got, "author: alice")
		assert.Contains(t, got, "timestamp: yesterday")
	})

	t.Run("unknown action", func(t *testing.T) {
		event := model.Event{Timestamp: "2024-03-04T21:15:30.123456Z", Action: "REBASE"}
		got := Format(event)
		assert.Contains(t, got, "action: REBASE")
	})

	t.Run("missing action", func(t *testing.T) {
		got := Format(model.Event{Timestamp: "2024-03-04T21:15:30.123456Z"})
		assert.Contains(t, got, "action: ")
	})
}
