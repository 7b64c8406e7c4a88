package http

import (
	"github-event-monitor/internal/event"
	"github-event-monitor/internal/webhook"
)

// newListEventsResp maps stored records to their display strings, keeping
// the repository's ordering.
func (h *handler) newListEventsResp(out event.ListOutput) []string {
	items := make([]string, len(out.Events))
	for i, e := range out.Events {
		items[i] = webhook.Format(e)
	}
	return items
}
