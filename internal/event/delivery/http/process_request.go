package http

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"github-event-monitor/internal/event"
)

// webhookReq is a raw webhook delivery: the event type discriminator from
// the X-GitHub-Event header plus the unparsed JSON body.
type webhookReq struct {
	eventType string
	payload   []byte
}

// processWebhookReq reads and validates a webhook delivery. A missing,
// unparseable or empty-object body yields event.ErrNoData; the payload is
// otherwise passed through untouched — field extraction is the normalizer's
// job, and missing fields never reject a delivery here.
func (h *handler) processWebhookReq(c *gin.Context) (webhookReq, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return webhookReq{}, err
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil || len(probe) == 0 {
		return webhookReq{}, event.ErrNoData
	}

	return webhookReq{
		eventType: c.GetHeader("X-GitHub-Event"),
		payload:   body,
	}, nil
}
