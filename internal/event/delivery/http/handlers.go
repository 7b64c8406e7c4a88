package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github-event-monitor/internal/event"
	"github-event-monitor/pkg/response"
)

// HandleGitHubWebhook godoc
// @Summary     Receive a GitHub webhook delivery
// @Description Normalizes push and pull_request deliveries into canonical event records and persists them. Other event types are acknowledged and discarded.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-GitHub-Event header string true "GitHub event type discriminator"
// @Param       body body map[string]interface{} true "Raw webhook payload"
// @Success     200 {object} response.Ack "success or ignored"
// @Failure     400 {object} response.Ack "No data received"
// @Failure     500 {object} response.Ack "Internal Server Error"
// @Router      /webhook [POST]
func (h *handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWebhookReq(c)
	if err != nil {
		if errors.Is(err, event.ErrNoData) {
			response.BadRequest(c, event.ErrNoData.Error())
			return
		}
		h.l.Errorf(ctx, "webhook: failed to read delivery: %v", err)
		response.InternalError(c, err)
		return
	}

	record, ok := h.parser.Normalize(req.eventType, req.payload)
	if !ok {
		h.l.Infof(ctx, "webhook: ignoring event type %q", req.eventType)
		response.Ignored(c)
		return
	}

	if _, err := h.uc.Ingest(ctx, event.IngestInput{Event: record}); err != nil {
		h.l.Errorf(ctx, "uc.Ingest: %v", err)
		response.InternalError(c, err)
		return
	}

	response.Success(c)
}

// ListEvents godoc
// @Summary     List event summaries
// @Description Returns human-readable summaries of all stored events, most recent first. Polled by the landing page.
// @Tags        Events
// @Produce     json
// @Success     200 {array}  string
// @Failure     500 {object} response.ListError "Internal Server Error"
// @Router      /api/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.ListInternalError(c, err)
		return
	}

	response.List(c, h.newListEventsResp(output))
}
