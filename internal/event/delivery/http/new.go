package http

import (
	"github.com/gin-gonic/gin"

	"github-event-monitor/internal/event"
	"github-event-monitor/internal/webhook"
	"github-event-monitor/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	HandleGitHubWebhook(c *gin.Context)
	ListEvents(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     event.UseCase
	parser *webhook.GitHubParser
}

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		parser: webhook.NewGitHubParser(),
	}
}
