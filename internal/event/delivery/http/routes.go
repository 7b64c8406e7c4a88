package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the event domain's HTTP surface. The paths are part
// of the external contract and must not move:
//
//	POST /webhook     — GitHub webhook receiver
//	GET  /api/events  — polling endpoint for display strings
func RegisterRoutes(r gin.IRouter, h *handler) {
	r.POST("/webhook", h.HandleGitHubWebhook)
	r.GET("/api/events", h.ListEvents)
}
