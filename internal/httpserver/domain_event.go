package httpserver

import (
	"context"

	eventHTTP "github-event-monitor/internal/event/delivery/http"
	eventRepo "github-event-monitor/internal/event/repository/sqlite"
	eventUC "github-event-monitor/internal/event/usecase"
)

// setupEventDomain initializes the event domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(srv.gin, h)
func (srv HTTPServer) setupEventDomain(ctx context.Context) error {
	// 1. Repository
	repo := eventRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := eventUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := eventHTTP.New(srv.l, uc)

	// 4. Routes: registers POST /webhook and GET /api/events
	eventHTTP.RegisterRoutes(srv.gin, h)

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}
