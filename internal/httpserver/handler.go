package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github-event-monitor/internal/frontend"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerFrontend(); err != nil {
		return err
	}

	return srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	// Handler panics become 500s instead of killing the process.
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerFrontend serves the embedded landing page at the root path.
func (srv HTTPServer) registerFrontend() error {
	staticFS, err := frontend.StaticFS()
	if err != nil {
		return err
	}
	srv.gin.GET("/", frontend.NewLandingHandler(staticFS))
	return nil
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if err := srv.setupEventDomain(ctx); err != nil {
		return err
	}

	return nil
}
