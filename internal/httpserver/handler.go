package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"timeflow/internal/agent"
	"timeflow/internal/agent/tools"
	eventHTTP "timeflow/internal/event/delivery/http"
	eventRepo "timeflow/internal/event/repository/sqlite"
	eventUC "timeflow/internal/event/usecase"
	goalHTTP "timeflow/internal/goal/delivery/http"
	goalRepo "timeflow/internal/goal/repository/sqlite"
	goalUC "timeflow/internal/goal/usecase"
	"timeflow/internal/middleware"
	resolverHTTP "timeflow/internal/resolver/delivery/http"
	resolverUC "timeflow/internal/resolver/usecase"
	tagHTTP "timeflow/internal/tag/delivery/http"
	tagRepo "timeflow/internal/tag/repository/sqlite"
	tagUC "timeflow/internal/tag/usecase"
	taskHTTP "timeflow/internal/task/delivery/http"
	taskRepo "timeflow/internal/task/repository/sqlite"
	taskUC "timeflow/internal/task/usecase"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires repositories, use cases and handlers for every
// domain and registers them under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.cfg)
	srv.gin.Use(mw.RequestLogger())

	api := srv.gin.Group("/api/v1")

	// Tag domain
	tRepo := tagRepo.New(srv.db, srv.l)
	tUC := tagUC.New(srv.l, tRepo)
	tagHTTP.RegisterRoutes(api, tagHTTP.New(srv.l, tUC))
	srv.l.Infof(ctx, "Tag domain registered")

	// Event domain (also serves as the resolver's lookup gateway)
	eRepo := eventRepo.New(srv.db, srv.l)
	eUC := eventUC.New(srv.l, eRepo, srv.calendar, srv.cfg.GoogleCalendar.CalendarID, srv.cfg.Resolver.Timezone)
	eventHTTP.RegisterRoutes(api, eventHTTP.New(srv.l, eUC))
	srv.l.Infof(ctx, "Event domain registered")

	// Task domain
	tkRepo := taskRepo.New(srv.db, srv.l)
	tkUC := taskUC.New(srv.l, tkRepo)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tkUC))
	srv.l.Infof(ctx, "Task domain registered")

	// Goal domain
	gRepo := goalRepo.New(srv.db, srv.l)
	gUC := goalUC.New(srv.l, gRepo, eUC, srv.cfg.Resolver.Timezone)
	goalHTTP.RegisterRoutes(api, goalHTTP.New(srv.l, gUC))
	srv.l.Infof(ctx, "Goal domain registered")

	// Resolver
	registry := agent.NewToolRegistry()
	registry.Register(tools.NewGetLoggedEventsTool(eUC))

	rUC := resolverUC.New(srv.l, srv.llm, registry, tUC, srv.cfg.Resolver.Timezone, srv.cfg.Resolver.MaxToolCalls)
	resolverHTTP.RegisterRoutes(api, resolverHTTP.New(srv.l, rUC), mw)
	srv.l.Infof(ctx, "Resolver registered")

	return nil
}
