package httpserver

import (
	"context"

	captureHTTP "todosplus/internal/capture/delivery/http"
	captureUC "todosplus/internal/capture/usecase"
	"todosplus/internal/middleware"
	scheduleHandler "todosplus/internal/schedule"
	taskHTTP "todosplus/internal/task/delivery/http"
	"todosplus/internal/task/repository/memory"
	taskUC "todosplus/internal/task/usecase"
)

// registerDomainRoutes wires every domain under /api/v1.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, ...)
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l)

	// Task domain
	repo := memory.New(srv.l)
	tasks := taskUC.New(srv.l, repo, srv.defaultTimezone)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tasks))
	srv.l.Infof(ctx, "Task domain registered")

	// AI capture domain, only when an extractor is wired
	if srv.extractor != nil {
		uc := captureUC.New(srv.l, srv.extractor, tasks, srv.defaultTimezone)
		captureHTTP.RegisterRoutes(api, captureHTTP.New(srv.l, uc), mw.RateLimit(srv.captureRateLimitPerMin))
		srv.l.Infof(ctx, "Capture domain registered")
	} else {
		srv.l.Infof(ctx, "Extractor not configured, skipping capture routes")
	}

	// Schedule inspection
	sh := scheduleHandler.New(srv.l)
	api.GET("/schedule/highlight", sh.HandleHighlight)
	srv.l.Infof(ctx, "Schedule routes registered")

	return nil
}
