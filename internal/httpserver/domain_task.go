package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"voice-task-assistant/internal/middleware"
	"voice-task-assistant/internal/task"
	taskHTTP "voice-task-assistant/internal/task/delivery/http"
	taskRepo "voice-task-assistant/internal/task/repository/sqlite"
	taskUC "voice-task-assistant/internal/task/usecase"
)

// setupTaskDomain wires repository, use case and handler of the task store
// and registers /api/v1/tasks.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) task.UseCase {
	// 1. Repository
	repo := taskRepo.New(srv.db, srv.l)

	// 2. UseCase
	var opts []taskUC.Option
	if srv.calendar != nil {
		opts = append(opts, taskUC.WithCalendar(srv.calendar))
		srv.l.Infof(ctx, "Calendar sync enabled for dated tasks")
	}
	uc := taskUC.New(srv.l, repo, srv.dates, opts...)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc, srv.dates)

	// 4. Routes
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc
}
