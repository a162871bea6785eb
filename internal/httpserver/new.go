package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	sessionRepo "voice-task-assistant/internal/assistant/repository"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/pkg/datemath"
	"voice-task-assistant/pkg/log"
	"voice-task-assistant/pkg/scope"
	pkgTelegram "voice-task-assistant/pkg/telegram"
)

const shutdownTimeout = 30 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	server      *http.Server

	// Infrastructure
	db         *gorm.DB
	sessions   sessionRepo.SessionRepository
	dates      *datemath.Parser
	calendar   task.Calendar
	jwtManager scope.Manager
	rateLimit  int
	registry   *prometheus.Registry

	// Telegram (optional)
	telegramBot    *pkgTelegram.Bot
	telegramSecret string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB              *gorm.DB
	Sessions        sessionRepo.SessionRepository
	DateMath        *datemath.Parser
	Calendar        task.Calendar
	JWTManager      scope.Manager
	RateLimitPerMin int
	Registry        *prometheus.Registry

	TelegramBot    *pkgTelegram.Bot
	TelegramSecret string
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		db:             cfg.DB,
		sessions:       cfg.Sessions,
		dates:          cfg.DateMath,
		calendar:       cfg.Calendar,
		jwtManager:     cfg.JWTManager,
		rateLimit:      cfg.RateLimitPerMin,
		registry:       registry,
		telegramBot:    cfg.TelegramBot,
		telegramSecret: cfg.TelegramSecret,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.sessions == nil {
		return errors.New("session repository is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
