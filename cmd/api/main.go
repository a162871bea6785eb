package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"voice-task-assistant/config"
	_ "voice-task-assistant/docs" // Swagger docs
	sessionRepo "voice-task-assistant/internal/assistant/repository"
	"voice-task-assistant/internal/assistant/repository/memory"
	redisRepo "voice-task-assistant/internal/assistant/repository/redis"
	"voice-task-assistant/internal/httpserver"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/internal/task/repository/sqlite"
	"voice-task-assistant/pkg/datemath"
	"voice-task-assistant/pkg/gcalendar"
	"voice-task-assistant/pkg/log"
	"voice-task-assistant/pkg/scope"
	"voice-task-assistant/pkg/telegram"
)

const ngrokAPIBase = "http://ngrok:4040"

// @title       Voice Task Assistant API
// @description Conversational task capture over HTTP and Telegram, with a task store and optional Google Calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}
	if err := cfg.RequireJWT(); err != nil {
		fmt.Println("Invalid config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Task Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date parser
	dateMathParser, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Task database
	db, err := sqlite.Open(cfg.Database.DSN)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		defer sqlDB.Close()
	}

	// 5. Session store
	var sessions sessionRepo.SessionRepository
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		redisClient, redisErr := redisRepo.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if redisErr != nil {
			logger.Errorf(ctx, "Failed to connect to redis: %v", redisErr)
			return
		}
		defer redisClient.Close()
		sessions = redisRepo.New(redisClient, cfg.Session.TTL, logger)
		logger.Infof(ctx, "Sessions stored in redis at %s", cfg.Redis.Addr)
	default:
		sessions = memory.New(cfg.Session.MaxSessions, cfg.Session.TTL)
		logger.Info(ctx, "Sessions stored in memory")
	}

	// 6. Google Calendar (optional)
	var calendar task.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, gcalendar.Options{
			CalendarID: cfg.GoogleCalendar.CalendarID,
			TokenPath:  cfg.GoogleCalendar.TokenPath,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `cli calendar-auth` to generate a token")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Telegram (optional)
	var telegramBot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)
		registerWebhook(ctx, logger, telegramBot, cfg.Telegram)
	} else {
		logger.Info(ctx, "Telegram skipped: telegram.bot_token is empty")
	}

	// 8. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DB:              db,
		Sessions:        sessions,
		DateMath:        dateMathParser,
		Calendar:        calendar,
		JWTManager:      scope.New(cfg.JWT.Secret, cfg.JWT.TTL),
		RateLimitPerMin: cfg.RateLimit.PerMin,
		Registry:        registry,
		TelegramBot:     telegramBot,
		TelegramSecret:  cfg.Telegram.SecretToken,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this server, auto-detecting an ngrok
// tunnel when no webhook URL is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, ngrokAPIBase)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
