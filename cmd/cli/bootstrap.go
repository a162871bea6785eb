package main

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"voice-task-assistant/config"
	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/internal/task/repository/sqlite"
	taskUC "voice-task-assistant/internal/task/usecase"
	"voice-task-assistant/pkg/datemath"
	"voice-task-assistant/pkg/gcalendar"
	"voice-task-assistant/pkg/log"
)

type globalOptions struct {
	user    string
	verbose bool
}

func (o globalOptions) scope() model.Scope {
	return model.Scope{UserID: o.user, Username: o.user}
}

// deps is what every data command needs.
type deps struct {
	cfg    *config.Config
	l      log.Logger
	db     *gorm.DB
	dates  *datemath.Parser
	tasks  task.UseCase
	closer func()
}

func bootstrap(ctx context.Context, opts globalOptions) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := "error"
	if opts.verbose {
		level = cfg.Logger.Level
	}
	l := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	dates, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		return nil, fmt.Errorf("assistant.timezone: %w", err)
	}

	db, err := sqlite.Open(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	var ucOpts []taskUC.Option
	if cfg.GoogleCalendar.CredentialsPath != "" {
		cal, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, gcalendar.Options{
			CalendarID: cfg.GoogleCalendar.CalendarID,
			TokenPath:  cfg.GoogleCalendar.TokenPath,
		})
		if calErr != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			ucOpts = append(ucOpts, taskUC.WithCalendar(cal))
		}
	}

	return &deps{
		cfg:   cfg,
		l:     l,
		db:    db,
		dates: dates,
		tasks: taskUC.New(l, sqlite.New(db, l), dates, ucOpts...),
		closer: func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		},
	}, nil
}
