package sqlite

import (
	"time"

	"voice-task-assistant/internal/model"
)

type taskRow struct {
	ID              string `gorm:"primaryKey;size:36"`
	UserID          string `gorm:"index;not null"`
	Title           string `gorm:"not null"`
	Description     string
	DueDate         *time.Time `gorm:"index"`
	Priority        string     `gorm:"size:16"`
	Category        string     `gorm:"index"`
	Tags            []string   `gorm:"serializer:json"`
	Status          string     `gorm:"size:16;index"`
	CreatedBy       string     `gorm:"size:16"`
	CalendarEventID string
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (taskRow) TableName() string {
	return "tasks"
}

func (row taskRow) toModel() model.Task {
	return model.Task{
		ID:              row.ID,
		UserID:          row.UserID,
		Title:           row.Title,
		Description:     row.Description,
		DueDate:         row.DueDate,
		Priority:        model.Priority(row.Priority),
		Category:        row.Category,
		Tags:            row.Tags,
		Status:          model.Status(row.Status),
		CreatedBy:       model.Origin(row.CreatedBy),
		CalendarEventID: row.CalendarEventID,
		CompletedAt:     row.CompletedAt,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func toModels(rows []taskRow) []model.Task {
	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}
	return tasks
}
