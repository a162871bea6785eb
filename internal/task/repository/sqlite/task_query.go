package sqlite

import (
	"gorm.io/gorm"

	repo "voice-task-assistant/internal/task/repository"
)

var allowedOrderBy = map[string]string{
	"":               "created_at DESC, id",
	"created_at":     "created_at DESC, id",
	"created_at_asc": "created_at, id",
	"due_date":       "due_date IS NULL, due_date, id",
	"priority":       "CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, created_at DESC, id",
}

// byOwner restricts a query to one user's task, or all of them when id is empty.
func byOwner(userID, id string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID)
		if id != "" {
			db = db.Where("id = ?", id)
		}
		return db
	}
}

// listFilter builds the WHERE clause for ListTasks (no pagination).
func listFilter(opt repo.ListTasksOptions) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", opt.UserID)
		if opt.Status != "" {
			db = db.Where("status = ?", string(opt.Status))
		}
		if opt.Category != "" {
			db = db.Where("category = ?", opt.Category)
		}
		return db
	}
}

// page applies ordering and pagination for ListTasks. Unknown orderings fall back to newest first.
func page(opt repo.ListTasksOptions) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		order, ok := allowedOrderBy[opt.OrderBy]
		if !ok {
			order = allowedOrderBy[""]
		}
		db = db.Order(order)
		if opt.Limit > 0 {
			db = db.Limit(opt.Limit)
		}
		if opt.Offset > 0 {
			db = db.Offset(opt.Offset)
		}
		return db
	}
}
