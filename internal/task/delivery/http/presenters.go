package http

import (
	"strings"
	"time"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string   `json:"title"       binding:"required,max=255"`
	Description string   `json:"description" binding:"max=1000"`
	DueDate     string   `json:"due_date"`
	Priority    string   `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Category    string   `json:"category"    binding:"max=64"`
	Tags        []string `json:"tags"`
}

func (r createReq) toInput(due *time.Time) task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     due,
		Priority:    model.Priority(r.Priority),
		Category:    r.Category,
		Tags:        r.Tags,
	}
}

// ---

type listReq struct {
	Status   string `form:"status"   binding:"omitempty,oneof=pending completed"`
	Category string `form:"category"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListInput{
		Status:   model.Status(r.Status),
		Category: r.Category,
		Limit:    limit,
		Offset:   r.Offset,
	}
}

// ---

// updateReq is a partial update; an empty due_date clears it.
type updateReq struct {
	ID          string   `json:"-"` // populated from URI param
	Title       *string  `json:"title"       binding:"omitempty,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	DueDate     *string  `json:"due_date"`
	Priority    *string  `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Category    *string  `json:"category"    binding:"omitempty,max=64"`
	Tags        []string `json:"tags"`
	Status      *string  `json:"status"      binding:"omitempty,oneof=pending completed"`
}

func (r updateReq) toInput(due *time.Time) task.UpdateInput {
	in := task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     due,
		Category:    r.Category,
		Tags:        r.Tags,
	}
	if r.DueDate != nil && strings.TrimSpace(*r.DueDate) == "" {
		in.ClearDue = true
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.Status != nil {
		s := model.Status(*r.Status)
		in.Status = &s
	}
	return in
}

// --- Response DTOs ---

type taskResp struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	DueDate     string             `json:"due_date,omitempty"`
	Priority    string             `json:"priority"`
	Category    string             `json:"category,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
	Status      string             `json:"status"`
	CreatedBy   string             `json:"created_by"`
	CompletedAt *response.DateTime `json:"completed_at,omitempty"`
	CreatedAt   response.DateTime  `json:"created_at"`
	UpdatedAt   response.DateTime  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Category:    t.Category,
		Tags:        t.Tags,
		Status:      string(t.Status),
		CreatedBy:   string(t.CreatedBy),
		CreatedAt:   response.DateTime(t.CreatedAt),
		UpdatedAt:   response.DateTime(t.UpdatedAt),
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(response.DateFormat)
	}
	if t.CompletedAt != nil {
		completed := response.DateTime(*t.CompletedAt)
		resp.CompletedAt = &completed
	}
	return resp
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int64      `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type statsResp struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
	Today     int `json:"today"`
}

func (h *handler) newStatsResp(s task.Stats) statsResp {
	return statsResp(s)
}

type clearResp struct {
	Deleted int64 `json:"deleted"`
}
