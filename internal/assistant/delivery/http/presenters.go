package http

import (
	"voice-task-assistant/internal/assistant"
	"voice-task-assistant/internal/model"
	"voice-task-assistant/pkg/response"
)

type messageReq struct {
	Text string `json:"text" binding:"required,max=2000"`
}

type draftResp struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
	Priority    string   `json:"priority"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func newDraftResp(d model.Draft) draftResp {
	resp := draftResp{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Priority:    string(d.Priority),
		Category:    d.Category,
		Tags:        d.Tags,
	}
	if d.DueDate != nil {
		resp.DueDate = d.DueDate.Format(response.DateFormat)
	}
	return resp
}

type savedTaskResp struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date,omitempty"`
	Status  string `json:"status"`
}

type replyResp struct {
	Message         string          `json:"message,omitempty"`
	State           string          `json:"state"`
	ShowTaskPreview bool            `json:"show_task_preview"`
	TaskDraft       *draftResp      `json:"task_draft,omitempty"`
	MultipleTasks   []draftResp     `json:"multiple_tasks,omitempty"`
	ClearDraft      bool            `json:"clear_draft"`
	SavedTasks      []savedTaskResp `json:"saved_tasks,omitempty"`
}

func (h *handler) newReplyResp(r assistant.Reply) replyResp {
	resp := replyResp{
		Message:         r.Message,
		State:           string(r.State),
		ShowTaskPreview: r.ShowTaskPreview,
		ClearDraft:      r.ClearDraft,
	}
	if r.TaskDraft != nil {
		d := newDraftResp(*r.TaskDraft)
		resp.TaskDraft = &d
	}
	for _, d := range r.MultipleTasks {
		resp.MultipleTasks = append(resp.MultipleTasks, newDraftResp(d))
	}
	for _, t := range r.SavedTasks {
		saved := savedTaskResp{ID: t.ID, Title: t.Title, Status: string(t.Status)}
		if t.DueDate != nil {
			saved.DueDate = t.DueDate.Format(response.DateFormat)
		}
		resp.SavedTasks = append(resp.SavedTasks, saved)
	}
	return resp
}
