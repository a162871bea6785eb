package conversation

import (
	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/taskparser"
)

// NewSession returns a session in the greeting state.
func NewSession() *Session {
	return &Session{State: StateGreeting}
}

// Reset clears every draft and returns the session to greeting.
func (s *Session) Reset() {
	s.State = StateGreeting
	s.TaskDraft = nil
	s.PendingTasks = nil
	s.MissingFields = nil
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	c := &Session{State: s.State}
	if s.TaskDraft != nil {
		d := cloneDraft(*s.TaskDraft)
		c.TaskDraft = &d
	}
	if s.PendingTasks != nil {
		c.PendingTasks = make([]model.Draft, len(s.PendingTasks))
		for i, d := range s.PendingTasks {
			c.PendingTasks[i] = cloneDraft(d)
		}
	}
	if s.MissingFields != nil {
		c.MissingFields = append([]taskparser.Field(nil), s.MissingFields...)
	}
	return c
}

// draftsToSave returns the pending drafts, or the single draft when there are none.
func (s *Session) draftsToSave() []model.Draft {
	if len(s.PendingTasks) > 0 {
		out := make([]model.Draft, len(s.PendingTasks))
		for i, d := range s.PendingTasks {
			out[i] = cloneDraft(d)
		}
		return out
	}
	if s.TaskDraft == nil {
		return nil
	}
	return []model.Draft{cloneDraft(*s.TaskDraft)}
}

// editTarget is the draft that edits apply to: the single draft, or the first pending one.
func (s *Session) editTarget() *model.Draft {
	if s.TaskDraft != nil {
		return s.TaskDraft
	}
	if len(s.PendingTasks) > 0 {
		return &s.PendingTasks[0]
	}
	return nil
}

func cloneDraft(d model.Draft) model.Draft {
	if d.DueDate != nil {
		due := *d.DueDate
		d.DueDate = &due
	}
	if d.Tags != nil {
		d.Tags = append([]string(nil), d.Tags...)
	}
	return d
}

// Preview returns copies of the drafts shown to the user: the draft being
// edited and, when several tasks are pending, all of them.
func (s *Session) Preview() (*model.Draft, []model.Draft) {
	var draft *model.Draft
	if t := s.editTarget(); t != nil {
		d := cloneDraft(*t)
		draft = &d
	}
	var multi []model.Draft
	if len(s.PendingTasks) > 0 {
		multi = make([]model.Draft, len(s.PendingTasks))
		for i, d := range s.PendingTasks {
			multi[i] = cloneDraft(d)
		}
	}
	return draft, multi
}
