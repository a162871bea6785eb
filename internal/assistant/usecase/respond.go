package usecase

import (
	"context"

	"voice-task-assistant/internal/assistant"
	"voice-task-assistant/internal/conversation"
	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
)

// Respond advances the user's conversation by one utterance and commits
// confirmed drafts. When the commit fails the session is restored to its
// pre-turn state so the user can simply confirm again.
func (uc *implUseCase) Respond(ctx context.Context, sc model.Scope, utterance string) (assistant.Reply, error) {
	if sc.UserID == "" {
		return assistant.Reply{}, assistant.ErrNoUser
	}

	unlock := uc.locks.lock(sc.UserID)
	defer unlock()

	sess := uc.load(ctx, sc.UserID)
	before := sess.Clone()

	resp := uc.engine.Process(sess, utterance)
	reply := toReply(resp)

	if len(resp.TasksToSave) > 0 {
		saved, err := uc.tasks.CreateFromDrafts(ctx, sc, task.CreateFromDraftsInput{
			Drafts: resp.TasksToSave,
			Origin: model.OriginVoice,
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.assistant.usecase.Respond.CreateFromDrafts: %v", err)
			uc.metrics.saveFailures.Inc()
			sess = before
			reply = failedSaveReply(before)
		} else {
			uc.metrics.tasksSaved.Add(float64(len(saved)))
			reply.SavedTasks = saved
		}
	}

	if err := uc.sessions.Save(ctx, sc.UserID, sess); err != nil {
		uc.l.Errorf(ctx, "internal.assistant.usecase.Respond.Save: %v", err)
	}
	uc.metrics.observeTurn(reply.State)

	return reply, nil
}

// Current describes the stored session without advancing it.
func (uc *implUseCase) Current(ctx context.Context, sc model.Scope) (assistant.Reply, error) {
	if sc.UserID == "" {
		return assistant.Reply{}, assistant.ErrNoUser
	}

	unlock := uc.locks.lock(sc.UserID)
	defer unlock()

	sess := uc.load(ctx, sc.UserID)
	draft, multi := sess.Preview()
	return assistant.Reply{
		State:           sess.State,
		ShowTaskPreview: draft != nil || len(multi) > 0,
		TaskDraft:       draft,
		MultipleTasks:   multi,
	}, nil
}

func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) error {
	if sc.UserID == "" {
		return assistant.ErrNoUser
	}

	unlock := uc.locks.lock(sc.UserID)
	defer unlock()

	if err := uc.sessions.Delete(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "internal.assistant.usecase.Reset: %v", err)
		return err
	}
	return nil
}

// load returns the stored session, or a fresh one when none exists or the
// store is unreachable.
func (uc *implUseCase) load(ctx context.Context, userID string) *conversation.Session {
	sess, err := uc.sessions.Get(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "internal.assistant.usecase.load: starting fresh session: %v", err)
		return conversation.NewSession()
	}
	if sess == nil {
		return conversation.NewSession()
	}
	return sess
}

func toReply(resp conversation.Response) assistant.Reply {
	return assistant.Reply{
		Message:         resp.Message,
		State:           resp.State,
		ShowTaskPreview: resp.ShowTaskPreview,
		TaskDraft:       resp.TaskDraft,
		MultipleTasks:   resp.MultipleTasks,
		ClearDraft:      resp.ClearDraft,
	}
}

func failedSaveReply(before *conversation.Session) assistant.Reply {
	draft, multi := before.Preview()
	return assistant.Reply{
		Message:         MsgSaveFailed,
		State:           before.State,
		ShowTaskPreview: true,
		TaskDraft:       draft,
		MultipleTasks:   multi,
	}
}
