package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/internal/task/repository"
)

// Create saves a manually entered task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	if sc.UserID == "" {
		return model.Task{}, task.ErrNoUser
	}

	opt, err := uc.buildCreateOptions(sc, model.Draft{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Category:    input.Category,
		Tags:        input.Tags,
	}, model.OriginManual)
	if err != nil {
		return model.Task{}, err
	}

	tasks, err := uc.insert(ctx, []repository.CreateTaskOptions{opt})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create insert: %v", err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "uc.Create: user=%s task=%s", sc.UserID, tasks[0].ID)
	return tasks[0], nil
}

// CreateFromDrafts saves confirmed drafts atomically, keeping the draft ids.
func (uc *implUseCase) CreateFromDrafts(ctx context.Context, sc model.Scope, input task.CreateFromDraftsInput) ([]model.Task, error) {
	if sc.UserID == "" {
		return nil, task.ErrNoUser
	}
	if len(input.Drafts) == 0 {
		return nil, task.ErrNoDrafts
	}

	origin := input.Origin
	if origin == "" {
		origin = model.OriginVoice
	}

	opts := make([]repository.CreateTaskOptions, 0, len(input.Drafts))
	for _, d := range input.Drafts {
		opt, err := uc.buildCreateOptions(sc, d, origin)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}

	tasks, err := uc.insert(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFromDrafts insert: %v", err)
		return nil, err
	}

	uc.l.Infof(ctx, "uc.CreateFromDrafts: user=%s created=%d origin=%s", sc.UserID, len(tasks), origin)
	return tasks, nil
}

func (uc *implUseCase) buildCreateOptions(sc model.Scope, d model.Draft, origin model.Origin) (repository.CreateTaskOptions, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return repository.CreateTaskOptions{}, task.ErrEmptyTitle
	}

	priority := d.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.IsValid() {
		return repository.CreateTaskOptions{}, task.ErrInvalidPriority
	}

	id := d.ID
	if id == "" {
		id = uuid.NewString()
	}

	return repository.CreateTaskOptions{
		ID:          id,
		UserID:      sc.UserID,
		Title:       title,
		Description: strings.TrimSpace(d.Description),
		DueDate:     d.DueDate,
		Priority:    priority,
		Category:    strings.TrimSpace(d.Category),
		Tags:        d.Tags,
		CreatedBy:   origin,
	}, nil
}

// insert creates calendar events for dated tasks, then stores every task in one transaction.
// Events created for a batch that fails to store are removed again.
func (uc *implUseCase) insert(ctx context.Context, opts []repository.CreateTaskOptions) ([]model.Task, error) {
	var eventIDs []string
	for i := range opts {
		if id := uc.tryCreateCalendarEvent(ctx, opts[i]); id != "" {
			opts[i].CalendarEventID = id
			eventIDs = append(eventIDs, id)
		}
	}

	tasks, err := uc.repo.CreateTasks(ctx, opts)
	if err != nil {
		for _, id := range eventIDs {
			uc.tryDeleteCalendarEvent(ctx, id)
		}
		return nil, err
	}
	return tasks, nil
}
