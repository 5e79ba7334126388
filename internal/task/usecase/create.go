package usecase

import (
	"context"
	"strings"

	"todosplus/internal/model"
	"todosplus/internal/task"
	"todosplus/internal/task/repository"
)

// Create stores an already-resolved task. The AI capture path uses this
// once its due strings have been validated; nothing here is parsed.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	priority, ok := normalizePriority(input.Priority)
	if !ok {
		return model.Task{}, task.ErrInvalidPriority
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{Task: model.Task{
		UserID:   sc.UserID,
		Title:    title,
		Notes:    input.Notes,
		Project:  input.Project,
		Priority: priority,
		Labels:   input.Labels,
		Due:      input.Due,
	}})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return model.Task{}, err
	}

	return created, nil
}
