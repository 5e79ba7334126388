package usecase

import (
	"context"
	"errors"

	"todosplus/internal/model"
	"todosplus/internal/task"
	"todosplus/internal/task/repository"
)

// Update applies a partial update. Only fields the caller supplied are
// touched; ClearDue removes the due date outright.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	t, err := uc.repo.GetTask(ctx, sc.UserID, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.UpdateOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Update GetTask: %v", err)
		return task.UpdateOutput{}, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return task.UpdateOutput{}, task.ErrEmptyTitle
		}
		t.Title = *input.Title
	}
	if input.Notes != nil {
		t.Notes = *input.Notes
	}
	if input.Project != nil {
		t.Project = *input.Project
	}
	if input.Priority != nil {
		p, ok := normalizePriority(*input.Priority)
		if !ok {
			return task.UpdateOutput{}, task.ErrInvalidPriority
		}
		t.Priority = p
	}
	if input.Labels != nil {
		t.Labels = input.Labels
	}
	switch {
	case input.ClearDue:
		t.Due = nil
	case input.Due != nil:
		t.Due = input.Due
	}

	updated, err := uc.repo.UpdateTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}

	return task.UpdateOutput{Task: updated}, nil
}
