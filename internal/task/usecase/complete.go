package usecase

import (
	"context"
	"errors"

	"todosplus/internal/model"
	"todosplus/internal/task"
	"todosplus/internal/task/repository"
	"todosplus/pkg/schedule"
)

// Complete toggles a task's completion state. A recurring task is never
// left completed: its due date rolls forward from the completion instant
// and the task stays open for the next occurrence.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, input task.CompleteInput) (task.CompleteOutput, error) {
	t, err := uc.repo.GetTask(ctx, sc.UserID, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.CompleteOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Complete GetTask: %v", err)
		return task.CompleteOutput{}, err
	}

	now := uc.nowFn().UTC()

	if t.Completed {
		// Un-complete.
		t.Completed = false
		t.CompletedAt = nil
		updated, err := uc.repo.UpdateTask(ctx, t)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Complete UpdateTask: %v", err)
			return task.CompleteOutput{}, err
		}
		return task.CompleteOutput{Task: updated}, nil
	}

	rearmed := false
	if t.IsRecurring {
		base := now
		if t.Due != nil && t.Due.After(now) {
			// Completing ahead of schedule still projects from the
			// planned due, not the early completion.
			base = *t.Due
		}
		next := schedule.NextOccurrence(taskRule(t), base, true)
		t.Due = timePtr(next)
		t.NextDueDate = timePtr(next)
		rearmed = true
	} else {
		t.Completed = true
		t.CompletedAt = timePtr(now)
	}

	updated, err := uc.repo.UpdateTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete UpdateTask: %v", err)
		return task.CompleteOutput{}, err
	}

	return task.CompleteOutput{Task: updated, Rearmed: rearmed}, nil
}
