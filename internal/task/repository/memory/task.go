package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"todosplus/internal/model"
	"todosplus/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t := opt.Task
	t.ID = uuid.NewString()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	r.mu.Lock()
	r.tasks[t.ID] = t
	r.mu.Unlock()

	r.l.Debugf(ctx, "memory: stored task %s", t.ID)
	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, userID, id string) (model.Task, error) {
	r.mu.RLock()
	t, ok := r.tasks[id]
	r.mu.RUnlock()

	if !ok || t.UserID != userID {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, task model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.tasks[task.ID]
	if !ok || cur.UserID != task.UserID {
		return model.Task{}, repository.ErrNotFound
	}

	task.CreatedAt = cur.CreatedAt
	task.UpdatedAt = time.Now().UTC()
	r.tasks[task.ID] = task
	return task, nil
}

func (r *implRepository) ListDueBetween(ctx context.Context, opt repository.ListDueBetweenOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Task
	for _, t := range r.tasks {
		if t.UserID != opt.UserID || t.Completed || t.Due == nil {
			continue
		}
		if ms := t.Due.UnixMilli(); ms >= opt.Start && ms <= opt.End {
			out = append(out, t)
		}
	}
	sortByCreation(out)
	return out, nil
}

func (r *implRepository) ListOpen(ctx context.Context, userID string) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Task
	for _, t := range r.tasks {
		if t.UserID == userID && !t.Completed {
			out = append(out, t)
		}
	}
	sortByCreation(out)
	return out, nil
}

// sortByCreation keeps map-iteration results deterministic.
func sortByCreation(tasks []model.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
}
