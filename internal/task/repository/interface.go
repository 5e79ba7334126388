package repository

import (
	"context"

	"todosplus/internal/model"
)

// Repository is the interface for task data access. The production store
// is an external collaborator; repository/memory backs the service and
// tests.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, userID, id string) (model.Task, error)
	UpdateTask(ctx context.Context, task model.Task) (model.Task, error)
	// ListDueBetween returns open tasks whose due instant falls inside
	// [start, end], both epoch milliseconds inclusive.
	ListDueBetween(ctx context.Context, opt ListDueBetweenOptions) ([]model.Task, error)
	ListOpen(ctx context.Context, userID string) ([]model.Task, error)
}
