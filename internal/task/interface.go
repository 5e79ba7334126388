package task

import (
	"context"

	"todosplus/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// QuickAdd parses free text into a task: schedule phrases become the
	// due date and recurrence rule, hashtags become the project.
	QuickAdd(ctx context.Context, sc model.Scope, input QuickAddInput) (QuickAddOutput, error)

	// Complete toggles completion. Completing a recurring task re-arms
	// it onto its next occurrence instead of leaving it done.
	Complete(ctx context.Context, sc model.Scope, input CompleteInput) (CompleteOutput, error)

	// ListToday returns the caller's open tasks due during their
	// current calendar day.
	ListToday(ctx context.Context, sc model.Scope) (ListTodayOutput, error)

	// Update applies a partial update to a task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)

	// Create stores an already-resolved task, bypassing text parsing.
	// The AI capture flow lands here.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)
}
