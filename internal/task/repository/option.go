package repository

import "todosplus/internal/model"

// CreateTaskOptions holds the parameters for storing a new task. The
// repository assigns ID and timestamps.
type CreateTaskOptions struct {
	Task model.Task
}

// ListDueBetweenOptions bounds a due-window query, epoch ms inclusive.
type ListDueBetweenOptions struct {
	UserID string
	Start  int64
	End    int64
}
