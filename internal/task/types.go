package task

import (
	"time"

	"todosplus/internal/model"
)

// QuickAddInput is the raw capture form. OnTodayView mirrors the client
// context: when set, dateless tasks default to today.
type QuickAddInput struct {
	Text        string
	Notes       string
	Project     string // explicit project selection; hashtags in Text win
	Priority    int    // 0 means unset, defaults to model.PriorityDefault
	OnTodayView bool
}

// QuickAddOutput carries the created task plus what the parser extracted,
// so clients can show why a date or recurrence was attached.
type QuickAddOutput struct {
	Task             model.Task
	MatchedDateText  string
	MatchedRecurring bool
}

// CompleteInput identifies the task to toggle.
type CompleteInput struct {
	ID string
}

// CompleteOutput reports the post-toggle state. Rearmed is true when a
// recurring task was rolled forward instead of completed.
type CompleteOutput struct {
	Task    model.Task
	Rearmed bool
}

// ListTodayOutput is the today view: open tasks due within the caller's
// current calendar day, ordered by priority then due time.
type ListTodayOutput struct {
	Tasks []model.Task
	Start int64 // epoch ms, inclusive
	End   int64 // epoch ms, inclusive
}

// UpdateInput is a partial update; nil pointers leave fields untouched.
type UpdateInput struct {
	ID       string
	Title    *string
	Notes    *string
	Project  *string
	Priority *int
	Labels   []string
	Due      *time.Time
	ClearDue bool
}

// UpdateOutput carries the updated task.
type UpdateOutput struct {
	Task model.Task
}

// CreateInput stores a fully-resolved task; nothing in it is parsed.
type CreateInput struct {
	Title    string
	Notes    string
	Project  string
	Priority int
	Labels   []string
	Due      *time.Time
}
