package model

import "time"

// Task is the core task entity. Due fields are UTC instants; recurring
// fields mirror the parsed recurrence rule so the task can be re-armed
// without re-parsing its text.
type Task struct {
	ID       string
	UserID   string
	Title    string
	Notes    string
	Project  string
	Priority int
	Labels   []string

	Due       *time.Time // nil when the task has no date
	Completed bool

	IsRecurring         bool
	RecurringPattern    string // daily | weekly | monthly | yearly
	RecurringInterval   int
	RecurringDayOfWeek  *int // 0=Sunday .. 6=Saturday
	RecurringDayOfMonth *int // 1..31, clamped at projection time
	RecurringTime       *int // minutes since local midnight
	OriginalDueDate     *time.Time
	NextDueDate         *time.Time

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Priority bounds, low number means more urgent.
const (
	PriorityHighest = 1
	PriorityDefault = 3
	PriorityLowest  = 5
)
