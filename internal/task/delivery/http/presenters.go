package http

import (
	"errors"
	"time"

	"todosplus/internal/model"
	"todosplus/internal/task"
)

// --- Request DTOs ---

type quickAddReq struct {
	Text        string `json:"text"         binding:"required,min=1,max=1000"`
	Notes       string `json:"notes"        binding:"max=4000"`
	Project     string `json:"project"      binding:"max=255"`
	Priority    int    `json:"priority"     binding:"omitempty,min=1,max=5"`
	OnTodayView bool   `json:"on_today_view"`
}

func (r quickAddReq) validate() error { return nil }

func (r quickAddReq) toInput() task.QuickAddInput {
	return task.QuickAddInput{
		Text:        r.Text,
		Notes:       r.Notes,
		Project:     r.Project,
		Priority:    r.Priority,
		OnTodayView: r.OnTodayView,
	}
}

type updateReq struct {
	ID       string     `json:"-"` // populated from URI param
	Title    *string    `json:"title"    binding:"omitempty,max=1000"`
	Notes    *string    `json:"notes"    binding:"omitempty,max=4000"`
	Project  *string    `json:"project"  binding:"omitempty,max=255"`
	Priority *int       `json:"priority" binding:"omitempty,min=1,max=5"`
	Labels   []string   `json:"labels"`
	Due      *time.Time `json:"due"`
	ClearDue bool       `json:"clear_due"`
}

func (r updateReq) validate() error {
	if r.ID == "" {
		return errors.New("id is required")
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:       r.ID,
		Title:    r.Title,
		Notes:    r.Notes,
		Project:  r.Project,
		Priority: r.Priority,
		Labels:   r.Labels,
		Due:      r.Due,
		ClearDue: r.ClearDue,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes,omitempty"`
	Project   string     `json:"project,omitempty"`
	Priority  int        `json:"priority"`
	Labels    []string   `json:"labels,omitempty"`
	Due       *time.Time `json:"due,omitempty"`
	Completed bool       `json:"completed"`

	IsRecurring         bool   `json:"is_recurring"`
	RecurringPattern    string `json:"recurring_pattern,omitempty"`
	RecurringInterval   int    `json:"recurring_interval,omitempty"`
	RecurringDayOfWeek  *int   `json:"recurring_day_of_week,omitempty"`
	RecurringDayOfMonth *int   `json:"recurring_day_of_month,omitempty"`
	RecurringTime       *int   `json:"recurring_time,omitempty"`

	NextDue   *time.Time `json:"next_due,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:                  t.ID,
		Title:               t.Title,
		Notes:               t.Notes,
		Project:             t.Project,
		Priority:            t.Priority,
		Labels:              t.Labels,
		Due:                 t.Due,
		Completed:           t.Completed,
		IsRecurring:         t.IsRecurring,
		RecurringPattern:    t.RecurringPattern,
		RecurringInterval:   t.RecurringInterval,
		RecurringDayOfWeek:  t.RecurringDayOfWeek,
		RecurringDayOfMonth: t.RecurringDayOfMonth,
		RecurringTime:       t.RecurringTime,
		NextDue:             t.NextDueDate,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

type quickAddResp struct {
	Task             taskResp `json:"task"`
	MatchedDateText  string   `json:"matched_date_text,omitempty"`
	MatchedRecurring bool     `json:"matched_recurring"`
}

func (h *handler) newQuickAddResp(out task.QuickAddOutput) quickAddResp {
	return quickAddResp{
		Task:             newTaskResp(out.Task),
		MatchedDateText:  out.MatchedDateText,
		MatchedRecurring: out.MatchedRecurring,
	}
}

type completeResp struct {
	Task    taskResp `json:"task"`
	Rearmed bool     `json:"rearmed"`
}

func (h *handler) newCompleteResp(out task.CompleteOutput) completeResp {
	return completeResp{Task: newTaskResp(out.Task), Rearmed: out.Rearmed}
}

type listTodayResp struct {
	Tasks []taskResp `json:"tasks"`
	Start int64      `json:"start"`
	End   int64      `json:"end"`
}

func (h *handler) newListTodayResp(out task.ListTodayOutput) listTodayResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listTodayResp{Tasks: tasks, Start: out.Start, End: out.End}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
