package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"todosplus/internal/model"
	"todosplus/internal/task"
)

// testNow is a Friday, 15:00 in the +05:00 test zone.
var testNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

var testScope = model.Scope{UserID: "u1", Timezone: "+05:00"}

func TestQuickAdd(t *testing.T) {
	tests := []struct {
		name      string
		input     task.QuickAddInput
		wantTitle string
		wantDue   *time.Time
		wantProj  string
		recurring bool
		wantErr   error
	}{
		{
			name:      "Plain date phrase",
			input:     task.QuickAddInput{Text: "call mom tomorrow"},
			wantTitle: "call mom",
			wantDue:   timePtr(time.Date(2024, time.March, 16, 12, 0, 0, 0, time.UTC)),
		},
		{
			name:      "Date with explicit clock time",
			input:     task.QuickAddInput{Text: "meet tmrw at 3:30 pm"},
			wantTitle: "meet",
			wantDue:   timePtr(time.Date(2024, time.March, 16, 10, 30, 0, 0, time.UTC)),
		},
		{
			name:      "Hashtag becomes the project",
			input:     task.QuickAddInput{Text: "draft report #work tomorrow"},
			wantTitle: "draft report",
			wantProj:  "work",
			wantDue:   timePtr(time.Date(2024, time.March, 16, 12, 0, 0, 0, time.UTC)),
		},
		{
			name:      "Recurring weekday seeds the next weekday",
			input:     task.QuickAddInput{Text: "standup every monday"},
			wantTitle: "standup",
			wantDue:   timePtr(time.Date(2024, time.March, 18, 12, 0, 0, 0, time.UTC)),
			recurring: true,
		},
		{
			name:      "Recurring day of month seeds from now",
			input:     task.QuickAddInput{Text: "pay rent every month on the 1st"},
			wantTitle: "pay rent",
			wantDue:   timePtr(testNow),
			recurring: true,
		},
		{
			name:      "Dateless on the today view defaults to today",
			input:     task.QuickAddInput{Text: "buy milk", OnTodayView: true},
			wantTitle: "buy milk",
			wantDue:   timePtr(time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)),
		},
		{
			name:      "Dateless off the today view stays dateless",
			input:     task.QuickAddInput{Text: "buy milk"},
			wantTitle: "buy milk",
		},
		{
			name:      "Time only on the today view",
			input:     task.QuickAddInput{Text: "email boss at 4:15 pm", OnTodayView: true},
			wantTitle: "email boss",
			wantDue:   timePtr(time.Date(2024, time.March, 15, 11, 15, 0, 0, time.UTC)),
		},
		{
			name:    "Only schedule words is an empty title",
			input:   task.QuickAddInput{Text: "tomorrow"},
			wantErr: task.ErrEmptyTitle,
		},
		{
			name:    "Priority out of range",
			input:   task.QuickAddInput{Text: "ship it", Priority: 9},
			wantErr: task.ErrInvalidPriority,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUseCase(testNow)

			out, err := uc.QuickAdd(context.Background(), testScope, tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("QuickAdd err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("QuickAdd: %v", err)
			}

			got := out.Task
			if got.Title != tc.wantTitle {
				t.Errorf("title = %q, want %q", got.Title, tc.wantTitle)
			}
			if got.Project != tc.wantProj {
				t.Errorf("project = %q, want %q", got.Project, tc.wantProj)
			}
			if got.IsRecurring != tc.recurring {
				t.Errorf("recurring = %v, want %v", got.IsRecurring, tc.recurring)
			}
			switch {
			case tc.wantDue == nil:
				if got.Due != nil {
					t.Errorf("due = %v, want none", got.Due)
				}
			case got.Due == nil:
				t.Errorf("due = none, want %v", tc.wantDue)
			case !got.Due.Equal(*tc.wantDue):
				t.Errorf("due = %v, want %v", got.Due, tc.wantDue)
			}
			if got.ID == "" {
				t.Error("task was not assigned an ID")
			}
			if got.Priority != model.PriorityDefault && tc.input.Priority == 0 {
				t.Errorf("priority = %d, want default %d", got.Priority, model.PriorityDefault)
			}
		})
	}
}

func TestQuickAddRecurringFields(t *testing.T) {
	uc := newTestUseCase(testNow)

	out, err := uc.QuickAdd(context.Background(), testScope, task.QuickAddInput{
		Text: "water plants every 2 weeks at 9:00 am",
	})
	if err != nil {
		t.Fatalf("QuickAdd: %v", err)
	}

	got := out.Task
	if got.RecurringPattern != "weekly" || got.RecurringInterval != 2 {
		t.Fatalf("rule = %s/%d, want weekly/2", got.RecurringPattern, got.RecurringInterval)
	}
	if got.RecurringTime == nil || *got.RecurringTime != 9*60 {
		t.Fatalf("recurring time = %v, want 540", got.RecurringTime)
	}
	if got.OriginalDueDate == nil || got.Due == nil || !got.OriginalDueDate.Equal(*got.Due) {
		t.Fatalf("original due %v should equal due %v", got.OriginalDueDate, got.Due)
	}
	// 09:00 in the +05:00 test zone.
	want := time.Date(2024, time.March, 15, 4, 0, 0, 0, time.UTC)
	if !got.Due.Equal(want) {
		t.Fatalf("due = %v, want %v", got.Due, want)
	}
}
