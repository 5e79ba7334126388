package usecase

import (
	"context"
	"strings"
	"time"

	"todosplus/internal/model"
	"todosplus/internal/task"
	"todosplus/internal/task/repository"
	"todosplus/pkg/schedule"
)

// QuickAdd turns free text into a stored task. Date, recurrence and clock
// time are parsed independently over the raw text and merged: an explicit
// date always wins; a recurrence without a date seeds its own anchor; and
// without either, today is assumed only on the today view.
func (uc *implUseCase) QuickAdd(ctx context.Context, sc model.Scope, input task.QuickAddInput) (task.QuickAddOutput, error) {
	now := uc.nowFn().UTC()
	offsetMinutes := uc.resolveOffset(ctx, sc, now)
	offset := time.Duration(offsetMinutes) * time.Minute
	userNow := now.Add(offset)

	text := strings.TrimSpace(input.Text)

	rule, isRecurring := schedule.ParseRecurrence(text)
	due, hasDate := schedule.ResolveDate(text, now, offsetMinutes)
	timeOfDay, hasTime := schedule.ParseTimeOfDay(text)

	matchedDate := ""
	if hasDate {
		matchedDate = schedule.DatePattern().FindString(text)
	}

	project, withoutTags := extractProject(text)
	if project == "" {
		project = input.Project
	}

	title := cleanTitle(withoutTags, hasDate || hasTime)
	if title == "" {
		return task.QuickAddOutput{}, task.ErrEmptyTitle
	}

	priority, ok := normalizePriority(input.Priority)
	if !ok {
		return task.QuickAddOutput{}, task.ErrInvalidPriority
	}

	t := model.Task{
		UserID:   sc.UserID,
		Title:    title,
		Notes:    input.Notes,
		Project:  project,
		Priority: priority,
	}

	switch {
	case hasDate:
		t.Due = timePtr(due)

	case isRecurring:
		t.Due = timePtr(uc.seedRecurringDue(rule, userNow, timeOfDay, hasTime, offset))

	case input.OnTodayView:
		minutes := schedule.DefaultDueHour * 60
		if hasTime {
			minutes = timeOfDay
		}
		t.Due = timePtr(atUserMinutes(userNow, minutes, offset))
	}

	if isRecurring {
		if rule.TimeOfDay == nil && hasTime {
			rule.TimeOfDay = &timeOfDay
		}
		ruleFields(&t, rule)
		t.OriginalDueDate = t.Due
		t.NextDueDate = t.Due
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{Task: t})
	if err != nil {
		uc.l.Errorf(ctx, "uc.QuickAdd CreateTask: %v", err)
		return task.QuickAddOutput{}, err
	}

	return task.QuickAddOutput{
		Task:             created,
		MatchedDateText:  matchedDate,
		MatchedRecurring: isRecurring,
	}, nil
}

// seedRecurringDue picks the first due for a recurrence that came with no
// explicit date. A weekday anchor lands on the next such weekday, where
// today counts as a full week out; anything else starts from now. An
// explicit clock time in the text, or the rule's own time, overrides the
// carried time of day.
func (uc *implUseCase) seedRecurringDue(rule schedule.RecurrenceRule, userNow time.Time, timeOfDay int, hasTime bool, offset time.Duration) time.Time {
	seed := userNow
	if rule.DayOfWeek != nil {
		daysToAdd := *rule.DayOfWeek - int(userNow.Weekday())
		if daysToAdd <= 0 {
			daysToAdd += 7
		}
		seed = userNow.AddDate(0, 0, daysToAdd)
	}

	switch {
	case hasTime:
		return atUserMinutes(seed, timeOfDay, offset)
	case rule.TimeOfDay != nil:
		return atUserMinutes(seed, *rule.TimeOfDay, offset)
	default:
		return seed.Add(-offset)
	}
}

// atUserMinutes places a UTC instant at the given minutes past midnight
// of userDay's calendar date, where userDay is already in the user frame.
func atUserMinutes(userDay time.Time, minutes int, offset time.Duration) time.Time {
	midnight := time.Date(userDay.Year(), userDay.Month(), userDay.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.Add(time.Duration(minutes) * time.Minute).Add(-offset)
}
