package usecase

import (
	"context"
	"sort"

	"todosplus/internal/model"
	"todosplus/internal/task"
	"todosplus/internal/task/repository"
)

// ListToday returns the caller's open tasks due inside their current
// calendar day, most urgent first.
func (uc *implUseCase) ListToday(ctx context.Context, sc model.Scope) (task.ListTodayOutput, error) {
	now := uc.nowFn().UTC()

	spec := sc.Timezone
	if spec == "" {
		spec = uc.defaultTimezone
	}
	start, end := uc.todayRange(ctx, spec, now)

	tasks, err := uc.repo.ListDueBetween(ctx, repository.ListDueBetweenOptions{
		UserID: sc.UserID,
		Start:  start,
		End:    end,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListToday ListDueBetween: %v", err)
		return task.ListTodayOutput{}, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Priority != tasks[j].Priority {
			return tasks[i].Priority < tasks[j].Priority
		}
		return tasks[i].Due.Before(*tasks[j].Due)
	})

	return task.ListTodayOutput{Tasks: tasks, Start: start, End: end}, nil
}
