package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"todosplus/internal/model"
	"todosplus/pkg/schedule"
)

var (
	projectTagRe = regexp.MustCompile(`#([\p{L}\p{N}_-]+)`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
)

// resolveOffset turns the scope timezone (or the service default) into a
// minute offset. Unresolvable specs fall back to UTC with a warning; a
// bad timezone preference must never block task creation.
func (uc *implUseCase) resolveOffset(ctx context.Context, sc model.Scope, now time.Time) int {
	spec := sc.Timezone
	if spec == "" {
		spec = uc.defaultTimezone
	}

	offset, normalized := schedule.ResolveOffsetMinutes(spec, now)
	if normalized != spec {
		uc.l.Warnf(ctx, "timezone %q not resolvable, using %s", spec, normalized)
	}
	return offset
}

// todayRange is schedule.TodayRange with the fallback diagnostic the
// pure function leaves to its callers.
func (uc *implUseCase) todayRange(ctx context.Context, spec string, now time.Time) (int64, int64) {
	if _, normalized := schedule.ResolveOffsetMinutes(spec, now); normalized != spec {
		uc.l.Warnf(ctx, "timezone %q not resolvable, using %s", spec, normalized)
		spec = normalized
	}
	return schedule.TodayRange(now, spec)
}

// extractProject pulls the first hashtag out of the text as the project
// name and returns the text without any hashtags.
func extractProject(text string) (string, string) {
	project := ""
	if m := projectTagRe.FindStringSubmatch(text); m != nil {
		project = m[1]
	}
	return project, projectTagRe.ReplaceAllString(text, "")
}

// cleanTitle removes recurrence phrases and, when a date or time was
// actually parsed, every date span too. Recurrence goes first so "every
// monday" does not leave a dangling "every" once the weekday span is cut.
func cleanTitle(text string, removeDates bool) string {
	cleaned := schedule.StripRecurrencePhrases(text)
	if removeDates {
		cleaned = schedule.DatePattern().ReplaceAllString(cleaned, "")
	}
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(cleaned, " "))
}

// ruleFields copies a parsed recurrence rule into the task's recurring
// columns.
func ruleFields(t *model.Task, rule schedule.RecurrenceRule) {
	t.IsRecurring = true
	t.RecurringPattern = string(rule.Kind)
	t.RecurringInterval = rule.Interval
	t.RecurringDayOfWeek = rule.DayOfWeek
	t.RecurringDayOfMonth = rule.DayOfMonth
	t.RecurringTime = rule.TimeOfDay
}

// taskRule rebuilds the recurrence rule from a task's recurring columns.
func taskRule(t model.Task) schedule.RecurrenceRule {
	return schedule.RecurrenceRule{
		Kind:       schedule.RuleKind(t.RecurringPattern),
		Interval:   t.RecurringInterval,
		DayOfWeek:  t.RecurringDayOfWeek,
		DayOfMonth: t.RecurringDayOfMonth,
		TimeOfDay:  t.RecurringTime,
	}
}

func normalizePriority(p int) (int, bool) {
	if p == 0 {
		return model.PriorityDefault, true
	}
	if p < model.PriorityHighest || p > model.PriorityLowest {
		return 0, false
	}
	return p, true
}

func timePtr(t time.Time) *time.Time { return &t }
