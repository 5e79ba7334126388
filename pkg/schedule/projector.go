package schedule

import "time"

// NextOccurrence computes when a recurring task is due next, given the
// rule and a base instant (the prior due date or the completion time).
// It is total over valid rules: anchors that exceed a short month's
// length clamp to the month's last day (so "every 31st" lands on Feb 28
// rather than skipping February). When preserveTimeOfDay is false the
// projected date is returned at midnight for the caller to apply its own
// time policy; the rule's TimeOfDay always wins when set.
func NextOccurrence(rule RecurrenceRule, base time.Time, preserveTimeOfDay bool) time.Time {
	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}

	var next time.Time

	switch rule.Kind {
	case RuleDaily:
		next = base.AddDate(0, 0, interval)

	case RuleWeekly:
		if rule.DayOfWeek != nil {
			delta := *rule.DayOfWeek - int(base.Weekday())
			if delta <= 0 {
				delta += 7
			}
			next = base.AddDate(0, 0, delta)
		} else {
			next = base.AddDate(0, 0, 7*interval)
		}

	case RuleMonthly:
		if rule.DayOfMonth != nil {
			next = clampedMonthDayAt(base, base.Year(), base.Month(), *rule.DayOfMonth)
			if !next.After(base) {
				bump := base.AddDate(0, 1, -base.Day()+1)
				next = clampedMonthDayAt(base, bump.Year(), bump.Month(), *rule.DayOfMonth)
			}
		} else {
			bump := base.AddDate(0, interval, -base.Day()+1)
			next = clampedMonthDayAt(base, bump.Year(), bump.Month(), base.Day())
		}

	case RuleYearly:
		next = clampedMonthDayAt(base, base.Year()+interval, base.Month(), base.Day())

	default:
		next = base
	}

	if rule.TimeOfDay != nil {
		return midnightOf(next).Add(time.Duration(*rule.TimeOfDay) * time.Minute)
	}
	if !preserveTimeOfDay {
		return midnightOf(next)
	}
	return next
}

// clampedMonthDayAt keeps the wall-clock time of ref while moving to the
// given year/month/day, clamping the day to the month's length.
func clampedMonthDayAt(ref time.Time, year int, month time.Month, day int) time.Time {
	if max := daysInMonth(year, month); day > max {
		day = max
	}
	return time.Date(year, month, day,
		ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), time.UTC)
}

func clampedMonthDay(year int, month time.Month, day int) time.Time {
	if max := daysInMonth(year, month); day > max {
		day = max
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
