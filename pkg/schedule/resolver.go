package schedule

import (
	"regexp"
	"strings"
	"time"
)

var (
	weekdayNameRe  = regexp.MustCompile(`\b(` + weekdayAlt + `)\b`)
	qualifiedDayRe = regexp.MustCompile(`\b(next|this|last)\s+(` + weekdayAlt + `)\b`)
	inSpanRe       = regexp.MustCompile(`\bin\s+(\d+)\s+(days?|weeks?|months?)\b`)
	fromNowRe      = regexp.MustCompile(`\b(\d+)\s+(days?|weeks?|months?)\s+from\s+now\b`)
	monthNameRe    = regexp.MustCompile(`\b(` + monthAlt + `)\b`)
	dayNumberRe    = regexp.MustCompile(`\b(\d{1,2})` + ordinalSuffix + `?\b`)
	morningRe      = regexp.MustCompile(`(?i)\bmorning\b`)

	isoDayRe      = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	numericYearRe = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})$`)
	numericRe     = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})$`)
)

var monthIndex = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// ResolveDate resolves the first date phrase in text against the reference
// instant, returning the due instant in UTC. Dates without an explicit
// clock time default to 17:00 in the user's zone, or 09:00 when the text
// carries a "morning" qualifier. The boolean is false when no date phrase
// is present, which is a normal outcome, not an error.
func ResolveDate(text string, now time.Time, offsetMinutes int) (time.Time, bool) {
	offset := time.Duration(offsetMinutes) * time.Minute
	userNow := now.UTC().Add(offset)

	day, ok := resolveDay(text, userNow)
	if !ok {
		return time.Time{}, false
	}

	minutes := DefaultDueHour * 60
	if m, hasTime := ParseTimeOfDay(text); hasTime {
		minutes = m
	} else if morningRe.MatchString(text) {
		minutes = MorningHour * 60
	}

	return day.Add(time.Duration(minutes) * time.Minute).Add(-offset), true
}

// ResolveDay is ResolveDate without the time-of-day policy: it returns the
// resolved calendar day at local midnight, as a UTC instant.
func ResolveDay(text string, now time.Time, offsetMinutes int) (time.Time, bool) {
	offset := time.Duration(offsetMinutes) * time.Minute

	day, ok := resolveDay(text, now.UTC().Add(offset))
	if !ok {
		return time.Time{}, false
	}
	return day.Add(-offset), true
}

// resolveDay works entirely in the user's wall-clock frame: userNow is the
// reference instant shifted by the zone offset, and the returned midnight
// is in the same frame. Only the first combined-pattern match is
// considered; overlapping later spans are ignored.
func resolveDay(text string, userNow time.Time) (time.Time, bool) {
	match := combinedDateRe.FindString(text)
	if match == "" {
		return time.Time{}, false
	}

	s := strings.ToLower(match)
	today := midnightOf(userNow)

	// Relative days
	switch {
	case strings.Contains(s, "today") || strings.Contains(s, "tonight"):
		return today, true
	case containsAny(s, "tomorrow", "tmrw", "tmr"):
		return today.AddDate(0, 0, 1), true
	case containsAny(s, "yesterday", "yday"):
		return today.AddDate(0, 0, -1), true
	}

	// Relative week/month/year phrases
	switch s {
	case "next week":
		return today.AddDate(0, 0, 7), true
	case "this week":
		// Days until the upcoming start of week; stays on today when
		// the reference day is already the week boundary.
		return today.AddDate(0, 0, (7-int(userNow.Weekday()))%7), true
	case "last week":
		return today.AddDate(0, 0, -7), true
	case "next month":
		return today.AddDate(0, 1, 0), true
	case "this month":
		return today, true
	case "last month":
		return today.AddDate(0, -1, 0), true
	case "next year":
		return today.AddDate(1, 0, 0), true
	case "this year":
		return today, true
	case "last year":
		return today.AddDate(-1, 0, 0), true
	}

	// "in N days/weeks/months" and "N days from now"
	if m := inSpanRe.FindStringSubmatch(s); m != nil {
		return addSpan(today, atoiOr(m[1], 0), m[2]), true
	}
	if m := fromNowRe.FindStringSubmatch(s); m != nil {
		return addSpan(today, atoiOr(m[1], 0), m[2]), true
	}

	// Weekdays, qualified first
	if m := qualifiedDayRe.FindStringSubmatch(s); m != nil {
		target := weekdayIndex[m[2]]
		delta := target - int(userNow.Weekday())
		if m[1] == "this" {
			// "this Friday" is satisfied by today when today is Friday.
			if delta < 0 {
				delta += 7
			}
		} else if delta <= 0 {
			delta += 7
		}
		return today.AddDate(0, 0, delta), true
	}
	if m := weekdayNameRe.FindStringSubmatch(s); m != nil {
		// Bare weekday names mean the next occurrence strictly after
		// today.
		delta := weekdayIndex[m[1]] - int(userNow.Weekday())
		if delta <= 0 {
			delta += 7
		}
		return today.AddDate(0, 0, delta), true
	}

	// Month name + day number, either order
	if mm := monthNameRe.FindStringSubmatch(s); mm != nil {
		dm := dayNumberRe.FindStringSubmatch(s)
		if dm == nil {
			// A bare month name carries no resolvable day.
			return time.Time{}, false
		}
		day := atoiOr(dm[1], 0)
		if day < 1 || day > 31 {
			return time.Time{}, false
		}
		cand := time.Date(userNow.Year(), monthIndex[mm[1]], day, 0, 0, 0, 0, time.UTC)
		if cand.Before(userNow) {
			cand = cand.AddDate(1, 0, 0)
		}
		return cand, true
	}

	// Fixed idioms
	if day, ok := resolveIdiom(s, userNow); ok {
		return day, true
	}

	// Numeric formats; month-first convention throughout
	if m := isoDayRe.FindStringSubmatch(s); m != nil {
		return numericDate(atoiOr(m[1], 0), atoiOr(m[2], 0), atoiOr(m[3], 0))
	}
	if m := numericYearRe.FindStringSubmatch(s); m != nil {
		return numericDate(atoiOr(m[3], 0), atoiOr(m[1], 0), atoiOr(m[2], 0))
	}
	if m := numericRe.FindStringSubmatch(s); m != nil {
		month, day := atoiOr(m[1], 0), atoiOr(m[2], 0)
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		cand := time.Date(userNow.Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if cand.Before(userNow) {
			cand = cand.AddDate(1, 0, 0)
		}
		return cand, true
	}

	return time.Time{}, false
}

func resolveIdiom(s string, userNow time.Time) (time.Time, bool) {
	today := midnightOf(userNow)
	year := userNow.Year()

	// Candidate days that have already passed roll forward to the next
	// month/year, consistent with the month+day rule.
	rollMonth := func(day int) time.Time {
		cand := clampedMonthDay(year, userNow.Month(), day)
		if cand.Before(today) {
			next := today.AddDate(0, 1, 0)
			cand = clampedMonthDay(next.Year(), next.Month(), day)
		}
		return cand
	}
	rollYear := func(month time.Month, day int) time.Time {
		cand := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if cand.Before(today) {
			cand = cand.AddDate(1, 0, 0)
		}
		return cand
	}
	weekdayOnOrAfter := func(target int) time.Time {
		delta := target - int(userNow.Weekday())
		if delta < 0 {
			delta += 7
		}
		return today.AddDate(0, 0, delta)
	}

	switch {
	case containsAny(s, "end of month", "eom"):
		return rollMonth(31), true
	case containsAny(s, "beginning of month", "bom"):
		return rollMonth(1), true
	case strings.Contains(s, "mid month"):
		return rollMonth(15), true
	case containsAny(s, "end of week", "eow"):
		return weekdayOnOrAfter(6), true
	case containsAny(s, "beginning of week", "bow"):
		return weekdayOnOrAfter(0), true
	case strings.Contains(s, "mid week"):
		return weekdayOnOrAfter(3), true
	case containsAny(s, "end of year", "eoy"):
		return rollYear(time.December, 31), true
	case containsAny(s, "beginning of year", "boy"):
		return rollYear(time.January, 1), true
	case strings.Contains(s, "mid year"):
		return rollYear(time.July, 1), true
	case strings.Contains(s, "quarter end"):
		quarter := (int(userNow.Month()) + 2) / 3
		return rollYear(quarterEnds[quarter-1].month, quarterEnds[quarter-1].day), true
	case len(s) == 2 && s[0] == 'q' && s[1] >= '1' && s[1] <= '4':
		q := quarterEnds[s[1]-'1']
		return rollYear(q.month, q.day), true
	}

	return time.Time{}, false
}

var quarterEnds = [4]struct {
	month time.Month
	day   int
}{
	{time.March, 31},
	{time.June, 30},
	{time.September, 30},
	{time.December, 31},
}

func numericDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

func addSpan(today time.Time, n int, unit string) time.Time {
	switch {
	case strings.HasPrefix(unit, "day"):
		return today.AddDate(0, 0, n)
	case strings.HasPrefix(unit, "week"):
		return today.AddDate(0, 0, n*7)
	default:
		return today.AddDate(0, n, 0)
	}
}

func midnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
