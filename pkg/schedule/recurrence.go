package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dailyIdiomRe     = regexp.MustCompile(`\b(?:every day|daily|each day|everyday)\b`)
	dailyIntervalRe  = regexp.MustCompile(`\b(?:every|each)\s+(\d+)\s+days?\b`)
	weeklyIdiomRe    = regexp.MustCompile(`\b(?:every week|weekly|each week)\b`)
	weeklyIntervalRe = regexp.MustCompile(`\b(?:every|each)\s+(\d+)\s+weeks?\b`)
	// Only "every"/"each" pin a weekly rule to a weekday. A bare "on
	// monday" is a date reference, not a recurrence.
	weekdayRuleRe     = regexp.MustCompile(`\b(?:every|each)\s+(` + weekdayFullAlt + `)s?\b`)
	monthlyIdiomRe    = regexp.MustCompile(`\b(?:every month|monthly|each month)\b`)
	monthlyIntervalRe = regexp.MustCompile(`\b(?:every|each)\s+(\d+)\s+months?\b`)
	dayOfMonthRuleRe  = regexp.MustCompile(`\b(?:every|each|on the)\s+(\d{1,2})` + ordinalSuffix + `?\b`)
	unitWordRe        = regexp.MustCompile(`^\s*(?:days?|weeks?|months?|years?)\b`)
	yearlyIdiomRe     = regexp.MustCompile(`\b(?:every year|yearly|each year|annually)\b`)
	yearlyIntervalRe  = regexp.MustCompile(`\b(?:every|each)\s+(\d+)\s+years?\b`)

	clockTimeRe = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
)

var weekdayIndex = map[string]int{
	"sunday": 0, "sun": 0,
	"monday": 1, "mon": 1,
	"tuesday": 2, "tue": 2, "tues": 2,
	"wednesday": 3, "wed": 3,
	"thursday": 4, "thu": 4, "thurs": 4,
	"friday": 5, "fri": 5,
	"saturday": 6, "sat": 6,
}

// ParseRecurrence detects a recurrence intent in free text and returns the
// structured rule. Categories are tested in a fixed precedence and the
// first hit wins; the generic day-of-month form is checked after every
// interval form so "every 2 weeks" never reads as a monthly anchor.
// Returns false when no recurrence phrase is present.
func ParseRecurrence(text string) (RecurrenceRule, bool) {
	lower := strings.ToLower(text)

	if dailyIdiomRe.MatchString(lower) {
		return RecurrenceRule{Kind: RuleDaily, Interval: 1}, true
	}
	if m := dailyIntervalRe.FindStringSubmatch(lower); m != nil {
		return RecurrenceRule{Kind: RuleDaily, Interval: atoiOr(m[1], 1)}, true
	}

	if weeklyIdiomRe.MatchString(lower) {
		return RecurrenceRule{Kind: RuleWeekly, Interval: 1}, true
	}
	if m := weeklyIntervalRe.FindStringSubmatch(lower); m != nil {
		return RecurrenceRule{Kind: RuleWeekly, Interval: atoiOr(m[1], 1)}, true
	}
	if m := weekdayRuleRe.FindStringSubmatch(lower); m != nil {
		day := weekdayIndex[m[1]]
		return RecurrenceRule{Kind: RuleWeekly, Interval: 1, DayOfWeek: &day}, true
	}

	if monthlyIdiomRe.MatchString(lower) {
		return RecurrenceRule{Kind: RuleMonthly, Interval: 1}, true
	}
	if m := monthlyIntervalRe.FindStringSubmatch(lower); m != nil {
		return RecurrenceRule{Kind: RuleMonthly, Interval: atoiOr(m[1], 1)}, true
	}
	if loc := dayOfMonthRuleRe.FindStringSubmatchIndex(lower); loc != nil {
		// A trailing unit word means this is an interval phrase
		// ("every 2 years"), not a day-of-month anchor. And no
		// calendar month has a day outside 1-31; anything else is not
		// a monthly anchor either.
		day := atoiOr(lower[loc[2]:loc[3]], 0)
		if !unitWordRe.MatchString(lower[loc[1]:]) && day >= 1 && day <= 31 {
			return RecurrenceRule{Kind: RuleMonthly, Interval: 1, DayOfMonth: &day}, true
		}
	}

	if yearlyIdiomRe.MatchString(lower) {
		return RecurrenceRule{Kind: RuleYearly, Interval: 1}, true
	}
	if m := yearlyIntervalRe.FindStringSubmatch(lower); m != nil {
		return RecurrenceRule{Kind: RuleYearly, Interval: atoiOr(m[1], 1)}, true
	}

	return RecurrenceRule{}, false
}

// ParseTimeOfDay extracts the first clock time ("3:30 pm", "15:30") from
// text as minutes since midnight.
func ParseTimeOfDay(text string) (int, bool) {
	m := clockTimeRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0, false
	}

	hours := atoiOr(m[1], 0)
	minutes := atoiOr(m[2], 0)
	if hours > 23 || minutes > 59 {
		return 0, false
	}

	switch m[3] {
	case "pm":
		if hours != 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}
	if hours > 23 {
		return 0, false
	}

	return hours*60 + minutes, true
}

var recurrenceStripRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:every day|daily|each day|everyday)\b`),
	regexp.MustCompile(`(?i)\b(?:every|each)\s+\d+\s+days?\b`),
	regexp.MustCompile(`(?i)\b(?:every week|weekly|each week)\b`),
	regexp.MustCompile(`(?i)\b(?:every|each)\s+\d+\s+weeks?\b`),
	regexp.MustCompile(`(?i)\b(?:every month|monthly|each month)\b`),
	regexp.MustCompile(`(?i)\b(?:every|each)\s+\d+\s+months?\b`),
	regexp.MustCompile(`(?i)\b(?:every year|yearly|each year|annually)\b`),
	regexp.MustCompile(`(?i)\b(?:every|each)\s+\d+\s+years?\b`),
	regexp.MustCompile(`(?i)\b(?:every|each|on)\s+(?:` + weekdayFullAlt + `)s?\b`),
	regexp.MustCompile(`(?i)\b(?:every|each|on the)\s+\d{1,2}` + ordinalSuffix + `?\b`),
}

var spaceRunRe = regexp.MustCompile(`\s+`)

// StripRecurrencePhrases removes recurrence phrases from a task title once
// the rule has been extracted, collapsing leftover whitespace.
func StripRecurrencePhrases(text string) string {
	cleaned := text
	for _, re := range recurrenceStripRes {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(cleaned, " "))
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
