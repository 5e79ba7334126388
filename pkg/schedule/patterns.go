package schedule

import (
	"regexp"
	"sort"
	"strings"
)

// Shared alternation fragments. Longer spellings come first so the
// leftmost-first matcher prefers "september" over "sep".
const (
	monthAlt = `january|february|march|april|may|june|july|august|september|october|november|december|` +
		`jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`
	weekdayAlt = `monday|tuesday|wednesday|thursday|friday|saturday|sunday|` +
		`mon|tues|tue|wed|thurs|thu|fri|sat|sun`
	weekdayFullAlt = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
	ordinalSuffix  = `(?:st|nd|rd|th)`
)

// datePatternSources enumerates every recognized date phrase, in the
// category precedence the resolver relies on: relative day, relative
// week/month/year spans, weekday (with optional qualifier), month+day in
// both orders, bare month names, fixed idioms, numeric forms, clock times.
var datePatternSources = []string{
	// Relative days and synonyms
	`\b(?:today|tonight)\b`,
	`\b(?:tomorrow|tmrw|tmr)\b`,
	`\b(?:yesterday|yday)\b`,

	// Relative week/month/year spans
	`\b(?:next|this|last)\s+(?:week|month|year)\b`,
	`\bin\s+\d+\s+(?:days?|weeks?|months?)\b`,
	`\b\d+\s+(?:days?|weeks?|months?)\s+from\s+now\b`,

	// Weekdays, optionally qualified
	`\b(?:next|this|last)\s+(?:` + weekdayAlt + `)\b`,
	`\b(?:` + weekdayAlt + `)\b`,

	// Month + day, both orders, with or without "on" and ordinal suffix
	`\bon\s+(?:` + monthAlt + `)\s+\d{1,2}` + ordinalSuffix + `?\b`,
	`\b(?:` + monthAlt + `)\s+\d{1,2}` + ordinalSuffix + `?\b`,
	`\bon\s+\d{1,2}` + ordinalSuffix + `?\s+(?:` + monthAlt + `)\b`,
	`\b\d{1,2}` + ordinalSuffix + `?\s+(?:` + monthAlt + `)\b`,

	// Bare month names (highlight only; unresolvable without a day)
	`\b(?:` + monthAlt + `)\b`,

	// Fixed idioms
	`\b(?:end of month|eom|beginning of month|bom|mid month)\b`,
	`\b(?:end of week|eow|beginning of week|bow|mid week)\b`,
	`\b(?:end of year|eoy|beginning of year|boy|mid year)\b`,
	`\b(?:quarter end|q[1-4])\b`,

	// Numeric forms; four-digit-year variants first
	`\b\d{4}-\d{1,2}-\d{1,2}\b`,
	`\b\d{1,2}/\d{1,2}/\d{4}\b`,
	`\b\d{1,2}-\d{1,2}-\d{4}\b`,
	`\b\d{1,2}/\d{1,2}\b`,
	`\b\d{1,2}-\d{1,2}\b`,
	`\b\d{1,2}\.\d{1,2}\b`,

	// Clock times
	`\b(?:at|by)\s+\d{1,2}:\d{2}\s*(?:am|pm)?\b`,
	`\b\d{1,2}:\d{2}\s*(?:am|pm)?\b`,
}

// recurrencePatternSources enumerates every recognized recurrence phrase.
// Category order (daily, weekly, monthly, yearly) matters: the generic
// "every <number>" monthly-day form must not shadow interval forms like
// "every 2 weeks".
var recurrencePatternSources = []string{
	// Daily
	`\b(?:every day|daily|each day|everyday)\b`,
	`\b(?:every|each)\s+\d+\s+days?\b`,
	`\b\d+\s+days?\s+apart\b`,

	// Weekly
	`\b(?:every week|weekly|each week)\b`,
	`\b(?:every|each)\s+\d+\s+weeks?\b`,
	`\b\d+\s+weeks?\s+apart\b`,
	`\b(?:every|each|on)\s+(?:` + weekdayFullAlt + `)s?\b`,

	// Monthly
	`\b(?:every month|monthly|each month)\b`,
	`\b(?:every|each)\s+\d+\s+months?\b`,
	`\b\d+\s+months?\s+apart\b`,

	// Yearly
	`\b(?:every year|yearly|each year|annually)\b`,
	`\b(?:every|each)\s+\d+\s+years?\b`,
	`\b\d+\s+years?\s+apart\b`,

	// Generic day-of-month anchor, last so interval forms like
	// "every 2 years" keep their full span
	`\b(?:every|each|on the)\s+\d{1,2}` + ordinalSuffix + `?\b`,
}

var (
	combinedDateRe       = regexp.MustCompile(`(?i)` + strings.Join(datePatternSources, "|"))
	combinedRecurrenceRe = regexp.MustCompile(`(?i)` + strings.Join(recurrencePatternSources, "|"))
)

// DatePattern returns the combined matcher over all date categories.
// The returned regexp is shared and safe for concurrent use.
func DatePattern() *regexp.Regexp { return combinedDateRe }

// RecurrencePattern returns the combined matcher over all recurrence
// categories.
func RecurrencePattern() *regexp.Regexp { return combinedRecurrenceRe }

// Highlight returns every date and recurrence span found in text, ordered
// by start offset. The UI uses these spans to render inline badges.
func Highlight(text string) []Match {
	var matches []Match

	for _, loc := range combinedDateRe.FindAllStringIndex(text, -1) {
		matches = append(matches, Match{Start: loc[0], Length: loc[1] - loc[0], Category: CategoryDate})
	}
	for _, loc := range combinedRecurrenceRe.FindAllStringIndex(text, -1) {
		matches = append(matches, Match{Start: loc[0], Length: loc[1] - loc[0], Category: CategoryRecurrence})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].Length > matches[j].Length
	})

	return matches
}
