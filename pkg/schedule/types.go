package schedule

import "errors"

// RuleKind identifies the cadence of a recurrence rule.
type RuleKind string

const (
	RuleDaily   RuleKind = "daily"
	RuleWeekly  RuleKind = "weekly"
	RuleMonthly RuleKind = "monthly"
	RuleYearly  RuleKind = "yearly"
)

// RecurrenceRule is a structured description of a repeat cadence parsed
// from natural language. At most one of DayOfWeek/DayOfMonth is set, and
// only for the matching kind (weekly and monthly respectively).
type RecurrenceRule struct {
	Kind       RuleKind
	Interval   int  // every N units, always >= 1
	DayOfWeek  *int // 0-6, Sunday=0; weekly rules pinned to a weekday
	DayOfMonth *int // 1-31; monthly rules pinned to a calendar day
	TimeOfDay  *int // minutes since midnight
}

// MatchCategory classifies a highlighted span.
type MatchCategory string

const (
	CategoryDate       MatchCategory = "date"
	CategoryRecurrence MatchCategory = "recurrence"
)

// Match is a span of input text recognized by the pattern catalog.
// Offsets are byte positions into the original string.
type Match struct {
	Start    int           `json:"start"`
	Length   int           `json:"length"`
	Category MatchCategory `json:"category"`
}

// Time-of-day policy defaults, in hours. Dates without an explicit clock
// time land at DefaultDueHour; a "morning" qualifier lands at MorningHour.
const (
	DefaultDueHour = 17
	MorningHour    = 9
)

// ErrInvalidDate is returned when an absolute date string (typically from
// the AI extraction path) cannot be parsed. Callers are expected to retry
// the upstream extraction rather than guess.
var ErrInvalidDate = errors.New("invalid date string")
