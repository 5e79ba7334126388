package schedule_test

import (
	"testing"
	"time"

	"todosplus/pkg/schedule"
)

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name     string
		rule     schedule.RecurrenceRule
		base     time.Time
		preserve bool
		want     time.Time
	}{
		{
			name:     "Daily keeps time of day",
			rule:     schedule.RecurrenceRule{Kind: schedule.RuleDaily, Interval: 1},
			base:     time.Date(2024, time.January, 31, 12, 30, 0, 0, time.UTC),
			preserve: true,
			want:     time.Date(2024, time.February, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			name:     "Daily interval",
			rule:     schedule.RecurrenceRule{Kind: schedule.RuleDaily, Interval: 3},
			base:     time.Date(2024, time.January, 31, 12, 30, 0, 0, time.UTC),
			preserve: true,
			want:     time.Date(2024, time.February, 3, 12, 30, 0, 0, time.UTC),
		},
		{
			// 2024-01-01 is a Monday; the next Monday is a full week out.
			name:     "Weekly anchor on the same weekday jumps a week",
			rule:     schedule.RecurrenceRule{Kind: schedule.RuleWeekly, Interval: 1, DayOfWeek: intPtr(1)},
			base:     time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
			preserve: true,
			want:     time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "Weekly anchor on a later weekday stays in the week",
			rule:     schedule.RecurrenceRule{Kind: schedule.RuleWeekly, Interval: 1, DayOfWeek: intPtr(5)},
			base:     time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
			preserve: true,
			want:     time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "Biweekly without anchor",
			rule:     schedule.RecurrenceRule{Kind: schedule.RuleWeekly, Interval: 2},
			base:     time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
			preserve: true,
			want:     time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "Monthly anchor already passed bumps a month",
			rule:     schedule.RecurrenceRule{Kind: schedule.RuleMonthly, Interval: 1, DayOfMonth: intPtr(1)},
			base:     time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC),
			preserve: true,
			want:     time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "Monthly anchor still ahead stays in the month",
			rule:     schedule.RecurrenceRule{Kind: schedule.RuleMonthly, Interval: 1, DayOfMonth: intPtr(20)},
			base:     time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC),
			preserve: true,
			want:     time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "Monthly anchor clamps to short month",
			rule:     schedule.RecurrenceRule{Kind: schedule.RuleMonthly, Interval: 1, DayOfMonth: intPtr(31)},
			base:     time.Date(2024, time.January, 31, 9, 0, 0, 0, time.UTC),
			preserve: true,
			want:     time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "Monthly without anchor clamps the base day",
			rule:     schedule.RecurrenceRule{Kind: schedule.RuleMonthly, Interval: 1},
			base:     time.Date(2024, time.January, 31, 9, 0, 0, 0, time.UTC),
			preserve: true,
			want:     time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "Monthly interval skips months",
			rule:     schedule.RecurrenceRule{Kind: schedule.RuleMonthly, Interval: 3},
			base:     time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC),
			preserve: true,
			want:     time.Date(2024, time.April, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "Yearly from a leap day clamps",
			rule:     schedule.RecurrenceRule{Kind: schedule.RuleYearly, Interval: 1},
			base:     time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC),
			preserve: true,
			want:     time.Date(2025, time.February, 28, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "Rule time of day overrides the base clock",
			rule:     schedule.RecurrenceRule{Kind: schedule.RuleDaily, Interval: 1, TimeOfDay: intPtr(9*60 + 30)},
			base:     time.Date(2024, time.March, 15, 22, 0, 0, 0, time.UTC),
			preserve: true,
			want:     time.Date(2024, time.March, 16, 9, 30, 0, 0, time.UTC),
		},
		{
			name:     "Without preservation the result is midnight",
			rule:     schedule.RecurrenceRule{Kind: schedule.RuleDaily, Interval: 1},
			base:     time.Date(2024, time.March, 15, 22, 17, 3, 0, time.UTC),
			preserve: false,
			want:     time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Zero interval is treated as one",
			rule:     schedule.RecurrenceRule{Kind: schedule.RuleDaily},
			base:     time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC),
			preserve: true,
			want:     time.Date(2024, time.March, 16, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := schedule.NextOccurrence(tc.rule, tc.base, tc.preserve)
			if !got.Equal(tc.want) {
				t.Fatalf("NextOccurrence(%+v, %v) = %v, want %v", tc.rule, tc.base, got, tc.want)
			}
		})
	}
}

// A chain of projections must always move forward; a rule that stalls
// would re-arm a completed task onto the same instant forever.
func TestNextOccurrenceAlwaysAdvances(t *testing.T) {
	rules := []schedule.RecurrenceRule{
		{Kind: schedule.RuleDaily, Interval: 1},
		{Kind: schedule.RuleWeekly, Interval: 1, DayOfWeek: intPtr(3)},
		{Kind: schedule.RuleMonthly, Interval: 1, DayOfMonth: intPtr(31)},
		{Kind: schedule.RuleYearly, Interval: 1},
	}

	for _, rule := range rules {
		cur := time.Date(2024, time.January, 31, 17, 0, 0, 0, time.UTC)
		for i := 0; i < 24; i++ {
			next := schedule.NextOccurrence(rule, cur, true)
			if !next.After(cur) {
				t.Fatalf("rule %+v stalled at %v (step %d)", rule, cur, i)
			}
			cur = next
		}
	}
}
