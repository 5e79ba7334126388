package schedule_test

import (
	"testing"

	"todosplus/pkg/schedule"
)

func intPtr(n int) *int { return &n }

func TestParseRecurrence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want schedule.RecurrenceRule
		none bool
	}{
		{
			name: "Bare daily idiom",
			text: "water the plants every day",
			want: schedule.RecurrenceRule{Kind: schedule.RuleDaily, Interval: 1},
		},
		{
			name: "Everyday one word",
			text: "stretch everyday",
			want: schedule.RecurrenceRule{Kind: schedule.RuleDaily, Interval: 1},
		},
		{
			name: "Daily interval",
			text: "take medicine every 3 days",
			want: schedule.RecurrenceRule{Kind: schedule.RuleDaily, Interval: 3},
		},
		{
			name: "Weekly idiom",
			text: "report weekly",
			want: schedule.RecurrenceRule{Kind: schedule.RuleWeekly, Interval: 1},
		},
		{
			name: "Biweekly interval",
			text: "review goals every 2 weeks",
			want: schedule.RecurrenceRule{Kind: schedule.RuleWeekly, Interval: 2},
		},
		{
			name: "Anchored weekday",
			text: "gym every monday",
			want: schedule.RecurrenceRule{Kind: schedule.RuleWeekly, Interval: 1, DayOfWeek: intPtr(1)},
		},
		{
			name: "Anchored weekday with each",
			text: "standup each friday",
			want: schedule.RecurrenceRule{Kind: schedule.RuleWeekly, Interval: 1, DayOfWeek: intPtr(5)},
		},
		{
			name: "Plain weekday reference is not recurring",
			text: "dentist on monday",
			none: true,
		},
		{
			name: "Monthly idiom",
			text: "pay bills monthly",
			want: schedule.RecurrenceRule{Kind: schedule.RuleMonthly, Interval: 1},
		},
		{
			name: "Monthly interval",
			text: "rotate keys every 6 months",
			want: schedule.RecurrenceRule{Kind: schedule.RuleMonthly, Interval: 6},
		},
		{
			name: "Day of month anchor",
			text: "Pay rent on the 1st",
			want: schedule.RecurrenceRule{Kind: schedule.RuleMonthly, Interval: 1, DayOfMonth: intPtr(1)},
		},
		{
			name: "Day of month anchor mid month",
			text: "invoice clients every 15th",
			want: schedule.RecurrenceRule{Kind: schedule.RuleMonthly, Interval: 1, DayOfMonth: intPtr(15)},
		},
		{
			name: "Day of month out of range",
			text: "party on the 32nd",
			none: true,
		},
		{
			name: "Yearly idiom",
			text: "renew passport annually",
			want: schedule.RecurrenceRule{Kind: schedule.RuleYearly, Interval: 1},
		},
		{
			name: "Yearly interval",
			text: "replace battery every 2 years",
			want: schedule.RecurrenceRule{Kind: schedule.RuleYearly, Interval: 2},
		},
		{
			name: "No recurrence",
			text: "buy groceries tomorrow",
			none: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := schedule.ParseRecurrence(tt.text)
			if tt.none {
				if ok {
					t.Fatalf("expected no rule, got %+v", got)
				}
				return
			}
			if !ok {
				t.Fatalf("expected a rule for %q", tt.text)
			}
			assertRuleEqual(t, got, tt.want)
		})
	}
}

func TestParseRecurrencePrecedence(t *testing.T) {
	// "every 2 weeks" must not read as a monthly day-of-month anchor.
	got, ok := schedule.ParseRecurrence("sync every 2 weeks")
	if !ok || got.Kind != schedule.RuleWeekly || got.Interval != 2 || got.DayOfMonth != nil {
		t.Fatalf("expected weekly interval 2, got %+v ok=%v", got, ok)
	}

	// "every monday" must pin the weekday, not fall to any generic form.
	got, ok = schedule.ParseRecurrence("review every monday")
	if !ok || got.DayOfWeek == nil || *got.DayOfWeek != 1 {
		t.Fatalf("expected weekly anchored to monday, got %+v ok=%v", got, ok)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		text string
		want int
		none bool
	}{
		{text: "call at 3:30 pm", want: 15*60 + 30},
		{text: "call at 3:30pm", want: 15*60 + 30},
		{text: "standup 9:00 am", want: 9 * 60},
		{text: "meeting 15:30", want: 15*60 + 30},
		{text: "midnight 12:00 am", want: 0},
		{text: "noon 12:00 pm", want: 12 * 60},
		{text: "no time here", none: true},
		{text: "bad 99:99", none: true},
	}

	for _, tt := range tests {
		got, ok := schedule.ParseTimeOfDay(tt.text)
		if tt.none {
			if ok {
				t.Errorf("ParseTimeOfDay(%q) = %d, expected no match", tt.text, got)
			}
			continue
		}
		if !ok || got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %d ok=%v, want %d", tt.text, got, ok, tt.want)
		}
	}
}

func TestStripRecurrencePhrases(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "Pay rent on the 1st", want: "Pay rent"},
		{text: "Water plants every 3 days", want: "Water plants"},
		{text: "gym every monday", want: "gym"},
		{text: "review goals every 2 weeks", want: "review goals"},
		{text: "renew passport annually", want: "renew passport"},
		{text: "no recurrence here", want: "no recurrence here"},
	}

	for _, tt := range tests {
		if got := schedule.StripRecurrencePhrases(tt.text); got != tt.want {
			t.Errorf("StripRecurrencePhrases(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func assertRuleEqual(t *testing.T, got, want schedule.RecurrenceRule) {
	t.Helper()

	if got.Kind != want.Kind || got.Interval != want.Interval {
		t.Fatalf("rule = %+v, want kind=%s interval=%d", got, want.Kind, want.Interval)
	}
	if !intPtrEqual(got.DayOfWeek, want.DayOfWeek) {
		t.Fatalf("DayOfWeek = %v, want %v", fmtIntPtr(got.DayOfWeek), fmtIntPtr(want.DayOfWeek))
	}
	if !intPtrEqual(got.DayOfMonth, want.DayOfMonth) {
		t.Fatalf("DayOfMonth = %v, want %v", fmtIntPtr(got.DayOfMonth), fmtIntPtr(want.DayOfMonth))
	}
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtIntPtr(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
