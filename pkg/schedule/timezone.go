package schedule

import (
	"regexp"
	"strings"
	"time"
)

// UTCName is the normalized spec returned whenever a timezone string
// cannot be resolved.
const UTCName = "UTC"

var fixedOffsetRe = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)

// ResolveOffsetMinutes computes the offset from UTC, in minutes, for an
// IANA zone name ("Asia/Karachi") or a fixed-offset spec ("+05:00") at
// the given instant. It never fails: anything unresolvable falls back to
// UTC, signalled by the returned normalized spec differing from the
// input. Callers that care emit the diagnostic.
func ResolveOffsetMinutes(spec string, now time.Time) (int, string) {
	spec = strings.TrimSpace(spec)

	if strings.Contains(spec, "/") {
		loc, err := time.LoadLocation(spec)
		if err != nil {
			return 0, UTCName
		}
		_, seconds := now.In(loc).Zone()
		return seconds / 60, spec
	}

	if m := fixedOffsetRe.FindStringSubmatch(spec); m != nil {
		minutes := atoiOr(m[2], 0)*60 + atoiOr(m[3], 0)
		if m[1] == "-" {
			minutes = -minutes
		}
		return minutes, spec
	}

	return 0, UTCName
}

// TodayRange returns the epoch-millisecond boundaries of the reference
// instant's calendar day in the given zone: [start of day, last ms of
// day]. The today view queries task due times against this window.
func TodayRange(now time.Time, spec string) (start, end int64) {
	offsetMinutes, _ := ResolveOffsetMinutes(spec, now)
	offset := time.Duration(offsetMinutes) * time.Minute

	dayStart := midnightOf(now.UTC().Add(offset)).Add(-offset)
	return dayStart.UnixMilli(), dayStart.Add(24*time.Hour).UnixMilli() - 1
}
