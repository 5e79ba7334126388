package schedule

import (
	"fmt"
	"time"
)

// absoluteLayouts are tried in order for AI-supplied due strings. Layouts
// without a zone are interpreted in the caller's offset; the date-only
// layout additionally gets the default due hour.
var absoluteLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseAbsolute validates an already-resolved date string from the AI
// extraction path and returns it as a UTC instant. A date-only string
// lands at the default due hour in the caller's zone. Unparseable input
// returns ErrInvalidDate so the capture action can retry the upstream
// extraction.
func ParseAbsolute(value string, offsetMinutes int) (time.Time, error) {
	offset := time.Duration(offsetMinutes) * time.Minute

	for _, layout := range absoluteLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		switch layout {
		case "2006-01-02":
			return t.Add(time.Duration(DefaultDueHour)*time.Hour - offset), nil
		case "2006-01-02T15:04:05":
			// No zone in the layout: the wall clock is the user's.
			return t.Add(-offset), nil
		default:
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}
