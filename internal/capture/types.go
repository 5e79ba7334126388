package capture

import (
	"time"

	"todosplus/internal/model"
)

// CaptureInput is the raw text to extract tasks from.
type CaptureInput struct {
	Text string
}

// CaptureOutput reports the stored tasks and how many extraction
// attempts it took.
type CaptureOutput struct {
	Tasks    []model.Task
	Attempts int
}

// ExtractRequest is what the extractor needs: the text, the reference
// instant and zone for relative phrases, and whether to be strict about
// date formats (set on the retry attempt).
type ExtractRequest struct {
	Text     string
	Now      time.Time
	Timezone string
	Strict   bool
}

// ExtractedTask is one structured task from the extractor. DueISO is an
// RFC 3339 or date-only string, empty when the task has no date.
type ExtractedTask struct {
	Title       string
	Notes       string
	ProjectHint string
	Labels      []string
	Priority    int
	DueISO      string
}
