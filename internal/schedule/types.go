package schedule

import pkgSchedule "todosplus/pkg/schedule"

// HighlightResponse carries the spans a client should render as inline
// schedule badges.
type HighlightResponse struct {
	Text    string              `json:"text"`
	Matches []pkgSchedule.Match `json:"matches"`
}
