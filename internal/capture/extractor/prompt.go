package extractor

import (
	"fmt"
	"time"

	"todosplus/internal/capture"
)

// taskExtractionSystemPrompt is the system instruction sent to the model.
const taskExtractionSystemPrompt = `You are a task extraction assistant. Your job is to extract structured tasks from user input.

RULES:
1. Parse the input text and extract all individual tasks.
2. For each task, identify:
   - title: Short, clear task description (required)
   - notes: Additional details (can be empty string)
   - project: Project name if one is implied (can be empty string)
   - labels: Array of short label strings
   - priority: Integer 1 (highest) to 5 (lowest), default 3
   - due: Absolute due date as RFC3339 date-time or YYYY-MM-DD. Empty string when the task has no date.

3. Return ONLY a valid JSON array. No markdown, no code blocks, no explanation text.
4. Resolve relative dates ("tomorrow", "next friday") against the CURRENT TIME given below.
5. If no priority is mentioned, use 3.

EXAMPLE INPUT:
"Finish the quarterly report by friday, also call the dentist"

EXAMPLE OUTPUT:
[
  {"title": "Finish the quarterly report", "notes": "", "project": "", "labels": ["work"], "priority": 3, "due": "2024-03-22"},
  {"title": "Call the dentist", "notes": "", "project": "", "labels": [], "priority": 3, "due": ""}
]`

// strictSuffix is appended on the retry attempt after a malformed batch.
const strictSuffix = `

STRICT MODE: your previous answer was rejected. Every "due" value MUST be either an RFC3339 date-time, a YYYY-MM-DD date, or the empty string. Do not output any other date format. Output raw JSON only.`

func buildPrompt(req capture.ExtractRequest) (system, user string) {
	system = taskExtractionSystemPrompt
	if req.Strict {
		system += strictSuffix
	}

	user = fmt.Sprintf("CURRENT TIME: %s\nTIMEZONE: %s\n\nExtract tasks from the following input and return ONLY the JSON array:\n%s",
		req.Now.Format(time.RFC3339), req.Timezone, req.Text)
	return system, user
}
