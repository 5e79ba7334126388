package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"todosplus/internal/capture"
	"todosplus/internal/model"
	"todosplus/internal/task"
	"todosplus/pkg/schedule"
)

// extraction gets two attempts total; the second asks the extractor for
// strict date formats.
const maxAttempts = 2

// Capture extracts structured tasks from free text and stores them. The
// extractor may hand back malformed due strings; those trigger one
// stricter retry of the whole extraction before the failure surfaces.
func (uc *implUseCase) Capture(ctx context.Context, sc model.Scope, input capture.CaptureInput) (capture.CaptureOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return capture.CaptureOutput{}, capture.ErrEmptyText
	}

	now := uc.nowFn().UTC()

	spec := sc.Timezone
	if spec == "" {
		spec = uc.defaultTimezone
	}
	offset, normalized := schedule.ResolveOffsetMinutes(spec, now)
	if normalized != spec {
		uc.l.Warnf(ctx, "timezone %q not resolvable, using %s", spec, normalized)
	}

	var (
		resolved []resolvedTask
		lastErr  error
	)

	attempts := 0
	for attempts < maxAttempts {
		attempts++

		extracted, err := uc.extractor.Extract(ctx, capture.ExtractRequest{
			Text:     text,
			Now:      now,
			Timezone: normalized,
			Strict:   attempts > 1,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Capture Extract (attempt %d): %v", attempts, err)
			return capture.CaptureOutput{}, fmt.Errorf("%w: %v", capture.ErrExtraction, err)
		}

		resolved, lastErr = uc.resolveExtracted(extracted, offset)
		if lastErr == nil && len(resolved) == 0 {
			lastErr = capture.ErrNothingExtracted
		}
		if lastErr == nil {
			break
		}

		uc.l.Warnf(ctx, "uc.Capture attempt %d rejected: %v", attempts, lastErr)
	}
	if lastErr != nil {
		return capture.CaptureOutput{}, lastErr
	}

	out := capture.CaptureOutput{Attempts: attempts}
	for _, r := range resolved {
		created, err := uc.tasks.Create(ctx, sc, task.CreateInput{
			Title:    r.title,
			Notes:    r.notes,
			Project:  r.project,
			Priority: r.priority,
			Labels:   r.labels,
			Due:      r.due,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Capture Create: %v", err)
			return capture.CaptureOutput{}, err
		}
		out.Tasks = append(out.Tasks, created)
	}

	return out, nil
}

type resolvedTask struct {
	title    string
	notes    string
	project  string
	priority int
	labels   []string
	due      *time.Time
}

// resolveExtracted validates every extracted task. A single bad due
// string fails the whole batch so the retry re-extracts everything.
func (uc *implUseCase) resolveExtracted(extracted []capture.ExtractedTask, offsetMinutes int) ([]resolvedTask, error) {
	var out []resolvedTask

	for _, e := range extracted {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			continue
		}

		var due *time.Time
		if e.DueISO != "" {
			t, err := schedule.ParseAbsolute(e.DueISO, offsetMinutes)
			if err != nil {
				return nil, err
			}
			due = &t
		}

		priority := e.Priority
		if priority == 0 {
			priority = model.PriorityDefault
		}

		out = append(out, resolvedTask{
			title:    title,
			notes:    e.Notes,
			project:  e.ProjectHint,
			priority: priority,
			labels:   e.Labels,
			due:      due,
		})
	}

	return out, nil
}
