package usecase

import (
	"time"

	"todosplus/internal/capture"
	"todosplus/internal/task"
	"todosplus/pkg/log"
)

type implUseCase struct {
	l               log.Logger
	extractor       capture.Extractor
	tasks           task.UseCase
	defaultTimezone string

	// nowFn is swapped in tests to pin the reference instant.
	nowFn func() time.Time
}

// New creates a new capture UseCase instance.
func New(l log.Logger, extractor capture.Extractor, tasks task.UseCase, defaultTimezone string) *implUseCase {
	return &implUseCase{
		l:               l,
		extractor:       extractor,
		tasks:           tasks,
		defaultTimezone: defaultTimezone,
		nowFn:           time.Now,
	}
}
