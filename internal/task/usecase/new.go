package usecase

import (
	"time"

	"todosplus/internal/task/repository"
	"todosplus/pkg/log"
)

type implUseCase struct {
	l               log.Logger
	repo            repository.Repository
	defaultTimezone string

	// nowFn is swapped in tests to pin the reference instant.
	nowFn func() time.Time
}

// New creates a new task UseCase instance.
func New(l log.Logger, repo repository.Repository, defaultTimezone string) *implUseCase {
	return &implUseCase{
		l:               l,
		repo:            repo,
		defaultTimezone: defaultTimezone,
		nowFn:           time.Now,
	}
}
