package http

import (
	"todosplus/internal/task"
	"todosplus/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	QuickAdd(c interface{})
	Complete(c interface{})
	ListToday(c interface{})
	Update(c interface{})
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
