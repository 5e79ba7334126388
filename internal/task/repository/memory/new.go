package memory

import (
	"sync"

	"todosplus/internal/model"
	"todosplus/pkg/log"
)

// implRepository is a mutex-guarded in-memory task store. It stands in
// for the external document store behind repository.Repository.
type implRepository struct {
	l     log.Logger
	mu    sync.RWMutex
	tasks map[string]model.Task
}

// New creates an empty in-memory task repository.
func New(l log.Logger) *implRepository {
	return &implRepository{
		l:     l,
		tasks: make(map[string]model.Task),
	}
}
