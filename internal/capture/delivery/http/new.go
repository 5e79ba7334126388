package http

import (
	"todosplus/internal/capture"
	"todosplus/pkg/log"
)

type handler struct {
	l  log.Logger
	uc capture.UseCase
}

// New creates a new HTTP handler for the capture domain.
func New(l log.Logger, uc capture.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
