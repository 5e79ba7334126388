package http

import (
	"errors"
	"net/http"

	"todosplus/internal/task"
	pkgErrors "todosplus/pkg/errors"
)

var errInvalidID = errors.New("id is required")

// completeInput adapts a path param to the usecase input.
func completeInput(id string) task.CompleteInput {
	return task.CompleteInput{ID: id}
}

// mapError translates domain errors into HTTP errors; unknown errors
// stay opaque as 500s.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "task title is empty")
	case errors.Is(err, task.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "priority out of range")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
