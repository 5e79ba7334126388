package schedule

import (
	"github.com/gin-gonic/gin"

	pkgLog "todosplus/pkg/log"
)

// Handler is the interface for the schedule inspection endpoints.
type Handler interface {
	HandleHighlight(c *gin.Context)
}

// New creates a new schedule handler.
func New(l pkgLog.Logger) Handler {
	return &handler{l: l}
}
