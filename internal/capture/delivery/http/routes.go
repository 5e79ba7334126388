package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the capture endpoint. The rate-limit middleware is
// supplied by the caller so the limiter config stays in one place.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, rateLimit gin.HandlerFunc) {
	rg.POST("/capture", rateLimit, h.Capture)
}
