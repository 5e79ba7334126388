package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/quickadd", h.QuickAdd)
		tasks.GET("/today", h.ListToday)
		tasks.POST("/:id/complete", h.Complete)
		tasks.PUT("/:id", h.Update)
	}
}
