package http

import (
	"github.com/gin-gonic/gin"

	"todosplus/internal/model"
)

const defaultUserID = "default"

// scopeFrom builds the caller scope from request headers. Identity is an
// external concern; the service trusts the gateway's X-User-ID.
func scopeFrom(c *gin.Context) model.Scope {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = defaultUserID
	}
	return model.Scope{
		UserID:   userID,
		Timezone: c.GetHeader("X-Timezone"),
	}
}

// processQuickAddReq binds and validates the quick-add request body.
func (h *handler) processQuickAddReq(c *gin.Context) (quickAddReq, error) {
	var req quickAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}
