package http

import (
	"github.com/gin-gonic/gin"

	"todosplus/pkg/response"
)

// QuickAdd godoc
// @Summary     Quick-add a task from free text
// @Description Parses schedule phrases out of the text, attaches due date and recurrence, and stores the task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID   header string      false "Caller identity (gateway-asserted)"
// @Param       X-Timezone  header string      false "IANA name or ±HH:MM offset"
// @Param       body        body   quickAddReq true  "Raw capture text"
// @Success     200 {object} quickAddResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/quickadd [POST]
func (h *handler) QuickAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.QuickAdd(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.QuickAdd: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newQuickAddResp(output))
}

// Complete godoc
// @Summary     Toggle task completion
// @Description Completes an open task. Recurring tasks re-arm onto their next occurrence instead of completing.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} completeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errInvalidID)
		return
	}

	output, err := h.uc.Complete(ctx, scopeFrom(c), completeInput(id))
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// ListToday godoc
// @Summary     List today's tasks
// @Description Returns the caller's open tasks due inside their current calendar day.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-Timezone header string false "IANA name or ±HH:MM offset"
// @Success     200 {object} listTodayResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/today [GET]
func (h *handler) ListToday(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListToday(ctx, scopeFrom(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListToday: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListTodayResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Applies a partial update. Omitted fields are left untouched; clear_due removes the due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}
