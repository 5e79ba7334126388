package schedule

import (
	"errors"

	"github.com/gin-gonic/gin"

	pkgLog "todosplus/pkg/log"
	"todosplus/pkg/response"
	pkgSchedule "todosplus/pkg/schedule"
)

type handler struct {
	l pkgLog.Logger
}

var errMissingText = errors.New("text query parameter is required")

// HandleHighlight returns the date and recurrence spans found in a text
// @Summary Highlight schedule phrases
// @Description Scans text for date and recurrence phrases and returns their byte spans for inline rendering
// @Tags Schedule
// @Produce json
// @Param text query string true "Text to scan"
// @Success 200 {object} HighlightResponse
// @Failure 400 {object} response.Resp "Bad Request"
// @Router /api/v1/schedule/highlight [get]
func (h *handler) HandleHighlight(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		response.Error(c, errMissingText)
		return
	}

	response.OK(c, HighlightResponse{
		Text:    text,
		Matches: pkgSchedule.Highlight(text),
	})
}
