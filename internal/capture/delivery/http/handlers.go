package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todosplus/internal/capture"
	"todosplus/internal/model"
	pkgErrors "todosplus/pkg/errors"
	"todosplus/pkg/response"
	"todosplus/pkg/schedule"
)

type captureReq struct {
	Text string `json:"text" binding:"required,min=1,max=4000"`
}

type captureResp struct {
	Tasks    []taskResp `json:"tasks"`
	Attempts int        `json:"attempts"`
}

type taskResp struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Project  string `json:"project,omitempty"`
	Priority int    `json:"priority"`
	Due      string `json:"due,omitempty"` // RFC 3339, empty when dateless
}

func newCaptureResp(out capture.CaptureOutput) captureResp {
	resp := captureResp{Attempts: out.Attempts, Tasks: make([]taskResp, len(out.Tasks))}
	for i, t := range out.Tasks {
		r := taskResp{
			ID:       t.ID,
			Title:    t.Title,
			Project:  t.Project,
			Priority: t.Priority,
		}
		if t.Due != nil {
			r.Due = t.Due.Format(timeFormat)
		}
		resp.Tasks[i] = r
	}
	return resp
}

// Capture godoc
// @Summary     AI capture
// @Description Extracts structured tasks from free text via the configured extractor and stores them.
// @Tags        Capture
// @Accept      json
// @Produce     json
// @Param       X-User-ID  header string     false "Caller identity (gateway-asserted)"
// @Param       X-Timezone header string     false "IANA name or ±HH:MM offset"
// @Param       body       body   captureReq true  "Raw text"
// @Success     200 {object} captureResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Extraction failed"
// @Failure     429 {object} response.Resp "Rate limited"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/capture [POST]
func (h *handler) Capture(c *gin.Context) {
	ctx := c.Request.Context()

	var req captureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = "default"
	}
	sc := model.Scope{UserID: userID, Timezone: c.GetHeader("X-Timezone")}

	output, err := h.uc.Capture(ctx, sc, capture.CaptureInput{Text: req.Text})
	if err != nil {
		h.l.Errorf(ctx, "uc.Capture: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCaptureResp(output))
}

const timeFormat = "2006-01-02T15:04:05Z07:00"

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, capture.ErrEmptyText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "capture text is empty")
	case errors.Is(err, capture.ErrNothingExtracted),
		errors.Is(err, capture.ErrExtraction):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "could not extract tasks")
	case errors.Is(err, schedule.ErrInvalidDate):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "extractor returned an invalid due date")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
