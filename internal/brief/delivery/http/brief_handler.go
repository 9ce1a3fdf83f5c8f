package http

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"

	"golang-daily-brief/internal/brief/dto"
	"golang-daily-brief/internal/brief/repository"
	"golang-daily-brief/internal/brief/service"
	"golang-daily-brief/pkg/logger"

	"github.com/labstack/echo/v4"
)

const htmlContentType = "text/html; charset=utf-8"

// BriefHandler handles HTTP requests for the daily brief.
type BriefHandler struct {
	briefService service.BriefService
	logger       *logger.Logger
}

// NewBriefHandler creates a new BriefHandler.
func NewBriefHandler(briefService service.BriefService, logger *logger.Logger) *BriefHandler {
	return &BriefHandler{briefService: briefService, logger: logger}
}

// RegisterRoutes registers the brief routes to the Echo group. The update route sits behind cronAuth.
func (h *BriefHandler) RegisterRoutes(g *echo.Group, cronAuth echo.MiddlewareFunc) {
	g.GET("/cron/update-news", h.UpdateNews, cronAuth)
	g.GET("/news", h.GetNews)
}

// UpdateNews godoc
// @Summary Refresh the daily brief
// @Description Fetch the configured feeds, summarize them with Gemini and overwrite the stored brief
// @Tags brief
// @Produce  html
// @Param   secret  query   string  false   "Cron secret, alternative to the bearer token"
// @Param   Authorization  header  string  false   "Bearer <cron secret>"
// @Success 200 {string} string "HTML page with the number of stored items"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse
// @Router /cron/update-news [get]
func (h *BriefHandler) UpdateNews(c echo.Context) error {
	// A started run is not aborted when the caller disconnects.
	ctx := context.WithoutCancel(c.Request().Context())

	result, err := h.briefService.UpdateDailyBrief(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to update daily brief", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: err.Error()})
	}

	h.logger.InfoContext(ctx, "Daily brief update finished", logger.IntField("count", result.Count))
	return c.Blob(http.StatusOK, htmlContentType, []byte(renderUpdatePage(result)))
}

// GetNews godoc
// @Summary Get the daily brief
// @Description Get the most recently stored daily brief
// @Tags brief
// @Produce  json
// @Success 200 {object} entity.DailyBrief
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /news [get]
func (h *BriefHandler) GetNews(c echo.Context) error {
	ctx := c.Request().Context()
	brief, err := h.briefService.GetDailyBrief(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Success: false, Error: "daily brief has not been generated yet"})
		}
		h.logger.ErrorContext(ctx, "Failed to get daily brief", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, brief)
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

func renderUpdatePage(result *dto.UpdateResult) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Daily Brief</title></head>
<body>
<h1>Daily brief updated</h1>
<p>Stored %d news items.</p>
<p>Updated at %s</p>
</body>
</html>
`, result.Count, html.EscapeString(result.UpdatedAt))
}
