package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang-daily-brief/internal/brief/dto"
	"golang-daily-brief/internal/brief/service"
	"golang-daily-brief/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedServer(svc service.BriefService) (*echo.Echo, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{Logger: zap.New(core)}

	e := echo.New()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: func() string { return "req-42" }}))
	e.Use(RequestContext())
	e.Use(RequestLogger(log))

	handler := NewBriefHandler(svc, log)
	handler.RegisterRoutes(e.Group("/api"), CronAuth(service.NewAuthenticator("s3cret"), log))
	return e, logs
}

func TestRequestLoggerOmitsQuerySecret(t *testing.T) {
	targets := []string{
		"/api/cron/update-news?secret=s3cret",
		"/api/cron/update-news?secret=s3cret-guess",
	}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			e, logs := newObservedServer(&fakeBriefService{result: &dto.UpdateResult{Count: 3}})

			serve(e, httptest.NewRequest(http.MethodGet, target, nil))

			entries := logs.FilterMessage("Request handled").All()
			require.Len(t, entries, 1)
			assert.Equal(t, "/api/cron/update-news", entries[0].ContextMap()["path"])

			for _, entry := range logs.All() {
				assert.NotContains(t, entry.Message, "s3cret")
				assert.NotContains(t, fmt.Sprint(entry.ContextMap()), "s3cret")
			}
		})
	}
}

func TestRequestContextTagsHandlerLogs(t *testing.T) {
	e, logs := newObservedServer(&fakeBriefService{err: service.ErrMissingAPIKey})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/cron/update-news?secret=s3cret", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))

	entries := logs.FilterMessage("Failed to update daily brief").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
}

func TestCronAuthLogsRejection(t *testing.T) {
	svc := &fakeBriefService{}
	e, logs := newObservedServer(svc)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/cron/update-news", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, svc.calls)
	entries := logs.FilterMessage("Unauthorized cron request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
}
