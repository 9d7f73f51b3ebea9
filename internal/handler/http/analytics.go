package http

import (
	"log/slog"
	"net/http"

	"github.com/teampulse/teampulse-backend-go/internal/domain/analytics"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &AnalyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// Summary implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.Summary(r.Context())
	if err != nil {
		slog.Error("Analytics summary service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
