package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type HealthHandler struct {
	service PredictionService
}

func NewHealthHandler(service PredictionService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Health reports liveness plus the predictor path currently in use, so
// operators can see a degraded process without scraping metrics.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"mode":   h.service.Mode(),
	})
}
