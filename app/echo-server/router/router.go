package router

import (
	"examscore/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupPredictionRoutes(api *echo.Group, handler *rest.PredictionHandler) {
	predictions := api.Group("/predictions")

	predictions.POST("", handler.Predict)
	predictions.GET("/schema", handler.Schema)
}

func SetupHealthRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/healthz", handler.Health)
}
