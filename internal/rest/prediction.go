package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"examscore/business/prediction"
	"examscore/domain"
	"examscore/pkg/logger"
	"examscore/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PredictionHandler struct {
		validate *validator.Validate
		service  PredictionService
	}

	PredictionService interface {
		Predict(ctx context.Context, profile domain.StudentProfile) (domain.Prediction, error)
		Mode() string
	}

	// PredictionRequest carries the form fields. Validation tags mirror
	// the dashboard input constraints; categorical options are exactly
	// the mapping key sets, so the encoder never sees an out-of-domain
	// label from this surface.
	PredictionRequest struct {
		Age            int     `json:"age" validate:"required,min=15,max=30"`
		Gender         string  `json:"gender" validate:"required,oneof=female male other"`
		Course         string  `json:"course" validate:"required,oneof=b.com b.sc b.tech ba bba bca diploma"`
		StudyHours     float64 `json:"study_hours" validate:"min=0,max=15"`
		Attendance     int     `json:"attendance" validate:"min=0,max=100"`
		StudyMethod    string  `json:"study_method" validate:"required,oneof=coaching 'group study' mixed 'online videos' self-study"`
		InternetAccess string  `json:"internet_access" validate:"required,oneof=no yes"`
		SleepHours     float64 `json:"sleep_hours" validate:"required,min=4,max=12"`
		SleepQuality   string  `json:"sleep_quality" validate:"required,oneof=average good poor"`
		FacilityRating string  `json:"facility_rating" validate:"required,oneof=high low medium"`
		ExamDifficulty string  `json:"exam_difficulty" validate:"required,oneof=easy hard moderate"`
	}

	NumericField struct {
		Min  float64 `json:"min"`
		Max  float64 `json:"max"`
		Step float64 `json:"step"`
	}

	SchemaResponse struct {
		MappingVersion int                     `json:"mapping_version"`
		Numeric        map[string]NumericField `json:"numeric"`
		Categorical    map[string][]string     `json:"categorical"`
	}
)

func NewPredictionHandler(service PredictionService) *PredictionHandler {
	return &PredictionHandler{
		validate: validator.New(),
		service:  service,
	}
}

func (h *PredictionHandler) Predict(c echo.Context) error {
	start := time.Now()

	var req PredictionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	profile := domain.StudentProfile{
		Age:            req.Age,
		Gender:         req.Gender,
		Course:         req.Course,
		StudyHours:     req.StudyHours,
		Attendance:     req.Attendance,
		StudyMethod:    req.StudyMethod,
		InternetAccess: req.InternetAccess,
		SleepHours:     req.SleepHours,
		SleepQuality:   req.SleepQuality,
		FacilityRating: req.FacilityRating,
		ExamDifficulty: req.ExamDifficulty,
	}

	pred, err := h.service.Predict(c.Request().Context(), profile)
	if err != nil {
		if errors.Is(err, prediction.ErrUnknownLabel) || errors.Is(err, prediction.ErrIncompleteProfile) {
			return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
		}
		logger.Error("Prediction failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.PredictionLatency.Observe(time.Since(start).Seconds())
	metrics.PredictionsTotal.WithLabelValues(pred.Mode, pred.Band.Label).Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(pred))
}

// Schema publishes the input surface so clients can build the form from
// the same tables the encoder uses.
func (h *PredictionHandler) Schema(c echo.Context) error {
	categorical := make(map[string][]string)
	for _, field := range prediction.CategoricalFields() {
		categorical[field] = prediction.Labels(field)
	}

	resp := SchemaResponse{
		MappingVersion: prediction.MappingVersion,
		Numeric: map[string]NumericField{
			"age":         {Min: 15, Max: 30, Step: 1},
			"study_hours": {Min: 0, Max: 15, Step: 0.5},
			"attendance":  {Min: 0, Max: 100, Step: 5},
			"sleep_hours": {Min: 4, Max: 12, Step: 0.5},
		},
		Categorical: categorical,
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(resp))
}
