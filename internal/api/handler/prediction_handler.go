package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alumnihub/job-referral-api/internal/api/metrics"
	"github.com/alumnihub/job-referral-api/internal/api/middleware"
	"github.com/alumnihub/job-referral-api/internal/core/ports"
)

// PredictionHandler handles the career predictor endpoints.
type PredictionHandler struct {
	service ports.PredictionService
}

func NewPredictionHandler(service ports.PredictionService) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// Predict classifies the caller's skill profile and returns the predicted
// career.
//
// @Summary      Predict a career from a skill profile
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      predictRequest  true  "Skill scores (0-100)"
// @Success      200   {object}  predictResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /predict [post]
func (h *PredictionHandler) Predict(c echo.Context) error {
	var req predictRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
	}

	prediction, err := h.service.Predict(c.Request().Context(), user.ID, req.toProfile())
	if err != nil {
		return err
	}

	metrics.PredictionsTotal.WithLabelValues(prediction.Career).Inc()
	return c.JSON(http.StatusOK, predictResponse{Prediction: prediction.Career})
}

// ListMine returns the caller's prediction history.
//
// @Summary      List the caller's predictions
// @Tags         predictions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   predictionItemResponse
// @Failure      401  {object}  errorResponse
// @Router       /predictions [get]
func (h *PredictionHandler) ListMine(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
	}

	predictions, err := h.service.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	out := make([]predictionItemResponse, len(predictions))
	for i, p := range predictions {
		out[i] = predictionItemResponse{Input: p.Input, Prediction: p.Career}
	}
	return c.JSON(http.StatusOK, out)
}
