package handler

import (
	"log/slog"
	"net/http"

	"pharmadrop/internal/delivery/http/response"
	"pharmadrop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CourierHandlerParams holds dependencies for CourierHandler, injected by Fx.
type CourierHandlerParams struct {
	fx.In

	CourierUC usecase.CourierUsecase
	Logger    *slog.Logger
}

// CourierHandler holds dependencies for courier-related handlers
type CourierHandler struct {
	courierUC usecase.CourierUsecase
	logger    *slog.Logger
}

// NewCourierHandler is the constructor for CourierHandler
func NewCourierHandler(params CourierHandlerParams) *CourierHandler {
	return &CourierHandler{
		courierUC: params.CourierUC,
		logger:    params.Logger,
	}
}

// SetAvailabilityRequest represents the request body for the availability toggle
type SetAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// SetAvailability handles the courier availability toggle
func (h *CourierHandler) SetAvailability(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SetAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	courier, err := h.courierUC.SetAvailability(c.Request().Context(), userID, *req.Available)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, courier, "Availability updated successfully")
}
