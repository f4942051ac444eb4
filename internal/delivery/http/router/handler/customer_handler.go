package handler

import (
	"log/slog"
	"net/http"

	"pharmadrop/internal/delivery/http/response"
	"pharmadrop/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// CustomerHandler holds dependencies for customer profile handlers
type CustomerHandler struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerRepo: params.CustomerRepo,
		logger:       params.Logger,
	}
}

// UpdatePushTokenRequest represents the request body for registering an FCM token
type UpdatePushTokenRequest struct {
	PushToken string `json:"push_token" validate:"required"`
}

// GetProfile handles retrieving the caller's profile
func (h *CustomerHandler) GetProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	customer, err := h.customerRepo.FindCustomerByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return response.NotFound(c, "CUSTOMER_NOT_FOUND", "Customer not found")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer, "Profile retrieved successfully")
}

// UpdatePushToken handles storing the FCM device token for the caller
func (h *CustomerHandler) UpdatePushToken(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req UpdatePushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.customerRepo.UpdatePushToken(c.Request().Context(), userID, req.PushToken); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return response.NotFound(c, "CUSTOMER_NOT_FOUND", "Customer not found")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Push token updated"}, "Push token updated")
}
