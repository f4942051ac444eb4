package handler

import (
	"log/slog"
	"net/http"

	"pharmadrop/internal/delivery/http/response"
	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// AddAddressRequest represents the request body for saving a new address
type AddAddressRequest struct {
	Title        string   `json:"title" validate:"required,oneof=home work other"`
	CustomTitle  string   `json:"custom_title"`
	City         string   `json:"city" validate:"required"`
	District     string   `json:"district" validate:"required"`
	Neighborhood string   `json:"neighborhood"`
	Street       string   `json:"street" validate:"required"`
	BuildingNo   string   `json:"building_no"`
	Floor        string   `json:"floor"`
	ApartmentNo  string   `json:"apartment_no"`
	Description  string   `json:"description"`
	IsDefault    bool     `json:"is_default"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// ListAddresses handles retrieving the customer's saved addresses
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}

// AddAddress handles saving a new delivery address
func (h *AddressHandler) AddAddress(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req AddAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.AddAddressInput{
		Title:        entity.AddressTitle(req.Title),
		CustomTitle:  req.CustomTitle,
		City:         req.City,
		District:     req.District,
		Neighborhood: req.Neighborhood,
		Street:       req.Street,
		BuildingNo:   req.BuildingNo,
		Floor:        req.Floor,
		ApartmentNo:  req.ApartmentNo,
		Description:  req.Description,
		IsDefault:    req.IsDefault,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}

	address, err := h.addressUC.AddAddress(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, address, "Address saved successfully")
}

// SetDefaultAddress handles marking an address as the default
func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.SetDefaultAddress(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Default address updated"}, "Default address updated")
}

// DeleteAddress handles removing one of the customer's addresses
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Address deleted"}, "Address deleted")
}
