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

// PharmacyHandlerParams holds dependencies for PharmacyHandler, injected by Fx.
type PharmacyHandlerParams struct {
	fx.In

	PharmacyUC usecase.PharmacyUsecase
	Logger     *slog.Logger
}

// PharmacyHandler holds dependencies for pharmacy directory handlers
type PharmacyHandler struct {
	pharmacyUC usecase.PharmacyUsecase
	logger     *slog.Logger
}

// NewPharmacyHandler is the constructor for PharmacyHandler
func NewPharmacyHandler(params PharmacyHandlerParams) *PharmacyHandler {
	return &PharmacyHandler{
		pharmacyUC: params.PharmacyUC,
		logger:     params.Logger,
	}
}

// NearbyPharmacy is one ranked entry of the nearby-pharmacies response.
// DistanceKm is null and the label empty when the distance is unknown.
type NearbyPharmacy struct {
	Pharmacy      *entity.Pharmacy `json:"pharmacy"`
	DistanceKm    *float64         `json:"distance_km"`
	DistanceLabel string           `json:"distance_label,omitempty"`
}

// ListPharmacies handles retrieving the full pharmacy directory
func (h *PharmacyHandler) ListPharmacies(c echo.Context) error {
	pharmacies, err := h.pharmacyUC.ListPharmacies(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pharmacies, "Pharmacies retrieved successfully")
}

// NearbyPharmacies handles ranking the directory by distance from one of
// the customer's addresses
func (h *PharmacyHandler) NearbyPharmacies(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.QueryParam("address_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	candidates, err := h.pharmacyUC.NearbyPharmacies(c.Request().Context(), userID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]NearbyPharmacy, len(candidates))
	for i, cand := range candidates {
		results[i] = NearbyPharmacy{
			Pharmacy:      cand.Pharmacy,
			DistanceKm:    cand.DistanceKm,
			DistanceLabel: cand.DistanceLabel(),
		}
	}

	return response.Success(c, http.StatusOK, results, "Nearby pharmacies retrieved successfully")
}
