package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCourierHandler_SetAvailability(t *testing.T) {
	customerID := uuid.New()

	courierUC := new(mocks.CourierUsecase)
	courierUC.On("SetAvailability", mock.Anything, customerID, true).
		Return(&entity.Courier{ID: uuid.New(), CustomerID: customerID, IsAvailable: true}, nil)

	c, rec := jsonContext(t, http.MethodPut, "/courier/availability", `{"available":true}`, customerID)

	h := &CourierHandler{courierUC: courierUC, logger: slog.New(slog.DiscardHandler)}
	require.NoError(t, h.SetAvailability(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	courierUC.AssertExpectations(t)
}

func TestCourierHandler_SetAvailability_FalseIsValid(t *testing.T) {
	customerID := uuid.New()

	courierUC := new(mocks.CourierUsecase)
	courierUC.On("SetAvailability", mock.Anything, customerID, false).
		Return(&entity.Courier{ID: uuid.New(), CustomerID: customerID}, nil)

	c, rec := jsonContext(t, http.MethodPut, "/courier/availability", `{"available":false}`, customerID)

	h := &CourierHandler{courierUC: courierUC, logger: slog.New(slog.DiscardHandler)}
	require.NoError(t, h.SetAvailability(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	courierUC.AssertExpectations(t)
}

func TestCourierHandler_SetAvailability_MissingField(t *testing.T) {
	courierUC := new(mocks.CourierUsecase)

	c, rec := jsonContext(t, http.MethodPut, "/courier/availability", `{}`, uuid.New())

	h := &CourierHandler{courierUC: courierUC, logger: slog.New(slog.DiscardHandler)}
	require.NoError(t, h.SetAvailability(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	courierUC.AssertNotCalled(t, "SetAvailability")
}
