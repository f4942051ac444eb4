package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmadrop/internal/delivery/http/validator"
	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/mocks"
	"pharmadrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonContext(t *testing.T, method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	return c, rec
}

func TestAddressHandler_AddAddress(t *testing.T) {
	customerID := uuid.New()

	addressUC := new(mocks.AddressUsecase)
	addressUC.On("AddAddress", mock.Anything, customerID, mock.MatchedBy(func(input *usecase.AddAddressInput) bool {
		return input.Title == entity.AddressTitleHome &&
			input.City == "Istanbul" &&
			input.Street == "Istiklal" &&
			input.IsDefault
	})).Return(&entity.Address{ID: uuid.New(), CustomerID: customerID}, nil)

	body := `{"title":"home","city":"Istanbul","district":"Beyoglu","street":"Istiklal","is_default":true}`
	c, rec := jsonContext(t, http.MethodPost, "/customer/addresses", body, customerID)

	h := &AddressHandler{addressUC: addressUC, logger: slog.New(slog.DiscardHandler)}
	require.NoError(t, h.AddAddress(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	addressUC.AssertExpectations(t)
}

func TestAddressHandler_AddAddress_UnknownTitle(t *testing.T) {
	addressUC := new(mocks.AddressUsecase)

	body := `{"title":"villa","city":"Istanbul","district":"Beyoglu","street":"Istiklal"}`
	c, rec := jsonContext(t, http.MethodPost, "/customer/addresses", body, uuid.New())

	h := &AddressHandler{addressUC: addressUC, logger: slog.New(slog.DiscardHandler)}
	require.NoError(t, h.AddAddress(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	addressUC.AssertNotCalled(t, "AddAddress")
}

func TestAddressHandler_AddAddress_MissingCity(t *testing.T) {
	addressUC := new(mocks.AddressUsecase)

	body := `{"title":"home","district":"Beyoglu","street":"Istiklal"}`
	c, rec := jsonContext(t, http.MethodPost, "/customer/addresses", body, uuid.New())

	h := &AddressHandler{addressUC: addressUC, logger: slog.New(slog.DiscardHandler)}
	require.NoError(t, h.AddAddress(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	addressUC.AssertNotCalled(t, "AddAddress")
}

func TestAddressHandler_SetDefaultAddress(t *testing.T) {
	customerID := uuid.New()
	addressID := uuid.New()

	addressUC := new(mocks.AddressUsecase)
	addressUC.On("SetDefaultAddress", mock.Anything, customerID, addressID).Return(nil)

	c, rec := jsonContext(t, http.MethodPut, "/customer/addresses/"+addressID.String()+"/default", "", customerID)
	c.SetParamNames("id")
	c.SetParamValues(addressID.String())

	h := &AddressHandler{addressUC: addressUC, logger: slog.New(slog.DiscardHandler)}
	require.NoError(t, h.SetDefaultAddress(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	addressUC.AssertExpectations(t)
}

func TestAddressHandler_DeleteAddress_InvalidID(t *testing.T) {
	addressUC := new(mocks.AddressUsecase)

	c, rec := jsonContext(t, http.MethodDelete, "/customer/addresses/bogus", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("bogus")

	h := &AddressHandler{addressUC: addressUC, logger: slog.New(slog.DiscardHandler)}
	require.NoError(t, h.DeleteAddress(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	addressUC.AssertNotCalled(t, "DeleteAddress")
}
