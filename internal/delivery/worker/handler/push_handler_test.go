package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/domain/repository"
	"pharmadrop/internal/domain/service"
	"pharmadrop/internal/infra/pubsub"
	"pharmadrop/internal/mocks"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(pushSender *mocks.PushSender, customerRepo *mocks.CustomerRepository) *PushHandler {
	return &PushHandler{
		logger:       slog.New(slog.DiscardHandler),
		pushSender:   pushSender,
		customerRepo: customerRepo,
	}
}

func pushRequest(t *testing.T, event *service.OrderEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	eventData, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg pubsub.PubSubPushMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.OrderID
	pushMsg.Subscription = "projects/test/subscriptions/order-events"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func statusChangedEvent(customerID uuid.UUID, status entity.OrderStatus) *service.OrderEvent {
	return &service.OrderEvent{
		Type:         service.OrderEventStatusChanged,
		OrderID:      uuid.New().String(),
		CustomerID:   customerID.String(),
		PharmacyID:   uuid.New().String(),
		PharmacyName: "Corner Pharmacy",
		Status:       string(status),
	}
}

func TestPushHandler_StatusChange_SendsPush(t *testing.T) {
	customerID := uuid.New()
	customer := &entity.Customer{ID: customerID, PushToken: "device-token"}

	customerRepo := new(mocks.CustomerRepository)
	customerRepo.On("FindCustomerByID", mock.Anything, customerID).Return(customer, nil)

	pushSender := new(mocks.PushSender)
	pushSender.On("SendNotification", mock.Anything, "device-token", "Order approved",
		"Your order was approved by Corner Pharmacy.",
		mock.MatchedBy(func(data map[string]string) bool {
			return data["status"] == string(entity.OrderStatusApproved)
		}),
	).Return(nil)

	c, rec := pushRequest(t, statusChangedEvent(customerID, entity.OrderStatusApproved))

	h := newPushHandler(pushSender, customerRepo)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	pushSender.AssertExpectations(t)
}

func TestPushHandler_CreatedEvent_AckedWithoutPush(t *testing.T) {
	customerRepo := new(mocks.CustomerRepository)
	pushSender := new(mocks.PushSender)

	event := statusChangedEvent(uuid.New(), entity.OrderStatusPending)
	event.Type = service.OrderEventCreated

	c, rec := pushRequest(t, event)

	h := newPushHandler(pushSender, customerRepo)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	pushSender.AssertNotCalled(t, "SendNotification")
	customerRepo.AssertNotCalled(t, "FindCustomerByID")
}

func TestPushHandler_NoPushToken_Acked(t *testing.T) {
	customerID := uuid.New()
	customer := &entity.Customer{ID: customerID}

	customerRepo := new(mocks.CustomerRepository)
	customerRepo.On("FindCustomerByID", mock.Anything, customerID).Return(customer, nil)

	pushSender := new(mocks.PushSender)

	c, rec := pushRequest(t, statusChangedEvent(customerID, entity.OrderStatusRejected))

	h := newPushHandler(pushSender, customerRepo)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	pushSender.AssertNotCalled(t, "SendNotification")
}

func TestPushHandler_CustomerGone_Acked(t *testing.T) {
	customerID := uuid.New()

	customerRepo := new(mocks.CustomerRepository)
	customerRepo.On("FindCustomerByID", mock.Anything, customerID).Return(nil, repository.ErrCustomerNotFound)

	pushSender := new(mocks.PushSender)

	c, rec := pushRequest(t, statusChangedEvent(customerID, entity.OrderStatusApproved))

	h := newPushHandler(pushSender, customerRepo)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	pushSender.AssertNotCalled(t, "SendNotification")
}

func TestPushHandler_SendFailure_Nacked(t *testing.T) {
	customerID := uuid.New()
	customer := &entity.Customer{ID: customerID, PushToken: "device-token"}

	customerRepo := new(mocks.CustomerRepository)
	customerRepo.On("FindCustomerByID", mock.Anything, customerID).Return(customer, nil)

	pushSender := new(mocks.PushSender)
	pushSender.On("SendNotification", mock.Anything, "device-token", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	c, rec := pushRequest(t, statusChangedEvent(customerID, entity.OrderStatusApproved))

	h := newPushHandler(pushSender, customerRepo)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_ReadFailure_Nacked(t *testing.T) {
	customerID := uuid.New()

	customerRepo := new(mocks.CustomerRepository)
	customerRepo.On("FindCustomerByID", mock.Anything, customerID).Return(nil, errors.New("connection reset"))

	pushSender := new(mocks.PushSender)

	c, rec := pushRequest(t, statusChangedEvent(customerID, entity.OrderStatusApproved))

	h := newPushHandler(pushSender, customerRepo)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	pushSender.AssertNotCalled(t, "SendNotification")
}

func TestPushHandler_MalformedBase64_BadRequest(t *testing.T) {
	var pushMsg pubsub.PubSubPushMessage
	pushMsg.Message.Data = "!!! not base64 !!!"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := newPushHandler(new(mocks.PushSender), new(mocks.CustomerRepository))
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
