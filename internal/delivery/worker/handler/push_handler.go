package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "pharmadrop/internal/delivery/context"
	"pharmadrop/internal/domain/entity"
	"pharmadrop/internal/domain/repository"
	"pharmadrop/internal/domain/service"
	"pharmadrop/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying order events
type PushHandler struct {
	logger       *slog.Logger
	pushSender   service.PushSender
	customerRepo repository.CustomerRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Logger       *slog.Logger
	PushSender   service.PushSender
	CustomerRepo repository.CustomerRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		logger:       params.Logger,
		pushSender:   params.PushSender,
		customerRepo: params.CustomerRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Parse Pub/Sub message
	var pushMsg pubsub.PubSubPushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse order event
	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse order event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("type", event.Type),
		slog.String("order_id", event.OrderID),
		slog.String("customer_id", event.CustomerID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Order event processed successfully",
		slog.String("order_id", event.OrderID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PubSubPushMessage, event *service.OrderEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent turns a status-change event into a customer push. Events
// that cannot produce a push (unknown type, no token) are acked, only
// transient send failures are retried.
func (h *PushHandler) processEvent(ctx context.Context, event *service.OrderEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if event.Type != service.OrderEventStatusChanged {
		logger.Debug("[Worker] Ignoring non-status event", slog.String("type", event.Type))

		return nil
	}

	customerID, err := uuid.Parse(event.CustomerID)
	if err != nil {
		return errors.WithStack(err)
	}

	customer, err := h.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			logger.Info("[Worker] Customer gone, dropping event",
				slog.String("customer_id", event.CustomerID),
			)

			return nil
		}

		return newRetryableError(errors.WithStack(err))
	}

	if customer.PushToken == "" {
		logger.Info("[Worker] Customer has no push token",
			slog.String("customer_id", event.CustomerID),
		)

		return nil
	}

	title, body := notificationContent(event)
	data := map[string]string{
		"type":     event.Type,
		"order_id": event.OrderID,
		"status":   event.Status,
	}

	if err := h.pushSender.SendNotification(ctx, customer.PushToken, title, body, data); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// notificationContent builds the push title and body for a status change.
func notificationContent(event *service.OrderEvent) (title, body string) {
	pharmacy := event.PharmacyName
	if pharmacy == "" {
		pharmacy = "the pharmacy"
	}

	switch entity.OrderStatus(event.Status) {
	case entity.OrderStatusApproved:
		return "Order approved", fmt.Sprintf("Your order was approved by %s.", pharmacy)
	case entity.OrderStatusRejected:
		return "Order rejected", fmt.Sprintf("Your order was rejected by %s.", pharmacy)
	default:
		return "Order updated", fmt.Sprintf("Your order status is now %s.", event.Status)
	}
}
