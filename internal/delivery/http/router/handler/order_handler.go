package handler

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"pharmadrop/internal/delivery/http/response"
	"pharmadrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PlaceOrder handles order submission. The request is multipart/form-data so
// the prescription photo can ride along with the form fields.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.FormValue("address_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	pharmacyID, err := uuid.Parse(c.FormValue("pharmacy_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pharmacy ID")
	}

	input := &usecase.PlaceOrderInput{
		AddressID:      addressID,
		PharmacyID:     pharmacyID,
		PrescriptionNo: c.FormValue("prescription_no"),
		Note:           c.FormValue("note"),
	}

	image, err := h.readImage(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_IMAGE", "Could not read prescription image")
	}
	input.Image = image

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// readImage extracts the optional prescription photo from the multipart form.
// A missing file part is not an error.
func (h *OrderHandler) readImage(c echo.Context) (*usecase.ImageUpload, error) {
	fileHeader, err := c.FormFile("prescription_image")
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil, nil
		}

		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	ext := strings.TrimPrefix(filepath.Ext(fileHeader.Filename), ".")
	if ext == "" {
		ext = "jpg"
	}

	return &usecase.ImageUpload{
		Data:        data,
		Ext:         strings.ToLower(ext),
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}

// ListCustomerOrders handles retrieving the customer's orders
func (h *OrderHandler) ListCustomerOrders(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListCustomerOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ListPharmacyOrders handles retrieving the orders assigned to the
// caller's pharmacy
func (h *OrderHandler) ListPharmacyOrders(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListPharmacyOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ApproveOrder handles the pharmacy approving a pending order
func (h *OrderHandler) ApproveOrder(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.ApproveOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order approved successfully")
}

// RejectOrder handles the pharmacy rejecting a pending order
func (h *OrderHandler) RejectOrder(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.RejectOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order rejected successfully")
}

// PrescriptionImage serves the prescription photo of an order assigned to
// the caller's pharmacy
func (h *OrderHandler) PrescriptionImage(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	data, contentType, err := h.orderUC.PrescriptionImage(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return c.Blob(http.StatusOK, contentType, data)
}

// PickupQR renders the pickup QR code for one of the customer's orders
func (h *OrderHandler) PickupQR(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.orderUC.PickupQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
