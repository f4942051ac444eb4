// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pharmadrop/internal/delivery/http/middleware"
	"pharmadrop/internal/delivery/http/router/handler"
	"pharmadrop/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler    *handler.OrderHandler
	AddressHandler  *handler.AddressHandler
	PharmacyHandler *handler.PharmacyHandler
	CourierHandler  *handler.CourierHandler
	CustomerHandler *handler.CustomerHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler    *handler.OrderHandler
	addressHandler  *handler.AddressHandler
	pharmacyHandler *handler.PharmacyHandler
	courierHandler  *handler.CourierHandler
	customerHandler *handler.CustomerHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:    params.OrderHandler,
		addressHandler:  params.AddressHandler,
		pharmacyHandler: params.PharmacyHandler,
		courierHandler:  params.CourierHandler,
		customerHandler: params.CustomerHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public pharmacy directory
	e.GET("/pharmacies", r.pharmacyHandler.ListPharmacies)

	// Customer routes that require authentication
	customerGroup := e.Group("/customer")
	customerGroup.Use(r.authMiddleware.Authenticate)
	{
		customerGroup.GET("/profile", r.customerHandler.GetProfile)
		customerGroup.PUT("/push-token", r.customerHandler.UpdatePushToken)

		customerGroup.GET("/addresses", r.addressHandler.ListAddresses)
		customerGroup.POST("/addresses", r.addressHandler.AddAddress)
		customerGroup.PUT("/addresses/:id/default", r.addressHandler.SetDefaultAddress)
		customerGroup.DELETE("/addresses/:id", r.addressHandler.DeleteAddress)

		customerGroup.GET("/pharmacies/nearby", r.pharmacyHandler.NearbyPharmacies)

		customerGroup.POST("/orders", r.orderHandler.PlaceOrder)
		customerGroup.GET("/orders", r.orderHandler.ListCustomerOrders)
		customerGroup.GET("/orders/:id/pickup-qr", r.orderHandler.PickupQR)
	}

	// Pharmacy routes that require authentication and the "pharmacy" role
	pharmacyGroup := e.Group("/pharmacy")
	pharmacyGroup.Use(r.authMiddleware.Authenticate)
	pharmacyGroup.Use(r.authMiddleware.RequireRole(constants.RolePharmacy))
	{
		pharmacyGroup.GET("/orders", r.orderHandler.ListPharmacyOrders)
		pharmacyGroup.GET("/orders/:id/prescription-image", r.orderHandler.PrescriptionImage)
		pharmacyGroup.PUT("/orders/:id/approve", r.orderHandler.ApproveOrder)
		pharmacyGroup.PUT("/orders/:id/reject", r.orderHandler.RejectOrder)
	}

	// Courier routes that require authentication and the "courier" role
	courierGroup := e.Group("/courier")
	courierGroup.Use(r.authMiddleware.Authenticate)
	courierGroup.Use(r.authMiddleware.RequireRole(constants.RoleCourier))
	{
		courierGroup.PUT("/availability", r.courierHandler.SetAvailability)
	}
}
