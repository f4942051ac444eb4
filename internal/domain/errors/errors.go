// Package errors defines application-level error types carrying both an
// HTTP status and a stable business error code.
package errors

import (
	"net/http"

	"pharmadrop/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches errors by business error code, so a details-enriched copy
// still matches its predefined sentinel under errors.Is.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if !errors.As(target, &base) {
		return false
	}

	return e.errorCode == base.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"delivery address not found",
		"",
	)

	ErrAddressRequired = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_REQUIRED",
		"a delivery address must be selected before placing an order",
		"",
	)

	ErrCustomTitleRequired = NewBaseError(
		http.StatusBadRequest,
		"CUSTOM_TITLE_REQUIRED",
		"a custom title is required when the address title is \"other\"",
		"",
	)

	// Pharmacy-related errors
	ErrPharmacyNotFound = NewBaseError(
		http.StatusNotFound,
		"PHARMACY_NOT_FOUND",
		"pharmacy not found",
		"",
	)

	ErrPharmacyRequired = NewBaseError(
		http.StatusBadRequest,
		"PHARMACY_REQUIRED",
		"a pharmacy must be selected before placing an order",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrPrescriptionMissing = NewBaseError(
		http.StatusBadRequest,
		"PRESCRIPTION_MISSING",
		"either a prescription number or a prescription photo must be provided",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_CREATION_FAILED",
		"failed to create order",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"only pending orders can be approved or rejected",
		"",
	)

	ErrImageUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"IMAGE_UPLOAD_FAILED",
		"failed to upload the prescription photo",
		"",
	)

	ErrPrescriptionImageNotFound = NewBaseError(
		http.StatusNotFound,
		"PRESCRIPTION_IMAGE_NOT_FOUND",
		"no prescription photo is attached to this order",
		"",
	)

	ErrImageFetchFailed = NewBaseError(
		http.StatusBadGateway,
		"IMAGE_FETCH_FAILED",
		"failed to read the prescription photo",
		"",
	)

	// Access errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"you do not have access to this resource",
		"",
	)

	// Courier-related errors
	ErrCourierNotFound = NewBaseError(
		http.StatusNotFound,
		"COURIER_NOT_FOUND",
		"courier profile not found",
		"",
	)
)

// NewDatabaseExecuteError wraps an underlying database failure as an AppError.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)
}
