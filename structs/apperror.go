package structs

import (
	"fmt"
	"net/http"

	"fittrack-go-server/enums"
)

// ErrorModel is the typed failure passed from services up to controllers.
// The Code is machine-readable and maps onto an HTTP status.
type ErrorModel struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorModel) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(format string, args ...interface{}) *ErrorModel {
	return &ErrorModel{Code: enums.CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) *ErrorModel {
	return &ErrorModel{Code: enums.CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...interface{}) *ErrorModel {
	return &ErrorModel{Code: enums.CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func NewUnconfiguredError(format string, args ...interface{}) *ErrorModel {
	return &ErrorModel{Code: enums.CodeUnconfigured, Message: fmt.Sprintf(format, args...)}
}

func NewInternalError(err error) *ErrorModel {
	return &ErrorModel{Code: enums.CodeInternal, Message: err.Error()}
}

// AsErrorModel normalizes any error into an ErrorModel, wrapping unknown
// failures as INTERNAL.
func AsErrorModel(err error) *ErrorModel {
	if err == nil {
		return nil
	}
	if em, ok := err.(*ErrorModel); ok {
		return em
	}
	return NewInternalError(err)
}

// HTTPStatus maps the error code to the response status used by controllers.
func (e *ErrorModel) HTTPStatus() int {
	switch e.Code {
	case enums.CodeValidation:
		return http.StatusBadRequest
	case enums.CodeUnauthorized:
		return http.StatusUnauthorized
	case enums.CodeNotFound:
		return http.StatusNotFound
	case enums.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
