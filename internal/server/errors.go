package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/taxledger/internal/books"
	"github.com/smallbiznis/taxledger/internal/depreciation"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{Type: "internal_error", Message: "internal error"}
	}

	var verrs *ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation failed",
			Errors:  verrs.Errors,
		}
	}

	switch {
	case errors.Is(err, errAssetNotFound):
		return http.StatusNotFound, errorPayload{Type: "not_found", Message: err.Error()}
	case errors.Is(err, books.ErrInvalidRegistration):
		return http.StatusBadRequest, errorPayload{Type: "validation_error", Message: err.Error()}
	case errors.Is(err, depreciation.ErrInvalidAsset):
		return http.StatusUnprocessableEntity, errorPayload{Type: "invalid_asset", Message: err.Error()}
	case errors.Is(err, depreciation.ErrMethodNotSupported):
		return http.StatusUnprocessableEntity, errorPayload{Type: "method_not_supported", Message: err.Error()}
	case errors.Is(err, books.ErrUpstream):
		return http.StatusBadGateway, errorPayload{Type: "upstream_error", Message: err.Error()}
	}

	return http.StatusInternalServerError, errorPayload{Type: "internal_error", Message: "internal error"}
}

func classifyErrorForLog(err error) (string, string) {
	if err == nil {
		return "", ""
	}
	var verrs *ValidationErrors
	if errors.As(err, &verrs) {
		code := ""
		if len(verrs.Errors) > 0 {
			code = verrs.Errors[0].Code
		}
		return "validation_error", code
	}
	switch {
	case errors.Is(err, errAssetNotFound):
		return "not_found", ""
	case errors.Is(err, books.ErrInvalidRegistration):
		return "validation_error", "invalid_registration_id"
	case errors.Is(err, books.ErrUpstream):
		return "upstream_error", ""
	case errors.Is(err, depreciation.ErrInvalidAsset):
		return "invalid_asset", ""
	case errors.Is(err, depreciation.ErrMethodNotSupported):
		return "method_not_supported", ""
	}
	return "internal_error", ""
}
