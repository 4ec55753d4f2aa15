// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

// Package validation wraps go-playground/validator with API-friendly error
// shapes.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"homefolio/internal/models"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// FieldError describes one failed field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// RequestValidationError aggregates field errors for one payload.
type RequestValidationError struct {
	Errors []FieldError
}

// Error implements the error interface.
func (e *RequestValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Message
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// ToAPIError converts the aggregate into the standard error body.
func (e *RequestValidationError) ToAPIError() *models.APIError {
	details := make(map[string]interface{}, len(e.Errors))
	for _, fe := range e.Errors {
		details[fe.Field] = fe.Message
	}
	return &models.APIError{
		Code:    "VALIDATION_ERROR",
		Message: "Request validation failed",
		Details: details,
	}
}

// ValidateStruct validates a payload struct, translating validator errors
// into a RequestValidationError. Non-struct payloads (slices, maps) pass
// through; their handlers validate them field by field.
func ValidateStruct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &RequestValidationError{}
	for _, fe := range validationErrors {
		out.Errors = append(out.Errors, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: translateError(fe),
		})
	}
	return out
}

// translateError renders one validator error as a human-readable message.
func translateError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on tag %q", fe.Field(), fe.Tag())
	}
}
