package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "voice-sales-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator creates a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct validates req and converts the first failure into a ValidationError
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	return apperrors.NewValidationError(fe.Field(), describeTag(fe))
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// paginate normalizes page and perPage and returns the resulting limit and offset
func paginate(page, perPage int) (int, int, int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage, perPage, (page - 1) * perPage
}

func pageCount(total int64, perPage int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// appendLine appends line to text on its own line
func appendLine(text, line string) string {
	if strings.TrimSpace(line) == "" {
		return text
	}
	if text == "" {
		return line
	}
	return text + "\n" + line
}

// ValidateRequest validates a request struct the way the services do, for callers that
// bind requests before handing plain values to a service
func ValidateRequest(v *validator.Validate, req interface{}) error {
	return validateStruct(v, req)
}
