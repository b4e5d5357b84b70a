package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "control-room-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// NewValidator creates a validator that reports fields by their json name
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("enum", validEnum)
	return v
}

type enumValue interface {
	IsValid() bool
}

// validEnum accepts the declared constants of model enums such as models.UserRole
func validEnum(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(enumValue)
	return ok && value.IsValid()
}

// validationError converts validator output into an apperrors.ValidationError naming the first offending field
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("request", err.Error())
}

// lookupError maps a missing row to notFound and wraps anything else
func lookupError(err error, notFound error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// txError surfaces domain errors raised inside a transaction unchanged and
// reports every other failure as a rolled back transaction
func txError(op string, err error) error {
	if err == nil || apperrors.IsDomain(err) {
		return err
	}
	return apperrors.NewTransactionError(op, err)
}
