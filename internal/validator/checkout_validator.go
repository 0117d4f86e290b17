package validator

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

// 必須項目が空
var ErrRequiredField = errors.New("required field")

// どの項目が空かを持つ
type FieldError struct {
	Field model.FormField
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, ErrRequiredField)
}

func (e *FieldError) Unwrap() error {
	return ErrRequiredField
}

type checkoutValidator struct{}

// Usecaseは interface を依存注入
func NewCheckoutValidator() usecase.CheckoutValidator {
	return &checkoutValidator{}
}

// name と email だけ必須。形式はチェックしない（空白だけは空扱い）。
func (v *checkoutValidator) ValidateCheckout(form model.CheckoutForm) error {
	var errs []error
	if strings.TrimSpace(form.Name) == "" {
		errs = append(errs, &FieldError{Field: model.FormFieldName})
	}
	if strings.TrimSpace(form.Email) == "" {
		errs = append(errs, &FieldError{Field: model.FormFieldEmail})
	}
	return errors.Join(errs...)
}
