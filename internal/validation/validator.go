package validation

import (
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with custom struct-level validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// the required tag accepts whitespace-only names; reject those too.
	v.RegisterStructValidation(checkoutStructValidation, CheckoutRequest{})

	return v
}

func checkoutStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CheckoutRequest)

	if req.CustomerName != "" && strings.TrimSpace(req.CustomerName) == "" {
		sl.ReportError(req.CustomerName, "customer_name", "CustomerName", "not_blank", "")
	}
}
