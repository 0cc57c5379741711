package domain

import (
	"fmt"

	"backoffice/internal/errors"
)

// ValidateTransition reports whether an order may move from one status to
// another. The commerce API places no ordering on statuses: any enumerated
// value may be set from any other, including leaving delivered or cancelled.
// Only values outside the enumeration are rejected. A forward-only lifecycle
// (with delivered/cancelled terminal) would be stricter than what the API
// accepts, so it is not enforced here.
func ValidateTransition(from, to Status) error {
	if !to.IsValid() {
		return errors.NewValidationError(
			fmt.Sprintf("invalid order status %q", to),
			errors.ValidationDetail{
				Field:   "status",
				Message: fmt.Sprintf("status must be one of %v", Statuses),
			},
		)
	}
	_ = from
	return nil
}

// ValidatePaymentTransition follows the same permissive rule as
// ValidateTransition.
func ValidatePaymentTransition(from, to PaymentStatus) error {
	if !to.IsValid() {
		return errors.NewValidationError(
			fmt.Sprintf("invalid payment status %q", to),
			errors.ValidationDetail{
				Field:   "paymentStatus",
				Message: fmt.Sprintf("paymentStatus must be one of %v", PaymentStatuses),
			},
		)
	}
	_ = from
	return nil
}
