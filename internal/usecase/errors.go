package usecase

import (
	"errors"
	"fmt"

	"orcasys/internal/domain/entities"
	"orcasys/internal/domain/pricing"
)

// Error kinds. Every sentinel below wraps one of these, so callers can
// branch on the kind with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("already exists")
	ErrValidation = errors.New("validation failed")
)

var (
	ErrClientNotFound      = fmt.Errorf("client %w", ErrNotFound)
	ErrSellerNotFound      = fmt.Errorf("seller %w", ErrNotFound)
	ErrPriceItemNotFound   = fmt.Errorf("price table item %w", ErrNotFound)
	ErrCanvasColorNotFound = fmt.Errorf("canvas color %w", ErrNotFound)
	ErrBudgetNotFound      = fmt.Errorf("budget %w", ErrNotFound)
	ErrCommissionNotFound  = fmt.Errorf("commission %w", ErrNotFound)

	ErrClientDuplicateName  = fmt.Errorf("client with this name %w", ErrDuplicate)
	ErrClientDuplicatePhone = fmt.Errorf("client with this phone %w", ErrDuplicate)
	ErrPriceItemDuplicate   = fmt.Errorf("price table item with this code %w", ErrDuplicate)
	ErrCanvasColorDuplicate = fmt.Errorf("canvas color with this name %w", ErrDuplicate)
)

// ValidationError reports a malformed or out-of-range input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// fromFieldError lifts a pricing range error into a ValidationError.
func fromFieldError(err error) error {
	var fe *pricing.FieldError
	if errors.As(err, &fe) {
		return &ValidationError{Field: fe.Field, Reason: fe.Reason}
	}
	return err
}

// DependencyBlockedError is returned when a client cannot be deleted
// without force because budgets still reference it.
type DependencyBlockedError struct {
	Report entities.DependencyReport
}

func (e *DependencyBlockedError) Error() string {
	return fmt.Sprintf("client %s has %d dependent budgets", e.Report.ClientID, e.Report.Budgets)
}
