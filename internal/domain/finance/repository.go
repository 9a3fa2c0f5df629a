package finance

import (
	"context"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// FindByID finds a payment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindByOrderID finds all payments recorded against an order
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]Payment, error)

	// FindAll finds payments matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Payment, error)

	// SumCompletedByOrder returns the sum of COMPLETED payment amounts
	// for an order
	SumCompletedByOrder(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error)

	// CreateWithOrderLock inserts the payment and bumps the order's
	// version in one transaction. If the stored order version differs
	// from orderVersion the transaction aborts with
	// shared.ErrConcurrencyConflict, so a sum read at orderVersion is
	// still current when the insert commits.
	CreateWithOrderLock(ctx context.Context, payment *Payment, orderVersion int) error

	// SaveWithOrderLock persists a payment update and bumps the order's
	// version in one transaction, with the same version predicate as
	// CreateWithOrderLock. Used when the update changes the order's
	// completed sum.
	SaveWithOrderLock(ctx context.Context, payment *Payment, orderVersion int) error

	// Save updates an existing payment
	Save(ctx context.Context, payment *Payment) error

	// Count counts payments matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
