package procurement

import (
	"context"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// FindByID finds a purchase order by ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)

	// FindByOrderNumber finds a purchase order by its order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*PurchaseOrder, error)

	// FindAll finds purchase orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)

	// FindByVendor finds purchase orders for a vendor
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]PurchaseOrder, error)

	// FindByStatus finds purchase orders by status
	FindByStatus(ctx context.Context, status OrderStatus, filter shared.Filter) ([]PurchaseOrder, error)

	// Save creates a purchase order with its items
	Save(ctx context.Context, order *PurchaseOrder) error

	// SaveWithLock saves with optimistic locking. The stored version must
	// equal order.Version or shared.ErrConcurrencyConflict is returned;
	// on success the stored version is incremented.
	SaveWithLock(ctx context.Context, order *PurchaseOrder) error

	// SaveWithLockAndStock saves with optimistic locking and applies the
	// stock adjustments to products in the same transaction
	SaveWithLockAndStock(ctx context.Context, order *PurchaseOrder, adjustments []StockAdjustment) error

	// Count counts purchase orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts purchase orders in a given status
	CountByStatus(ctx context.Context, status OrderStatus) (int64, error)

	// GenerateOrderNumber generates the next unique order number
	GenerateOrderNumber(ctx context.Context) (string, error)
}
