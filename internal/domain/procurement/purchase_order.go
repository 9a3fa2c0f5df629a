package procurement

import (
	"fmt"
	"time"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of a purchase order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusApproved  OrderStatus = "APPROVED"
	OrderStatusReceived  OrderStatus = "RECEIVED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusReceived, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusApproved || target == OrderStatusCancelled
	case OrderStatusApproved:
		return target == OrderStatusReceived || target == OrderStatusCancelled
	case OrderStatusReceived, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// OrderItem represents a line item in a purchase order
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int64           `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	// ReceivedQuantity is nullable for rows created before receipt
	// tracking existed; nil reads as zero.
	ReceivedQuantity *int64    `gorm:"column:received_quantity"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "purchase_order_items"
}

// NewOrderItem creates a new order item
func NewOrderItem(orderID, productID uuid.UUID, quantity int64, unitPrice decimal.Decimal) (*OrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &OrderItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Received returns the received quantity, treating an unset value as zero
func (i *OrderItem) Received() int64 {
	if i.ReceivedQuantity == nil {
		return 0
	}
	return *i.ReceivedQuantity
}

// Remaining returns the quantity still to be received
func (i *OrderItem) Remaining() int64 {
	remaining := i.Quantity - i.Received()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsFullyReceived returns true if the full ordered quantity has arrived
func (i *OrderItem) IsFullyReceived() bool {
	return i.Received() >= i.Quantity
}

// Amount returns the line total
func (i *OrderItem) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

func (i *OrderItem) addReceived(quantity int64) {
	received := i.Received() + quantity
	i.ReceivedQuantity = &received
	i.UpdatedAt = time.Now()
}

// StockAdjustment is a signed stock delta to apply to a product as part
// of committing a receipt.
type StockAdjustment struct {
	ProductID uuid.UUID
	Quantity  int64
}

// PurchaseOrder represents a purchase order aggregate root.
// It owns the PENDING -> APPROVED -> RECEIVED lifecycle and the receipt
// bookkeeping for its line items.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	OrderNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	VendorID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	VendorName  string          `gorm:"type:varchar(200);not null"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Notes       string          `gorm:"type:text"`
	ApprovedAt  *time.Time
	ReceivedAt  *time.Time
	CancelledAt *time.Time
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a new purchase order in PENDING status
func NewPurchaseOrder(orderNumber string, vendorID uuid.UUID, vendorName string) (*PurchaseOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}

	return &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		VendorID:          vendorID,
		VendorName:        vendorName,
		Items:             make([]OrderItem, 0),
		TotalAmount:       decimal.Zero,
		Status:            OrderStatusPending,
	}, nil
}

// AddItem adds a new line item and recalculates the order total.
// Only allowed in PENDING status.
func (o *PurchaseOrder) AddItem(productID uuid.UUID, quantity int64, unitPrice decimal.Decimal) (*OrderItem, error) {
	if o.Status != OrderStatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot add items to order in %s status", o.Status))
	}

	item, err := NewOrderItem(o.ID, productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotal()
	o.Touch()

	return item, nil
}

// Approve transitions the order from PENDING to APPROVED
func (o *PurchaseOrder) Approve() error {
	if !o.Status.CanTransitionTo(OrderStatusApproved) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot approve order in %s status", o.Status))
	}
	if len(o.Items) == 0 {
		return shared.NewDomainError("NO_ITEMS", "Cannot approve order without items")
	}

	now := time.Now()
	o.Status = OrderStatusApproved
	o.ApprovedAt = &now
	o.UpdatedAt = now

	return nil
}

// Cancel cancels the order. A fully received order cannot be cancelled;
// partial receipts do not block cancellation and are not reversed.
func (o *PurchaseOrder) Cancel() error {
	if !o.Status.CanTransitionTo(OrderStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel order in %s status", o.Status))
	}

	now := time.Now()
	o.Status = OrderStatusCancelled
	o.CancelledAt = &now
	o.UpdatedAt = now

	return nil
}

// ReceiveAll receives the outstanding remainder of every line item and
// marks the order RECEIVED. Each returned adjustment carries only the
// delta between ordered and previously received, so re-running after a
// partial receipt never double-counts stock.
func (o *PurchaseOrder) ReceiveAll() ([]StockAdjustment, error) {
	if o.Status != OrderStatusApproved {
		return nil, shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot receive goods for order in %s status", o.Status))
	}

	adjustments := make([]StockAdjustment, 0, len(o.Items))
	for idx := range o.Items {
		delta := o.Items[idx].Remaining()
		if delta > 0 {
			o.Items[idx].addReceived(delta)
			adjustments = append(adjustments, StockAdjustment{
				ProductID: o.Items[idx].ProductID,
				Quantity:  delta,
			})
		}
	}

	now := time.Now()
	o.Status = OrderStatusReceived
	o.ReceivedAt = &now
	o.UpdatedAt = now

	return adjustments, nil
}

// ReceivePartial receives a quantity against one line item. The order
// transitions to RECEIVED when every item is fully received; completed
// reports whether this call caused that transition.
func (o *PurchaseOrder) ReceivePartial(itemID uuid.UUID, quantity int64) (adjustment StockAdjustment, completed bool, err error) {
	if o.Status != OrderStatusApproved {
		return StockAdjustment{}, false, shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot receive goods for order in %s status", o.Status))
	}
	if quantity <= 0 {
		return StockAdjustment{}, false, shared.NewDomainError("INVALID_QUANTITY", "Receive quantity must be positive")
	}

	item := o.GetItem(itemID)
	if item == nil {
		return StockAdjustment{}, false, shared.NewDomainError("ITEM_NOT_FOUND", "Order item not found")
	}

	remaining := item.Remaining()
	if quantity > remaining {
		return StockAdjustment{}, false, shared.NewDomainError("QUANTITY_EXCEEDED",
			fmt.Sprintf("Cannot receive %d, only %d remaining", quantity, remaining))
	}

	item.addReceived(quantity)
	o.Touch()

	if o.isAllItemsReceived() {
		now := time.Now()
		o.Status = OrderStatusReceived
		o.ReceivedAt = &now
		o.UpdatedAt = now
		completed = true
	}

	return StockAdjustment{ProductID: item.ProductID, Quantity: quantity}, completed, nil
}

// GetItem returns an item by its ID
func (o *PurchaseOrder) GetItem(itemID uuid.UUID) *OrderItem {
	for idx := range o.Items {
		if o.Items[idx].ID == itemID {
			return &o.Items[idx]
		}
	}
	return nil
}

// TotalReceivedQuantity returns the total quantity received across items
func (o *PurchaseOrder) TotalReceivedQuantity() int64 {
	var total int64
	for idx := range o.Items {
		total += o.Items[idx].Received()
	}
	return total
}

// TotalRemainingQuantity returns the total quantity still to be received
func (o *PurchaseOrder) TotalRemainingQuantity() int64 {
	var total int64
	for idx := range o.Items {
		total += o.Items[idx].Remaining()
	}
	return total
}

// IsTerminal returns true if the order is RECEIVED or CANCELLED
func (o *PurchaseOrder) IsTerminal() bool {
	return o.Status == OrderStatusReceived || o.Status == OrderStatusCancelled
}

func (o *PurchaseOrder) recalculateTotal() {
	total := decimal.Zero
	for idx := range o.Items {
		total = total.Add(o.Items[idx].Amount())
	}
	o.TotalAmount = total
}

func (o *PurchaseOrder) isAllItemsReceived() bool {
	for idx := range o.Items {
		if !o.Items[idx].IsFullyReceived() {
			return false
		}
	}
	return len(o.Items) > 0
}
