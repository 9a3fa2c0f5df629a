package procurement

import (
	"time"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/procurement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Purchase Order DTOs ====================

// CreateOrderRequest represents a request to create a purchase order
type CreateOrderRequest struct {
	VendorID uuid.UUID              `json:"vendor_id" binding:"required"`
	Items    []CreateOrderItemInput `json:"items" binding:"required,min=1,dive"`
	Notes    string                 `json:"notes"`
}

// CreateOrderItemInput represents an item in the create order request
type CreateOrderItemInput struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// ReceivePartialRequest represents a request to receive part of one line item
type ReceivePartialRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int64     `json:"quantity" binding:"required,gt=0"`
}

// OrderListFilter represents filter options for the order list
type OrderListFilter struct {
	Search   string                         `form:"search"`
	VendorID *uuid.UUID                     `form:"vendor_id"`
	Status   *procurement.OrderStatus       `form:"status"`
	Page     int                            `form:"page" binding:"omitempty,min=1"`
	PageSize int                            `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string                         `form:"order_by"`
	OrderDir string                         `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// OrderResponse represents a purchase order in API responses
type OrderResponse struct {
	ID                uuid.UUID           `json:"id"`
	OrderNumber       string              `json:"order_number"`
	VendorID          uuid.UUID           `json:"vendor_id"`
	VendorName        string              `json:"vendor_name"`
	Items             []OrderItemResponse `json:"items"`
	TotalAmount       decimal.Decimal     `json:"total_amount"`
	Status            string              `json:"status"`
	ReceivedQuantity  int64               `json:"received_quantity"`
	RemainingQuantity int64               `json:"remaining_quantity"`
	Notes             string              `json:"notes,omitempty"`
	ApprovedAt        *time.Time          `json:"approved_at,omitempty"`
	ReceivedAt        *time.Time          `json:"received_at,omitempty"`
	CancelledAt       *time.Time          `json:"cancelled_at,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	Version          int                 `json:"version"`
}

// OrderItemResponse represents a purchase order item in API responses
type OrderItemResponse struct {
	ID                uuid.UUID       `json:"id"`
	ProductID         uuid.UUID       `json:"product_id"`
	Quantity          int64           `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Amount            decimal.Decimal `json:"amount"`
	ReceivedQuantity  int64           `json:"received_quantity"`
	RemainingQuantity int64           `json:"remaining_quantity"`
}

// ReceiveResultResponse represents the result of a receive operation
type ReceiveResultResponse struct {
	Order           OrderResponse `json:"order"`
	IsFullyReceived bool          `json:"is_fully_received"`
}

// OrderStatusSummary represents order counts by status
type OrderStatusSummary struct {
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Received  int64 `json:"received"`
	Cancelled int64 `json:"cancelled"`
	Total     int64 `json:"total"`
}

// ToOrderResponse converts a domain PurchaseOrder to a response DTO
func ToOrderResponse(order *procurement.PurchaseOrder) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i := range order.Items {
		items[i] = ToOrderItemResponse(&order.Items[i])
	}

	return OrderResponse{
		ID:                order.ID,
		OrderNumber:       order.OrderNumber,
		VendorID:          order.VendorID,
		VendorName:        order.VendorName,
		Items:             items,
		TotalAmount:       order.TotalAmount,
		Status:            order.Status.String(),
		ReceivedQuantity:  order.TotalReceivedQuantity(),
		RemainingQuantity: order.TotalRemainingQuantity(),
		Notes:             order.Notes,
		ApprovedAt:        order.ApprovedAt,
		ReceivedAt:        order.ReceivedAt,
		CancelledAt:       order.CancelledAt,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
		Version:           order.Version,
	}
}

// ToOrderItemResponse converts a domain OrderItem to a response DTO
func ToOrderItemResponse(item *procurement.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:                item.ID,
		ProductID:         item.ProductID,
		Quantity:          item.Quantity,
		UnitPrice:         item.UnitPrice,
		Amount:            item.Amount(),
		ReceivedQuantity:  item.Received(),
		RemainingQuantity: item.Remaining(),
	}
}

// ToOrderResponses converts a slice of domain orders to response DTOs
func ToOrderResponses(orders []procurement.PurchaseOrder) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
