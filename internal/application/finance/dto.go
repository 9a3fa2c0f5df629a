package finance

import (
	"time"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Payment DTOs ====================

// CreatePaymentRequest represents a request to record a payment
type CreatePaymentRequest struct {
	OrderID              uuid.UUID       `json:"order_id" binding:"required"`
	Amount               decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod        string          `json:"payment_method" binding:"required"`
	Status               string          `json:"status"`
	TransactionReference string          `json:"transaction_reference"`
	Notes                string          `json:"notes"`
}

// UpdatePaymentStatusRequest represents a request to change a payment's status
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PaymentListFilter represents filter options for the payment list
type PaymentListFilter struct {
	OrderID  *uuid.UUID `form:"order_id"`
	Status   *string    `form:"status"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID                   uuid.UUID       `json:"id"`
	OrderID              uuid.UUID       `json:"order_id"`
	Amount               decimal.Decimal `json:"amount"`
	PaymentMethod        string          `json:"payment_method"`
	Status               string          `json:"status"`
	TransactionReference string          `json:"transaction_reference,omitempty"`
	Notes                string          `json:"notes,omitempty"`
	PaymentDate          time.Time       `json:"payment_date"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// OrderPaymentSummary represents the reconciliation state of one order
type OrderPaymentSummary struct {
	OrderID     uuid.UUID       `json:"order_id"`
	OrderTotal  decimal.Decimal `json:"order_total"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Payments    int             `json:"payments"`
}

// ToPaymentResponse converts a domain Payment to a response DTO
func ToPaymentResponse(payment *finance.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                   payment.ID,
		OrderID:              payment.OrderID,
		Amount:               payment.Amount,
		PaymentMethod:        payment.PaymentMethod.String(),
		Status:               payment.Status.String(),
		TransactionReference: payment.TransactionReference,
		Notes:                payment.Notes,
		PaymentDate:          payment.PaymentDate,
		CreatedAt:            payment.CreatedAt,
		UpdatedAt:            payment.UpdatedAt,
	}
}

// ToPaymentResponses converts a slice of domain payments to response DTOs
func ToPaymentResponses(payments []finance.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}
