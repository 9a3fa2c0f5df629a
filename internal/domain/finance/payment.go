package finance

import (
	"fmt"
	"time"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment was settled
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCheque       PaymentMethod = "CHEQUE"
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodUPI          PaymentMethod = "UPI"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCheque,
		PaymentMethodCreditCard, PaymentMethodUPI, PaymentMethodOther:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus represents the settlement state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// IsValid checks if the payment status is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// IsCompleted reports whether the payment counts toward the order's paid total
func (s PaymentStatus) IsCompleted() bool {
	return s == PaymentStatusCompleted
}

// Payment records money paid against a purchase order.
// Only COMPLETED payments count toward the order's paid total.
type Payment struct {
	shared.BaseEntity
	OrderID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount               decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaymentMethod        PaymentMethod   `gorm:"type:varchar(30);not null"`
	Status               PaymentStatus   `gorm:"type:varchar(20);not null;default:'COMPLETED';index"`
	TransactionReference string          `gorm:"type:varchar(100)"`
	Notes                string          `gorm:"type:text"`
	PaymentDate          time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a new payment. A zero status defaults to COMPLETED
// and a zero payment date defaults to now.
func NewPayment(orderID uuid.UUID, amount decimal.Decimal, method PaymentMethod, status PaymentStatus) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}
	if status == "" {
		status = PaymentStatusCompleted
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_STATUS", "Payment status is not valid")
	}

	return &Payment{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       orderID,
		Amount:        amount,
		PaymentMethod: method,
		Status:        status,
		PaymentDate:   time.Now(),
	}, nil
}

// TransitionStatus settles a pending payment. COMPLETED, FAILED and
// CANCELLED are terminal, so only a PENDING payment can change status.
func (p *Payment) TransitionStatus(next PaymentStatus) error {
	if !next.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_STATUS", "Payment status is not valid")
	}
	if p.Status != PaymentStatusPending || next == PaymentStatusPending {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot change a %s payment to %s", p.Status, next))
	}

	p.Status = next
	return nil
}
