package finance

import (
	"testing"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethod_IsValid(t *testing.T) {
	valid := []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodBankTransfer,
		PaymentMethodCheque,
		PaymentMethodCreditCard,
		PaymentMethodUPI,
		PaymentMethodOther,
	}
	for _, m := range valid {
		assert.True(t, m.IsValid(), m)
	}
	assert.False(t, PaymentMethod("BITCOIN").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}

func TestPaymentStatus_IsValid(t *testing.T) {
	valid := []PaymentStatus{
		PaymentStatusPending,
		PaymentStatusCompleted,
		PaymentStatusFailed,
		PaymentStatusCancelled,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, PaymentStatus("SETTLED").IsValid())
}

func TestPaymentStatus_IsCompleted(t *testing.T) {
	assert.True(t, PaymentStatusCompleted.IsCompleted())
	assert.False(t, PaymentStatusPending.IsCompleted())
	assert.False(t, PaymentStatusFailed.IsCompleted())
	assert.False(t, PaymentStatusCancelled.IsCompleted())
}

func TestNewPayment(t *testing.T) {
	orderID := uuid.New()
	payment, err := NewPayment(orderID, decimal.NewFromFloat(150.50), PaymentMethodBankTransfer, PaymentStatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, orderID, payment.OrderID)
	assert.True(t, payment.Amount.Equal(decimal.NewFromFloat(150.50)))
	assert.Equal(t, PaymentMethodBankTransfer, payment.PaymentMethod)
	assert.Equal(t, PaymentStatusCompleted, payment.Status)
	assert.False(t, payment.PaymentDate.IsZero())
	assert.NotEqual(t, uuid.Nil, payment.ID)
}

func TestNewPayment_StatusDefaultsToCompleted(t *testing.T) {
	payment, err := NewPayment(uuid.New(), decimal.NewFromInt(100), PaymentMethodCash, "")
	require.NoError(t, err)

	assert.Equal(t, PaymentStatusCompleted, payment.Status)
}

func TestNewPayment_Validation(t *testing.T) {
	tests := []struct {
		name    string
		orderID uuid.UUID
		amount  decimal.Decimal
		method  PaymentMethod
		status  PaymentStatus
		code    string
	}{
		{"nil order", uuid.Nil, decimal.NewFromInt(100), PaymentMethodCash, "", "INVALID_ORDER"},
		{"zero amount", uuid.New(), decimal.Zero, PaymentMethodCash, "", "INVALID_AMOUNT"},
		{"negative amount", uuid.New(), decimal.NewFromInt(-5), PaymentMethodCash, "", "INVALID_AMOUNT"},
		{"bad method", uuid.New(), decimal.NewFromInt(100), PaymentMethod("IOU"), "", "INVALID_PAYMENT_METHOD"},
		{"bad status", uuid.New(), decimal.NewFromInt(100), PaymentMethodCash, PaymentStatus("SETTLED"), "INVALID_PAYMENT_STATUS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPayment(tt.orderID, tt.amount, tt.method, tt.status)
			require.Error(t, err)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.code, domainErr.Code)
		})
	}
}

func TestPayment_TransitionStatus(t *testing.T) {
	tests := []struct {
		name string
		from PaymentStatus
		to   PaymentStatus
		code string
	}{
		{"pending to completed", PaymentStatusPending, PaymentStatusCompleted, ""},
		{"pending to failed", PaymentStatusPending, PaymentStatusFailed, ""},
		{"pending to cancelled", PaymentStatusPending, PaymentStatusCancelled, ""},
		{"pending to pending", PaymentStatusPending, PaymentStatusPending, "INVALID_STATE"},
		{"completed is terminal", PaymentStatusCompleted, PaymentStatusFailed, "INVALID_STATE"},
		{"failed is terminal", PaymentStatusFailed, PaymentStatusCompleted, "INVALID_STATE"},
		{"cancelled is terminal", PaymentStatusCancelled, PaymentStatusCompleted, "INVALID_STATE"},
		{"unknown status", PaymentStatusPending, PaymentStatus("SETTLED"), "INVALID_PAYMENT_STATUS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, err := NewPayment(uuid.New(), decimal.NewFromInt(50), PaymentMethodCash, tt.from)
			require.NoError(t, err)

			err = payment.TransitionStatus(tt.to)
			if tt.code == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.to, payment.Status)
				return
			}

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.code, domainErr.Code)
			assert.Equal(t, tt.from, payment.Status)
		})
	}
}
