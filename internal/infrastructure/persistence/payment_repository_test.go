package persistence

import (
	"context"
	"testing"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/finance"
	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedPayment(t *testing.T, orderID uuid.UUID, amount int64, status finance.PaymentStatus) *finance.Payment {
	t.Helper()

	payment, err := finance.NewPayment(orderID, decimal.NewFromInt(amount), finance.PaymentMethodBankTransfer, status)
	require.NoError(t, err)
	return payment
}

func TestGormPaymentRepository_SumCompletedByOrder(t *testing.T) {
	db := setupTestDB(t)
	orderRepo := NewGormPurchaseOrderRepository(db)
	paymentRepo := NewGormPaymentRepository(db)
	ctx := context.Background()

	order := seedOrder(t, db, "PO-2026-00040", 5)

	t.Run("returns zero when no payments exist", func(t *testing.T) {
		total, err := paymentRepo.SumCompletedByOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("counts completed payments only", func(t *testing.T) {
		found, err := orderRepo.FindByID(ctx, order.ID)
		require.NoError(t, err)

		completed := storedPayment(t, order.ID, 60, finance.PaymentStatusCompleted)
		require.NoError(t, paymentRepo.CreateWithOrderLock(ctx, completed, found.Version))

		pending := storedPayment(t, order.ID, 40, finance.PaymentStatusPending)
		require.NoError(t, paymentRepo.CreateWithOrderLock(ctx, pending, found.Version+1))

		total, err := paymentRepo.SumCompletedByOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(60)), "got %s", total)
	})
}

func TestGormPaymentRepository_CreateWithOrderLock(t *testing.T) {
	db := setupTestDB(t)
	orderRepo := NewGormPurchaseOrderRepository(db)
	paymentRepo := NewGormPaymentRepository(db)
	ctx := context.Background()

	t.Run("inserts the payment and bumps the order version", func(t *testing.T) {
		order := seedOrder(t, db, "PO-2026-00041", 5)

		payment := storedPayment(t, order.ID, 25, finance.PaymentStatusCompleted)
		require.NoError(t, paymentRepo.CreateWithOrderLock(ctx, payment, order.Version))

		found, err := paymentRepo.FindByID(ctx, payment.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, found.OrderID)

		reloaded, err := orderRepo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.Version+1, reloaded.Version)
	})

	t.Run("rejects a stale order version without inserting", func(t *testing.T) {
		order := seedOrder(t, db, "PO-2026-00042", 5)

		payment := storedPayment(t, order.ID, 25, finance.PaymentStatusCompleted)
		err := paymentRepo.CreateWithOrderLock(ctx, payment, order.Version+5)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)

		payments, err := paymentRepo.FindByOrderID(ctx, order.ID)
		require.NoError(t, err)
		assert.Empty(t, payments)
	})

	t.Run("returns ErrNotFound for a missing order", func(t *testing.T) {
		payment := storedPayment(t, uuid.New(), 25, finance.PaymentStatusCompleted)
		err := paymentRepo.CreateWithOrderLock(ctx, payment, 1)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormPaymentRepository_SaveWithOrderLock(t *testing.T) {
	db := setupTestDB(t)
	orderRepo := NewGormPurchaseOrderRepository(db)
	paymentRepo := NewGormPaymentRepository(db)
	ctx := context.Background()

	t.Run("persists the status change and bumps the order version", func(t *testing.T) {
		order := seedOrder(t, db, "PO-2026-00045", 5)

		payment := storedPayment(t, order.ID, 25, finance.PaymentStatusPending)
		require.NoError(t, paymentRepo.CreateWithOrderLock(ctx, payment, order.Version))

		require.NoError(t, payment.TransitionStatus(finance.PaymentStatusCompleted))
		require.NoError(t, paymentRepo.SaveWithOrderLock(ctx, payment, order.Version+1))

		found, err := paymentRepo.FindByID(ctx, payment.ID)
		require.NoError(t, err)
		assert.Equal(t, finance.PaymentStatusCompleted, found.Status)

		total, err := paymentRepo.SumCompletedByOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(25)))

		reloaded, err := orderRepo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.Version+2, reloaded.Version)
	})

	t.Run("rejects a stale order version without updating", func(t *testing.T) {
		order := seedOrder(t, db, "PO-2026-00046", 5)

		payment := storedPayment(t, order.ID, 25, finance.PaymentStatusPending)
		require.NoError(t, paymentRepo.CreateWithOrderLock(ctx, payment, order.Version))

		require.NoError(t, payment.TransitionStatus(finance.PaymentStatusCompleted))
		err := paymentRepo.SaveWithOrderLock(ctx, payment, order.Version)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)

		found, err := paymentRepo.FindByID(ctx, payment.ID)
		require.NoError(t, err)
		assert.Equal(t, finance.PaymentStatusPending, found.Status)
	})
}

func TestGormPaymentRepository_FindByOrderID(t *testing.T) {
	db := setupTestDB(t)
	paymentRepo := NewGormPaymentRepository(db)
	ctx := context.Background()

	order := seedOrder(t, db, "PO-2026-00043", 5)
	other := seedOrder(t, db, "PO-2026-00044", 5)

	first := storedPayment(t, order.ID, 10, finance.PaymentStatusCompleted)
	require.NoError(t, paymentRepo.CreateWithOrderLock(ctx, first, 1))
	second := storedPayment(t, order.ID, 20, finance.PaymentStatusCompleted)
	require.NoError(t, paymentRepo.CreateWithOrderLock(ctx, second, 2))
	unrelated := storedPayment(t, other.ID, 30, finance.PaymentStatusCompleted)
	require.NoError(t, paymentRepo.CreateWithOrderLock(ctx, unrelated, 1))

	payments, err := paymentRepo.FindByOrderID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.True(t, payments[0].Amount.Equal(decimal.NewFromInt(10)))
	assert.True(t, payments[1].Amount.Equal(decimal.NewFromInt(20)))
}
