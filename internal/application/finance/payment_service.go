package finance

import (
	"context"
	"fmt"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/finance"
	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/procurement"
	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentService handles payment recording and reconciliation against
// purchase orders.
type PaymentService struct {
	paymentRepo finance.PaymentRepository
	orderRepo   procurement.PurchaseOrderRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo finance.PaymentRepository, orderRepo procurement.PurchaseOrderRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
	}
}

// Create records a payment against a purchase order. The prospective
// completed total (current completed sum plus the new amount, whatever
// the new payment's status) must not exceed the order total. The insert
// is serialized against concurrent payments and receipts through the
// order's version; a conflict surfaces as CONCURRENCY_CONFLICT and the
// caller may retry.
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	totalPaid, err := s.paymentRepo.SumCompletedByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	if totalPaid.Add(req.Amount).GreaterThan(order.TotalAmount) {
		outstanding := order.TotalAmount.Sub(totalPaid)
		return nil, shared.NewDomainError("PAYMENT_EXCEEDS_TOTAL",
			fmt.Sprintf("Payment of %s exceeds outstanding amount %s", req.Amount.String(), outstanding.String()))
	}

	payment, err := finance.NewPayment(
		order.ID,
		req.Amount,
		finance.PaymentMethod(req.PaymentMethod),
		finance.PaymentStatus(req.Status),
	)
	if err != nil {
		return nil, err
	}
	payment.TransactionReference = req.TransactionReference
	payment.Notes = req.Notes

	if err := s.paymentRepo.CreateWithOrderLock(ctx, payment, order.Version); err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// UpdateStatus settles a pending payment. Completing a payment re-checks
// the order's completed sum first: other payments may have completed since
// this one was recorded, and the pending amount is not part of the stored
// sum. The save is serialized through the order's version like Create.
// Failing or cancelling releases the amount and needs no lock.
func (s *PaymentService) UpdateStatus(ctx context.Context, paymentID uuid.UUID, req UpdatePaymentStatusRequest) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	next := finance.PaymentStatus(req.Status)
	if err := payment.TransitionStatus(next); err != nil {
		return nil, err
	}

	if next == finance.PaymentStatusCompleted {
		order, err := s.orderRepo.FindByID(ctx, payment.OrderID)
		if err != nil {
			return nil, err
		}

		totalPaid, err := s.paymentRepo.SumCompletedByOrder(ctx, payment.OrderID)
		if err != nil {
			return nil, err
		}

		if totalPaid.Add(payment.Amount).GreaterThan(order.TotalAmount) {
			outstanding := order.TotalAmount.Sub(totalPaid)
			return nil, shared.NewDomainError("PAYMENT_EXCEEDS_TOTAL",
				fmt.Sprintf("Completing payment of %s exceeds outstanding amount %s", payment.Amount.String(), outstanding.String()))
		}

		if err := s.paymentRepo.SaveWithOrderLock(ctx, payment, order.Version); err != nil {
			return nil, err
		}
	} else {
		if err := s.paymentRepo.Save(ctx, payment); err != nil {
			return nil, err
		}
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	response := ToPaymentResponse(payment)
	return &response, nil
}

// ListByOrder retrieves all payments recorded against an order
func (s *PaymentService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]PaymentResponse, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return ToPaymentResponses(payments), nil
}

// List retrieves payments with filtering and pagination
func (s *PaymentService) List(ctx context.Context, filter PaymentListFilter) ([]PaymentResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderID != nil {
		domainFilter.Filters["order_id"] = *filter.OrderID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = *filter.Status
	}

	payments, err := s.paymentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.paymentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPaymentResponses(payments), total, nil
}

// GetOrderSummary returns the reconciliation state of an order: its
// total, the sum of completed payments and the outstanding balance.
func (s *PaymentService) GetOrderSummary(ctx context.Context, orderID uuid.UUID) (*OrderPaymentSummary, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	totalPaid, err := s.paymentRepo.SumCompletedByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &OrderPaymentSummary{
		OrderID:     order.ID,
		OrderTotal:  order.TotalAmount,
		TotalPaid:   totalPaid,
		Outstanding: order.TotalAmount.Sub(totalPaid),
		Payments:    len(payments),
	}, nil
}
