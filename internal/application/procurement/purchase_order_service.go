package procurement

import (
	"context"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/catalog"
	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/procurement"
	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseOrderService handles purchase order business operations
type PurchaseOrderService struct {
	orderRepo   procurement.PurchaseOrderRepository
	vendorRepo  catalog.VendorRepository
	productRepo catalog.ProductRepository
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	orderRepo procurement.PurchaseOrderRepository,
	vendorRepo catalog.VendorRepository,
	productRepo catalog.ProductRepository,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:   orderRepo,
		vendorRepo:  vendorRepo,
		productRepo: productRepo,
	}
}

// Create creates a new purchase order in PENDING status.
// The vendor and every referenced product must exist.
func (s *PurchaseOrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}

	// Verify every product before touching the order
	for _, item := range req.Items {
		if _, err := s.productRepo.FindByID(ctx, item.ProductID); err != nil {
			return nil, err
		}
	}

	orderNumber, err := s.orderRepo.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order, err := procurement.NewPurchaseOrder(orderNumber, vendor.ID, vendor.Name)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		order.Notes = req.Notes
	}

	for _, item := range req.Items {
		if _, err := order.AddItem(item.ProductID, item.Quantity, item.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// GetByOrderNumber retrieves a purchase order by its order number
func (s *PurchaseOrderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves purchase orders with filtering and pagination
func (s *PurchaseOrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.VendorID != nil {
		domainFilter.Filters["vendor_id"] = *filter.VendorID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = filter.Status.String()
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

// Approve transitions a purchase order from PENDING to APPROVED
func (s *PurchaseOrderService) Approve(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Approve(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Cancel cancels a purchase order. Stock already received against the
// order is not reversed.
func (s *PurchaseOrderService) Cancel(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Cancel(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// ReceiveAll receives the outstanding remainder of every line item,
// marks the order RECEIVED and increments product stock in the same
// transaction.
func (s *PurchaseOrderService) ReceiveAll(ctx context.Context, orderID uuid.UUID) (*ReceiveResultResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	adjustments, err := order.ReceiveAll()
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLockAndStock(ctx, order, adjustments); err != nil {
		return nil, err
	}

	return &ReceiveResultResponse{
		Order:           ToOrderResponse(order),
		IsFullyReceived: true,
	}, nil
}

// ReceivePartial receives a quantity against a single line item and
// increments the product's stock in the same transaction. The order
// transitions to RECEIVED when every item is fully received.
func (s *PurchaseOrderService) ReceivePartial(ctx context.Context, orderID uuid.UUID, req ReceivePartialRequest) (*ReceiveResultResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	adjustment, completed, err := order.ReceivePartial(req.ItemID, req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLockAndStock(ctx, order, []procurement.StockAdjustment{adjustment}); err != nil {
		return nil, err
	}

	return &ReceiveResultResponse{
		Order:           ToOrderResponse(order),
		IsFullyReceived: completed,
	}, nil
}

// GetStatusSummary retrieves order counts grouped by status
func (s *PurchaseOrderService) GetStatusSummary(ctx context.Context) (*OrderStatusSummary, error) {
	pending, err := s.orderRepo.CountByStatus(ctx, procurement.OrderStatusPending)
	if err != nil {
		return nil, err
	}

	approved, err := s.orderRepo.CountByStatus(ctx, procurement.OrderStatusApproved)
	if err != nil {
		return nil, err
	}

	received, err := s.orderRepo.CountByStatus(ctx, procurement.OrderStatusReceived)
	if err != nil {
		return nil, err
	}

	cancelled, err := s.orderRepo.CountByStatus(ctx, procurement.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}

	return &OrderStatusSummary{
		Pending:   pending,
		Approved:  approved,
		Received:  received,
		Cancelled: cancelled,
		Total:     pending + approved + received + cancelled,
	}, nil
}
