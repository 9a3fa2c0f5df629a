package procurement

import (
	"context"
	"testing"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/catalog"
	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/procurement"
	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService() (*PurchaseOrderService, *MockPurchaseOrderRepository, *MockVendorRepository, *MockProductRepository) {
	orderRepo := new(MockPurchaseOrderRepository)
	vendorRepo := new(MockVendorRepository)
	productRepo := new(MockProductRepository)
	return NewPurchaseOrderService(orderRepo, vendorRepo, productRepo), orderRepo, vendorRepo, productRepo
}

func testVendor(t *testing.T) *catalog.Vendor {
	vendor, err := catalog.NewVendor("Acme Supplies", "", "", "")
	require.NoError(t, err)
	return vendor
}

func testProduct(t *testing.T, sku string) *catalog.Product {
	product, err := catalog.NewProduct(sku, "Widget", "", decimal.NewFromInt(10))
	require.NoError(t, err)
	return product
}

func pendingOrder(t *testing.T, quantities ...int64) *procurement.PurchaseOrder {
	order, err := procurement.NewPurchaseOrder("PO-2026-00001", uuid.New(), "Acme Supplies")
	require.NoError(t, err)
	for _, q := range quantities {
		_, err := order.AddItem(uuid.New(), q, decimal.NewFromInt(10))
		require.NoError(t, err)
	}
	return order
}

func approvedOrder(t *testing.T, quantities ...int64) *procurement.PurchaseOrder {
	order := pendingOrder(t, quantities...)
	require.NoError(t, order.Approve())
	return order
}

func TestPurchaseOrderService_Create(t *testing.T) {
	service, orderRepo, vendorRepo, productRepo := newTestService()
	ctx := context.Background()

	vendor := testVendor(t)
	product := testProduct(t, "WID-001")

	vendorRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	orderRepo.On("GenerateOrderNumber", ctx).Return("PO-2026-00042", nil)
	orderRepo.On("Save", ctx, mock.AnythingOfType("*procurement.PurchaseOrder")).Return(nil)

	resp, err := service.Create(ctx, CreateOrderRequest{
		VendorID: vendor.ID,
		Items: []CreateOrderItemInput{
			{ProductID: product.ID, Quantity: 3, UnitPrice: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "PO-2026-00042", resp.OrderNumber)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, vendor.Name, resp.VendorName)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(30)))
	orderRepo.AssertExpectations(t)
	vendorRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestPurchaseOrderService_Create_VendorNotFound(t *testing.T) {
	service, _, vendorRepo, _ := newTestService()
	ctx := context.Background()
	vendorID := uuid.New()

	vendorRepo.On("FindByID", ctx, vendorID).Return(nil, shared.ErrNotFound)

	_, err := service.Create(ctx, CreateOrderRequest{
		VendorID: vendorID,
		Items:    []CreateOrderItemInput{{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPurchaseOrderService_Create_ProductNotFound(t *testing.T) {
	service, orderRepo, vendorRepo, productRepo := newTestService()
	ctx := context.Background()

	vendor := testVendor(t)
	missingID := uuid.New()

	vendorRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	productRepo.On("FindByID", ctx, missingID).Return(nil, shared.ErrNotFound)

	_, err := service.Create(ctx, CreateOrderRequest{
		VendorID: vendor.ID,
		Items:    []CreateOrderItemInput{{ProductID: missingID, Quantity: 1, UnitPrice: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
	orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPurchaseOrderService_Approve(t *testing.T) {
	service, orderRepo, _, _ := newTestService()
	ctx := context.Background()

	order := pendingOrder(t, 3)
	orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	orderRepo.On("SaveWithLock", ctx, order).Return(nil)

	resp, err := service.Approve(ctx, order.ID)
	require.NoError(t, err)

	assert.Equal(t, "APPROVED", resp.Status)
	assert.NotNil(t, resp.ApprovedAt)
	orderRepo.AssertExpectations(t)
}

func TestPurchaseOrderService_Approve_InvalidState(t *testing.T) {
	service, orderRepo, _, _ := newTestService()
	ctx := context.Background()

	order := approvedOrder(t, 3)
	orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

	_, err := service.Approve(ctx, order.ID)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	orderRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestPurchaseOrderService_Cancel(t *testing.T) {
	service, orderRepo, _, _ := newTestService()
	ctx := context.Background()

	order := approvedOrder(t, 3)
	orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	orderRepo.On("SaveWithLock", ctx, order).Return(nil)

	resp, err := service.Cancel(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
}

func TestPurchaseOrderService_Cancel_ReceivedOrder(t *testing.T) {
	service, orderRepo, _, _ := newTestService()
	ctx := context.Background()

	order := approvedOrder(t, 3)
	_, err := order.ReceiveAll()
	require.NoError(t, err)

	orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

	_, err = service.Cancel(ctx, order.ID)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestPurchaseOrderService_ReceiveAll(t *testing.T) {
	service, orderRepo, _, _ := newTestService()
	ctx := context.Background()

	order := approvedOrder(t, 5, 3)
	orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	orderRepo.On("SaveWithLockAndStock", ctx, order, mock.MatchedBy(func(adjustments []procurement.StockAdjustment) bool {
		return len(adjustments) == 2 && adjustments[0].Quantity == 5 && adjustments[1].Quantity == 3
	})).Return(nil)

	resp, err := service.ReceiveAll(ctx, order.ID)
	require.NoError(t, err)

	assert.True(t, resp.IsFullyReceived)
	assert.Equal(t, "RECEIVED", resp.Order.Status)
	orderRepo.AssertExpectations(t)
}

func TestPurchaseOrderService_ReceivePartial(t *testing.T) {
	service, orderRepo, _, _ := newTestService()
	ctx := context.Background()

	order := approvedOrder(t, 5)
	itemID := order.Items[0].ID
	productID := order.Items[0].ProductID

	orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	orderRepo.On("SaveWithLockAndStock", ctx, order, []procurement.StockAdjustment{
		{ProductID: productID, Quantity: 2},
	}).Return(nil)

	resp, err := service.ReceivePartial(ctx, order.ID, ReceivePartialRequest{ItemID: itemID, Quantity: 2})
	require.NoError(t, err)

	assert.False(t, resp.IsFullyReceived)
	assert.Equal(t, "APPROVED", resp.Order.Status)
	assert.Equal(t, int64(2), resp.Order.ReceivedQuantity)
	orderRepo.AssertExpectations(t)
}

func TestPurchaseOrderService_ReceivePartial_QuantityExceeded(t *testing.T) {
	service, orderRepo, _, _ := newTestService()
	ctx := context.Background()

	order := approvedOrder(t, 5)
	orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

	_, err := service.ReceivePartial(ctx, order.ID, ReceivePartialRequest{ItemID: order.Items[0].ID, Quantity: 6})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "QUANTITY_EXCEEDED", domainErr.Code)
	orderRepo.AssertNotCalled(t, "SaveWithLockAndStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseOrderService_ReceivePartial_ConcurrencyConflict(t *testing.T) {
	service, orderRepo, _, _ := newTestService()
	ctx := context.Background()

	order := approvedOrder(t, 5)
	orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	orderRepo.On("SaveWithLockAndStock", ctx, order, mock.Anything).Return(shared.ErrConcurrencyConflict)

	_, err := service.ReceivePartial(ctx, order.ID, ReceivePartialRequest{ItemID: order.Items[0].ID, Quantity: 2})
	assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
}

func TestPurchaseOrderService_GetByID_NotFound(t *testing.T) {
	service, orderRepo, _, _ := newTestService()
	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.On("FindByID", ctx, orderID).Return(nil, shared.ErrNotFound)

	_, err := service.GetByID(ctx, orderID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPurchaseOrderService_List(t *testing.T) {
	service, orderRepo, _, _ := newTestService()
	ctx := context.Background()

	orders := []procurement.PurchaseOrder{*pendingOrder(t, 1), *pendingOrder(t, 2)}
	orderRepo.On("FindAll", ctx, mock.AnythingOfType("shared.Filter")).Return(orders, nil)
	orderRepo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(2), nil)

	resp, total, err := service.List(ctx, OrderListFilter{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, resp, 2)
}

func TestPurchaseOrderService_GetStatusSummary(t *testing.T) {
	service, orderRepo, _, _ := newTestService()
	ctx := context.Background()

	orderRepo.On("CountByStatus", ctx, procurement.OrderStatusPending).Return(int64(2), nil)
	orderRepo.On("CountByStatus", ctx, procurement.OrderStatusApproved).Return(int64(3), nil)
	orderRepo.On("CountByStatus", ctx, procurement.OrderStatusReceived).Return(int64(5), nil)
	orderRepo.On("CountByStatus", ctx, procurement.OrderStatusCancelled).Return(int64(1), nil)

	summary, err := service.GetStatusSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.Pending)
	assert.Equal(t, int64(11), summary.Total)
}
