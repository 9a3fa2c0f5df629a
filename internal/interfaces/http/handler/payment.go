package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/application/finance"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	BaseHandler
	service *finance.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(service *finance.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// Create handles POST /payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var req finance.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	payment, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, payment)
}

// UpdateStatus handles PATCH /payments/:id/status
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	paymentID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req finance.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	payment, err := h.service.UpdateStatus(c.Request.Context(), paymentID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, payment)
}

// Get handles GET /payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	paymentID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.service.GetByID(c.Request.Context(), paymentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, payment)
}

// List handles GET /payments
func (h *PaymentHandler) List(c *gin.Context) {
	var filter finance.PaymentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.Page, filter.PageSize = normalizePagination(filter.Page, filter.PageSize)

	payments, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, payments, total, filter.Page, filter.PageSize)
}

// ListByOrder handles GET /payments/order/:orderId
func (h *PaymentHandler) ListByOrder(c *gin.Context) {
	orderID, err := parseUUIDParam(c, "orderId")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payments, err := h.service.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, payments)
}

// OrderSummary handles GET /payments/order/:orderId/summary
func (h *PaymentHandler) OrderSummary(c *gin.Context) {
	orderID, err := parseUUIDParam(c, "orderId")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.service.GetOrderSummary(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, summary)
}
