package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/application/catalog"
)

// VendorHandler handles vendor HTTP requests
type VendorHandler struct {
	BaseHandler
	service *catalog.VendorService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(service *catalog.VendorService) *VendorHandler {
	return &VendorHandler{service: service}
}

// Create handles POST /vendors
func (h *VendorHandler) Create(c *gin.Context) {
	var req catalog.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	vendor, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, vendor)
}

// Get handles GET /vendors/:id
func (h *VendorHandler) Get(c *gin.Context) {
	vendorID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vendor, err := h.service.GetByID(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, vendor)
}

// List handles GET /vendors
func (h *VendorHandler) List(c *gin.Context) {
	var filter catalog.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.Page, filter.PageSize = normalizePagination(filter.Page, filter.PageSize)

	vendors, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, vendors, total, filter.Page, filter.PageSize)
}

// Update handles PUT /vendors/:id
func (h *VendorHandler) Update(c *gin.Context) {
	vendorID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req catalog.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	vendor, err := h.service.Update(c.Request.Context(), vendorID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, vendor)
}

// Delete handles DELETE /vendors/:id
func (h *VendorHandler) Delete(c *gin.Context) {
	vendorID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), vendorID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
