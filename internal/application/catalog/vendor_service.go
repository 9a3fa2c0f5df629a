package catalog

import (
	"context"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/catalog"
	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/shared"
	"github.com/google/uuid"
)

// VendorService handles vendor management operations
type VendorService struct {
	vendorRepo catalog.VendorRepository
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo catalog.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// Create creates a new vendor
func (s *VendorService) Create(ctx context.Context, req CreateVendorRequest) (*VendorResponse, error) {
	vendor, err := catalog.NewVendor(req.Name, req.ContactNumber, req.Email, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// GetByID retrieves a vendor by ID
func (s *VendorService) GetByID(ctx context.Context, vendorID uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	response := ToVendorResponse(vendor)
	return &response, nil
}

// List retrieves vendors with filtering and pagination
func (s *VendorService) List(ctx context.Context, filter ListFilter) ([]VendorResponse, int64, error) {
	domainFilter := toDomainFilter(filter)

	vendors, err := s.vendorRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.vendorRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToVendorResponses(vendors), total, nil
}

// Update updates an existing vendor
func (s *VendorService) Update(ctx context.Context, vendorID uuid.UUID, req UpdateVendorRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if err := vendor.Update(req.Name, req.ContactNumber, req.Email, req.Address); err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// Delete deletes a vendor
func (s *VendorService) Delete(ctx context.Context, vendorID uuid.UUID) error {
	if _, err := s.vendorRepo.FindByID(ctx, vendorID); err != nil {
		return err
	}
	return s.vendorRepo.Delete(ctx, vendorID)
}

func toDomainFilter(filter ListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	return domainFilter
}
