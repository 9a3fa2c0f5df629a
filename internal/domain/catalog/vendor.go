package catalog

import (
	"strings"

	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/domain/shared"
)

// Vendor represents a supplier that purchase orders are placed with
type Vendor struct {
	shared.BaseAggregateRoot
	Name          string `gorm:"type:varchar(200);not null"`
	ContactNumber string `gorm:"type:varchar(30)"`
	Email         string `gorm:"type:varchar(200)"`
	Address       string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// NewVendor creates a new vendor
func NewVendor(name, contactNumber, email, address string) (*Vendor, error) {
	if err := validateVendorName(name); err != nil {
		return nil, err
	}

	return &Vendor{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		ContactNumber:     contactNumber,
		Email:             email,
		Address:           address,
	}, nil
}

// Update updates the vendor's contact information
func (v *Vendor) Update(name, contactNumber, email, address string) error {
	if err := validateVendorName(name); err != nil {
		return err
	}

	v.Name = strings.TrimSpace(name)
	v.ContactNumber = contactNumber
	v.Email = email
	v.Address = address
	v.Touch()

	return nil
}

func validateVendorName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot exceed 200 characters")
	}
	return nil
}
