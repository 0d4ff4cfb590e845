package ports

import (
	"context"

	"github.com/marketsquare/vendor-portal/internal/core/domain"
)

// ListVendorsFilter carries all query parameters for browsing the directory.
type ListVendorsFilter struct {
	Category string // optional: filter by category
	City     string // optional: filter by city
	Search   string // optional: partial match on vendor name
	Featured bool   // true = only featured vendors
	Page     int    // 1-based
	Limit    int    // max rows per page (capped at 100 by service)
}

// VendorRepository defines persistence operations for the vendor directory.
type VendorRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Vendor, error)
	// List returns a page of vendors matching filter and the total count.
	List(ctx context.Context, filter ListVendorsFilter) ([]*domain.Vendor, int64, error)
}

// InquiryRepository persists vendor contact requests.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
}
