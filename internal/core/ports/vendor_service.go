package ports

import (
	"context"

	"github.com/marketsquare/vendor-portal/internal/core/domain"
)

// ListVendorsResult is returned by ListVendors.
type ListVendorsResult struct {
	Items      []*domain.Vendor
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// VendorService defines use-case operations for the public directory.
type VendorService interface {
	ListVendors(ctx context.Context, filter ListVendorsFilter) (*ListVendorsResult, error)
	GetVendor(ctx context.Context, id string) (*domain.Vendor, error)
}

// VendorCache caches serialized directory pages between the service and the
// repository. A miss is reported as (nil, nil).
type VendorCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
