package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/marketsquare/vendor-portal/internal/core/domain"
	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

const maxPageSize = 100

// VendorService serves the public directory, fronted by an optional cache.
type VendorService struct {
	repo   ports.VendorRepository
	cache  ports.VendorCache
	logger zerolog.Logger
}

// NewVendorService creates a VendorService. cache may be nil, in which case
// every read goes to the repository.
func NewVendorService(repo ports.VendorRepository, cache ports.VendorCache, logger zerolog.Logger) *VendorService {
	return &VendorService{repo: repo, cache: cache, logger: logger}
}

// ListVendors returns a page of the directory. Cache failures are treated as
// misses; the repository stays the source of truth.
func (s *VendorService) ListVendors(ctx context.Context, filter ports.ListVendorsFilter) (*ports.ListVendorsResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	key := cacheKey(filter)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err != nil {
			s.logger.Warn().Err(err).Msg("vendor cache read failed")
		} else if data != nil {
			var result ports.ListVendorsResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result, nil
			}
		}
	}

	vendors, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	result := &ports.ListVendorsResult{
		Items:      vendors,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}

	if s.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, data); err != nil {
				s.logger.Warn().Err(err).Msg("vendor cache write failed")
			}
		}
	}

	return result, nil
}

// GetVendor returns a single directory entry.
func (s *VendorService) GetVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	if id == "" {
		return nil, domain.ErrVendorNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func cacheKey(f ports.ListVendorsFilter) string {
	return fmt.Sprintf("%s:%s:%s:%t:%d:%d", f.Category, f.City, f.Search, f.Featured, f.Page, f.Limit)
}
