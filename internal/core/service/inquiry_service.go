package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketsquare/vendor-portal/internal/api/metrics"
	"github.com/marketsquare/vendor-portal/internal/core/domain"
	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

// InquiryService validates and persists vendor contact requests. It is fed by
// the queue dispatcher, one worker per shard.
type InquiryService struct {
	vendors   ports.VendorRepository
	inquiries ports.InquiryRepository
	logger    zerolog.Logger
}

func NewInquiryService(vendors ports.VendorRepository, inquiries ports.InquiryRepository, logger zerolog.Logger) *InquiryService {
	return &InquiryService{vendors: vendors, inquiries: inquiries, logger: logger}
}

// Process stores a single inquiry after confirming the vendor exists.
func (s *InquiryService) Process(ctx context.Context, input ports.InquiryInput) error {
	if input.VendorID == "" || strings.TrimSpace(input.Message) == "" {
		metrics.InquiriesProcessedTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("inquiry missing vendor or message")
	}

	if _, err := s.vendors.FindByID(ctx, input.VendorID); err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			metrics.InquiriesProcessedTotal.WithLabelValues("vendor_not_found").Inc()
			return err
		}
		return fmt.Errorf("verify vendor: %w", err)
	}

	receivedAt := input.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}

	inquiry := &domain.Inquiry{
		VendorID:   input.VendorID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
		ReceivedAt: receivedAt,
	}

	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		metrics.InquiriesProcessedTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("store inquiry: %w", err)
	}

	metrics.InquiriesProcessedTotal.WithLabelValues("ok").Inc()
	s.logger.Info().
		Str("vendor_id", inquiry.VendorID).
		Str("inquiry_id", inquiry.ID).
		Msg("inquiry stored")
	return nil
}
