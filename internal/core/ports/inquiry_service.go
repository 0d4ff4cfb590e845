package ports

import (
	"context"
	"time"
)

// InquiryInput is the DTO passed from the transport layer to InquiryService.
type InquiryInput struct {
	VendorID   string
	Name       string
	Email      string
	Phone      string
	Message    string
	ReceivedAt time.Time
}

// InquiryService processes vendor contact requests.
type InquiryService interface {
	Process(ctx context.Context, inquiry InquiryInput) error
}
