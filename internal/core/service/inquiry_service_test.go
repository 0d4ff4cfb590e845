package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/marketsquare/vendor-portal/internal/core/domain"
	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

type stubInquiryRepo struct {
	created   []*domain.Inquiry
	createErr error
}

func (r *stubInquiryRepo) Create(_ context.Context, inquiry *domain.Inquiry) error {
	if r.createErr != nil {
		return r.createErr
	}
	inquiry.ID = "generated"
	r.created = append(r.created, inquiry)
	return nil
}

func TestInquiryService_Process_Success(t *testing.T) {
	vendors := newStubVendorRepo(&domain.Vendor{ID: "v1", Name: "Asha Decor"})
	inquiries := &stubInquiryRepo{}
	svc := NewInquiryService(vendors, inquiries, zerolog.Nop())

	err := svc.Process(context.Background(), ports.InquiryInput{
		VendorID: "v1",
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Message:  "Do you cover outdoor venues?",
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(inquiries.created) != 1 {
		t.Fatalf("expected one stored inquiry, got %d", len(inquiries.created))
	}
	stored := inquiries.created[0]
	if stored.VendorID != "v1" || stored.ID != "generated" {
		t.Fatalf("unexpected inquiry: %+v", stored)
	}
	if stored.ReceivedAt.IsZero() {
		t.Fatalf("received_at must be set")
	}
}

func TestInquiryService_Process_UnknownVendor(t *testing.T) {
	svc := NewInquiryService(newStubVendorRepo(), &stubInquiryRepo{}, zerolog.Nop())

	err := svc.Process(context.Background(), ports.InquiryInput{VendorID: "ghost", Message: "hi"})
	if !errors.Is(err, domain.ErrVendorNotFound) {
		t.Fatalf("expected ErrVendorNotFound, got %v", err)
	}
}

func TestInquiryService_Process_Validation(t *testing.T) {
	vendors := newStubVendorRepo(&domain.Vendor{ID: "v1"})
	inquiries := &stubInquiryRepo{}
	svc := NewInquiryService(vendors, inquiries, zerolog.Nop())

	if err := svc.Process(context.Background(), ports.InquiryInput{Message: "hi"}); err == nil {
		t.Fatalf("expected error for missing vendor id")
	}
	if err := svc.Process(context.Background(), ports.InquiryInput{VendorID: "v1", Message: "   "}); err == nil {
		t.Fatalf("expected error for blank message")
	}
	if len(inquiries.created) != 0 {
		t.Fatalf("nothing should be stored on validation failure")
	}
}

func TestInquiryService_Process_InsertFailure(t *testing.T) {
	vendors := newStubVendorRepo(&domain.Vendor{ID: "v1"})
	inquiries := &stubInquiryRepo{createErr: errors.New("mongo down")}
	svc := NewInquiryService(vendors, inquiries, zerolog.Nop())

	if err := svc.Process(context.Background(), ports.InquiryInput{VendorID: "v1", Message: "hi"}); err == nil {
		t.Fatalf("expected insert failure to surface")
	}
}
