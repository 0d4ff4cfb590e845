package domain

import "time"

// Inquiry is a contact request sent by a visitor to a listed vendor.
type Inquiry struct {
	ID         string    `json:"id"`
	VendorID   string    `json:"vendor_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}
