package domain

import (
	"errors"
	"time"
)

var ErrVendorNotFound = errors.New("vendor not found")
var ErrForbidden = errors.New("access forbidden")

// Vendor is a published directory entry in the discovery catalogue.
type Vendor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	City      string    `json:"city"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	LogoURL   string    `json:"logo_url,omitempty"`
	About     string    `json:"about,omitempty"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"created_at"`
}
