package domain

// Role classifies the authenticated principal. It is fixed at sign-in and
// never changes for the lifetime of a session.
type Role string

const (
	RoleVendor   Role = "vendor"
	RoleCustomer Role = "customer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleVendor || r == RoleCustomer
}

// Identity models the authenticated principal's profile, distinct from the
// credential itself. An Identity with an empty Role cannot pass role-gated
// checks.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Role        Role   `json:"role"`

	// Optional profile attributes.
	Category    string         `json:"category,omitempty"`
	City        string         `json:"city,omitempty"`
	AvatarURL   string         `json:"avatar_url,omitempty"`
	LogoURL     string         `json:"logo_url,omitempty"`
	About       string         `json:"about,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// Clone returns a deep copy of the identity.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	clone := *i
	if i.Preferences != nil {
		clone.Preferences = make(map[string]any, len(i.Preferences))
		for k, v := range i.Preferences {
			clone.Preferences[k] = v
		}
	}
	return &clone
}

// IdentityPatch is a partial identity update. Nil fields keep their previous
// values. Role is deliberately absent: it is immutable for the session.
type IdentityPatch struct {
	DisplayName *string        `json:"display_name,omitempty"`
	Email       *string        `json:"email,omitempty"`
	Phone       *string        `json:"phone,omitempty"`
	Category    *string        `json:"category,omitempty"`
	City        *string        `json:"city,omitempty"`
	AvatarURL   *string        `json:"avatar_url,omitempty"`
	LogoURL     *string        `json:"logo_url,omitempty"`
	About       *string        `json:"about,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// Apply merges the patch into identity field by field.
func (p IdentityPatch) Apply(identity *Identity) {
	if identity == nil {
		return
	}
	if p.DisplayName != nil {
		identity.DisplayName = *p.DisplayName
	}
	if p.Email != nil {
		identity.Email = *p.Email
	}
	if p.Phone != nil {
		identity.Phone = *p.Phone
	}
	if p.Category != nil {
		identity.Category = *p.Category
	}
	if p.City != nil {
		identity.City = *p.City
	}
	if p.AvatarURL != nil {
		identity.AvatarURL = *p.AvatarURL
	}
	if p.LogoURL != nil {
		identity.LogoURL = *p.LogoURL
	}
	if p.Preferences != nil {
		identity.Preferences = p.Preferences
	}
	if p.About != nil {
		identity.About = *p.About
	}
}
