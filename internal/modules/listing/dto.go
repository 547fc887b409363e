package listing

import "stayhub/internal/domain"

// CreateListingInput is assembled by the handler from the multipart form;
// Images already carry the stored URLs of the uploaded files.
type CreateListingInput struct {
	Type        domain.ListingType
	Name        string
	Address     domain.Address
	Contact     string
	Description string
	Facilities  []string
	Pricing     float64
	Images      []string
}

// UpdateListingRequest is a merge patch: only non-nil fields are applied.
// vendor_id and id are not part of the patch surface at all, so attempts to
// change them are ignored rather than rejected.
type UpdateListingRequest struct {
	Type         *string         `json:"type,omitempty"`
	Name         *string         `json:"name,omitempty"`
	Address      *domain.Address `json:"address,omitempty"`
	Contact      *string         `json:"contact,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Facilities   *[]string       `json:"facilities,omitempty"`
	Pricing      *float64        `json:"pricing,omitempty"`
	Availability *bool           `json:"availability,omitempty"`
	Images       *[]string       `json:"images,omitempty"`
}
