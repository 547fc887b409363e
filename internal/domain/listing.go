package domain

import "time"

type ListingType string

const (
	ListingHotel      ListingType = "Hotel"
	ListingRestaurant ListingType = "Restaurant"
)

func (t ListingType) Valid() bool {
	return t == ListingHotel || t == ListingRestaurant
}

// Address mirrors the nested address block listings are published with.
type Address struct {
	Street string `json:"street" validate:"required"`
	City   string `json:"city" validate:"required"`
	State  string `json:"state" validate:"required"`
	Zip    string `json:"zip" validate:"required"`
}

type Listing struct {
	ID           int64       `json:"id"`
	VendorID     int64       `json:"vendor_id"`
	Type         ListingType `json:"type" validate:"required"`
	Name         string      `json:"name" validate:"required"`
	Address      Address     `json:"address"`
	Contact      string      `json:"contact" validate:"required"`
	Description  string      `json:"description,omitempty"`
	Facilities   []string    `json:"facilities"`
	Pricing      float64     `json:"pricing" validate:"required,gt=0"`
	Availability bool        `json:"availability"`
	Images       []string    `json:"images"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
