package booking

import "time"

type CreateBookingRequest struct {
	ListingID    int64      `json:"listing_id" binding:"required"`
	UnitType     string     `json:"unit_type" binding:"required"`
	CheckInDate  time.Time  `json:"check_in_date" binding:"required"`
	CheckOutDate *time.Time `json:"check_out_date,omitempty"`
	BookingTime  string     `json:"booking_time,omitempty"`
	TotalPrice   float64    `json:"total_price" binding:"gte=0"`
}

// UpdateStatusRequest carries the only mutable booking field. An empty
// status leaves the booking unchanged.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// BookingDetails is the API view of a booking with its customer and listing
// summaries resolved.
type BookingDetails struct {
	ID            int64      `json:"id"`
	CustomerID    int64      `json:"customer_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	ListingID     int64      `json:"listing_id"`
	ListingName   string     `json:"listing_name"`
	ListingType   string     `json:"listing_type"`
	UnitType      string     `json:"unit_type"`
	CheckInDate   time.Time  `json:"check_in_date"`
	CheckOutDate  *time.Time `json:"check_out_date,omitempty"`
	BookingTime   string     `json:"booking_time,omitempty"`
	TotalPrice    float64    `json:"total_price"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}
