package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

func (s BookingStatus) Valid() bool {
	return s == BookingPending || s == BookingConfirmed || s == BookingCancelled
}

type Booking struct {
	ID           int64         `json:"id"`
	CustomerID   int64         `json:"customer_id"`
	ListingID    int64         `json:"listing_id"`
	UnitType     string        `json:"unit_type"`
	CheckInDate  time.Time     `json:"check_in_date"`
	CheckOutDate *time.Time    `json:"check_out_date,omitempty"`
	BookingTime  string        `json:"booking_time,omitempty"`
	TotalPrice   float64       `json:"total_price"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
