package admin

// StatsResponse is the platform snapshot returned by GET /api/admin/stats.
type StatsResponse struct {
	TotalUsers         int64 `json:"total_users"`
	TotalCustomers     int64 `json:"total_customers"`
	TotalVendors       int64 `json:"total_vendors"`
	TotalListings      int64 `json:"total_listings"`
	TotalBookings      int64 `json:"total_bookings"`
	BookingsLast30Days int64 `json:"bookings_last_30_days"`
}
