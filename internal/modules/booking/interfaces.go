package booking

import (
	"context"

	"stayhub/internal/domain"
	"stayhub/internal/repository"
)

// BookingRepositoryInterface defines the persistence surface of the
// lifecycle.
type BookingRepositoryInterface interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
	GetOwnership(ctx context.Context, bookingID int64) (*repository.Ownership, error)
	GetAllWithDetails(ctx context.Context) ([]repository.BookingDetails, error)
	GetByCustomerWithDetails(ctx context.Context, customerID int64) ([]repository.BookingDetails, error)
	GetByVendorWithDetails(ctx context.Context, vendorID int64) ([]repository.BookingDetails, error)
	GetDetailsByID(ctx context.Context, id int64) (*repository.BookingDetails, error)
}

// ListingReader is the slice of the listing repository bookings need: the
// existence check at creation time.
type ListingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}
