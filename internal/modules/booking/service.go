package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stayhub/internal/domain"
	"stayhub/internal/policy"
	"stayhub/internal/repository"
)

type Service struct {
	bookings BookingRepositoryInterface
	listings ListingReader
}

func NewService(bookings BookingRepositoryInterface, listings ListingReader) *Service {
	return &Service{bookings: bookings, listings: listings}
}

// Create places a booking for the acting customer. The referenced listing
// must exist; nothing is persisted when it does not. Listing availability
// and date overlap are deliberately not checked: the marketplace carries no
// inventory limits.
func (s *Service) Create(ctx context.Context, p policy.Principal, req CreateBookingRequest) (*domain.Booking, error) {
	if err := policy.Decide(p, policy.ActionCreateBooking, nil).Err(); err != nil {
		return nil, err
	}

	if _, err := s.listings.GetByID(ctx, req.ListingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	b := &domain.Booking{
		CustomerID:   p.ID,
		ListingID:    req.ListingID,
		UnitType:     req.UnitType,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		BookingTime:  req.BookingTime,
		TotalPrice:   req.TotalPrice,
		Status:       domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetAll returns every booking with customer and listing summaries, for
// admins.
func (s *Service) GetAll(ctx context.Context, p policy.Principal) ([]BookingDetails, error) {
	if err := policy.Decide(p, policy.ActionListAllBookings, nil).Err(); err != nil {
		return nil, err
	}

	rows, err := s.bookings.GetAllWithDetails(ctx)
	if err != nil {
		return nil, err
	}
	return toDetailsList(rows), nil
}

// GetMine returns the acting customer's own bookings.
func (s *Service) GetMine(ctx context.Context, p policy.Principal) ([]BookingDetails, error) {
	if err := policy.Decide(p, policy.ActionListOwnBookings, nil).Err(); err != nil {
		return nil, err
	}

	rows, err := s.bookings.GetByCustomerWithDetails(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return toDetailsList(rows), nil
}

// GetForVendor returns bookings placed against the acting vendor's
// listings, resolved by a read-time join.
func (s *Service) GetForVendor(ctx context.Context, p policy.Principal) ([]BookingDetails, error) {
	if err := policy.Decide(p, policy.ActionListVendorBookings, nil).Err(); err != nil {
		return nil, err
	}

	rows, err := s.bookings.GetByVendorWithDetails(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return toDetailsList(rows), nil
}

// GetOne resolves a single booking. Admins see any booking; a customer only
// their own. Vendors have no single-booking read path.
func (s *Service) GetOne(ctx context.Context, p policy.Principal, id int64) (*BookingDetails, error) {
	row, err := s.bookings.GetDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	res := &policy.Resource{BookingCustomerID: row.CustomerID}
	if err := policy.Decide(p, policy.ActionReadBooking, res).Err(); err != nil {
		return nil, err
	}

	d := toDetails(*row)
	return &d, nil
}

// UpdateStatus moves the booking to any of the three statuses. An empty
// status is an idempotent no-op. Only the status field is mutable here.
func (s *Service) UpdateStatus(ctx context.Context, p policy.Principal, id int64, newStatus string) (*domain.Booking, error) {
	own, err := s.bookings.GetOwnership(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	res := &policy.Resource{
		BookingCustomerID: own.CustomerID,
		ListingVendorID:   own.VendorID,
	}
	if err := policy.Decide(p, policy.ActionUpdateBookingStatus, res).Err(); err != nil {
		return nil, err
	}

	if newStatus != "" {
		status := domain.BookingStatus(newStatus)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
			return nil, err
		}
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Delete removes a booking permanently. Only the owning customer may do
// this; admin delete is intentionally not supported.
func (s *Service) Delete(ctx context.Context, p policy.Principal, id int64) error {
	own, err := s.bookings.GetOwnership(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	res := &policy.Resource{BookingCustomerID: own.CustomerID}
	if err := policy.Decide(p, policy.ActionDeleteBooking, res).Err(); err != nil {
		return err
	}

	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func toDetails(r repository.BookingDetails) BookingDetails {
	var bookingTime string
	if r.BookingTime != nil {
		bookingTime = *r.BookingTime
	}

	return BookingDetails{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		ListingID:     r.ListingID,
		ListingName:   r.ListingName,
		ListingType:   r.ListingType,
		UnitType:      r.UnitType,
		CheckInDate:   r.CheckInDate,
		CheckOutDate:  r.CheckOutDate,
		BookingTime:   bookingTime,
		TotalPrice:    r.TotalPrice,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}

func toDetailsList(rows []repository.BookingDetails) []BookingDetails {
	out := make([]BookingDetails, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDetails(r))
	}
	return out
}
