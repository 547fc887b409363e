package admin

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"stayhub/internal/domain"
	"stayhub/internal/policy"
)

type Service struct {
	users    UserRepositoryInterface
	listings ListingRepositoryInterface
	bookings BookingRepositoryInterface
}

func NewService(users UserRepositoryInterface, listings ListingRepositoryInterface, bookings BookingRepositoryInterface) *Service {
	return &Service{users: users, listings: listings, bookings: bookings}
}

func (s *Service) ListUsers(ctx context.Context, p policy.Principal) ([]domain.User, error) {
	if err := policy.Decide(p, policy.ActionListUsers, nil).Err(); err != nil {
		return nil, err
	}

	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *Service) DeleteUser(ctx context.Context, p policy.Principal, id int64) error {
	if err := policy.Decide(p, policy.ActionDeleteUser, nil).Err(); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *Service) DeleteListing(ctx context.Context, p policy.Principal, id int64) error {
	if err := policy.Decide(p, policy.ActionAdminDeleteListing, nil).Err(); err != nil {
		return err
	}

	if err := s.listings.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return err
	}
	return nil
}

func (s *Service) GetStats(ctx context.Context, p policy.Principal) (*StatsResponse, error) {
	if err := policy.Decide(p, policy.ActionListUsers, nil).Err(); err != nil {
		return nil, err
	}

	stats := &StatsResponse{}

	var err error
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = s.users.CountByRole(ctx, domain.RoleCustomer); err != nil {
		return nil, err
	}
	if stats.TotalVendors, err = s.users.CountByRole(ctx, domain.RoleVendor); err != nil {
		return nil, err
	}
	if stats.TotalListings, err = s.listings.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalBookings, err = s.bookings.Count(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	if stats.BookingsLast30Days, err = s.bookings.CountCreatedBetween(ctx, now.AddDate(0, 0, -30), now); err != nil {
		return nil, err
	}

	return stats, nil
}
