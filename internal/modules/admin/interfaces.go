package admin

import (
	"context"
	"time"

	"stayhub/internal/domain"
)

type UserRepositoryInterface interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}

type ListingRepositoryInterface interface {
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type BookingRepositoryInterface interface {
	Count(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}
