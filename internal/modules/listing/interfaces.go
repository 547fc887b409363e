package listing

import (
	"context"

	"stayhub/internal/domain"
	"stayhub/internal/repository"
)

// ListingRepositoryInterface defines the persistence surface of the
// lifecycle.
type ListingRepositoryInterface interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	GetAll(ctx context.Context, f repository.ListingFilters) ([]domain.Listing, error)
	Update(ctx context.Context, l *domain.Listing) error
	Delete(ctx context.Context, id int64) error
}
