package listing

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/validator"
	"stayhub/internal/policy"
	"stayhub/internal/repository"
)

type Service struct {
	listings ListingRepositoryInterface
}

func NewService(listings ListingRepositoryInterface) *Service {
	return &Service{listings: listings}
}

// Create publishes a new listing owned by the acting vendor. The owner
// reference always comes from the principal, never from the payload.
func (s *Service) Create(ctx context.Context, p policy.Principal, in CreateListingInput) (*domain.Listing, error) {
	if err := policy.Decide(p, policy.ActionCreateListing, nil).Err(); err != nil {
		return nil, err
	}

	l := &domain.Listing{
		VendorID:     p.ID,
		Type:         in.Type,
		Name:         in.Name,
		Address:      in.Address,
		Contact:      in.Contact,
		Description:  in.Description,
		Facilities:   in.Facilities,
		Pricing:      in.Pricing,
		Availability: true,
		Images:       in.Images,
	}

	if fields := validateListing(l); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.listings.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

// List is public: anonymous callers get the full catalog, optionally
// scoped to one vendor.
func (s *Service) List(ctx context.Context, f repository.ListingFilters) ([]domain.Listing, error) {
	return s.listings.GetAll(ctx, f)
}

// Update merges the patch into the stored listing. Existence is checked
// before authorization so a missing id reads as 404, not 403.
func (s *Service) Update(ctx context.Context, p policy.Principal, id int64, patch UpdateListingRequest) (*domain.Listing, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	res := &policy.Resource{ListingVendorID: l.VendorID}
	if err := policy.Decide(p, policy.ActionUpdateListing, res).Err(); err != nil {
		return nil, err
	}

	if patch.Type != nil {
		l.Type = domain.ListingType(*patch.Type)
	}
	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.Address != nil {
		l.Address = *patch.Address
	}
	if patch.Contact != nil {
		l.Contact = *patch.Contact
	}
	if patch.Description != nil {
		l.Description = *patch.Description
	}
	if patch.Facilities != nil {
		l.Facilities = *patch.Facilities
	}
	if patch.Pricing != nil {
		l.Pricing = *patch.Pricing
	}
	if patch.Availability != nil {
		l.Availability = *patch.Availability
	}
	if patch.Images != nil {
		l.Images = *patch.Images
	}

	if fields := validateListing(l); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.listings.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete removes the listing permanently. No tombstone is kept.
func (s *Service) Delete(ctx context.Context, p policy.Principal, id int64) error {
	l, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	res := &policy.Resource{ListingVendorID: l.VendorID}
	if err := policy.Decide(p, policy.ActionDeleteListing, res).Err(); err != nil {
		return err
	}

	if err := s.listings.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateListing(l *domain.Listing) map[string]string {
	fields := validator.Validate(l)
	if fields == nil {
		fields = map[string]string{}
	}
	if l.Type != "" && !l.Type.Valid() {
		fields["Type"] = "oneof=Hotel Restaurant"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
