package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/utils"
)

type ListingFilters struct {
	VendorID int64
}

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

type listingModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	VendorID     int64     `gorm:"column:vendor_id;index"`
	Type         string    `gorm:"column:type"`
	Name         string    `gorm:"column:name"`
	Street       string    `gorm:"column:street"`
	City         string    `gorm:"column:city"`
	State        string    `gorm:"column:state"`
	Zip          string    `gorm:"column:zip"`
	Contact      string    `gorm:"column:contact"`
	Description  *string   `gorm:"column:description"`
	Facilities   string    `gorm:"column:facilities"`
	Pricing      float64   `gorm:"column:pricing"`
	Availability bool      `gorm:"column:availability"`
	Images       string    `gorm:"column:images"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (listingModel) TableName() string { return "listings" }

func toDomainListing(m listingModel) *domain.Listing {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	return &domain.Listing{
		ID:       m.ID,
		VendorID: m.VendorID,
		Type:     domain.ListingType(m.Type),
		Name:     m.Name,
		Address: domain.Address{
			Street: m.Street,
			City:   m.City,
			State:  m.State,
			Zip:    m.Zip,
		},
		Contact:      m.Contact,
		Description:  description,
		Facilities:   utils.StringToList(m.Facilities),
		Pricing:      m.Pricing,
		Availability: m.Availability,
		Images:       utils.StringToList(m.Images),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toListingModel(l *domain.Listing) listingModel {
	var description *string
	if l.Description != "" {
		v := l.Description
		description = &v
	}

	return listingModel{
		ID:           l.ID,
		VendorID:     l.VendorID,
		Type:         string(l.Type),
		Name:         l.Name,
		Street:       l.Address.Street,
		City:         l.Address.City,
		State:        l.Address.State,
		Zip:          l.Address.Zip,
		Contact:      l.Contact,
		Description:  description,
		Facilities:   utils.ListToString(l.Facilities),
		Pricing:      l.Pricing,
		Availability: l.Availability,
		Images:       utils.ListToString(l.Images),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	m := toListingModel(l)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainListing(m)
	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var m listingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainListing(m), nil
}

// GetAll returns listings, optionally scoped to one vendor.
func (r *ListingRepository) GetAll(ctx context.Context, f ListingFilters) ([]domain.Listing, error) {
	q := r.db.WithContext(ctx).Model(&listingModel{})

	if f.VendorID > 0 {
		q = q.Where("vendor_id = ?", f.VendorID)
	}

	var models []listingModel
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	listings := make([]domain.Listing, 0, len(models))
	for _, m := range models {
		listings = append(listings, *toDomainListing(m))
	}
	return listings, nil
}

func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	m := toListingModel(l)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainListing(m)
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&listingModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ListingRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&listingModel{}).Count(&cnt)
	return cnt, tx.Error
}
