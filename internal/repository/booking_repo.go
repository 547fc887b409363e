package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	CustomerID   int64      `gorm:"column:customer_id;index"`
	ListingID    int64      `gorm:"column:listing_id;index"`
	UnitType     string     `gorm:"column:unit_type"`
	CheckInDate  time.Time  `gorm:"column:check_in_date"`
	CheckOutDate *time.Time `gorm:"column:check_out_date"`
	BookingTime  *string    `gorm:"column:booking_time"`
	TotalPrice   float64    `gorm:"column:total_price"`
	Status       string     `gorm:"column:status"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var bookingTime string
	if m.BookingTime != nil {
		bookingTime = *m.BookingTime
	}

	return &domain.Booking{
		ID:           m.ID,
		CustomerID:   m.CustomerID,
		ListingID:    m.ListingID,
		UnitType:     m.UnitType,
		CheckInDate:  m.CheckInDate,
		CheckOutDate: m.CheckOutDate,
		BookingTime:  bookingTime,
		TotalPrice:   m.TotalPrice,
		Status:       domain.BookingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var bookingTime *string
	if b.BookingTime != "" {
		v := b.BookingTime
		bookingTime = &v
	}

	return bookingModel{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		ListingID:    b.ListingID,
		UnitType:     b.UnitType,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		BookingTime:  bookingTime,
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Ownership is the pair of owner references a policy check needs for one
// booking: the customer who placed it and the vendor behind its listing.
// VendorID is zero when the listing has since been deleted.
type Ownership struct {
	CustomerID int64
	VendorID   int64
}

func (r *BookingRepository) GetOwnership(ctx context.Context, bookingID int64) (*Ownership, error) {
	type row struct {
		CustomerID int64
		VendorID   *int64
	}

	var res row
	q := `
SELECT
  b.customer_id,
  l.vendor_id
FROM bookings b
LEFT JOIN listings l ON l.id = b.listing_id
WHERE b.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, bookingID).Scan(&res)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	o := &Ownership{CustomerID: res.CustomerID}
	if res.VendorID != nil {
		o.VendorID = *res.VendorID
	}
	return o, nil
}

// BookingDetails is the denormalized read view: the booking row joined with
// the customer and listing summary fields resolved at read time.
type BookingDetails struct {
	ID            int64
	CustomerID    int64
	CustomerName  string
	CustomerEmail string
	ListingID     int64
	ListingName   string
	ListingType   string
	UnitType      string
	CheckInDate   time.Time
	CheckOutDate  *time.Time
	BookingTime   *string
	TotalPrice    float64
	Status        string
	CreatedAt     time.Time
}

const bookingDetailsSelect = `
SELECT
  b.id,
  b.customer_id,
  u.name  AS customer_name,
  u.email AS customer_email,
  b.listing_id,
  l.name AS listing_name,
  l.type AS listing_type,
  b.unit_type,
  b.check_in_date,
  b.check_out_date,
  b.booking_time,
  b.total_price,
  b.status,
  b.created_at
FROM bookings b
JOIN users u ON u.id = b.customer_id
JOIN listings l ON l.id = b.listing_id
`

func (r *BookingRepository) GetAllWithDetails(ctx context.Context) ([]BookingDetails, error) {
	var rows []BookingDetails
	q := bookingDetailsSelect + `ORDER BY b.created_at DESC`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) GetByCustomerWithDetails(ctx context.Context, customerID int64) ([]BookingDetails, error) {
	var rows []BookingDetails
	q := bookingDetailsSelect + `WHERE b.customer_id = ?
ORDER BY b.created_at DESC`
	tx := r.db.WithContext(ctx).Raw(q, customerID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) GetByVendorWithDetails(ctx context.Context, vendorID int64) ([]BookingDetails, error) {
	var rows []BookingDetails
	q := bookingDetailsSelect + `WHERE l.vendor_id = ?
ORDER BY b.created_at DESC`
	tx := r.db.WithContext(ctx).Raw(q, vendorID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) GetDetailsByID(ctx context.Context, id int64) (*BookingDetails, error) {
	var row BookingDetails
	q := bookingDetailsSelect + `WHERE b.id = ?`
	tx := r.db.WithContext(ctx).Raw(q, id).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *BookingRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&cnt)
	return cnt, tx.Error
}
