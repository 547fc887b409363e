package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"stayhub/internal/domain"
	"stayhub/internal/policy"
	"stayhub/internal/repository"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) GetOwnership(ctx context.Context, bookingID int64) (*repository.Ownership, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Ownership), args.Error(1)
}

func (m *MockBookingRepository) GetAllWithDetails(ctx context.Context) ([]repository.BookingDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingDetails), args.Error(1)
}

func (m *MockBookingRepository) GetByCustomerWithDetails(ctx context.Context, customerID int64) ([]repository.BookingDetails, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingDetails), args.Error(1)
}

func (m *MockBookingRepository) GetByVendorWithDetails(ctx context.Context, vendorID int64) ([]repository.BookingDetails, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingDetails), args.Error(1)
}

func (m *MockBookingRepository) GetDetailsByID(ctx context.Context, id int64) (*repository.BookingDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BookingDetails), args.Error(1)
}

type MockListingReader struct {
	mock.Mock
}

func (m *MockListingReader) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

var (
	testAdmin    = policy.Principal{ID: 1, Role: domain.RoleAdmin}
	testVendor   = policy.Principal{ID: 2, Role: domain.RoleVendor}
	testCustomer = policy.Principal{ID: 3, Role: domain.RoleCustomer}
)

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingReader)

	mockListings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Listing{ID: 10}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockListings)

	checkIn := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	b, err := service.Create(context.Background(), testCustomer, CreateBookingRequest{
		ListingID:   10,
		UnitType:    "Rooms",
		CheckInDate: checkIn,
		TotalPrice:  189.0,
	})

	assert.NoError(t, err)
	assert.Equal(t, testCustomer.ID, b.CustomerID)
	assert.Equal(t, domain.BookingPending, b.Status)
	mockBookings.AssertExpectations(t)
}

func TestService_Create_StatusAlwaysPending(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingReader)

	mockListings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Listing{ID: 10}, nil)
	mockBookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.BookingPending
	})).Return(nil)

	service := NewService(mockBookings, mockListings)

	_, err := service.Create(context.Background(), testCustomer, CreateBookingRequest{
		ListingID:   10,
		UnitType:    "Tables",
		CheckInDate: time.Now(),
		BookingTime: "19:00",
		TotalPrice:  45.0,
	})

	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestService_Create_MissingListing(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingReader)

	mockListings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, mockListings)

	_, err := service.Create(context.Background(), testCustomer, CreateBookingRequest{
		ListingID:   404,
		UnitType:    "Rooms",
		CheckInDate: time.Now(),
		TotalPrice:  100,
	})

	assert.ErrorIs(t, err, ErrListingNotFound)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_VendorForbidden(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockListingReader))

	_, err := service.Create(context.Background(), testVendor, CreateBookingRequest{
		ListingID:   10,
		UnitType:    "Rooms",
		CheckInDate: time.Now(),
		TotalPrice:  100,
	})

	var forbidden *policy.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
}

func TestService_GetAll_AdminOnly(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetAllWithDetails", mock.Anything).Return([]repository.BookingDetails{{ID: 1}}, nil)

	service := NewService(mockBookings, new(MockListingReader))

	rows, err := service.GetAll(context.Background(), testAdmin)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = service.GetAll(context.Background(), testCustomer)
	var forbidden *policy.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
}

func TestService_GetMine_ScopedToPrincipal(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByCustomerWithDetails", mock.Anything, testCustomer.ID).
		Return([]repository.BookingDetails{{ID: 1, CustomerID: testCustomer.ID}}, nil)

	service := NewService(mockBookings, new(MockListingReader))

	rows, err := service.GetMine(context.Background(), testCustomer)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	mockBookings.AssertExpectations(t)
}

func TestService_GetForVendor_ScopedToPrincipal(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByVendorWithDetails", mock.Anything, testVendor.ID).
		Return([]repository.BookingDetails{}, nil)

	service := NewService(mockBookings, new(MockListingReader))

	rows, err := service.GetForVendor(context.Background(), testVendor)
	assert.NoError(t, err)
	assert.Empty(t, rows)

	_, err = service.GetForVendor(context.Background(), testAdmin)
	var forbidden *policy.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
}

func TestService_GetOne_CustomerOwnership(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetDetailsByID", mock.Anything, int64(1)).
		Return(&repository.BookingDetails{ID: 1, CustomerID: testCustomer.ID}, nil)

	service := NewService(mockBookings, new(MockListingReader))

	row, err := service.GetOne(context.Background(), testCustomer, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), row.ID)

	// another customer is denied the same booking
	other := policy.Principal{ID: 77, Role: domain.RoleCustomer}
	_, err = service.GetOne(context.Background(), other, 1)
	var forbidden *policy.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
}

func TestService_GetOne_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetDetailsByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, new(MockListingReader))

	_, err := service.GetOne(context.Background(), testAdmin, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_UpdateStatus_VendorConfirms(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetOwnership", mock.Anything, int64(1)).
		Return(&repository.Ownership{CustomerID: testCustomer.ID, VendorID: testVendor.ID}, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingConfirmed).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, Status: domain.BookingConfirmed}, nil)

	service := NewService(mockBookings, new(MockListingReader))

	b, err := service.UpdateStatus(context.Background(), testVendor, 1, "Confirmed")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	mockBookings.AssertExpectations(t)
}

func TestService_UpdateStatus_EmptyIsNoOp(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetOwnership", mock.Anything, int64(1)).
		Return(&repository.Ownership{CustomerID: testCustomer.ID, VendorID: testVendor.ID}, nil)
	mockBookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, Status: domain.BookingPending}, nil)

	service := NewService(mockBookings, new(MockListingReader))

	b, err := service.UpdateStatus(context.Background(), testVendor, 1, "")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_InvalidValue(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetOwnership", mock.Anything, int64(1)).
		Return(&repository.Ownership{CustomerID: testCustomer.ID, VendorID: testVendor.ID}, nil)

	service := NewService(mockBookings, new(MockListingReader))

	_, err := service.UpdateStatus(context.Background(), testVendor, 1, "Archived")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_ForeignVendorForbidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetOwnership", mock.Anything, int64(1)).
		Return(&repository.Ownership{CustomerID: testCustomer.ID, VendorID: 999}, nil)

	service := NewService(mockBookings, new(MockListingReader))

	_, err := service.UpdateStatus(context.Background(), testVendor, 1, "Confirmed")

	var forbidden *policy.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "Access denied. Vendors can only update their own listings' bookings.", forbidden.Reason)
}

func TestService_UpdateStatus_CustomerForbidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetOwnership", mock.Anything, int64(1)).
		Return(&repository.Ownership{CustomerID: testCustomer.ID, VendorID: testVendor.ID}, nil)

	service := NewService(mockBookings, new(MockListingReader))

	_, err := service.UpdateStatus(context.Background(), testCustomer, 1, "Cancelled")

	var forbidden *policy.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetOwnership", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, new(MockListingReader))

	_, err := service.UpdateStatus(context.Background(), testAdmin, 404, "Confirmed")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_OwnerOnly(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetOwnership", mock.Anything, int64(1)).
		Return(&repository.Ownership{CustomerID: testCustomer.ID, VendorID: testVendor.ID}, nil)
	mockBookings.On("Delete", mock.Anything, int64(1)).Return(nil)

	service := NewService(mockBookings, new(MockListingReader))

	assert.NoError(t, service.Delete(context.Background(), testCustomer, 1))
	mockBookings.AssertExpectations(t)
}

func TestService_Delete_AdminForbidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetOwnership", mock.Anything, int64(1)).
		Return(&repository.Ownership{CustomerID: testCustomer.ID, VendorID: testVendor.ID}, nil)

	service := NewService(mockBookings, new(MockListingReader))

	err := service.Delete(context.Background(), testAdmin, 1)

	var forbidden *policy.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
	mockBookings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
