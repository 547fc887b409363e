package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"stayhub/internal/domain"
	"stayhub/internal/policy"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

var (
	testAdmin  = policy.Principal{ID: 1, Role: domain.RoleAdmin}
	testVendor = policy.Principal{ID: 2, Role: domain.RoleVendor}
)

func newTestService() (*Service, *MockUserRepository, *MockListingRepository, *MockBookingRepository) {
	users := new(MockUserRepository)
	listings := new(MockListingRepository)
	bookings := new(MockBookingRepository)
	return NewService(users, listings, bookings), users, listings, bookings
}

func TestService_ListUsers_StripsHashes(t *testing.T) {
	service, users, _, _ := newTestService()

	users.On("GetAll", mock.Anything).Return([]domain.User{
		{ID: 1, Email: "a@example.com", PasswordHash: "$2a$10$secret", Role: domain.RoleCustomer},
		{ID: 2, Email: "b@example.com", PasswordHash: "$2a$10$secret", Role: domain.RoleVendor},
	}, nil)

	out, err := service.ListUsers(context.Background(), testAdmin)

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	for _, u := range out {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestService_ListUsers_NonAdminForbidden(t *testing.T) {
	service, users, _, _ := newTestService()

	_, err := service.ListUsers(context.Background(), testVendor)

	var forbidden *policy.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
	users.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestService_DeleteUser(t *testing.T) {
	service, users, _, _ := newTestService()

	users.On("Delete", mock.Anything, int64(5)).Return(nil)
	assert.NoError(t, service.DeleteUser(context.Background(), testAdmin, 5))

	users.On("Delete", mock.Anything, int64(404)).Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, service.DeleteUser(context.Background(), testAdmin, 404), ErrUserNotFound)
}

func TestService_DeleteListing(t *testing.T) {
	service, _, listings, _ := newTestService()

	listings.On("Delete", mock.Anything, int64(9)).Return(nil)
	assert.NoError(t, service.DeleteListing(context.Background(), testAdmin, 9))

	listings.On("Delete", mock.Anything, int64(404)).Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, service.DeleteListing(context.Background(), testAdmin, 404), ErrListingNotFound)
}

func TestService_DeleteListing_VendorForbidden(t *testing.T) {
	service, _, listings, _ := newTestService()

	err := service.DeleteListing(context.Background(), testVendor, 9)

	var forbidden *policy.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
	listings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_GetStats(t *testing.T) {
	service, users, listings, bookings := newTestService()

	users.On("Count", mock.Anything).Return(int64(10), nil)
	users.On("CountByRole", mock.Anything, domain.RoleCustomer).Return(int64(6), nil)
	users.On("CountByRole", mock.Anything, domain.RoleVendor).Return(int64(3), nil)
	listings.On("Count", mock.Anything).Return(int64(4), nil)
	bookings.On("Count", mock.Anything).Return(int64(20), nil)
	bookings.On("CountCreatedBetween", mock.Anything, mock.Anything, mock.Anything).Return(int64(7), nil)

	stats, err := service.GetStats(context.Background(), testAdmin)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalUsers)
	assert.Equal(t, int64(6), stats.TotalCustomers)
	assert.Equal(t, int64(3), stats.TotalVendors)
	assert.Equal(t, int64(4), stats.TotalListings)
	assert.Equal(t, int64(20), stats.TotalBookings)
	assert.Equal(t, int64(7), stats.BookingsLast30Days)
}
