package booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"labdesk/models"
)

// Mock backend surfaces

type MockCustomerAPI struct {
	mock.Mock
}

func (m *MockCustomerAPI) SearchCustomers(ctx context.Context, query string) ([]models.Customer, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Customer), args.Error(1)
}

type MockCatalogAPI struct {
	mock.Mock
}

func (m *MockCatalogAPI) ListTests(ctx context.Context, page, limit int, branchID *int) ([]models.Test, error) {
	args := m.Called(ctx, page, limit, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Test), args.Error(1)
}

type MockDiscountAPI struct {
	mock.Mock
}

func (m *MockDiscountAPI) PreviewDiscount(ctx context.Context, amount float64, discountType models.DiscountType, discountValue float64) (*models.DiscountPreview, error) {
	args := m.Called(ctx, amount, discountType, discountValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DiscountPreview), args.Error(1)
}

type MockBookingAPI struct {
	mock.Mock
}

func (m *MockBookingAPI) CreateBooking(ctx context.Context, payload models.BookingPayload) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

// MockBackend bundles all four surfaces for flow tests.
type MockBackend struct {
	MockCustomerAPI
	MockCatalogAPI
	MockDiscountAPI
	MockBookingAPI
}
