package booking

import (
	"context"

	"labdesk/models"
)

// CustomerAPI is what the resolver needs from the backend client.
type CustomerAPI interface {
	SearchCustomers(ctx context.Context, query string) ([]models.Customer, error)
}

// CatalogAPI is what the paginator needs from the backend client.
type CatalogAPI interface {
	ListTests(ctx context.Context, page, limit int, branchID *int) ([]models.Test, error)
}

// DiscountAPI is what the previewer needs from the backend client.
type DiscountAPI interface {
	PreviewDiscount(ctx context.Context, amount float64, discountType models.DiscountType, discountValue float64) (*models.DiscountPreview, error)
}

// BookingAPI is what the submitter needs from the backend client.
type BookingAPI interface {
	CreateBooking(ctx context.Context, payload models.BookingPayload) (string, error)
}

// HandoffFunc receives the created booking number so the payment-collection
// collaborator can take over. Its return reports whether the handoff
// completed; the draft is reset either way once the handoff comes back.
type HandoffFunc func(bookingNumber string) error
