package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"labdesk/models"
)

// CreateBooking atomically creates a booking. The backend treats the request
// as all-or-nothing; on success the created booking's number is returned.
// An Idempotency-Key header guards against a double-press reaching the
// backend twice for the same submission attempt.
func (c *Client) CreateBooking(ctx context.Context, payload models.BookingPayload) (string, error) {
	headers := map[string]string{
		"Idempotency-Key": uuid.New().String(),
	}
	raw, err := c.doJSON(ctx, http.MethodPost, "/bookings", nil, payload, headers)
	if err != nil {
		return "", err
	}
	return bookingNumber(raw)
}
