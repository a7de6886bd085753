package api

import (
	"context"
	"fmt"
	"net/http"

	"labdesk/models"
	"labdesk/utils"
)

// CreatePayment records a payment against a booking. Multipart form data is
// used so an ONLINE payment's proof file can be attached.
func (c *Client) CreatePayment(ctx context.Context, input models.PaymentInput) error {
	fields := map[string]string{
		"booking_number": input.BookingNumber,
		"amount":         fmt.Sprintf("%.2f", input.Amount),
		"payment_mode":   string(input.Mode),
		"payment_date":   utils.FormatLocalDate(input.PaymentDate),
	}
	_, err := c.doMultipart(ctx, http.MethodPost, "/payments", fields, "proof", input.ProofPath)
	return err
}

// CreateRefund records a refund against a booking's payments.
func (c *Client) CreateRefund(ctx context.Context, input models.RefundInput) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/refunds", nil, input, nil)
	return err
}
