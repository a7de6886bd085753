package payment

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"labdesk/models"
	"labdesk/utils"
)

// API is what the collector needs from the backend client.
type API interface {
	CreatePayment(ctx context.Context, input models.PaymentInput) error
	CreateRefund(ctx context.Context, input models.RefundInput) error
}

// Collector records payments and refunds against bookings. It is the
// post-booking handoff target: the booking flow hands it the created booking
// number and the operator takes the payment.
type Collector struct {
	api    API
	logger *zap.Logger
}

func NewCollector(api API) *Collector {
	return &Collector{api: api, logger: utils.GetLogger()}
}

// Collect validates and records one payment. ONLINE payments must carry a
// proof file; the payment date is serialized as the local calendar date.
func (c *Collector) Collect(ctx context.Context, input models.PaymentInput) error {
	if strings.TrimSpace(input.BookingNumber) == "" {
		return &ValidationError{Message: "Booking number is required"}
	}
	if input.Amount <= 0 {
		return &ValidationError{Message: "Valid amount is required"}
	}
	if input.PaymentDate.IsZero() {
		return &ValidationError{Message: "Payment Date is required"}
	}
	if input.Mode == models.PaymentOnline && input.ProofPath == "" {
		return &ValidationError{Message: "Please upload payment proof"}
	}
	if input.Mode != models.PaymentCash && input.Mode != models.PaymentOnline {
		return &ValidationError{Message: "Invalid payment mode"}
	}

	if err := c.api.CreatePayment(ctx, input); err != nil {
		return err
	}
	c.logger.Info("payment recorded",
		zap.String("bookingNumber", input.BookingNumber),
		zap.Float64("amount", input.Amount),
		zap.String("mode", string(input.Mode)))
	return nil
}

// Refund validates and records one refund.
func (c *Collector) Refund(ctx context.Context, input models.RefundInput) error {
	if strings.TrimSpace(input.BookingNumber) == "" {
		return &ValidationError{Message: "Booking number is required"}
	}
	if input.Amount <= 0 {
		return &ValidationError{Message: "Valid amount is required"}
	}
	if input.RefundMode != models.PaymentCash && input.RefundMode != models.PaymentOnline {
		return &ValidationError{Message: "Invalid refund mode"}
	}

	if err := c.api.CreateRefund(ctx, input); err != nil {
		return err
	}
	c.logger.Info("refund recorded",
		zap.String("bookingNumber", input.BookingNumber),
		zap.Float64("amount", input.Amount))
	return nil
}

// ValidationError is a client-detected, user-correctable input failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
