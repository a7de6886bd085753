package models

import "time"

// PaymentMode enumerates how a payment was taken at the desk.
type PaymentMode string

const (
	PaymentCash   PaymentMode = "CASH"
	PaymentOnline PaymentMode = "ONLINE"
)

// PaymentInput carries one payment against a booking. ProofPath is required
// for ONLINE payments and is attached as a multipart file part.
type PaymentInput struct {
	BookingNumber string
	Amount        float64
	Mode          PaymentMode
	PaymentDate   time.Time
	ProofPath     string
}

// RefundInput carries a refund request against a booked payment.
type RefundInput struct {
	BookingNumber string      `json:"booking_number"`
	Amount        float64     `json:"amount"`
	RefundMode    PaymentMode `json:"refund_mode"`
	ReferenceNo   string      `json:"reference_no,omitempty"`
}
