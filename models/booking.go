package models

// DiscountType enumerates the discount modes the backend accepts.
type DiscountType string

const (
	DiscountNone       DiscountType = ""
	DiscountFlat       DiscountType = "FLAT"
	DiscountPercentage DiscountType = "PERCENTAGE"
)

// DiscountPreview is the server-computed price estimate shown before
// submission. The backend guarantees discount_amount <= original_amount and
// final_amount = original_amount - discount_amount; the client only displays.
type DiscountPreview struct {
	OriginalAmount float64 `json:"original_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
}

// BookingPayload is the single atomic booking-creation request.
// ScheduledDate carries the user's local calendar date as "YYYY-MM-DD",
// ScheduledTime is "HH:MM:SS". Discount fields are omitted when no discount
// is applied.
type BookingPayload struct {
	CustomerID    int          `json:"customer_id"`
	TestIDs       []int        `json:"test_ids"`
	ScheduledDate string       `json:"scheduled_date"`
	ScheduledTime string       `json:"scheduled_time"`
	DiscountType  DiscountType `json:"discount_type,omitempty"`
	DiscountValue float64      `json:"discount_value,omitempty"`
}
