package booking

import (
	"context"

	"go.uber.org/zap"

	"labdesk/models"
	"labdesk/utils"
)

// Submitter drives the draft through IDLE → VALIDATING → SUBMITTING →
// SUCCEEDED|FAILED. A failed submission leaves the draft intact so the
// operator can correct and resubmit; success is terminal for the draft.
type Submitter struct {
	api    BookingAPI
	logger *zap.Logger
}

func NewSubmitter(api BookingAPI) *Submitter {
	return &Submitter{api: api, logger: utils.GetLogger()}
}

// Validate applies the client-side rules in order and returns the first
// failing rule's user-facing message, or "" when the draft is submittable.
func (s *Submitter) Validate(draft *Draft) string {
	if draft.Customer() == nil {
		return "Please select a customer"
	}
	if draft.TestCount() == 0 {
		return "Select at least one test"
	}
	if draft.Date() == nil {
		return "Select booking date"
	}
	if draft.Clock() == nil {
		return "Select booking time"
	}
	return ""
}

// Submit validates and submits the draft as one atomic booking-creation
// request. No partial submission is ever attempted: the first failing
// validation rule aborts before any network activity.
func (s *Submitter) Submit(ctx context.Context, draft *Draft) (string, error) {
	if draft.State() == StateSubmitting {
		// Submit-lock against a double press while a request is in flight.
		return "", NewValidationError("Booking is already being submitted")
	}

	draft.state = StateValidating
	if msg := s.Validate(draft); msg != "" {
		draft.state = StateIdle
		return "", NewValidationError("%s", msg)
	}

	payload := models.BookingPayload{
		CustomerID:    draft.Customer().ID,
		TestIDs:       draft.SelectedTestIDs(),
		ScheduledDate: utils.FormatLocalDate(*draft.Date()),
		ScheduledTime: utils.FormatClockTime(draft.Clock().Hour, draft.Clock().Minute),
	}
	if discountType, discountValue := draft.Discount(); discountType != models.DiscountNone && discountValue > 0 {
		payload.DiscountType = discountType
		payload.DiscountValue = discountValue
	}

	draft.state = StateSubmitting
	bookingNumber, err := s.api.CreateBooking(ctx, payload)
	if err != nil {
		// Server-reported message propagates; the draft stays intact.
		draft.state = StateFailed
		draft.failureMessage = err.Error()
		s.logger.Warn("booking submission failed", zap.Error(err))
		return "", err
	}

	draft.state = StateSucceeded
	draft.bookingNumber = bookingNumber
	s.logger.Info("booking created", zap.String("bookingNumber", bookingNumber))
	return bookingNumber, nil
}
