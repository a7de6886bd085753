package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"labdesk/models"
)

func readyDraft() *Draft {
	draft := NewDraft()
	branch := 3
	draft.SelectCustomer(&models.Customer{ID: 42, Name: "Asha Rao", Phone: "9810000005", BranchID: &branch})
	draft.ToggleTest(301)
	draft.ToggleTest(302)
	draft.SetDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local))
	draft.SetTime(14, 30)
	return draft
}

func TestSubmitter_ValidationOrderAndMessages(t *testing.T) {
	bookingAPI := new(MockBookingAPI)
	submitter := NewSubmitter(bookingAPI)
	ctx := context.Background()

	steps := []struct {
		prepare func(*Draft)
		message string
	}{
		{func(*Draft) {}, "Please select a customer"},
		{func(d *Draft) { d.SelectCustomer(&models.Customer{ID: 1}) }, "Select at least one test"},
		{func(d *Draft) { d.ToggleTest(301) }, "Select booking date"},
		{func(d *Draft) { d.SetDate(time.Now()) }, "Select booking time"},
	}

	draft := NewDraft()
	for _, step := range steps {
		step.prepare(draft)
		_, err := submitter.Submit(ctx, draft)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, step.message, vErr.Message)
		assert.Equal(t, StateIdle, draft.State())
	}
	// No rule passed all the way; nothing may reach the network.
	bookingAPI.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestSubmitter_BuildsPayloadWithLocalDate(t *testing.T) {
	bookingAPI := new(MockBookingAPI)
	submitter := NewSubmitter(bookingAPI)

	draft := readyDraft()
	draft.SetDiscount(models.DiscountPercentage, 10)

	var sent models.BookingPayload
	bookingAPI.On("CreateBooking", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(models.BookingPayload)
		}).
		Return("BK-2024-0001", nil).Once()

	number, err := submitter.Submit(context.Background(), draft)
	assert.NoError(t, err)
	assert.Equal(t, "BK-2024-0001", number)

	assert.Equal(t, 42, sent.CustomerID)
	assert.Equal(t, []int{301, 302}, sent.TestIDs)
	assert.Equal(t, "2024-03-15", sent.ScheduledDate)
	assert.Equal(t, "14:30:00", sent.ScheduledTime)
	assert.Equal(t, models.DiscountPercentage, sent.DiscountType)
	assert.Equal(t, 10.0, sent.DiscountValue)

	assert.Equal(t, StateSucceeded, draft.State())
	assert.Equal(t, "BK-2024-0001", draft.BookingNumber())
	bookingAPI.AssertExpectations(t)
}

func TestSubmitter_OmitsEmptyDiscount(t *testing.T) {
	bookingAPI := new(MockBookingAPI)
	submitter := NewSubmitter(bookingAPI)
	draft := readyDraft()

	var sent models.BookingPayload
	bookingAPI.On("CreateBooking", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(models.BookingPayload)
		}).
		Return("BK-2024-0002", nil).Once()

	_, err := submitter.Submit(context.Background(), draft)
	assert.NoError(t, err)
	assert.Equal(t, models.DiscountNone, sent.DiscountType)
	assert.Zero(t, sent.DiscountValue)
}

func TestSubmitter_FailureLeavesDraftIntact(t *testing.T) {
	bookingAPI := new(MockBookingAPI)
	submitter := NewSubmitter(bookingAPI)
	draft := readyDraft()

	bookingAPI.On("CreateBooking", mock.Anything, mock.Anything).
		Return("", errors.New("Slot not available")).Once()

	_, err := submitter.Submit(context.Background(), draft)
	assert.Error(t, err)
	assert.Equal(t, StateFailed, draft.State())
	assert.Equal(t, "Slot not available", draft.FailureMessage())

	// The draft keeps its selections so the operator can correct and resubmit.
	assert.NotNil(t, draft.Customer())
	assert.Equal(t, []int{301, 302}, draft.SelectedTestIDs())

	// The next edit returns the draft to idle.
	draft.SetTime(15, 0)
	assert.Equal(t, StateIdle, draft.State())
	assert.Empty(t, draft.FailureMessage())
}

func TestSubmitter_RejectsDoubleSubmitWhileInFlight(t *testing.T) {
	bookingAPI := new(MockBookingAPI)
	submitter := NewSubmitter(bookingAPI)
	draft := readyDraft()
	draft.state = StateSubmitting

	_, err := submitter.Submit(context.Background(), draft)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	bookingAPI.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}
