package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"labdesk/models"
)

func TestFlow_SelectCustomerRescopesCatalog(t *testing.T) {
	backend := new(MockBackend)
	branch3 := 3

	backend.MockCatalogAPI.On("ListTests", mock.Anything, 1, 10, &branch3).
		Return([]models.Test{{ID: 301, Name: "CBC", Price: 700}}, nil).Once()

	flow := NewFlow(backend, 10, 0, nil)
	customer := &models.Customer{ID: 5, Name: "Asha Rao", BranchID: &branch3}
	assert.NoError(t, flow.SelectCustomer(context.Background(), customer))

	assert.Equal(t, customer, flow.Draft.Customer())
	assert.Len(t, flow.Catalog.Items(), 1)
	backend.MockCatalogAPI.AssertExpectations(t)
}

func TestFlow_SubmitHandsOffAndResets(t *testing.T) {
	backend := new(MockBackend)
	branch3 := 3

	backend.MockCatalogAPI.On("ListTests", mock.Anything, 1, 10, &branch3).
		Return([]models.Test{{ID: 301, Price: 700}, {ID: 302, Price: 800}}, nil).Once()
	backend.MockBookingAPI.On("CreateBooking", mock.Anything, mock.Anything).
		Return("BK-77", nil).Once()

	var handedOff string
	flow := NewFlow(backend, 10, 0, func(bookingNumber string) error {
		handedOff = bookingNumber
		return nil
	})

	ctx := context.Background()
	assert.NoError(t, flow.SelectCustomer(ctx, &models.Customer{ID: 5, Name: "Asha Rao", BranchID: &branch3}))
	flow.Draft.ToggleTest(301)
	flow.Draft.SetDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local))
	flow.Draft.SetTime(14, 30)

	number, err := flow.Submit(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "BK-77", number)
	assert.Equal(t, "BK-77", handedOff)

	// The draft resets once the handoff returns.
	assert.Nil(t, flow.Draft.Customer())
	assert.Zero(t, flow.Draft.TestCount())
	assert.Equal(t, StateIdle, flow.Draft.State())
}

func TestFlow_FailedSubmitSkipsHandoff(t *testing.T) {
	backend := new(MockBackend)

	handoffCalled := false
	flow := NewFlow(backend, 10, 0, func(string) error {
		handoffCalled = true
		return nil
	})

	// Empty draft fails validation before any request.
	_, err := flow.Submit(context.Background())
	assert.Error(t, err)
	assert.False(t, handoffCalled)
	backend.MockBookingAPI.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}
