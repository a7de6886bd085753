package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"labdesk/models"
)

func TestResolver_BlankQueryIsNoOp(t *testing.T) {
	customerAPI := new(MockCustomerAPI)
	r := NewResolver(customerAPI, 0)

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := r.Search(context.Background(), q)
		assert.NoError(t, err)
	}
	assert.False(t, r.SearchPerformed(), "a blank query must not count as a search")
	customerAPI.AssertNotCalled(t, "SearchCustomers", mock.Anything, mock.Anything)
}

func TestResolver_SearchReplacesResults(t *testing.T) {
	customerAPI := new(MockCustomerAPI)
	r := NewResolver(customerAPI, 0)
	ctx := context.Background()

	customerAPI.On("SearchCustomers", mock.Anything, "asha").
		Return([]models.Customer{{ID: 5, Name: "Asha Rao", Phone: "9810000005"}}, nil).Once()
	customerAPI.On("SearchCustomers", mock.Anything, "vikram").
		Return([]models.Customer{{ID: 6, Name: "Vikram Rao", Phone: "9810000006"}}, nil).Once()

	results, err := r.Search(ctx, "  asha ")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.True(t, r.SearchPerformed())

	// A second search replaces, never merges.
	results, err = r.Search(ctx, "vikram")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Vikram Rao", results[0].Name)
	customerAPI.AssertExpectations(t)
}

func TestResolver_ZeroResultsIsDistinctFromUnsearched(t *testing.T) {
	customerAPI := new(MockCustomerAPI)
	r := NewResolver(customerAPI, 0)

	assert.False(t, r.SearchPerformed())

	customerAPI.On("SearchCustomers", mock.Anything, "nobody").
		Return([]models.Customer{}, nil).Once()
	results, err := r.Search(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Empty(t, results)
	assert.True(t, r.SearchPerformed(), "an empty result set is still a performed search")
}

func TestResolver_FailureLeavesResultsEmpty(t *testing.T) {
	customerAPI := new(MockCustomerAPI)
	r := NewResolver(customerAPI, 0)

	customerAPI.On("SearchCustomers", mock.Anything, "asha").
		Return(nil, errors.New("backend unreachable")).Once()

	_, err := r.Search(context.Background(), "asha")
	assert.Error(t, err)
	assert.Empty(t, r.Results())
	assert.False(t, r.Searching())
	// No automatic retry: one expectation, one call.
	customerAPI.AssertExpectations(t)
}

func TestResolver_SelectClearsResults(t *testing.T) {
	customerAPI := new(MockCustomerAPI)
	r := NewResolver(customerAPI, 0)

	customerAPI.On("SearchCustomers", mock.Anything, "rao").
		Return([]models.Customer{{ID: 5, Name: "Asha Rao"}, {ID: 6, Name: "Vikram Rao"}}, nil).Once()
	_, err := r.Search(context.Background(), "rao")
	assert.NoError(t, err)

	customer, ok := r.Select(6)
	assert.True(t, ok)
	assert.Equal(t, "Vikram Rao", customer.Name)
	assert.Empty(t, r.Results())

	_, ok = r.Select(5)
	assert.False(t, ok, "selection consumed the result set")
}

func TestResolver_ResetReturnsToUnsearched(t *testing.T) {
	customerAPI := new(MockCustomerAPI)
	r := NewResolver(customerAPI, 0)

	customerAPI.On("SearchCustomers", mock.Anything, "asha").
		Return([]models.Customer{{ID: 5, Name: "Asha Rao"}}, nil).Once()
	_, err := r.Search(context.Background(), "asha")
	assert.NoError(t, err)

	r.Reset()
	assert.Empty(t, r.Results())
	assert.False(t, r.SearchPerformed())
	// Clearing a selection must not trigger a re-search.
	customerAPI.AssertExpectations(t)
}
