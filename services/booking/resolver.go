package booking

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"labdesk/models"
	"labdesk/utils"
)

// Resolver turns a free-text query into a single selected customer. Each
// search replaces the previous result set wholesale; selection clears the
// results and the query. The searchPerformed flag keeps "no results" visually
// distinct from "not yet searched".
type Resolver struct {
	api     CustomerAPI
	limiter *rate.Limiter
	logger  *zap.Logger

	results         []models.Customer
	searching       bool
	searchPerformed bool
}

// NewResolver builds a resolver. ratePerSec throttles search-as-you-type so
// rapid keystrokes do not hammer the backend; zero disables the throttle.
func NewResolver(api CustomerAPI, ratePerSec float64) *Resolver {
	var limiter *rate.Limiter
	if ratePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(ratePerSec), 1)
	}
	return &Resolver{
		api:     api,
		limiter: limiter,
		logger:  utils.GetLogger(),
	}
}

// Search runs a customer search. A whitespace-only query is a no-op and
// issues no request. On failure the result set is left empty and the error
// surfaces to the caller; there is no automatic retry.
func (r *Resolver) Search(ctx context.Context, query string) ([]models.Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.results, nil
	}
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	r.searching = true
	r.searchPerformed = true
	defer func() { r.searching = false }()

	customers, err := r.api.SearchCustomers(ctx, query)
	if err != nil {
		r.logger.Warn("customer search failed", zap.String("query", query), zap.Error(err))
		r.results = nil
		return nil, err
	}
	r.results = customers
	return customers, nil
}

// Results returns the current result set.
func (r *Resolver) Results() []models.Customer {
	return r.results
}

// Searching reports whether a search is in flight.
func (r *Resolver) Searching() bool {
	return r.searching
}

// SearchPerformed reports whether any search has run since the last reset,
// distinguishing an empty result set from a not-yet-searched one.
func (r *Resolver) SearchPerformed() bool {
	return r.searchPerformed
}

// Select picks a customer out of the current results by id, clearing the
// result set for the next search.
func (r *Resolver) Select(id int) (*models.Customer, bool) {
	for i := range r.results {
		if r.results[i].ID == id {
			customer := r.results[i]
			r.results = nil
			return &customer, true
		}
	}
	return nil, false
}

// Reset returns the resolver to the empty, unsearched state. Clearing a
// selection goes through here, not through a re-search.
func (r *Resolver) Reset() {
	r.results = nil
	r.searching = false
	r.searchPerformed = false
}
