package booking

import (
	"context"

	"go.uber.org/zap"

	"labdesk/models"
	"labdesk/utils"
)

// Flow binds the draft, resolver, paginator, previewer and submitter into
// the receptionist booking workflow. The one cross-component coupling lives
// here: selecting a customer resets the test catalog to that customer's
// branch.
type Flow struct {
	Draft     *Draft
	Resolver  *Resolver
	Catalog   *Paginator
	Previewer *Previewer
	Submitter *Submitter

	handoff HandoffFunc
	logger  *zap.Logger
}

// BackendAPI is the full client surface the flow needs.
type BackendAPI interface {
	CustomerAPI
	CatalogAPI
	DiscountAPI
	BookingAPI
}

// NewFlow assembles a booking flow over the given backend client. handoff
// may be nil when no payment collection follows submission.
func NewFlow(api BackendAPI, pageSize int, searchRatePerSec float64, handoff HandoffFunc) *Flow {
	return &Flow{
		Draft:     NewDraft(),
		Resolver:  NewResolver(api, searchRatePerSec),
		Catalog:   NewPaginator(api, pageSize),
		Previewer: NewPreviewer(api),
		Submitter: NewSubmitter(api),
		handoff:   handoff,
		logger:    utils.GetLogger(),
	}
}

// SelectCustomer sets the draft's customer and rescopes the test catalog to
// the customer's branch, discarding the previous catalog before the first
// new-branch page resolves.
func (f *Flow) SelectCustomer(ctx context.Context, customer *models.Customer) error {
	f.Draft.SelectCustomer(customer)
	return f.Catalog.Reset(ctx, f.Draft.BranchID())
}

// ClearCustomer drops the selection and returns the resolver and catalog to
// their unscoped initial state.
func (f *Flow) ClearCustomer(ctx context.Context) error {
	f.Draft.ClearCustomer()
	f.Resolver.Reset()
	return f.Catalog.Reset(ctx, nil)
}

// Submit runs the full submission: validation, the atomic create request,
// then the payment handoff. The draft resets once the handoff returns,
// whether it completed or was cancelled; a submission failure leaves the
// draft intact.
func (f *Flow) Submit(ctx context.Context) (string, error) {
	bookingNumber, err := f.Submitter.Submit(ctx, f.Draft)
	if err != nil {
		return "", err
	}

	if f.handoff != nil {
		if err := f.handoff(bookingNumber); err != nil {
			f.logger.Warn("payment handoff did not complete",
				zap.String("bookingNumber", bookingNumber), zap.Error(err))
		}
	}
	f.ResetAll()
	return bookingNumber, nil
}

// ResetAll restores the whole flow to the empty state for the next booking.
func (f *Flow) ResetAll() {
	f.Draft.Reset()
	f.Resolver.Reset()
}
