package booking

import (
	"sort"
	"time"

	"labdesk/models"
)

// SubmissionState tracks where a draft is in its submit lifecycle.
type SubmissionState int

const (
	StateIdle SubmissionState = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s SubmissionState) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// ClockTime is a wall-clock hour/minute pair picked by the operator.
type ClockTime struct {
	Hour   int
	Minute int
}

// Draft is the in-memory aggregate of one in-progress booking: customer,
// test selection, schedule, discount and the last server-computed preview.
// It is created empty, mutated by every operator interaction, and destroyed
// after successful submission or explicit cancel.
type Draft struct {
	customer      *models.Customer
	testIDs       map[int]struct{}
	date          *time.Time
	clock         *ClockTime
	discountType  models.DiscountType
	discountValue float64
	preview       *models.DiscountPreview

	state          SubmissionState
	bookingNumber  string
	failureMessage string
}

func NewDraft() *Draft {
	return &Draft{testIDs: make(map[int]struct{})}
}

// edited is called on every mutation: a failed submission returns to idle so
// the operator can correct and resubmit.
func (d *Draft) edited() {
	if d.state == StateFailed {
		d.state = StateIdle
		d.failureMessage = ""
	}
}

// SelectCustomer sets the draft's customer. The caller (the flow) is
// responsible for resetting the test catalog to the customer's branch.
func (d *Draft) SelectCustomer(c *models.Customer) {
	d.edited()
	d.customer = c
}

// ClearCustomer drops the customer selection.
func (d *Draft) ClearCustomer() {
	d.edited()
	d.customer = nil
}

func (d *Draft) Customer() *models.Customer {
	return d.customer
}

// BranchID returns the branch context derived from the selected customer,
// or nil when no customer (or no affiliation) is selected.
func (d *Draft) BranchID() *int {
	if d.customer == nil {
		return nil
	}
	return d.customer.BranchID
}

// ToggleTest adds or removes a test from the selection and reports whether
// the test is selected afterwards. Any change invalidates the preview.
func (d *Draft) ToggleTest(id int) bool {
	d.edited()
	d.preview = nil
	if _, ok := d.testIDs[id]; ok {
		delete(d.testIDs, id)
		return false
	}
	d.testIDs[id] = struct{}{}
	return true
}

// SelectedTestIDs returns the selected test ids in ascending order.
func (d *Draft) SelectedTestIDs() []int {
	ids := make([]int, 0, len(d.testIDs))
	for id := range d.testIDs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (d *Draft) HasTest(id int) bool {
	_, ok := d.testIDs[id]
	return ok
}

func (d *Draft) TestCount() int {
	return len(d.testIDs)
}

func (d *Draft) SetDate(t time.Time) {
	d.edited()
	d.date = &t
}

func (d *Draft) Date() *time.Time {
	return d.date
}

func (d *Draft) SetTime(hour, minute int) {
	d.edited()
	d.clock = &ClockTime{Hour: hour, Minute: minute}
}

func (d *Draft) Clock() *ClockTime {
	return d.clock
}

// SetDiscount records the discount inputs and invalidates the preview: a
// preview computed against stale inputs must never be shown as current.
func (d *Draft) SetDiscount(discountType models.DiscountType, value float64) {
	d.edited()
	d.preview = nil
	d.discountType = discountType
	d.discountValue = value
}

func (d *Draft) Discount() (models.DiscountType, float64) {
	return d.discountType, d.discountValue
}

func (d *Draft) SetPreview(p *models.DiscountPreview) {
	d.preview = p
}

func (d *Draft) Preview() *models.DiscountPreview {
	return d.preview
}

func (d *Draft) State() SubmissionState {
	return d.state
}

// BookingNumber is set once the draft has reached StateSucceeded.
func (d *Draft) BookingNumber() string {
	return d.bookingNumber
}

// FailureMessage is the user-facing message of the last failed submission.
func (d *Draft) FailureMessage() string {
	return d.failureMessage
}

// Reset restores the empty state, ready for the next booking.
func (d *Draft) Reset() {
	*d = Draft{testIDs: make(map[int]struct{})}
}
