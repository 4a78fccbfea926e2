package queries

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListOrdersQuery retrieves a page of orders visible to the caller.
// Buyers see their purchases, farmers their sales, transporters their
// assignments, admins everything. Optional status and payment status filters
// narrow the page; the total count is taken in the same read so page and
// count never disagree.
type ListOrdersQuery struct {
	caller        kernel.UUID
	actor         kernel.Role
	status        *order.Status
	paymentStatus *order.PaymentStatus
	createdFrom   *time.Time
	createdTo     *time.Time
	page          int
	pageSize      int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a paginated order listing query.
// statusFilter and paymentStatusFilter are optional wire strings; empty means
// no filter. Page numbering starts at 1; a zero pageSize gets the default.
func NewListOrdersQuery(
	caller kernel.UUID,
	actor kernel.Role,
	statusFilter string,
	paymentStatusFilter string,
	page int,
	pageSize int,
) (ListOrdersQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	q := ListOrdersQuery{
		caller: caller,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}

	if statusFilter != "" {
		status, err := order.StatusFromString(statusFilter)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = &status
	}

	if paymentStatusFilter != "" {
		paymentStatus, err := order.PaymentStatusFromString(paymentStatusFilter)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.paymentStatus = &paymentStatus
	}

	if page < 0 {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}
	if page == 0 {
		page = 1
	}
	q.page = page

	if pageSize < 0 || pageSize > maxPageSize {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	q.pageSize = pageSize

	return q, nil
}

// WithCreatedBetween returns a copy of the query restricted to orders created
// in [from, to]. A zero bound means unbounded on that side.
func (q ListOrdersQuery) WithCreatedBetween(from, to time.Time) (ListOrdersQuery, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("date range")
	}

	if !from.IsZero() {
		q.createdFrom = &from
	}
	if !to.IsZero() {
		q.createdTo = &to
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Caller returns the identity of the requesting user.
func (q ListOrdersQuery) Caller() kernel.UUID {
	return q.caller
}

// Actor returns the role of the requesting user.
func (q ListOrdersQuery) Actor() kernel.Role {
	return q.actor
}

// Status returns the optional fulfillment status filter.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// PaymentStatus returns the optional payment status filter.
func (q ListOrdersQuery) PaymentStatus() *order.PaymentStatus {
	return q.paymentStatus
}

// CreatedFrom returns the optional lower creation-time bound.
func (q ListOrdersQuery) CreatedFrom() *time.Time {
	return q.createdFrom
}

// CreatedTo returns the optional upper creation-time bound.
func (q ListOrdersQuery) CreatedTo() *time.Time {
	return q.createdTo
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

// OrderSummaryView is one row of the order listing.
type OrderSummaryView struct {
	ID            kernel.UUID
	OrderNumber   string
	Status        string
	PaymentStatus string
	TotalAmount   float64
	ItemCount     int
	CreatedAt     time.Time
}

// ListOrdersQueryResponse is one page of the listing plus the total count
// taken in the same snapshot.
type ListOrdersQueryResponse struct {
	Orders     []OrderSummaryView
	TotalCount int64
	Page       int
	PageSize   int
}
