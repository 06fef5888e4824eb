package leave

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	Get(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]LeaveRequest, error)
	Update(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	Delete(ctx context.Context, id string) error

	// ApprovedPaidDays sums days over approved paid requests for staff+year,
	// optionally excluding one request (the record being updated).
	ApprovedPaidDays(ctx context.Context, staffID string, year int, excludeID string) (int, error)

	// WithQuotaGuard runs fn with quota evaluation and the subsequent write
	// serialized per staff+year, so two in-flight approvals cannot both pass
	// a check they jointly violate. fn receives a store bound to the guard's
	// transaction.
	WithQuotaGuard(ctx context.Context, staffID string, year int, fn func(ctx context.Context, store StoreAPI) error) error
}
