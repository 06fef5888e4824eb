package payroll

import (
	"context"
	"time"
)

type StoreAPI interface {
	Get(ctx context.Context, id string) (SalaryRecord, error)
	Find(ctx context.Context, staffID string, month, year int) (SalaryRecord, error)
	List(ctx context.Context, filter RecordFilter) ([]SalaryRecord, error)

	// UpsertDraft writes the record keyed by (staff, month, year). The write
	// only lands while the stored row is still draft; ErrConflict otherwise.
	UpsertDraft(ctx context.Context, record SalaryRecord) (SalaryRecord, error)

	// TransitionStatus is a compare-and-swap on status: it succeeds only when
	// the record is still in from at commit time.
	TransitionStatus(ctx context.Context, id, from, to string) error

	DeleteDraft(ctx context.Context, id string) error

	// ApprovedLeaveWindows returns approved leave spans overlapping [from, to].
	ApprovedLeaveWindows(ctx context.Context, staffID string, from, to time.Time) ([]LeaveWindow, error)
}
