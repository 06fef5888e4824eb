package leave_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/leave"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/staff"
)

type fakeStore struct {
	seq      int
	requests map[string]leave.LeaveRequest
}

func newFakeStore() *fakeStore {
	return &fakeStore{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeStore) Insert(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.seq++
	req.ID = fmt.Sprintf("req-%d", f.seq)
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrNotFound
	}
	return req, nil
}

func (f *fakeStore) List(_ context.Context, filter leave.RequestFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if filter.StaffID != "" && req.StaffID != filter.StaffID {
			continue
		}
		if filter.Kind != "" && req.Kind != filter.Kind {
			continue
		}
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.Year != 0 && req.Year != filter.Year {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeStore) Update(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	if _, ok := f.requests[req.ID]; !ok {
		return leave.LeaveRequest{}, leave.ErrNotFound
	}
	req.UpdatedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	if _, ok := f.requests[id]; !ok {
		return leave.ErrNotFound
	}
	delete(f.requests, id)
	return nil
}

func (f *fakeStore) ApprovedPaidDays(_ context.Context, staffID string, year int, excludeID string) (int, error) {
	total := 0
	for _, req := range f.requests {
		if req.ID == excludeID {
			continue
		}
		if req.StaffID == staffID && req.Year == year && req.Kind == leave.KindPaid && req.Status == leave.StatusApproved {
			total += req.Days
		}
	}
	return total, nil
}

func (f *fakeStore) WithQuotaGuard(ctx context.Context, _ string, _ int, fn func(ctx context.Context, store leave.StoreAPI) error) error {
	return fn(ctx, f)
}

type fakeDirectory struct {
	members map[string]staff.Staff
}

func (f *fakeDirectory) Get(_ context.Context, id string) (staff.Staff, error) {
	member, ok := f.members[id]
	if !ok {
		return staff.Staff{}, staff.ErrNotFound
	}
	return member, nil
}

func newService(members ...staff.Staff) (*leave.Service, *fakeStore) {
	directory := &fakeDirectory{members: make(map[string]staff.Staff)}
	for _, member := range members {
		directory.members[member.ID] = member
	}
	store := newFakeStore()
	return leave.NewService(store, directory), store
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func activeStaff(id string, quota int) staff.Staff {
	return staff.Staff{ID: id, Name: "Amna", Status: staff.StatusActive, AnnualPaidLeavesQuota: quota, BaseDailySalary: 100}
}

func TestCreateRequestPending(t *testing.T) {
	service, _ := newService(activeStaff("s1", 12))

	created, err := service.CreateRequest(context.Background(), leave.CreateRequestInput{
		StaffID:   "s1",
		StartDate: date(2024, 3, 1),
		EndDate:   date(2024, 3, 3),
		Kind:      leave.KindPaid,
		Reason:    "family event",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, 3, created.Days)
	assert.Equal(t, 2024, created.Year)
}

func TestCreateRequestUnknownStaff(t *testing.T) {
	service, _ := newService()

	_, err := service.CreateRequest(context.Background(), leave.CreateRequestInput{
		StaffID:   "ghost",
		StartDate: date(2024, 3, 1),
		EndDate:   date(2024, 3, 1),
		Kind:      leave.KindPaid,
	})
	require.ErrorIs(t, err, staff.ErrNotFound)
}

func TestCreateRequestInactiveStaff(t *testing.T) {
	member := activeStaff("s1", 12)
	member.Status = staff.StatusInactive
	service, _ := newService(member)

	_, err := service.CreateRequest(context.Background(), leave.CreateRequestInput{
		StaffID:   "s1",
		StartDate: date(2024, 3, 1),
		EndDate:   date(2024, 3, 1),
		Kind:      leave.KindPaid,
	})
	require.ErrorIs(t, err, leave.ErrStaffInactive)
}

func TestCreateRequestQuotaExceeded(t *testing.T) {
	service, store := newService(activeStaff("s1", 12))

	approved, err := service.CreateRequest(context.Background(), leave.CreateRequestInput{
		StaffID:   "s1",
		StartDate: date(2024, 2, 1),
		EndDate:   date(2024, 2, 5),
		Kind:      leave.KindPaid,
	})
	require.NoError(t, err)
	approved.Status = leave.StatusApproved
	store.requests[approved.ID] = approved

	_, err = service.CreateRequest(context.Background(), leave.CreateRequestInput{
		StaffID:   "s1",
		StartDate: date(2024, 6, 1),
		EndDate:   date(2024, 6, 8),
		Kind:      leave.KindPaid,
	})
	var quotaErr *leave.QuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, 8, quotaErr.Requested)
	assert.Equal(t, 5, quotaErr.Used)
	assert.Equal(t, 7, quotaErr.Remaining)

	requests, err := service.ListRequests(context.Background(), leave.RequestFilter{StaffID: "s1"})
	require.NoError(t, err)
	assert.Len(t, requests, 1, "rejected request must never be created")
}

func TestCreateRequestUnpaidNeverQuotaConstrained(t *testing.T) {
	service, _ := newService(activeStaff("s1", 1))

	created, err := service.CreateRequest(context.Background(), leave.CreateRequestInput{
		StaffID:   "s1",
		StartDate: date(2024, 1, 1),
		EndDate:   date(2024, 4, 9),
		Kind:      leave.KindUnpaid,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, created.Days)
}

func TestListRequestsOrderedByStartDateDescending(t *testing.T) {
	service, _ := newService(activeStaff("s1", 12))

	starts := []time.Time{date(2024, 2, 1), date(2024, 7, 15), date(2024, 4, 10)}
	for _, start := range starts {
		_, err := service.CreateRequest(context.Background(), leave.CreateRequestInput{
			StaffID:   "s1",
			StartDate: start,
			EndDate:   start,
			Kind:      leave.KindUnpaid,
		})
		require.NoError(t, err)
	}

	requests, err := service.ListRequests(context.Background(), leave.RequestFilter{StaffID: "s1"})
	require.NoError(t, err)
	require.Len(t, requests, 3)
	for i := 1; i < len(requests); i++ {
		assert.False(t, requests[i-1].StartDate.Before(requests[i].StartDate),
			"requests must be ordered by start date descending")
	}
	assert.Equal(t, date(2024, 7, 15), requests[0].StartDate)
	assert.Equal(t, date(2024, 2, 1), requests[2].StartDate)
}

func TestQuotaSummary(t *testing.T) {
	service, store := newService(activeStaff("s1", 12))

	created, err := service.CreateRequest(context.Background(), leave.CreateRequestInput{
		StaffID:   "s1",
		StartDate: date(2024, 2, 1),
		EndDate:   date(2024, 2, 5),
		Kind:      leave.KindPaid,
	})
	require.NoError(t, err)
	created.Status = leave.StatusApproved
	store.requests[created.ID] = created

	summary, err := service.Quota(context.Background(), "s1", 2024)
	require.NoError(t, err)
	assert.Equal(t, leave.QuotaSummary{TotalQuota: 12, UsedQuota: 5, RemainingQuota: 7, Year: 2024}, summary)
}

func TestQuotaRemainingMayGoNegative(t *testing.T) {
	service, store := newService(activeStaff("s1", 3))

	created, err := service.CreateRequest(context.Background(), leave.CreateRequestInput{
		StaffID:   "s1",
		StartDate: date(2024, 2, 1),
		EndDate:   date(2024, 2, 3),
		Kind:      leave.KindPaid,
	})
	require.NoError(t, err)
	created.Status = leave.StatusApproved
	store.requests[created.ID] = created

	// Quota reduced after the approval already consumed it.
	service2, store2 := newService(activeStaff("s1", 2))
	store2.requests = store.requests

	summary, err := service2.Quota(context.Background(), "s1", 2024)
	require.NoError(t, err)
	assert.Equal(t, -1, summary.RemainingQuota)
}

func TestUpdateRequestRecomputesSpan(t *testing.T) {
	service, _ := newService(activeStaff("s1", 12))

	created, err := service.CreateRequest(context.Background(), leave.CreateRequestInput{
		StaffID:   "s1",
		StartDate: date(2024, 3, 1),
		EndDate:   date(2024, 3, 3),
		Kind:      leave.KindPaid,
	})
	require.NoError(t, err)

	newEnd := date(2025, 1, 2)
	newStart := date(2024, 12, 29)
	updated, err := service.UpdateRequest(context.Background(), created.ID, leave.UpdateRequestInput{
		StartDate: &newStart,
		EndDate:   &newEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Days)
	assert.Equal(t, 2024, updated.Year, "year follows the start date")
}

func TestUpdateApprovalQuotaExcludesSelf(t *testing.T) {
	service, store := newService(activeStaff("s1", 10))

	created, err := service.CreateRequest(context.Background(), leave.CreateRequestInput{
		StaffID:   "s1",
		StartDate: date(2024, 5, 1),
		EndDate:   date(2024, 5, 10),
		Kind:      leave.KindPaid,
	})
	require.NoError(t, err)
	created.Status = leave.StatusApproved
	store.requests[created.ID] = created

	// Re-approving the same record with its full span must not double-count
	// its own days.
	status := leave.StatusApproved
	updated, err := service.UpdateRequest(context.Background(), created.ID, leave.UpdateRequestInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, updated.Status)
}

func TestUpdateApprovalQuotaExceeded(t *testing.T) {
	service, store := newService(activeStaff("s1", 6))

	first, err := service.CreateRequest(context.Background(), leave.CreateRequestInput{
		StaffID:   "s1",
		StartDate: date(2024, 4, 1),
		EndDate:   date(2024, 4, 5),
		Kind:      leave.KindPaid,
	})
	require.NoError(t, err)
	first.Status = leave.StatusApproved
	store.requests[first.ID] = first

	second, err := service.CreateRequest(context.Background(), leave.CreateRequestInput{
		StaffID:   "s1",
		StartDate: date(2024, 8, 1),
		EndDate:   date(2024, 8, 2),
		Kind:      leave.KindPaid,
	})
	require.NoError(t, err)

	status := leave.StatusApproved
	_, err = service.UpdateRequest(context.Background(), second.ID, leave.UpdateRequestInput{Status: &status})
	var quotaErr *leave.QuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, 1, quotaErr.Remaining)

	// Rejected update must not commit any field.
	unchanged, err := service.GetRequest(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, unchanged.Status)
}

func TestUpdateRequestNotFound(t *testing.T) {
	service, _ := newService(activeStaff("s1", 12))

	_, err := service.UpdateRequest(context.Background(), "missing", leave.UpdateRequestInput{})
	require.ErrorIs(t, err, leave.ErrNotFound)
}

func TestDeleteRequest(t *testing.T) {
	service, _ := newService(activeStaff("s1", 12))

	created, err := service.CreateRequest(context.Background(), leave.CreateRequestInput{
		StaffID:   "s1",
		StartDate: date(2024, 3, 1),
		EndDate:   date(2024, 3, 1),
		Kind:      leave.KindUnpaid,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteRequest(context.Background(), created.ID))
	require.ErrorIs(t, service.DeleteRequest(context.Background(), created.ID), leave.ErrNotFound)
}
