package leave

import (
	"context"
	"sort"
	"time"

	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/staff"
)

type Service struct {
	Store StoreAPI
	Staff staff.Directory

	now func() time.Time
}

func NewService(store StoreAPI, directory staff.Directory) *Service {
	return &Service{Store: store, Staff: directory, now: time.Now}
}

type CreateRequestInput struct {
	StaffID   string
	StartDate time.Time
	EndDate   time.Time
	Kind      string
	Reason    string
}

// CreateRequest validates the span against the staff member's paid-leave
// quota and persists the request in pending status. The request is never
// created when the quota check fails.
func (s *Service) CreateRequest(ctx context.Context, input CreateRequestInput) (LeaveRequest, error) {
	member, err := s.Staff.Get(ctx, input.StaffID)
	if err != nil {
		return LeaveRequest{}, err
	}
	if !member.Active() {
		return LeaveRequest{}, ErrStaffInactive
	}

	days, err := SpanDays(input.StartDate, input.EndDate)
	if err != nil {
		return LeaveRequest{}, err
	}

	req := LeaveRequest{
		StaffID:   input.StaffID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Kind:      input.Kind,
		Reason:    input.Reason,
		Status:    StatusPending,
		Days:      days,
		Year:      SpanYear(input.StartDate),
	}

	if req.Kind != KindPaid {
		return s.Store.Insert(ctx, req)
	}

	var created LeaveRequest
	err = s.Store.WithQuotaGuard(ctx, req.StaffID, req.Year, func(ctx context.Context, store StoreAPI) error {
		if err := checkQuota(ctx, store, member, req.Year, req.Days, ""); err != nil {
			return err
		}
		created, err = store.Insert(ctx, req)
		return err
	})
	if err != nil {
		return LeaveRequest{}, err
	}
	return created, nil
}

// ListRequests returns matching requests ordered by start date, newest
// first. The ordering is re-applied here so it holds for any store.
func (s *Service) ListRequests(ctx context.Context, filter RequestFilter) ([]LeaveRequest, error) {
	requests, err := s.Store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].StartDate.After(requests[j].StartDate)
	})
	return requests, nil
}

func (s *Service) GetRequest(ctx context.Context, id string) (LeaveRequest, error) {
	return s.Store.Get(ctx, id)
}

// Quota reports paid-leave consumption for staff+year; year 0 means the
// current calendar year.
func (s *Service) Quota(ctx context.Context, staffID string, year int) (QuotaSummary, error) {
	if year == 0 {
		year = s.now().Year()
	}
	member, err := s.Staff.Get(ctx, staffID)
	if err != nil {
		return QuotaSummary{}, err
	}
	used, err := s.Store.ApprovedPaidDays(ctx, staffID, year, "")
	if err != nil {
		return QuotaSummary{}, err
	}
	return QuotaSummary{
		TotalQuota:     member.AnnualPaidLeavesQuota,
		UsedQuota:      used,
		RemainingQuota: member.AnnualPaidLeavesQuota - used,
		Year:           year,
	}, nil
}

type UpdateRequestInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Kind      *string
	Reason    *string
	Status    *string
}

// UpdateRequest applies a partial update. Days and year are recomputed from
// the resulting span before any quota check; when the resulting record is an
// approved paid leave the quota is re-validated excluding the record itself.
// A failed check rejects the whole update.
func (s *Service) UpdateRequest(ctx context.Context, id string, input UpdateRequestInput) (LeaveRequest, error) {
	req, err := s.Store.Get(ctx, id)
	if err != nil {
		return LeaveRequest{}, err
	}

	if input.StartDate != nil {
		req.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		req.EndDate = *input.EndDate
	}
	if input.Kind != nil {
		req.Kind = *input.Kind
	}
	if input.Reason != nil {
		req.Reason = *input.Reason
	}
	if input.Status != nil {
		req.Status = *input.Status
	}

	req.Days, err = SpanDays(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveRequest{}, err
	}
	req.Year = SpanYear(req.StartDate)

	if req.Status != StatusApproved || req.Kind != KindPaid {
		return s.Store.Update(ctx, req)
	}

	member, err := s.Staff.Get(ctx, req.StaffID)
	if err != nil {
		return LeaveRequest{}, err
	}

	var updated LeaveRequest
	err = s.Store.WithQuotaGuard(ctx, req.StaffID, req.Year, func(ctx context.Context, store StoreAPI) error {
		if err := checkQuota(ctx, store, member, req.Year, req.Days, req.ID); err != nil {
			return err
		}
		updated, err = store.Update(ctx, req)
		return err
	})
	if err != nil {
		return LeaveRequest{}, err
	}
	return updated, nil
}

// DeleteRequest hard-deletes; computed salary records are snapshots and are
// deliberately left untouched.
func (s *Service) DeleteRequest(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}

func checkQuota(ctx context.Context, store StoreAPI, member staff.Staff, year, days int, excludeID string) error {
	used, err := store.ApprovedPaidDays(ctx, member.ID, year, excludeID)
	if err != nil {
		return err
	}
	if used+days > member.AnnualPaidLeavesQuota {
		return &QuotaExceededError{
			Requested: days,
			Used:      used,
			Total:     member.AnnualPaidLeavesQuota,
			Remaining: member.AnnualPaidLeavesQuota - used,
		}
	}
	return nil
}
