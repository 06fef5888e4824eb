package payroll

import (
	"context"
	"errors"

	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/attendance"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/closure"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/staff"
)

type Service struct {
	Store      StoreAPI
	Staff      staff.Directory
	Attendance attendance.Source
	Closures   closure.Registry
	Policy     Policy
}

func NewService(store StoreAPI, directory staff.Directory, source attendance.Source, registry closure.Registry, policy Policy) *Service {
	return &Service{Store: store, Staff: directory, Attendance: source, Closures: registry, Policy: policy}
}

// ComputeDraft reconciles attendance, approved leave and company closures
// into the draft salary record for (staff, month, year), overwriting any
// prior draft for the same key. Finalized and paid records are immutable to
// recomputation. Given unchanged source facts the operation is idempotent.
func (s *Service) ComputeDraft(ctx context.Context, staffID string, month, year int, commission float64) (SalaryRecord, error) {
	if month < 1 || month > 12 {
		return SalaryRecord{}, ErrInvalidPeriod
	}

	existing, err := s.Store.Find(ctx, staffID, month, year)
	if err == nil && existing.Status != StatusDraft {
		return SalaryRecord{}, ErrConflict
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return SalaryRecord{}, err
	}

	member, err := s.Staff.Get(ctx, staffID)
	if err != nil {
		return SalaryRecord{}, err
	}

	closures, err := s.Closures.Month(ctx, month, year)
	if err != nil {
		return SalaryRecord{}, err
	}
	facts, err := s.Attendance.Month(ctx, staffID, month, year)
	if err != nil {
		return SalaryRecord{}, err
	}
	first, last := MonthBounds(month, year)
	leaves, err := s.Store.ApprovedLeaveWindows(ctx, staffID, first, last)
	if err != nil {
		return SalaryRecord{}, err
	}

	record := ComputeRecord(member, month, year, closures, facts, leaves, commission, s.Policy)
	return s.Store.UpsertDraft(ctx, record)
}

// Finalize freezes a draft's computed fields. The status swap only succeeds
// if the record is still draft at commit time, so a finalize can never
// capture a draft mid-recompute.
func (s *Service) Finalize(ctx context.Context, id string) error {
	return s.Store.TransitionStatus(ctx, id, StatusDraft, StatusFinalized)
}

// MarkPaid is terminal; nothing transitions out of paid.
func (s *Service) MarkPaid(ctx context.Context, id string) error {
	return s.Store.TransitionStatus(ctx, id, StatusFinalized, StatusPaid)
}

// DeleteDraft removes a draft; finalized and paid records are payroll
// history and cannot be deleted.
func (s *Service) DeleteDraft(ctx context.Context, id string) error {
	return s.Store.DeleteDraft(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (SalaryRecord, error) {
	return s.Store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter RecordFilter) ([]SalaryRecord, error) {
	return s.Store.List(ctx, filter)
}
