package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/zainkazmi786/GlamourPro-sub001/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const recordColumns = `
    r.id, r.staff_id, r.month, r.year, r.base_daily_salary, r.base_monthly_salary,
    r.working_days_in_month, r.actual_working_days, r.paid_leaves_taken, r.unpaid_leaves_taken,
    r.overtime_days, r.short_days, r.company_closure_days, r.payable_days, r.deduction_days,
    r.net_salary, r.commission, r.warnings, r.status, s.name, r.created_at, r.updated_at
`

func scanRecord(row pgx.Row) (SalaryRecord, error) {
	var rec SalaryRecord
	err := row.Scan(&rec.ID, &rec.StaffID, &rec.Month, &rec.Year, &rec.BaseDailySalary, &rec.BaseMonthlySalary,
		&rec.WorkingDaysInMonth, &rec.ActualWorkingDays, &rec.PaidLeavesTaken, &rec.UnpaidLeavesTaken,
		&rec.OvertimeDays, &rec.ShortDays, &rec.CompanyClosureDays, &rec.PayableDays, &rec.DeductionDays,
		&rec.NetSalary, &rec.Commission, &rec.Warnings, &rec.Status, &rec.StaffName, &rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}

func (s *Store) Get(ctx context.Context, id string) (SalaryRecord, error) {
	rec, err := scanRecord(s.DB.QueryRow(ctx, `
    SELECT `+recordColumns+`
    FROM salary_records r
    JOIN staff s ON r.staff_id = s.id
    WHERE r.id = $1
  `, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return SalaryRecord{}, ErrNotFound
	}
	if err != nil {
		return SalaryRecord{}, err
	}
	return rec, nil
}

func (s *Store) Find(ctx context.Context, staffID string, month, year int) (SalaryRecord, error) {
	rec, err := scanRecord(s.DB.QueryRow(ctx, `
    SELECT `+recordColumns+`
    FROM salary_records r
    JOIN staff s ON r.staff_id = s.id
    WHERE r.staff_id = $1 AND r.month = $2 AND r.year = $3
  `, staffID, month, year))
	if errors.Is(err, pgx.ErrNoRows) {
		return SalaryRecord{}, ErrNotFound
	}
	if err != nil {
		return SalaryRecord{}, err
	}
	return rec, nil
}

func (s *Store) List(ctx context.Context, filter RecordFilter) ([]SalaryRecord, error) {
	query := `
    SELECT ` + recordColumns + `
    FROM salary_records r
    JOIN staff s ON r.staff_id = s.id
    WHERE 1=1
  `
	var args []any
	if filter.StaffID != "" {
		args = append(args, filter.StaffID)
		query += fmt.Sprintf(" AND r.staff_id = $%d", len(args))
	}
	if filter.Month != 0 {
		args = append(args, filter.Month)
		query += fmt.Sprintf(" AND r.month = $%d", len(args))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		query += fmt.Sprintf(" AND r.year = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND r.status = $%d", len(args))
	}
	query += " ORDER BY r.year DESC, r.month DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []SalaryRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) UpsertDraft(ctx context.Context, record SalaryRecord) (SalaryRecord, error) {
	warnings := record.Warnings
	if warnings == nil {
		// nil would encode as SQL NULL; the column is NOT NULL.
		warnings = []string{}
	}

	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO salary_records (
      staff_id, month, year, base_daily_salary, base_monthly_salary,
      working_days_in_month, actual_working_days, paid_leaves_taken, unpaid_leaves_taken,
      overtime_days, short_days, company_closure_days, payable_days, deduction_days,
      net_salary, commission, warnings, status
    )
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
    ON CONFLICT (staff_id, month, year) DO UPDATE SET
      base_daily_salary = EXCLUDED.base_daily_salary,
      base_monthly_salary = EXCLUDED.base_monthly_salary,
      working_days_in_month = EXCLUDED.working_days_in_month,
      actual_working_days = EXCLUDED.actual_working_days,
      paid_leaves_taken = EXCLUDED.paid_leaves_taken,
      unpaid_leaves_taken = EXCLUDED.unpaid_leaves_taken,
      overtime_days = EXCLUDED.overtime_days,
      short_days = EXCLUDED.short_days,
      company_closure_days = EXCLUDED.company_closure_days,
      payable_days = EXCLUDED.payable_days,
      deduction_days = EXCLUDED.deduction_days,
      net_salary = EXCLUDED.net_salary,
      commission = EXCLUDED.commission,
      warnings = EXCLUDED.warnings,
      updated_at = now()
    WHERE salary_records.status = $18
    RETURNING id
  `, record.StaffID, record.Month, record.Year, record.BaseDailySalary, record.BaseMonthlySalary,
		record.WorkingDaysInMonth, record.ActualWorkingDays, record.PaidLeavesTaken, record.UnpaidLeavesTaken,
		record.OvertimeDays, record.ShortDays, record.CompanyClosureDays, record.PayableDays, record.DeductionDays,
		record.NetSalary, record.Commission, warnings, StatusDraft).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		// Conflict row exists but is no longer draft.
		return SalaryRecord{}, ErrConflict
	}
	if err != nil {
		return SalaryRecord{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) TransitionStatus(ctx context.Context, id, from, to string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE salary_records SET status = $3, updated_at = now()
    WHERE id = $1 AND status = $2
  `, id, from, to)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return s.missingOrConflict(ctx, id)
	}
	return nil
}

func (s *Store) DeleteDraft(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM salary_records WHERE id = $1 AND status = $2", id, StatusDraft)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return s.missingOrConflict(ctx, id)
	}
	return nil
}

func (s *Store) missingOrConflict(ctx context.Context, id string) error {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM salary_records WHERE id = $1", id).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrConflict
}

func (s *Store) ApprovedLeaveWindows(ctx context.Context, staffID string, from, to time.Time) ([]LeaveWindow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT start_date, end_date, kind
    FROM leave_requests
    WHERE staff_id = $1 AND status = 'approved' AND start_date <= $3 AND end_date >= $2
    ORDER BY start_date
  `, staffID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var windows []LeaveWindow
	for rows.Next() {
		var window LeaveWindow
		if err := rows.Scan(&window.StartDate, &window.EndDate, &window.Kind); err != nil {
			return nil, err
		}
		windows = append(windows, window)
	}
	return windows, rows.Err()
}
