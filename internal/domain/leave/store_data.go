package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zainkazmi786/GlamourPro-sub001/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const requestColumns = `
    lr.id, lr.staff_id, lr.start_date, lr.end_date, lr.kind, lr.reason, lr.status,
    lr.days, lr.year, s.name, s.phone, s.email, lr.created_at, lr.updated_at
`

func scanRequest(row pgx.Row) (LeaveRequest, error) {
	var req LeaveRequest
	err := row.Scan(&req.ID, &req.StaffID, &req.StartDate, &req.EndDate, &req.Kind, &req.Reason, &req.Status,
		&req.Days, &req.Year, &req.StaffName, &req.StaffPhone, &req.StaffEmail, &req.CreatedAt, &req.UpdatedAt)
	return req, err
}

func (s *Store) Insert(ctx context.Context, req LeaveRequest) (LeaveRequest, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (staff_id, start_date, end_date, kind, reason, status, days, year)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, req.StaffID, req.StartDate, req.EndDate, req.Kind, req.Reason, req.Status, req.Days, req.Year).Scan(&id); err != nil {
		return LeaveRequest{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) Get(ctx context.Context, id string) (LeaveRequest, error) {
	req, err := scanRequest(s.DB.QueryRow(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests lr
    JOIN staff s ON lr.staff_id = s.id
    WHERE lr.id = $1
  `, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return LeaveRequest{}, ErrNotFound
	}
	if err != nil {
		return LeaveRequest{}, err
	}
	return req, nil
}

func (s *Store) List(ctx context.Context, filter RequestFilter) ([]LeaveRequest, error) {
	query := `
    SELECT ` + requestColumns + `
    FROM leave_requests lr
    JOIN staff s ON lr.staff_id = s.id
    WHERE 1=1
  `
	var args []any
	if filter.StaffID != "" {
		args = append(args, filter.StaffID)
		query += fmt.Sprintf(" AND lr.staff_id = $%d", len(args))
	}
	if filter.Kind != "" {
		args = append(args, filter.Kind)
		query += fmt.Sprintf(" AND lr.kind = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND lr.status = $%d", len(args))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		query += fmt.Sprintf(" AND lr.year = $%d", len(args))
	}
	query += " ORDER BY lr.start_date DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []LeaveRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (s *Store) Update(ctx context.Context, req LeaveRequest) (LeaveRequest, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE leave_requests
    SET start_date = $2, end_date = $3, kind = $4, reason = $5, status = $6, days = $7, year = $8, updated_at = now()
    WHERE id = $1
  `, req.ID, req.StartDate, req.EndDate, req.Kind, req.Reason, req.Status, req.Days, req.Year)
	if err != nil {
		return LeaveRequest{}, err
	}
	if tag.RowsAffected() == 0 {
		return LeaveRequest{}, ErrNotFound
	}
	return s.Get(ctx, req.ID)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM leave_requests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ApprovedPaidDays(ctx context.Context, staffID string, year int, excludeID string) (int, error) {
	query := `
    SELECT COALESCE(SUM(days), 0)
    FROM leave_requests
    WHERE staff_id = $1 AND year = $2 AND kind = $3 AND status = $4
  `
	args := []any{staffID, year, KindPaid, StatusApproved}
	if excludeID != "" {
		args = append(args, excludeID)
		query += fmt.Sprintf(" AND id <> $%d", len(args))
	}

	var used int
	if err := s.DB.QueryRow(ctx, query, args...).Scan(&used); err != nil {
		return 0, err
	}
	return used, nil
}

// WithQuotaGuard serializes quota evaluation and the dependent write behind
// a transaction-scoped advisory lock keyed on staff+year. Concurrent
// approvals for the same staff+year queue on the lock, so each one sees the
// previous one's committed days.
func (s *Store) WithQuotaGuard(ctx context.Context, staffID string, year int, fn func(ctx context.Context, store StoreAPI) error) error {
	if _, inTx := s.DB.(pgx.Tx); inTx {
		// Already inside a guard's transaction.
		return fn(ctx, s)
	}
	beginner, ok := s.DB.(querier.Beginner)
	if !ok {
		return fn(ctx, s)
	}

	tx, err := beginner.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1), $2)", staffID, year); err != nil {
		return err
	}
	if err := fn(ctx, &Store{DB: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
