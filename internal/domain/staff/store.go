// Package staff is the read-only view over the staff directory. Staff
// records are owned elsewhere; this core only resolves identity, status,
// leave quota and the daily rate.
package staff

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/zainkazmi786/GlamourPro-sub001/internal/platform/querier"
)

var ErrNotFound = errors.New("staff member not found")

// Directory is the lookup surface the leave and payroll services consume.
type Directory interface {
	Get(ctx context.Context, id string) (Staff, error)
}

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) Get(ctx context.Context, id string) (Staff, error) {
	var member Staff
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, phone, email, status, annual_paid_leaves_quota, base_daily_salary, created_at
    FROM staff
    WHERE id = $1
  `, id).Scan(&member.ID, &member.Name, &member.Phone, &member.Email, &member.Status, &member.AnnualPaidLeavesQuota, &member.BaseDailySalary, &member.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Staff{}, ErrNotFound
	}
	if err != nil {
		return Staff{}, err
	}
	return member, nil
}

func (s *Store) List(ctx context.Context) ([]Staff, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, phone, email, status, annual_paid_leaves_quota, base_daily_salary, created_at
    FROM staff
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []Staff
	for rows.Next() {
		var member Staff
		if err := rows.Scan(&member.ID, &member.Name, &member.Phone, &member.Email, &member.Status, &member.AnnualPaidLeavesQuota, &member.BaseDailySalary, &member.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}
