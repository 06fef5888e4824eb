// Package attendance consumes daily attendance facts recorded by the
// external attendance tracker.
package attendance

import (
	"context"
	"time"

	"github.com/zainkazmi786/GlamourPro-sub001/internal/platform/querier"
)

// Source supplies the attendance facts for one staff member and month.
type Source interface {
	Month(ctx context.Context, staffID string, month, year int) ([]DayFact, error)
}

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) Month(ctx context.Context, staffID string, month, year int) ([]DayFact, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := s.DB.Query(ctx, `
    SELECT date, category, fractional_weight
    FROM attendance
    WHERE staff_id = $1 AND date >= $2 AND date < $3
    ORDER BY date
  `, staffID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facts []DayFact
	for rows.Next() {
		var fact DayFact
		if err := rows.Scan(&fact.Date, &fact.Category, &fact.Weight); err != nil {
			return nil, err
		}
		facts = append(facts, fact)
	}
	return facts, rows.Err()
}
