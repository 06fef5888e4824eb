// Package closure consumes company-wide non-working dates (holidays and
// forced closures) maintained by the external closure registry.
package closure

import (
	"context"
	"time"

	"github.com/zainkazmi786/GlamourPro-sub001/internal/platform/querier"
)

// Registry supplies the closure dates falling in one calendar month.
type Registry interface {
	Month(ctx context.Context, month, year int) ([]time.Time, error)
}

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) Month(ctx context.Context, month, year int) ([]time.Time, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := s.DB.Query(ctx, `
    SELECT date
    FROM company_closures
    WHERE date >= $1 AND date < $2
    ORDER BY date
  `, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}
