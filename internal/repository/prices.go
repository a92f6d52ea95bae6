package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/freightwise/rates-api/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// dayFormat is the wire format for calendar days.
const dayFormat = "2006-01-02"

// Prices reads the prices relation.
type Prices struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewPrices constructs the prices repository.
func NewPrices(pool *pgxpool.Pool, timeout time.Duration) *Prices {
	return &Prices{pool: pool, timeout: timeout}
}

// dailyAveragesQuery produces one row per calendar day in the inclusive
// range, whether or not any price record exists for it. A day's average is
// the rounded mean of the matching records when at least three matched, NULL
// otherwise. ROUND on numeric rounds half away from zero, i.e. half-up for
// the positive prices this table holds. The ORDER BY makes the ascending day
// order explicit rather than an accident of the join.
const dailyAveragesQuery = `
WITH days AS (
    SELECT GENERATE_SERIES($1::date, $2::date, interval '1 day')::date AS day
)
SELECT
    days.day,
    CASE
        WHEN COUNT(prices.price) >= 3 THEN ROUND(AVG(prices.price))::int
        ELSE NULL
    END AS average_price
FROM days
LEFT JOIN prices ON
    prices.day = days.day AND
    prices.orig_code = ANY($3) AND
    prices.dest_code = ANY($4)
GROUP BY days.day
ORDER BY days.day
`

// DailyAverages computes the average price per calendar day between from and
// to (inclusive) over price records whose origin and destination codes are
// members of the given sets. Empty code sets are valid and simply match no
// records, yielding null for every day.
func (r *Prices) DailyAverages(ctx context.Context, from, to time.Time, originCodes, destCodes []string) ([]model.DailyRate, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// pgx refuses to encode nil slices for text[] parameters in some code
	// paths; normalized empty slices keep the query total.
	if originCodes == nil {
		originCodes = []string{}
	}
	if destCodes == nil {
		destCodes = []string{}
	}

	rows, err := r.pool.Query(ctx, dailyAveragesQuery, from, to, originCodes, destCodes)
	if err != nil {
		return nil, fmt.Errorf("querying daily averages: %w", err)
	}
	defer rows.Close()

	var rates []model.DailyRate
	for rows.Next() {
		var day time.Time
		var average *int
		if err := rows.Scan(&day, &average); err != nil {
			return nil, fmt.Errorf("scanning daily average row: %w", err)
		}
		rates = append(rates, model.DailyRate{
			Day:          day.Format(dayFormat),
			AveragePrice: average,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("querying daily averages: %w", err)
	}

	return rates, nil
}
