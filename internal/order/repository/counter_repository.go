package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"darzi/internal/domain"
)

type MySQLCounterRepository struct {
	db *sql.DB
}

func NewMySQLCounterRepository(db *sql.DB) *MySQLCounterRepository {
	return &MySQLCounterRepository{db: db}
}

// AllocateNextID hands out the next civil order number. The counter row is
// locked for the whole transaction, so concurrent callers serialize and
// each sees a distinct post-increment value. A month change zeroes the
// counter before the increment; rolled reports that exactly once.
func (r *MySQLCounterRepository) AllocateNextID(ctx context.Context, now time.Time) (n int64, rolled bool, err error) {
	monthKey := domain.MonthKey(now)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("beginning counter transaction: %w", err)
	}
	// no-op after commit
	defer tx.Rollback()

	var counter domain.OrderCounter
	err = tx.QueryRowContext(ctx,
		"SELECT name, last_month, `count` FROM order_counters WHERE name = ? FOR UPDATE",
		domain.CivilCounterName,
	).Scan(&counter.Name, &counter.LastMonth, &counter.Count)

	switch {
	case err == sql.ErrNoRows:
		_, err = tx.ExecContext(ctx,
			"INSERT INTO order_counters (name, last_month, `count`, last_reset_date) VALUES (?, ?, 0, ?)",
			domain.CivilCounterName, monthKey, now,
		)
		if err != nil {
			return 0, false, fmt.Errorf("initializing order counter: %w", err)
		}
	case err != nil:
		return 0, false, fmt.Errorf("locking order counter: %w", err)
	case counter.NeedsReset(now):
		rolled = true
		_, err = tx.ExecContext(ctx,
			"UPDATE order_counters SET last_month = ?, `count` = 0, last_reset_date = ? WHERE name = ?",
			monthKey, now, domain.CivilCounterName,
		)
		if err != nil {
			return 0, false, fmt.Errorf("resetting order counter: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE order_counters SET `count` = `count` + 1 WHERE name = ?",
		domain.CivilCounterName,
	)
	if err != nil {
		return 0, false, fmt.Errorf("incrementing order counter: %w", err)
	}

	err = tx.QueryRowContext(ctx,
		"SELECT `count` FROM order_counters WHERE name = ?",
		domain.CivilCounterName,
	).Scan(&n)
	if err != nil {
		return 0, false, fmt.Errorf("reading order counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("committing counter transaction: %w", err)
	}
	return n, rolled, nil
}
