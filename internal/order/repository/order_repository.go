package repository

import (
	"context"
	"database/sql"
	"fmt"

	"darzi/internal/domain"
	"darzi/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const orderColumns = `id, order_id, name, phone, email, no_of_sets,
	shirt_amount, pant_amount, total_amount, payment_method,
	shirt, pant, status, order_date, created_at, updated_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.OrderID, &o.Name, &o.Phone, &o.Email, &o.NoOfSets,
		&o.ShirtAmount, &o.PantAmount, &o.TotalAmount, &o.PaymentMethod,
		&o.Shirt, &o.Pant, &o.Status, &o.Date, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, o *domain.Order) (int64, error) {
	query := `
		INSERT INTO orders (order_id, name, phone, email, no_of_sets,
			shirt_amount, pant_amount, total_amount, payment_method,
			shirt, pant, status, order_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		o.OrderID, o.Name, o.Phone, o.Email, o.NoOfSets,
		o.ShirtAmount, o.PantAmount, o.TotalAmount, o.PaymentMethod,
		o.Shirt, o.Pant, o.Status, o.Date, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted order id: %w", err)
	}
	return id, nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}
	return o, nil
}

func (r *MySQLOrderRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = ?`

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, orderID))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by order id: %w", err)
	}
	return o, nil
}

func (r *MySQLOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.queryOrders(ctx, query)
}

func (r *MySQLOrderRepository) ListByDate(ctx context.Context, date string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_date = ? ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, date)
}

// ListByMonth selects orders whose calendar date falls in the given
// "YYYY-MM" month.
func (r *MySQLOrderRepository) ListByMonth(ctx context.Context, monthKey string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_date LIKE ? ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, monthKey+"%")
}

func (r *MySQLOrderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}
	return orders, nil
}

func (r *MySQLOrderRepository) Update(ctx context.Context, o *domain.Order) error {
	query := `
		UPDATE orders
		SET name = ?, phone = ?, email = ?, no_of_sets = ?,
			shirt_amount = ?, pant_amount = ?, payment_method = ?,
			shirt = ?, pant = ?, status = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		o.Name, o.Phone, o.Email, o.NoOfSets,
		o.ShirtAmount, o.PantAmount, o.PaymentMethod,
		o.Shirt, o.Pant, o.Status, o.UpdatedAt, o.ID,
	)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", o.ID))
	}
	return nil
}

func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE orders SET status = ?, updated_at = NOW(3) WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	return nil
}

func (r *MySQLOrderRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	return nil
}
