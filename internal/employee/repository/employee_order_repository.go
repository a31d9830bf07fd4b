package repository

import (
	"context"
	"database/sql"
	"fmt"

	"darzi/internal/domain"
	"darzi/internal/errors"
)

type MySQLEmployeeOrderRepository struct {
	db *sql.DB
}

func NewMySQLEmployeeOrderRepository(db *sql.DB) *MySQLEmployeeOrderRepository {
	return &MySQLEmployeeOrderRepository{db: db}
}

const employeeOrderColumns = `id, company_id, order_id, name, phone, email,
	position, no_of_sets, shirt_amount, pant_amount, total_amount,
	payment_method, shirt, pant, status, order_date, created_at, updated_at`

func scanEmployeeOrder(row interface{ Scan(...interface{}) error }) (*domain.EmployeeOrder, error) {
	var o domain.EmployeeOrder
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.OrderID, &o.Name, &o.Phone, &o.Email,
		&o.Position, &o.NoOfSets, &o.ShirtAmount, &o.PantAmount, &o.TotalAmount,
		&o.PaymentMethod, &o.Shirt, &o.Pant, &o.Status, &o.Date, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Insert writes the order and bumps the owning company's total_orders in
// one transaction, keeping the mirror count exact.
func (r *MySQLEmployeeOrderRepository) Insert(ctx context.Context, o *domain.EmployeeOrder) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	// no-op after commit
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE companies SET total_orders = total_orders + 1, updated_at = ? WHERE id = ?`,
		o.UpdatedAt, o.CompanyID,
	)
	if err != nil {
		return 0, fmt.Errorf("incrementing company total orders: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return 0, errors.NewNotFoundError(fmt.Sprintf("company with id %d not found", o.CompanyID))
	}

	result, err = tx.ExecContext(ctx, `
		INSERT INTO employee_orders (company_id, order_id, name, phone, email,
			position, no_of_sets, shirt_amount, pant_amount, total_amount,
			payment_method, shirt, pant, status, order_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		o.CompanyID, o.OrderID, o.Name, o.Phone, o.Email,
		o.Position, o.NoOfSets, o.ShirtAmount, o.PantAmount, o.TotalAmount,
		o.PaymentMethod, o.Shirt, o.Pant, o.Status, o.Date, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting employee order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted employee order id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return id, nil
}

func (r *MySQLEmployeeOrderRepository) FindByID(ctx context.Context, id int64) (*domain.EmployeeOrder, error) {
	query := `SELECT ` + employeeOrderColumns + ` FROM employee_orders WHERE id = ?`

	o, err := scanEmployeeOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("employee order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying employee order by id: %w", err)
	}
	return o, nil
}

func (r *MySQLEmployeeOrderRepository) ListByCompany(ctx context.Context, companyID int64) ([]domain.EmployeeOrder, error) {
	query := `SELECT ` + employeeOrderColumns + `
		FROM employee_orders WHERE company_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("querying employee orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.EmployeeOrder{}
	for rows.Next() {
		o, err := scanEmployeeOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning employee order: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employee orders: %w", err)
	}
	return orders, nil
}

// LatestOrderID returns the order id of the company's most recently created
// employee order, or "" when it has none. Feeds the derived per-company id
// scheme; not atomic against concurrent creates.
func (r *MySQLEmployeeOrderRepository) LatestOrderID(ctx context.Context, companyID int64) (string, error) {
	var orderID string
	err := r.db.QueryRowContext(ctx,
		`SELECT order_id FROM employee_orders WHERE company_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		companyID,
	).Scan(&orderID)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying latest employee order id: %w", err)
	}
	return orderID, nil
}

func (r *MySQLEmployeeOrderRepository) Update(ctx context.Context, o *domain.EmployeeOrder) error {
	query := `
		UPDATE employee_orders
		SET name = ?, phone = ?, email = ?, position = ?, no_of_sets = ?,
			shirt_amount = ?, pant_amount = ?, payment_method = ?,
			shirt = ?, pant = ?, status = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		o.Name, o.Phone, o.Email, o.Position, o.NoOfSets,
		o.ShirtAmount, o.PantAmount, o.PaymentMethod,
		o.Shirt, o.Pant, o.Status, o.UpdatedAt, o.ID,
	)
	if err != nil {
		return fmt.Errorf("updating employee order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("employee order with id %d not found", o.ID))
	}
	return nil
}

func (r *MySQLEmployeeOrderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE employee_orders SET status = ?, updated_at = NOW(3) WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating employee order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("employee order with id %d not found", id))
	}
	return nil
}

// Delete removes the order and decrements the owning company's total_orders
// in one transaction.
func (r *MySQLEmployeeOrderRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	// no-op after commit
	defer tx.Rollback()

	var companyID int64
	err = tx.QueryRowContext(ctx,
		`SELECT company_id FROM employee_orders WHERE id = ? FOR UPDATE`, id,
	).Scan(&companyID)
	if err == sql.ErrNoRows {
		return errors.NewNotFoundError(fmt.Sprintf("employee order with id %d not found", id))
	}
	if err != nil {
		return fmt.Errorf("querying employee order company: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM employee_orders WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting employee order: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE companies SET total_orders = total_orders - 1, updated_at = NOW(3) WHERE id = ?`,
		companyID,
	)
	if err != nil {
		return fmt.Errorf("decrementing company total orders: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
