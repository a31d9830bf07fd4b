package repository

import (
	"context"
	"database/sql"
	"fmt"

	"darzi/internal/domain"
	"darzi/internal/errors"
)

type MySQLCompanyRepository struct {
	db *sql.DB
}

func NewMySQLCompanyRepository(db *sql.DB) *MySQLCompanyRepository {
	return &MySQLCompanyRepository{db: db}
}

const companyColumns = `id, name, contact_person, phone, email, address,
	total_orders, created_at, updated_at`

func scanCompany(row interface{ Scan(...interface{}) error }) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.ContactPerson, &c.Phone, &c.Email, &c.Address,
		&c.TotalOrders, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MySQLCompanyRepository) Insert(ctx context.Context, c *domain.Company) (int64, error) {
	query := `
		INSERT INTO companies (name, contact_person, phone, email, address,
			total_orders, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		c.Name, c.ContactPerson, c.Phone, c.Email, c.Address,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting company: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted company id: %w", err)
	}
	return id, nil
}

func (r *MySQLCompanyRepository) FindByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = ?`

	c, err := scanCompany(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("company with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying company by id: %w", err)
	}
	return c, nil
}

func (r *MySQLCompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying companies: %w", err)
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating companies: %w", err)
	}
	return companies, nil
}

// Delete removes the company; its employee orders go with it through the
// foreign key cascade.
func (r *MySQLCompanyRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("company with id %d not found", id))
	}
	return nil
}
