package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration-test database. Expects a MySQL instance
// on localhost:3306 with a 'darzi_test' schema; tests skip when it is not
// reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/darzi_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables, children first.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"employee_orders", "companies", "orders", "order_counters"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by the repository tests. Mirrors
// migrations/0001_init.up.sql.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrders := `
	CREATE TABLE IF NOT EXISTS orders (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		order_id VARCHAR(32) NOT NULL UNIQUE,
		name VARCHAR(100) NOT NULL,
		phone VARCHAR(30) NOT NULL,
		email VARCHAR(150) NOT NULL DEFAULT '',
		no_of_sets INT NOT NULL DEFAULT 1,
		shirt_amount DECIMAL(10,2) NOT NULL DEFAULT 500.00,
		pant_amount DECIMAL(10,2) NOT NULL DEFAULT 400.00,
		total_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		payment_method VARCHAR(50) NOT NULL DEFAULT 'Cash',
		shirt JSON NOT NULL,
		pant JSON NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'Pending',
		order_date CHAR(10) NOT NULL,
		created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
		INDEX idx_orders_date (order_date)
	)`

	createCompanies := `
	CREATE TABLE IF NOT EXISTS companies (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		contact_person VARCHAR(100) NOT NULL DEFAULT '',
		phone VARCHAR(30) NOT NULL DEFAULT '',
		email VARCHAR(150) NOT NULL DEFAULT '',
		address VARCHAR(255) NOT NULL DEFAULT '',
		total_orders BIGINT NOT NULL DEFAULT 0,
		created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3)
	)`

	createEmployeeOrders := `
	CREATE TABLE IF NOT EXISTS employee_orders (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		company_id BIGINT NOT NULL,
		order_id VARCHAR(32) NOT NULL,
		name VARCHAR(100) NOT NULL,
		phone VARCHAR(30) NOT NULL,
		email VARCHAR(150) NOT NULL DEFAULT '',
		position VARCHAR(50) NOT NULL DEFAULT 'Employee',
		no_of_sets INT NOT NULL DEFAULT 1,
		shirt_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		pant_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		total_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		payment_method VARCHAR(50) NOT NULL DEFAULT 'Cash',
		shirt JSON NOT NULL,
		pant JSON NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'Pending',
		order_date CHAR(10) NOT NULL,
		created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
		FOREIGN KEY (company_id) REFERENCES companies(id) ON DELETE CASCADE,
		INDEX idx_employee_orders_company (company_id, created_at)
	)`

	createCounters := `
	CREATE TABLE IF NOT EXISTS order_counters (
		name VARCHAR(32) NOT NULL PRIMARY KEY,
		last_month CHAR(7) NOT NULL,
		` + "`count`" + ` BIGINT NOT NULL DEFAULT 0,
		last_reset_date DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"orders", createOrders},
		{"companies", createCompanies},
		{"employee_orders", createEmployeeOrders},
		{"order_counters", createCounters},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
