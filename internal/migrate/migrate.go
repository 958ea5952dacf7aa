// Package migrate creates, drops and seeds the customer table.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

const createCustomerTable = `
	CREATE TABLE IF NOT EXISTS customer (
		sno SERIAL PRIMARY KEY,
		customer_name VARCHAR(255),
		age INTEGER,
		phone VARCHAR(20),
		location VARCHAR(255),
		created_date DATE DEFAULT CURRENT_DATE,
		created_time TIME DEFAULT CURRENT_TIME
	);
`

const dropCustomerTable = `DROP TABLE IF EXISTS customer;`

const tableExists = `SELECT to_regclass('public.customer') IS NOT NULL`

const countCustomers = `SELECT COUNT(*) FROM customer`

const insertCustomer = `
	INSERT INTO customer (customer_name, age, phone, location, created_date, created_time)
	VALUES ($1, $2, $3, $4, $5, $6)
`

// Status describes the customer table.
type Status struct {
	TableExists bool
	Rows        int64
}

// Migrator runs schema changes against a database/sql handle.
type Migrator struct {
	db     *sql.DB
	logger *zap.Logger
	rand   *rand.Rand
	now    func() time.Time
}

// New creates a Migrator. The seed makes generated rows reproducible.
func New(db *sql.DB, logger *zap.Logger, seed uint64) *Migrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Migrator{
		db:     db,
		logger: logger,
		rand:   rand.New(rand.NewPCG(seed, seed)),
		now:    time.Now,
	}
}

// Up creates the customer table if it does not exist.
func (m *Migrator) Up(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, createCustomerTable); err != nil {
		return fmt.Errorf("failed to create customer table: %w", err)
	}
	m.logger.Info("customer table ready")
	return nil
}

// Down drops the customer table and all its rows.
func (m *Migrator) Down(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, dropCustomerTable); err != nil {
		return fmt.Errorf("failed to drop customer table: %w", err)
	}
	m.logger.Info("customer table dropped")
	return nil
}

// Seed inserts n generated customers in a single transaction.
func (m *Migrator) Seed(ctx context.Context, n int) error {
	if n <= 0 {
		return fmt.Errorf("seed count must be positive, got %d", n)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := 0; i < n; i++ {
		c := m.generate()
		if _, err := tx.ExecContext(ctx, insertCustomer,
			c.name, c.age, c.phone, c.location, c.date, c.time); err != nil {
			return fmt.Errorf("failed to insert customer %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	m.logger.Info("customers seeded", zap.Int("count", n))
	return nil
}

// Status reports whether the table exists and how many rows it holds.
func (m *Migrator) Status(ctx context.Context) (Status, error) {
	var st Status
	if err := m.db.QueryRowContext(ctx, tableExists).Scan(&st.TableExists); err != nil {
		return st, fmt.Errorf("failed to check customer table: %w", err)
	}
	if !st.TableExists {
		return st, nil
	}

	if err := m.db.QueryRowContext(ctx, countCustomers).Scan(&st.Rows); err != nil {
		return st, fmt.Errorf("failed to count customers: %w", err)
	}
	return st, nil
}
