// internal/repository/postgres/customer_repo.go
package postgres

import (
	"context"
	"fmt"

	"customer-datatable/internal/domain/customer"
)

const listCustomersQuery = `
		SELECT sno, COALESCE(customer_name, ''), age, phone, COALESCE(location, ''),
		       COALESCE(created_date::text, ''), COALESCE(created_time::text, '')
		FROM customer
	`

type CustomerRepository struct {
	db Querier
}

func NewCustomerRepository(db Querier) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// ListAll returns every row of the customer table in table order.
func (r *CustomerRepository) ListAll(ctx context.Context) ([]customer.Customer, error) {
	rows, err := r.db.Query(ctx, listCustomersQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []customer.Customer{}
	for rows.Next() {
		var c customer.Customer
		err := rows.Scan(
			&c.Sno, &c.CustomerName, &c.Age, &c.Phone, &c.Location,
			&c.CreatedDate, &c.CreatedTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, nil
}

// Ping checks the database connection.
func (r *CustomerRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
