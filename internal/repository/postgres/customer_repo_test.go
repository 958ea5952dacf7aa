package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customerColumns = []string{
	"sno", "customer_name", "age", "phone", "location", "created_date", "created_time",
}

func int32Ptr(v int32) *int32    { return &v }
func stringPtr(v string) *string { return &v }

func TestCustomerRepository_ListAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows(customerColumns).
		AddRow(int64(1), "Alice", int32Ptr(30), stringPtr("555-0100"), "NY", "2023-01-01", "09:15:00").
		AddRow(int64(2), "Bob", int32Ptr(41), stringPtr("555-0101"), "LA", "2023-02-01", "17:45:30")

	mock.ExpectQuery(regexp.QuoteMeta("FROM customer")).WillReturnRows(rows)

	repo := NewCustomerRepository(mock)
	customers, err := repo.ListAll(context.Background())
	require.NoError(t, err)

	require.Len(t, customers, 2)
	assert.Equal(t, int64(1), customers[0].Sno)
	assert.Equal(t, "Alice", customers[0].CustomerName)
	assert.Equal(t, int32(30), *customers[0].Age)
	assert.Equal(t, "555-0100", *customers[0].Phone)
	assert.Equal(t, "2023-02-01", customers[1].CreatedDate)
	assert.Equal(t, "17:45:30", customers[1].CreatedTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_ListAll_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM customer")).
		WillReturnRows(pgxmock.NewRows(customerColumns))

	customers, err := NewCustomerRepository(mock).ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_ListAll_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM customer")).
		WillReturnError(errors.New("relation \"customer\" does not exist"))

	_, err = NewCustomerRepository(mock).ListAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list customers")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectPing()

	assert.NoError(t, NewCustomerRepository(mock).Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
