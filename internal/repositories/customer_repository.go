package repositories

import (
	"context"

	"billing-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Customer calls use the same positional pattern as bills with a smaller
// 4-slot contract: command, id, customerName, customerAddress.
const spCustomers = `SELECT * FROM sp_customers($1,$2,$3,$4)`

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// List returns all active customers (soft-deleted rows are filtered by the
// backend routine).
func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	rows, err := r.DB.Query(ctx, spCustomers, "GET_ALL", nil, nil, nil)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.CustomerName, &c.CustomerAddress); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*models.Customer, error) {
	var c models.Customer
	err := r.DB.QueryRow(ctx, `SELECT * FROM sp_getcustomerbyid($1)`, id).
		Scan(&c.ID, &c.CustomerName, &c.CustomerAddress)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update is a full-record replace returning the updated row.
func (r *CustomerRepository) Update(ctx context.Context, id int, name, address string) (*models.Customer, error) {
	var c models.Customer
	err := r.DB.QueryRow(ctx, spCustomers, "UPDATE", id, name, address).
		Scan(&c.ID, &c.CustomerName, &c.CustomerAddress)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
