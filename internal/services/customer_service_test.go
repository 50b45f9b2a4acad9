package services

import (
	"context"
	"testing"

	"billing-backend/internal/models"
	"billing-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type fakeCustomerStore struct {
	customers []models.Customer
	getErr    error

	updateCalls   int
	updateID      int
	updateName    string
	updateAddress string
	updateErr     error
}

func (f *fakeCustomerStore) List(ctx context.Context) ([]models.Customer, error) {
	return f.customers, nil
}

func (f *fakeCustomerStore) GetByID(ctx context.Context, id int) (*models.Customer, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.customers {
		if f.customers[i].ID == id {
			return &f.customers[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCustomerStore) Update(ctx context.Context, id int, name, address string) (*models.Customer, error) {
	f.updateCalls++
	f.updateID = id
	f.updateName = name
	f.updateAddress = address
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.Customer{ID: id, CustomerName: name, CustomerAddress: address}, nil
}

func TestCustomerGetMapsNoRowsToNotFound(t *testing.T) {
	svc := NewCustomerService(&fakeCustomerStore{})

	_, err := svc.Get(context.Background(), "5")
	require.True(t, apperror.IsNotFound(err))
	require.Equal(t, "Customer not found", apperror.Get(err).Message)
}

func TestCustomerGetRejectsInvalidID(t *testing.T) {
	svc := NewCustomerService(&fakeCustomerStore{})

	for _, id := range []interface{}{"abc", "0", "-3"} {
		_, err := svc.Get(context.Background(), id)
		require.True(t, apperror.IsValidation(err), "id %v", id)
	}
}

func TestCustomerUpdateRequiresName(t *testing.T) {
	store := &fakeCustomerStore{}
	svc := NewCustomerService(store)

	_, err := svc.Update(context.Background(), "1", &models.UpdateCustomerRequest{
		CustomerName: "   ",
	})
	require.True(t, apperror.IsValidation(err))
	require.Zero(t, store.updateCalls)
}

func TestCustomerUpdateTrimsAndPasses(t *testing.T) {
	store := &fakeCustomerStore{}
	svc := NewCustomerService(store)

	got, err := svc.Update(context.Background(), "2", &models.UpdateCustomerRequest{
		CustomerName:    " Sharma Traders ",
		CustomerAddress: " Main Road ",
	})
	require.NoError(t, err)
	require.Equal(t, 2, store.updateID)
	require.Equal(t, "Sharma Traders", got.CustomerName)
	require.Equal(t, "Main Road", got.CustomerAddress)
}

func TestCustomerUpdateMapsNoRowsToNotFound(t *testing.T) {
	store := &fakeCustomerStore{updateErr: pgx.ErrNoRows}
	svc := NewCustomerService(store)

	_, err := svc.Update(context.Background(), "9", &models.UpdateCustomerRequest{
		CustomerName: "Someone",
	})
	require.True(t, apperror.IsNotFound(err))
}
