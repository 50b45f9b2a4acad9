package services

import (
	"context"
	"errors"
	"strings"

	"billing-backend/internal/cache"
	"billing-backend/internal/models"
	"billing-backend/internal/normalize"
	"billing-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

type CustomerStore interface {
	List(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id int) (*models.Customer, error)
	Update(ctx context.Context, id int, name, address string) (*models.Customer, error)
}

type CustomerService struct {
	Store CustomerStore
}

func NewCustomerService(store CustomerStore) *CustomerService {
	return &CustomerService{Store: store}
}

// List returns all active customers, served from the Redis cache when warm.
func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	if customers, ok := cache.GetCustomerList(ctx); ok {
		return customers, nil
	}

	customers, err := s.Store.List(ctx)
	if err != nil {
		return nil, apperror.NewBackendError(err)
	}

	cache.SetCustomerList(ctx, customers)
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, idValue interface{}) (*models.Customer, error) {
	id, ok := normalize.PositiveInt(idValue)
	if !ok {
		return nil, apperror.NewValidationError(map[string]string{"id": "customer id must be a positive integer"})
	}

	customer, err := s.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Customer")
		}
		return nil, apperror.NewBackendError(err)
	}
	return customer, nil
}

// Update is a full-record replace of name and address. The bill snapshots
// taken before this call are untouched by design.
func (s *CustomerService) Update(ctx context.Context, idValue interface{}, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	id, ok := normalize.PositiveInt(idValue)
	if !ok {
		return nil, apperror.NewValidationError(map[string]string{"id": "customer id must be a positive integer"})
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, apperror.NewValidationError(map[string]string{"customerName": "customer name is required"})
	}

	customer, err := s.Store.Update(ctx, id, name, strings.TrimSpace(req.CustomerAddress))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Customer")
		}
		return nil, apperror.NewBackendError(err)
	}

	cache.InvalidateCustomerList(ctx)
	return customer, nil
}
