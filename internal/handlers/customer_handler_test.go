package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"billing-backend/internal/models"
	"billing-backend/internal/services"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type stubCustomerStore struct {
	customers []models.Customer
}

func (s *stubCustomerStore) List(ctx context.Context) ([]models.Customer, error) {
	return s.customers, nil
}

func (s *stubCustomerStore) GetByID(ctx context.Context, id int) (*models.Customer, error) {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return &s.customers[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubCustomerStore) Update(ctx context.Context, id int, name, address string) (*models.Customer, error) {
	return &models.Customer{ID: id, CustomerName: name, CustomerAddress: address}, nil
}

func newCustomerRouter(store *stubCustomerStore) *mux.Router {
	h := NewCustomerHandler(services.NewCustomerService(store))

	r := mux.NewRouter()
	r.HandleFunc("/customers", h.ListCustomers).Methods("GET")
	r.HandleFunc("/customers/{id}", h.GetCustomer).Methods("GET")
	r.HandleFunc("/customers/{id}", h.UpdateCustomer).Methods("PUT")
	return r
}

func TestListCustomers(t *testing.T) {
	router := newCustomerRouter(&stubCustomerStore{customers: []models.Customer{
		{ID: 1, CustomerName: "Sharma Traders", CustomerAddress: "Main Road"},
	}})

	req := httptest.NewRequest("GET", "/customers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var customers []models.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customers))
	require.Len(t, customers, 1)
	require.Equal(t, "Sharma Traders", customers[0].CustomerName)
}

func TestGetCustomerFound(t *testing.T) {
	router := newCustomerRouter(&stubCustomerStore{customers: []models.Customer{
		{ID: 2, CustomerName: "Gupta Stores"},
	}})

	req := httptest.NewRequest("GET", "/customers/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var customer models.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customer))
	require.Equal(t, "Gupta Stores", customer.CustomerName)
}

func TestGetCustomerMissingReturnsNullBody(t *testing.T) {
	router := newCustomerRouter(&stubCustomerStore{})

	req := httptest.NewRequest("GET", "/customers/9", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestGetCustomerInvalidID(t *testing.T) {
	router := newCustomerRouter(&stubCustomerStore{})

	req := httptest.NewRequest("GET", "/customers/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCustomerReturnsUpdatedRecord(t *testing.T) {
	router := newCustomerRouter(&stubCustomerStore{})

	body := `{"customerName": "New Name", "customerAddress": "New Road"}`
	req := httptest.NewRequest("PUT", "/customers/3", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var customer models.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customer))
	require.Equal(t, 3, customer.ID)
	require.Equal(t, "New Name", customer.CustomerName)
}

func TestUpdateCustomerRequiresName(t *testing.T) {
	router := newCustomerRouter(&stubCustomerStore{})

	req := httptest.NewRequest("PUT", "/customers/3", strings.NewReader(`{"customerName": ""}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
