package http

import (
	"billing-backend/internal/handlers"
	"billing-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	billHandler *handlers.BillHandler,
	customerHandler *handlers.CustomerHandler,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	protectAPI bool,
) *mux.Router {
	r := mux.NewRouter()

	// Public probes
	r.HandleFunc("/", healthHandler.Root).Methods("GET")
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Authentication
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Bills
	billsAPI := r.PathPrefix("/bills").Subrouter()
	if protectAPI {
		billsAPI.Use(authMiddleware.Authenticate)
	}
	billsAPI.HandleFunc("", billHandler.ListBills).Methods("GET")
	billsAPI.HandleFunc("", billHandler.SaveBill).Methods("POST")
	billsAPI.HandleFunc("/search", billHandler.SearchBills).Methods("GET")
	billsAPI.HandleFunc("/next-number", billHandler.NextBillNumber).Methods("GET")
	billsAPI.HandleFunc("/{id}", billHandler.GetBill).Methods("GET")
	billsAPI.HandleFunc("/{id}", billHandler.UpdateBill).Methods("PUT")
	billsAPI.HandleFunc("/{id}", billHandler.DeleteBill).Methods("DELETE")
	billsAPI.HandleFunc("/{id}/pdf", billHandler.ExportPDF).Methods("GET")

	// Customers
	customersAPI := r.PathPrefix("/customers").Subrouter()
	if protectAPI {
		customersAPI.Use(authMiddleware.Authenticate)
	}
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.UpdateCustomer).Methods("PUT")

	return r
}
