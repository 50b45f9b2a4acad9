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

type stubBillStore struct {
	insertID  int
	insertErr error
	bill      *models.Bill
	getErr    error
	bills     []models.Bill
}

func (s *stubBillStore) Insert(ctx context.Context, rec *models.BillRecord) (int, error) {
	return s.insertID, s.insertErr
}
func (s *stubBillStore) Update(ctx context.Context, id int, rec *models.BillRecord) error {
	return nil
}
func (s *stubBillStore) GetByID(ctx context.Context, id int) (*models.Bill, error) {
	return s.bill, s.getErr
}
func (s *stubBillStore) List(ctx context.Context) ([]models.Bill, error) {
	return s.bills, nil
}
func (s *stubBillStore) Search(ctx context.Context, f models.BillSearchFilter) ([]models.Bill, error) {
	return s.bills, nil
}
func (s *stubBillStore) Delete(ctx context.Context, id int) error { return nil }

func newBillRouter(store *stubBillStore) *mux.Router {
	h := NewBillHandler(services.NewBillService(store), services.NewPDFService(""))

	r := mux.NewRouter()
	r.HandleFunc("/bills", h.ListBills).Methods("GET")
	r.HandleFunc("/bills", h.SaveBill).Methods("POST")
	r.HandleFunc("/bills/search", h.SearchBills).Methods("GET")
	r.HandleFunc("/bills/next-number", h.NextBillNumber).Methods("GET")
	r.HandleFunc("/bills/{id}", h.GetBill).Methods("GET")
	r.HandleFunc("/bills/{id}", h.UpdateBill).Methods("PUT")
	r.HandleFunc("/bills/{id}", h.DeleteBill).Methods("DELETE")
	r.HandleFunc("/bills/{id}/pdf", h.ExportPDF).Methods("GET")
	return r
}

func TestSaveBillSuccess(t *testing.T) {
	router := newBillRouter(&stubBillStore{insertID: 17})

	body := `{
		"billNo": "001",
		"billDate": "5-1-2024",
		"customerId": "3",
		"customerName": "Sharma Traders",
		"items": [{"name": "Rice", "qty": "2", "price": "50"}]
	}`
	req := httptest.NewRequest("POST", "/bills", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Bill saved successfully", resp["message"])
	require.Equal(t, float64(17), resp["id"])
}

func TestSaveBillValidationErrorShape(t *testing.T) {
	router := newBillRouter(&stubBillStore{})

	req := httptest.NewRequest("POST", "/bills", strings.NewReader(`{"billNo": ""}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Message)
	require.Contains(t, resp.Fields, "billNo")
	require.Contains(t, resp.Fields, "items")
}

func TestSaveBillMalformedJSON(t *testing.T) {
	router := newBillRouter(&stubBillStore{})

	req := httptest.NewRequest("POST", "/bills", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBillNotFound(t *testing.T) {
	router := newBillRouter(&stubBillStore{getErr: pgx.ErrNoRows})

	req := httptest.NewRequest("GET", "/bills/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Bill not found", resp["message"])
}

func TestGetBillInvalidID(t *testing.T) {
	router := newBillRouter(&stubBillStore{})

	req := httptest.NewRequest("GET", "/bills/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBillsReturnsArray(t *testing.T) {
	router := newBillRouter(&stubBillStore{bills: []models.Bill{
		{ID: 1, BillNo: "001", BillDate: "2024-01-05", TotalAmount: 100},
	}})

	req := httptest.NewRequest("GET", "/bills", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var bills []models.Bill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bills))
	require.Len(t, bills, 1)
	require.Equal(t, "001", bills[0].BillNo)
}

func TestNextBillNumberResponse(t *testing.T) {
	router := newBillRouter(&stubBillStore{bills: []models.Bill{
		{BillNo: "INV-041"},
	}})

	req := httptest.NewRequest("GET", "/bills/next-number", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "042", resp["billNo"])
}

func TestDeleteBillResponse(t *testing.T) {
	router := newBillRouter(&stubBillStore{})

	req := httptest.NewRequest("DELETE", "/bills/3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Bill deleted successfully", resp["message"])
}

func TestUpdateBillResponse(t *testing.T) {
	router := newBillRouter(&stubBillStore{})

	body := `{
		"billNo": "002",
		"billDate": "2024-02-01",
		"customerId": 4,
		"items": [{"name": "Sugar", "qty": "1", "price": "40"}]
	}`
	req := httptest.NewRequest("PUT", "/bills/2", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Bill updated successfully", resp["message"])
}

func TestExportPDFHeaders(t *testing.T) {
	router := newBillRouter(&stubBillStore{bill: &models.Bill{
		ID:          5,
		BillNo:      "005",
		BillDate:    "2024-01-05",
		TotalAmount: 100,
		Items:       []models.LineItem{{Name: "Rice", Qty: "2", Price: "50"}},
	}})

	req := httptest.NewRequest("GET", "/bills/5/pdf", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "bill-5.pdf")
	require.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}
