package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"billing-backend/internal/models"
	"billing-backend/internal/services"
	"billing-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type BillHandler struct {
	Service *services.BillService
	PDF     *services.PDFService
}

func NewBillHandler(s *services.BillService, pdf *services.PDFService) *BillHandler {
	return &BillHandler{Service: s, PDF: pdf}
}

// SaveBill stores a new bill and returns the assigned id.
func (h *BillHandler) SaveBill(w http.ResponseWriter, r *http.Request) {
	var req models.SaveBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.Service.Save(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Bill saved successfully",
		"id":      id,
	})
}

func (h *BillHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	bill, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, bill)
}

func (h *BillHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.Service.List(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, bills)
}

// SearchBills filters by any subset of billNo, customerName, customerId,
// fromDate and toDate; with no filters it behaves like ListBills.
func (h *BillHandler) SearchBills(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bills, err := h.Service.Search(r.Context(),
		q.Get("billNo"),
		q.Get("customerName"),
		q.Get("customerId"),
		q.Get("fromDate"),
		q.Get("toDate"),
	)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, bills)
}

func (h *BillHandler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	var req models.SaveBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.Update(r.Context(), mux.Vars(r)["id"], &req); err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Bill updated successfully"})
}

func (h *BillHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Bill deleted successfully"})
}

// NextBillNumber recomputes max(billNo)+1 from a fresh listing on every
// call; the value is never cached server-side.
func (h *BillHandler) NextBillNumber(w http.ResponseWriter, r *http.Request) {
	next, err := h.Service.NextBillNumber(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"billNo": next})
}

// ExportPDF streams a server-rendered PDF of one bill.
func (h *BillHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	bill, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, err)
		return
	}

	data, err := h.PDF.RenderBill(bill)
	if err != nil {
		utils.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="bill-%d.pdf"`, bill.ID))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
