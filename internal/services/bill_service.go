package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"billing-backend/internal/models"
	"billing-backend/internal/normalize"
	"billing-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// BillStore is the persistence contract the dispatcher layer implements.
// One round-trip per call, no retries; the backend owns id assignment and
// result ordering.
type BillStore interface {
	Insert(ctx context.Context, rec *models.BillRecord) (int, error)
	Update(ctx context.Context, id int, rec *models.BillRecord) error
	GetByID(ctx context.Context, id int) (*models.Bill, error)
	List(ctx context.Context) ([]models.Bill, error)
	Search(ctx context.Context, f models.BillSearchFilter) ([]models.Bill, error)
	Delete(ctx context.Context, id int) error
}

type BillService struct {
	Store BillStore
}

func NewBillService(store BillStore) *BillService {
	return &BillService{Store: store}
}

// normalizeRecord builds the canonical stored record from a loose payload,
// collecting field-level validation problems. The total falls back to
// sum(qty*price) when the caller supplies none.
func normalizeRecord(req *models.SaveBillRequest) (*models.BillRecord, map[string]string) {
	fields := make(map[string]string)

	billNo := strings.TrimSpace(req.BillNo)
	if billNo == "" {
		fields["billNo"] = "bill number is required"
	}

	rawDate := req.BillDate
	if strings.TrimSpace(rawDate) == "" {
		rawDate = req.Date
	}
	billDate := normalize.Date(rawDate)
	if billDate == "" {
		fields["billDate"] = "bill date is required"
	}

	customerID, ok := normalize.PositiveInt(req.CustomerID)
	if !ok {
		fields["customerId"] = "customer id must be a positive integer"
	}

	items := normalize.Items(req.Items)
	if len(items) == 0 {
		fields["items"] = "at least one non-empty item is required"
	}

	if len(fields) > 0 {
		return nil, fields
	}

	total := normalize.ComputeTotal(items)
	if req.TotalAmount != nil {
		total = normalize.Amount(req.TotalAmount)
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		// items is a plain slice of string structs; this cannot fail
		itemsJSON = []byte("[]")
	}

	return &models.BillRecord{
		BillNo:          billNo,
		BillDate:        billDate,
		CustomerID:      customerID,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerAddress: strings.TrimSpace(req.CustomerAddress),
		TotalAmount:     total,
		ItemsJSON:       string(itemsJSON),
	}, nil
}

// Save validates and stores a new bill, returning the assigned id. Invalid
// payloads are rejected before the backend is touched.
func (s *BillService) Save(ctx context.Context, req *models.SaveBillRequest) (int, error) {
	rec, fields := normalizeRecord(req)
	if fields != nil {
		return 0, apperror.NewValidationError(fields)
	}

	id, err := s.Store.Insert(ctx, rec)
	if err != nil {
		return 0, apperror.NewBackendError(err)
	}
	return id, nil
}

// Update is a full-record replace, not a merge.
func (s *BillService) Update(ctx context.Context, idValue interface{}, req *models.SaveBillRequest) error {
	id, ok := normalize.PositiveInt(idValue)
	if !ok {
		return apperror.NewValidationError(map[string]string{"id": "bill id must be a positive integer"})
	}

	rec, fields := normalizeRecord(req)
	if fields != nil {
		return apperror.NewValidationError(fields)
	}

	if err := s.Store.Update(ctx, id, rec); err != nil {
		return apperror.NewBackendError(err)
	}
	return nil
}

func (s *BillService) Get(ctx context.Context, idValue interface{}) (*models.Bill, error) {
	id, ok := normalize.PositiveInt(idValue)
	if !ok {
		return nil, apperror.NewValidationError(map[string]string{"id": "bill id must be a positive integer"})
	}

	bill, err := s.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Bill")
		}
		return nil, apperror.NewBackendError(err)
	}
	return bill, nil
}

func (s *BillService) List(ctx context.Context) ([]models.Bill, error) {
	bills, err := s.Store.List(ctx)
	if err != nil {
		return nil, apperror.NewBackendError(err)
	}
	return bills, nil
}

// Search applies any subset of the filters; an absent filter is
// unconstrained, so a filterless search equals List.
func (s *BillService) Search(ctx context.Context, billNo, customerName, customerID, fromDate, toDate string) ([]models.Bill, error) {
	f := models.BillSearchFilter{
		BillNo:       strings.TrimSpace(billNo),
		CustomerName: strings.TrimSpace(customerName),
		FromDate:     normalize.Date(fromDate),
		ToDate:       normalize.Date(toDate),
	}
	if id, ok := normalize.PositiveInt(customerID); ok {
		f.CustomerID = id
	}

	bills, err := s.Store.Search(ctx, f)
	if err != nil {
		return nil, apperror.NewBackendError(err)
	}
	return bills, nil
}

func (s *BillService) Delete(ctx context.Context, idValue interface{}) error {
	id, ok := normalize.PositiveInt(idValue)
	if !ok {
		return apperror.NewValidationError(map[string]string{"id": "bill id must be a positive integer"})
	}

	if err := s.Store.Delete(ctx, id); err != nil {
		return apperror.NewBackendError(err)
	}
	return nil
}

// NextBillNumber derives the next zero-padded bill number from a fresh
// listing on every call. It is deliberately never cached: a stale stored
// value was a recurring bug in earlier versions of this flow.
func (s *BillService) NextBillNumber(ctx context.Context) (string, error) {
	bills, err := s.Store.List(ctx)
	if err != nil {
		return "", apperror.NewBackendError(err)
	}

	max := 0
	for _, b := range bills {
		if n := normalize.BillNumberDigits(b.BillNo); n > max {
			max = n
		}
	}
	return fmt.Sprintf("%03d", max+1), nil
}
