package repositories

import (
	"context"
	"time"

	"billing-backend/internal/models"
	"billing-backend/internal/normalize"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The persistence backend is one multi-purpose stored routine keyed by a
// command tag in slot 1. Every call passes the same ordered 14-slot list;
// slots not meaningful to a command go down as explicit NULLs so the routine
// can branch on the command alone.
const spBills = `SELECT * FROM sp_bills($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`

// billParams names the positional slots so call sites never hand-index the
// 14-tuple. Nil pointers become SQL NULLs.
type billParams struct {
	Command            string
	ID                 *int
	BillNo             *string
	BillDate           *string
	CustomerID         *int
	CustomerName       *string
	CustomerAddress    *string
	TotalAmount        *float64
	ItemsJSON          *string
	SearchBillNo       *string
	SearchCustomerName *string
	SearchCustomerID   *int
	SearchFromDate     *string
	SearchToDate       *string
}

func (p billParams) args() []interface{} {
	return []interface{}{
		p.Command,
		p.ID,
		p.BillNo,
		p.BillDate,
		p.CustomerID,
		p.CustomerName,
		p.CustomerAddress,
		p.TotalAmount,
		p.ItemsJSON,
		p.SearchBillNo,
		p.SearchCustomerName,
		p.SearchCustomerID,
		p.SearchFromDate,
		p.SearchToDate,
	}
}

type BillRepository struct {
	DB *pgxpool.Pool
}

func NewBillRepository(db *pgxpool.Pool) *BillRepository {
	return &BillRepository{DB: db}
}

// scanBill maps one stored row to the API shape. The item-table column is
// decoded defensively: a corrupt value yields an empty item list instead of
// failing the row.
func scanBill(row pgx.Row) (*models.Bill, error) {
	var (
		bill       models.Bill
		billDate   time.Time
		customerID *int
		itemTable  []byte
		flag       int
	)

	err := row.Scan(&bill.ID, &bill.BillNo, &billDate, &customerID,
		&bill.CustomerName, &bill.CustomerAddress, &bill.TotalAmount,
		&itemTable, &flag, &bill.CreatedAt)
	if err != nil {
		return nil, err
	}

	bill.BillDate = billDate.Format("2006-01-02")
	if customerID != nil {
		bill.CustomerID = *customerID
	}
	bill.Items = normalize.DecodeItemTable(itemTable)
	return &bill, nil
}

func (r *BillRepository) queryBills(ctx context.Context, p billParams) ([]models.Bill, error) {
	rows, err := r.DB.Query(ctx, spBills, p.args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bills := make([]models.Bill, 0)
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, *bill)
	}
	return bills, rows.Err()
}

// Insert stores a normalized bill and returns the backend-assigned id.
func (r *BillRepository) Insert(ctx context.Context, rec *models.BillRecord) (int, error) {
	p := billParams{
		Command:         "INSERT",
		BillNo:          &rec.BillNo,
		BillDate:        &rec.BillDate,
		CustomerID:      &rec.CustomerID,
		CustomerName:    &rec.CustomerName,
		CustomerAddress: &rec.CustomerAddress,
		TotalAmount:     &rec.TotalAmount,
		ItemsJSON:       &rec.ItemsJSON,
	}

	bill, err := scanBill(r.DB.QueryRow(ctx, spBills, p.args()...))
	if err != nil {
		return 0, err
	}
	return bill.ID, nil
}

// Update replaces the full record; there are no partial patch semantics.
func (r *BillRepository) Update(ctx context.Context, id int, rec *models.BillRecord) error {
	p := billParams{
		Command:         "UPDATE",
		ID:              &id,
		BillNo:          &rec.BillNo,
		BillDate:        &rec.BillDate,
		CustomerID:      &rec.CustomerID,
		CustomerName:    &rec.CustomerName,
		CustomerAddress: &rec.CustomerAddress,
		TotalAmount:     &rec.TotalAmount,
		ItemsJSON:       &rec.ItemsJSON,
	}

	_, err := r.queryBills(ctx, p)
	return err
}

func (r *BillRepository) GetByID(ctx context.Context, id int) (*models.Bill, error) {
	p := billParams{Command: "GET_BY_ID", ID: &id}
	return scanBill(r.DB.QueryRow(ctx, spBills, p.args()...))
}

func (r *BillRepository) List(ctx context.Context) ([]models.Bill, error) {
	return r.queryBills(ctx, billParams{Command: "GET_ALL"})
}

func (r *BillRepository) Search(ctx context.Context, f models.BillSearchFilter) ([]models.Bill, error) {
	p := billParams{Command: "SEARCH"}
	if f.BillNo != "" {
		p.SearchBillNo = &f.BillNo
	}
	if f.CustomerName != "" {
		p.SearchCustomerName = &f.CustomerName
	}
	if f.CustomerID > 0 {
		p.SearchCustomerID = &f.CustomerID
	}
	if f.FromDate != "" {
		p.SearchFromDate = &f.FromDate
	}
	if f.ToDate != "" {
		p.SearchToDate = &f.ToDate
	}
	return r.queryBills(ctx, p)
}

func (r *BillRepository) Delete(ctx context.Context, id int) error {
	p := billParams{Command: "DELETE", ID: &id}
	_, err := r.queryBills(ctx, p)
	return err
}
