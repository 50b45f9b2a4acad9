package services

import (
	"bytes"
	"fmt"

	"billing-backend/internal/models"
	"billing-backend/internal/normalize"
	"billing-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// PDFService renders a bill as an A4 PDF, mirroring the printed bill layout
// the UI produces.
type PDFService struct {
	ShopName string
}

func NewPDFService(shopName string) *PDFService {
	if shopName == "" {
		shopName = "Cash / Credit Bill"
	}
	return &PDFService{ShopName: shopName}
}

func (s *PDFService) RenderBill(bill *models.Bill) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, s.ShopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// Bill header box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Bill Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Bill No: %s", bill.BillNo), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", bill.BillDate), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Customer: %s", bill.CustomerName), "LB", 0, "L", false, 0, "")
	address := bill.CustomerAddress
	if len(address) > 45 {
		address = address[:42] + "..."
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Address: %s", address), "RB", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Item table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(15, 7, "S.No", "1", 0, "C", true, 0, "")
	pdf.CellFormat(85, 7, "Item", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Amount", "1", 1, "C", true, 0, "")

	// Item rows
	pdf.SetFont("Arial", "", 10)
	for i, it := range bill.Items {
		name := it.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		amount := normalize.ParseNumeric(it.Qty) * normalize.ParseNumeric(it.Price)
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(85, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, it.Qty, "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, it.Price, "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", amount), "1", 1, "R", false, 0, "")
	}

	// Total row
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(160, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", bill.TotalAmount), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(190, 8, fmt.Sprintf("Total in words: %s", normalize.AmountInWords(bill.TotalAmount)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
