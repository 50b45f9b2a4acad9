package models

import "time"

// LineItem is one row of a bill. Qty and price stay display strings so
// "12.50" round-trips visually; they are parsed as numbers for computation.
type LineItem struct {
	Name  string `json:"name"`
	Qty   string `json:"qty"`
	Price string `json:"price"`
}

// Bill is the API-facing bill shape. Customer name and address are snapshot
// copies taken at save time; a later customer edit does not change them.
type Bill struct {
	ID              int        `json:"id"`
	BillNo          string     `json:"billNo"`
	BillDate        string     `json:"billDate"`
	CustomerID      int        `json:"customerId"`
	CustomerName    string     `json:"customerName"`
	CustomerAddress string     `json:"customerAddress"`
	TotalAmount     float64    `json:"totalAmount"`
	Items           []LineItem `json:"items"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// SaveBillRequest is the loosely-typed payload the UI posts. Id-like and
// amount fields are interface{} because the client sends them as either
// JSON numbers or strings; items may arrive as an array or a JSON string.
// Everything goes through the normalize package before persistence.
type SaveBillRequest struct {
	BillNo          string      `json:"billNo"`
	BillDate        string      `json:"billDate"`
	Date            string      `json:"date"` // legacy alias for billDate
	CustomerID      interface{} `json:"customerId"`
	CustomerName    string      `json:"customerName"`
	CustomerAddress string      `json:"customerAddress"`
	TotalAmount     interface{} `json:"totalAmount"`
	Items           interface{} `json:"items"`
}

// BillRecord is a fully normalized bill ready for the persistence call.
type BillRecord struct {
	BillNo          string
	BillDate        string
	CustomerID      int
	CustomerName    string
	CustomerAddress string
	TotalAmount     float64
	ItemsJSON       string
}

// BillSearchFilter carries the optional SEARCH constraints. Empty string or
// zero means unconstrained; dates are canonical YYYY-MM-DD.
type BillSearchFilter struct {
	BillNo       string
	CustomerName string
	CustomerID   int
	FromDate     string
	ToDate       string
}
