package models

import "time"

// Customer is a live customer record. Bills keep their own snapshot of the
// name and address, so edits here never rewrite history.
type Customer struct {
	ID              int        `json:"id"`
	CustomerName    string     `json:"customerName"`
	CustomerAddress string     `json:"customerAddress"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

type UpdateCustomerRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
}
