package domain

import "time"

// Company is a bulk customer whose employee orders are tracked under it.
// TotalOrders mirrors the count of live employee orders and is adjusted in
// the same transaction that creates or deletes one.
type Company struct {
	ID            int64
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	TotalOrders   int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
