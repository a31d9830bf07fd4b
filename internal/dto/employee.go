package dto

import (
	"time"

	"darzi/internal/domain"
)

// CreateEmployeeOrderRequest carries a company-scoped order. An invalid
// position normalizes to Employee rather than failing.
type CreateEmployeeOrderRequest struct {
	CompanyID     int64             `json:"companyId"`
	OrderID       string            `json:"orderId"`
	Name          string            `json:"name"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email"`
	Position      string            `json:"position"`
	NoOfSets      int               `json:"noOfSets"`
	ShirtAmount   float64           `json:"shirtAmount"`
	PantAmount    float64           `json:"pantAmount"`
	PaymentMethod string            `json:"paymentMethod"`
	Shirt         map[string]string `json:"shirt"`
	Pant          map[string]string `json:"pant"`
}

// UpdateEmployeeOrderRequest replaces business fields; companyId is never
// taken from the payload.
type UpdateEmployeeOrderRequest struct {
	Name          string            `json:"name"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email"`
	Position      string            `json:"position"`
	NoOfSets      int               `json:"noOfSets"`
	ShirtAmount   float64           `json:"shirtAmount"`
	PantAmount    float64           `json:"pantAmount"`
	PaymentMethod string            `json:"paymentMethod"`
	Shirt         map[string]string `json:"shirt"`
	Pant          map[string]string `json:"pant"`
	Status        string            `json:"status"`
}

type EmployeeOrderResponse struct {
	ID            int64             `json:"id"`
	CompanyID     int64             `json:"companyId"`
	OrderID       string            `json:"orderId"`
	Name          string            `json:"name"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email"`
	Position      string            `json:"position"`
	NoOfSets      int               `json:"noOfSets"`
	ShirtAmount   float64           `json:"shirtAmount"`
	PantAmount    float64           `json:"pantAmount"`
	TotalAmount   float64           `json:"totalAmount"`
	PaymentMethod string            `json:"paymentMethod"`
	Shirt         map[string]string `json:"shirt"`
	Pant          map[string]string `json:"pant"`
	Status        string            `json:"status"`
	Date          string            `json:"date"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func FromEmployeeOrder(o domain.EmployeeOrder) EmployeeOrderResponse {
	return EmployeeOrderResponse{
		ID:            o.ID,
		CompanyID:     o.CompanyID,
		OrderID:       o.OrderID,
		Name:          o.Name,
		Phone:         o.Phone,
		Email:         o.Email,
		Position:      o.Position,
		NoOfSets:      o.NoOfSets,
		ShirtAmount:   o.ShirtAmount,
		PantAmount:    o.PantAmount,
		TotalAmount:   o.TotalAmount,
		PaymentMethod: o.PaymentMethod,
		Shirt:         o.Shirt,
		Pant:          o.Pant,
		Status:        o.Status,
		Date:          o.Date,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func FromEmployeeOrders(orders []domain.EmployeeOrder) []EmployeeOrderResponse {
	out := make([]EmployeeOrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromEmployeeOrder(o)
	}
	return out
}

type NextEmployeeOrderIDResponse struct {
	NextID string `json:"nextId"`
}

type PositionsResponse struct {
	Positions []string `json:"positions"`
}
