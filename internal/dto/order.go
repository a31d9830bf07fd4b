package dto

import (
	"time"

	"darzi/internal/domain"
)

// CreateOrderRequest carries a civil order intake form. Zero amounts and
// sets take the shop defaults; an empty orderId gets a server-generated
// fallback.
type CreateOrderRequest struct {
	OrderID       string            `json:"orderId"`
	Name          string            `json:"name"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email"`
	NoOfSets      int               `json:"noOfSets"`
	ShirtAmount   float64           `json:"shirtAmount"`
	PantAmount    float64           `json:"pantAmount"`
	PaymentMethod string            `json:"paymentMethod"`
	Shirt         map[string]string `json:"shirt"`
	Pant          map[string]string `json:"pant"`
}

// UpdateOrderRequest replaces an order's business fields. Identifier,
// creation date and timestamps stay server-managed.
type UpdateOrderRequest struct {
	Name          string            `json:"name"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email"`
	NoOfSets      int               `json:"noOfSets"`
	ShirtAmount   float64           `json:"shirtAmount"`
	PantAmount    float64           `json:"pantAmount"`
	PaymentMethod string            `json:"paymentMethod"`
	Shirt         map[string]string `json:"shirt"`
	Pant          map[string]string `json:"pant"`
	Status        string            `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	ID            int64             `json:"id"`
	OrderID       string            `json:"orderId"`
	Name          string            `json:"name"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email"`
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

func FromOrder(o domain.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		OrderID:       o.OrderID,
		Name:          o.Name,
		Phone:         o.Phone,
		Email:         o.Email,
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

func FromOrders(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromOrder(o)
	}
	return out
}

type NextOrderIDResponse struct {
	NextID       string `json:"nextId"`
	MonthRolled  bool   `json:"monthRolled"`
	CurrentMonth string `json:"currentMonth"`
}
