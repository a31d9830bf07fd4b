package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"darzi/internal/domain"
	"darzi/internal/dto"
	apperrors "darzi/internal/errors"
	"darzi/internal/stats"
)

type OrderRepository interface {
	Insert(ctx context.Context, o *domain.Order) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindByOrderID(ctx context.Context, orderID string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByDate(ctx context.Context, date string) ([]domain.Order, error)
	ListByMonth(ctx context.Context, monthKey string) ([]domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type CounterRepository interface {
	AllocateNextID(ctx context.Context, now time.Time) (n int64, rolled bool, err error)
}

type OrderService struct {
	orderRepo   OrderRepository
	counterRepo CounterRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewOrderService(orderRepo OrderRepository, counterRepo CounterRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		counterRepo: counterRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	var details []apperrors.ValidationDetail
	if strings.TrimSpace(req.Name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(req.Phone) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "phone", Message: "phone is required"})
	}
	if req.NoOfSets < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "noOfSets", Message: "noOfSets must not be negative"})
	}
	if req.ShirtAmount < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "shirtAmount", Message: "shirtAmount must not be negative"})
	}
	if req.PantAmount < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "pantAmount", Message: "pantAmount must not be negative"})
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("validation failed", details...)
	}

	now := s.now()
	orderID := req.OrderID
	if orderID == "" {
		orderID = domain.FallbackCivilOrderID(now)
	}

	if _, err := s.orderRepo.FindByOrderID(ctx, orderID); err == nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf("order id %s already exists", orderID))
	} else if _, ok := apperrors.IsNotFoundError(err); !ok {
		return nil, err
	}

	order := &domain.Order{
		OrderID:       orderID,
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		NoOfSets:      req.NoOfSets,
		ShirtAmount:   req.ShirtAmount,
		PantAmount:    req.PantAmount,
		PaymentMethod: req.PaymentMethod,
		Shirt:         domain.Measurements(req.Shirt),
		Pant:          domain.Measurements(req.Pant),
		Status:        domain.StatusPending,
		Date:          now.Format(domain.DateLayout),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	applyOrderDefaults(order)
	order.TotalAmount = domain.ComputeTotalAmount(order.ShirtAmount, order.PantAmount, order.NoOfSets)

	id, err := s.orderRepo.Insert(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	s.logger.Info("order created",
		zap.String("orderId", order.OrderID),
		zap.Float64("totalAmount", order.TotalAmount))
	return order, nil
}

func applyOrderDefaults(o *domain.Order) {
	if o.NoOfSets < 1 {
		o.NoOfSets = domain.DefaultNoOfSets
	}
	if o.ShirtAmount == 0 {
		o.ShirtAmount = domain.DefaultShirtAmount
	}
	if o.PantAmount == 0 {
		o.PantAmount = domain.DefaultPantAmount
	}
	if o.PaymentMethod == "" {
		o.PaymentMethod = domain.DefaultPaymentMethod
	}
	if o.Shirt == nil {
		o.Shirt = domain.Measurements{}
	}
	if o.Pant == nil {
		o.Pant = domain.Measurements{}
	}
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.List(ctx)
}

// ListCivil lists one exact day when date is given, otherwise the current
// calendar month (the dashboard's default view).
func (s *OrderService) ListCivil(ctx context.Context, date string) ([]domain.Order, error) {
	if date != "" {
		return s.orderRepo.ListByDate(ctx, date)
	}
	return s.orderRepo.ListByMonth(ctx, domain.MonthKey(s.now()))
}

func (s *OrderService) NextOrderID(ctx context.Context) (*dto.NextOrderIDResponse, error) {
	now := s.now()
	n, rolled, err := s.counterRepo.AllocateNextID(ctx, now)
	if err != nil {
		return nil, err
	}

	if rolled {
		s.logger.Info("order counter rolled over", zap.String("month", domain.MonthKey(now)))
	}
	return &dto.NextOrderIDResponse{
		NextID:       domain.FormatCivilOrderID(n),
		MonthRolled:  rolled,
		CurrentMonth: domain.MonthKey(now),
	}, nil
}

func (s *OrderService) SetStatus(ctx context.Context, id int64, status string) error {
	if !domain.IsValidCivilStatus(status) {
		return apperrors.NewValidationError("invalid status",
			apperrors.ValidationDetail{Field: "status", Message: fmt.Sprintf("%q is not a valid order status", status)})
	}
	return s.orderRepo.UpdateStatus(ctx, id, status)
}

// Update replaces the order's business fields. The identifier, creation
// date and stored total stay as they were written at creation.
func (s *OrderService) Update(ctx context.Context, id int64, req dto.UpdateOrderRequest) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" && !domain.IsValidCivilStatus(req.Status) {
		return nil, apperrors.NewValidationError("invalid status",
			apperrors.ValidationDetail{Field: "status", Message: fmt.Sprintf("%q is not a valid order status", req.Status)})
	}

	order.Name = req.Name
	order.Phone = req.Phone
	order.Email = req.Email
	order.NoOfSets = req.NoOfSets
	order.ShirtAmount = req.ShirtAmount
	order.PantAmount = req.PantAmount
	order.PaymentMethod = req.PaymentMethod
	order.Shirt = domain.Measurements(req.Shirt)
	order.Pant = domain.Measurements(req.Pant)
	if req.Status != "" {
		order.Status = req.Status
	}
	applyOrderDefaults(order)
	order.UpdatedAt = s.now()

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.orderRepo.Delete(ctx, id)
}

func (s *OrderService) Stats(ctx context.Context, date, period string) (*stats.Summary, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]stats.Record, len(orders))
	for i, o := range orders {
		records[i] = stats.FromOrder(o)
	}

	summary := stats.Compute(records, stats.Filter{Date: date, Period: period, Now: s.now()})
	return &summary, nil
}
