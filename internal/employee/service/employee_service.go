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
)

type EmployeeOrderRepository interface {
	Insert(ctx context.Context, o *domain.EmployeeOrder) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.EmployeeOrder, error)
	ListByCompany(ctx context.Context, companyID int64) ([]domain.EmployeeOrder, error)
	LatestOrderID(ctx context.Context, companyID int64) (string, error)
	Update(ctx context.Context, o *domain.EmployeeOrder) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type CompanyRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Company, error)
}

type EmployeeService struct {
	employeeRepo EmployeeOrderRepository
	companyRepo  CompanyRepository
	logger       *zap.Logger
	now          func() time.Time
}

func NewEmployeeService(employeeRepo EmployeeOrderRepository, companyRepo CompanyRepository, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *EmployeeService) Create(ctx context.Context, req dto.CreateEmployeeOrderRequest) (*domain.EmployeeOrder, error) {
	var details []apperrors.ValidationDetail
	if req.CompanyID <= 0 {
		details = append(details, apperrors.ValidationDetail{Field: "companyId", Message: "companyId is required"})
	}
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
		orderID = domain.FallbackEmployeeOrderID(now)
	}

	order := &domain.EmployeeOrder{
		CompanyID:     req.CompanyID,
		OrderID:       orderID,
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Position:      domain.NormalizePosition(req.Position),
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
	applyEmployeeOrderDefaults(order)
	order.TotalAmount = domain.ComputeTotalAmount(order.ShirtAmount, order.PantAmount, order.NoOfSets)

	// the repository rejects an unknown company and adjusts its order count
	// in the same transaction as the insert
	id, err := s.employeeRepo.Insert(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	s.logger.Info("employee order created",
		zap.Int64("companyId", order.CompanyID),
		zap.String("orderId", order.OrderID),
		zap.String("position", order.Position))
	return order, nil
}

func applyEmployeeOrderDefaults(o *domain.EmployeeOrder) {
	if o.NoOfSets < 1 {
		o.NoOfSets = domain.DefaultNoOfSets
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

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.EmployeeOrder, error) {
	return s.employeeRepo.FindByID(ctx, id)
}

func (s *EmployeeService) ListByCompany(ctx context.Context, companyID int64) ([]domain.EmployeeOrder, error) {
	if _, err := s.companyRepo.FindByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.employeeRepo.ListByCompany(ctx, companyID)
}

// NextOrderID derives the next id from the company's latest order. Not
// reserved: the id is only taken once an order is actually created.
func (s *EmployeeService) NextOrderID(ctx context.Context, companyID int64) (*dto.NextEmployeeOrderIDResponse, error) {
	if _, err := s.companyRepo.FindByID(ctx, companyID); err != nil {
		return nil, err
	}

	lastID, err := s.employeeRepo.LatestOrderID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &dto.NextEmployeeOrderIDResponse{NextID: domain.NextEmployeeOrderID(lastID)}, nil
}

func (s *EmployeeService) SetStatus(ctx context.Context, id int64, status string) error {
	if !domain.IsValidEmployeeStatus(status) {
		return apperrors.NewValidationError("invalid status",
			apperrors.ValidationDetail{Field: "status", Message: fmt.Sprintf("%q is not a valid employee order status", status)})
	}
	return s.employeeRepo.UpdateStatus(ctx, id, status)
}

// Update replaces business fields. The owning company never changes.
func (s *EmployeeService) Update(ctx context.Context, id int64, req dto.UpdateEmployeeOrderRequest) (*domain.EmployeeOrder, error) {
	order, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" && !domain.IsValidEmployeeStatus(req.Status) {
		return nil, apperrors.NewValidationError("invalid status",
			apperrors.ValidationDetail{Field: "status", Message: fmt.Sprintf("%q is not a valid employee order status", req.Status)})
	}

	order.Name = req.Name
	order.Phone = req.Phone
	order.Email = req.Email
	order.Position = domain.NormalizePosition(req.Position)
	order.NoOfSets = req.NoOfSets
	order.ShirtAmount = req.ShirtAmount
	order.PantAmount = req.PantAmount
	order.PaymentMethod = req.PaymentMethod
	order.Shirt = domain.Measurements(req.Shirt)
	order.Pant = domain.Measurements(req.Pant)
	if req.Status != "" {
		order.Status = req.Status
	}
	applyEmployeeOrderDefaults(order)
	order.UpdatedAt = s.now()

	if err := s.employeeRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeService) Positions() []string {
	return domain.Positions()
}
