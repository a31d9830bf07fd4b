package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"darzi/internal/domain"
	"darzi/internal/dto"
	apperrors "darzi/internal/errors"
	"darzi/internal/stats"
)

type CompanyRepository interface {
	Insert(ctx context.Context, c *domain.Company) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Delete(ctx context.Context, id int64) error
}

type EmployeeOrderLister interface {
	ListByCompany(ctx context.Context, companyID int64) ([]domain.EmployeeOrder, error)
}

type CompanyService struct {
	companyRepo  CompanyRepository
	employeeRepo EmployeeOrderLister
	logger       *zap.Logger
	now          func() time.Time
}

func NewCompanyService(companyRepo CompanyRepository, employeeRepo EmployeeOrderLister, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *CompanyService) Create(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("validation failed",
			apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}

	now := s.now()
	company := &domain.Company{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := s.companyRepo.Insert(ctx, company)
	if err != nil {
		return nil, err
	}
	company.ID = id

	s.logger.Info("company created", zap.Int64("companyId", id), zap.String("name", company.Name))
	return company, nil
}

func (s *CompanyService) Get(ctx context.Context, id int64) (*domain.Company, error) {
	return s.companyRepo.FindByID(ctx, id)
}

func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	return s.companyRepo.List(ctx)
}

func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("company deleted", zap.Int64("companyId", id))
	return nil
}

// Stats aggregates the company's employee orders, including the per-position
// breakdown and the Moved to Stitching bucket.
func (s *CompanyService) Stats(ctx context.Context, id int64, date, period string) (*stats.Summary, error) {
	if _, err := s.companyRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	orders, err := s.employeeRepo.ListByCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	records := make([]stats.Record, len(orders))
	for i, o := range orders {
		records[i] = stats.FromEmployeeOrder(o)
	}

	summary := stats.ComputeEmployee(records, stats.Filter{Date: date, Period: period, Now: s.now()})
	return &summary, nil
}
