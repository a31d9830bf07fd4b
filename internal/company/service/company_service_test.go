package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"darzi/internal/domain"
	"darzi/internal/dto"
	apperrors "darzi/internal/errors"
	"darzi/internal/stats"
)

var testNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

type mockCompanyRepository struct {
	InsertFunc   func(ctx context.Context, c *domain.Company) (int64, error)
	FindByIDFunc func(ctx context.Context, id int64) (*domain.Company, error)
	ListFunc     func(ctx context.Context) ([]domain.Company, error)
	DeleteFunc   func(ctx context.Context, id int64) error
}

func (m *mockCompanyRepository) Insert(ctx context.Context, c *domain.Company) (int64, error) {
	return m.InsertFunc(ctx, c)
}

func (m *mockCompanyRepository) FindByID(ctx context.Context, id int64) (*domain.Company, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockCompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	return m.ListFunc(ctx)
}

func (m *mockCompanyRepository) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type mockEmployeeOrderLister struct {
	ListByCompanyFunc func(ctx context.Context, companyID int64) ([]domain.EmployeeOrder, error)
}

func (m *mockEmployeeOrderLister) ListByCompany(ctx context.Context, companyID int64) ([]domain.EmployeeOrder, error) {
	return m.ListByCompanyFunc(ctx, companyID)
}

func newTestCompanyService(companyRepo CompanyRepository, lister EmployeeOrderLister) *CompanyService {
	svc := NewCompanyService(companyRepo, lister, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestCreate_RequiresName(t *testing.T) {
	svc := newTestCompanyService(&mockCompanyRepository{}, &mockEmployeeOrderLister{})

	_, err := svc.Create(context.Background(), dto.CreateCompanyRequest{Name: "   "})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestCreate_ReturnsStoredCompany(t *testing.T) {
	repo := &mockCompanyRepository{
		InsertFunc: func(ctx context.Context, c *domain.Company) (int64, error) {
			return 4, nil
		},
	}

	svc := newTestCompanyService(repo, &mockEmployeeOrderLister{})

	company, err := svc.Create(context.Background(), dto.CreateCompanyRequest{
		Name:          "Acme Textiles",
		ContactPerson: "Meera",
		Phone:         "888",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if company.ID != 4 {
		t.Errorf("expected id 4, got %d", company.ID)
	}
	if company.TotalOrders != 0 {
		t.Errorf("a new company has no orders, got %d", company.TotalOrders)
	}
}

func TestStats_UnknownCompany(t *testing.T) {
	repo := &mockCompanyRepository{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Company, error) {
			return nil, apperrors.NewNotFoundError("company not found")
		},
	}

	svc := newTestCompanyService(repo, &mockEmployeeOrderLister{})

	_, err := svc.Stats(context.Background(), 99, "", stats.PeriodAll)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestStats_PositionBreakdown(t *testing.T) {
	repo := &mockCompanyRepository{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Company, error) {
			return &domain.Company{ID: id, Name: "Acme"}, nil
		},
	}
	lister := &mockEmployeeOrderLister{
		ListByCompanyFunc: func(ctx context.Context, companyID int64) ([]domain.EmployeeOrder, error) {
			return []domain.EmployeeOrder{
				{Status: domain.StatusPending, Date: "2025-03-10", Position: "Watchman", NoOfSets: 1},
				{Status: domain.StatusMovedToStitching, Date: "2025-03-11", Position: "Watchman", NoOfSets: 1},
				{Status: domain.StatusDelivered, Date: "2025-03-12", Position: "Manager", NoOfSets: 2, ShirtAmount: 300, PantAmount: 200},
			}, nil
		},
	}

	svc := newTestCompanyService(repo, lister)

	summary, err := svc.Stats(context.Background(), 3, "", stats.PeriodAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Total != 3 {
		t.Errorf("expected total 3, got %d", summary.Total)
	}
	if summary.MovedToStitching != 1 {
		t.Errorf("expected 1 moved to stitching, got %d", summary.MovedToStitching)
	}
	if summary.Revenue != 1000 {
		t.Errorf("expected revenue 1000, got %v", summary.Revenue)
	}
	if summary.PositionCounts["Watchman"] != 2 || summary.PositionCounts["Manager"] != 1 {
		t.Errorf("unexpected position counts: %v", summary.PositionCounts)
	}
	// every catalogued position appears, zero counts included
	if _, ok := summary.PositionCounts["Housekeeping"]; !ok {
		t.Error("expected zero-filled entry for Housekeeping")
	}
}
