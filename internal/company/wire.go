package company

import (
	"database/sql"

	"go.uber.org/zap"

	"darzi/internal/company/controller"
	"darzi/internal/company/repository"
	"darzi/internal/company/service"
	employeerepo "darzi/internal/employee/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.CompanyController {
	companyRepo := repository.NewMySQLCompanyRepository(db)
	employeeRepo := employeerepo.NewMySQLEmployeeOrderRepository(db)
	companySvc := service.NewCompanyService(companyRepo, employeeRepo, logger)
	return controller.NewCompanyController(companySvc, logger)
}
