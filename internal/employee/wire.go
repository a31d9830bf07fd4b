package employee

import (
	"database/sql"

	"go.uber.org/zap"

	companyrepo "darzi/internal/company/repository"
	"darzi/internal/employee/controller"
	"darzi/internal/employee/repository"
	"darzi/internal/employee/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.EmployeeController {
	employeeRepo := repository.NewMySQLEmployeeOrderRepository(db)
	companyRepo := companyrepo.NewMySQLCompanyRepository(db)
	employeeSvc := service.NewEmployeeService(employeeRepo, companyRepo, logger)
	return controller.NewEmployeeController(employeeSvc, logger)
}
