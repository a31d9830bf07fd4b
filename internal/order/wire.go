package order

import (
	"database/sql"

	"go.uber.org/zap"

	"darzi/internal/order/controller"
	"darzi/internal/order/repository"
	"darzi/internal/order/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.OrderController {
	orderRepo := repository.NewMySQLOrderRepository(db)
	counterRepo := repository.NewMySQLCounterRepository(db)
	orderSvc := service.NewOrderService(orderRepo, counterRepo, logger)
	return controller.NewOrderController(orderSvc, logger)
}
