package controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"darzi/internal/domain"
	"darzi/internal/dto"
	apperrors "darzi/internal/errors"
	"darzi/internal/stats"
	"darzi/internal/utils"
)

type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListCivil(ctx context.Context, date string) ([]domain.Order, error)
	NextOrderID(ctx context.Context) (*dto.NextOrderIDResponse, error)
	SetStatus(ctx context.Context, id int64, status string) error
	Update(ctx context.Context, id int64, req dto.UpdateOrderRequest) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, date, period string) (*stats.Summary, error)
}

type OrderController struct {
	service OrderService
	logger  *zap.Logger
}

func NewOrderController(service OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{
		service: service,
		logger:  logger,
	}
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	orders, err := c.service.List(r.Context())
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.FromOrders(orders))
}

func (c *OrderController) ListCivil(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	orders, err := c.service.ListCivil(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.FromOrders(orders))
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	id, ok := c.orderID(w, r, traceID)
	if !ok {
		return
	}

	order, err := c.service.Get(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.FromOrder(*order))
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		utils.WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON", traceID)
		return
	}

	order, err := c.service.Create(r.Context(), req)
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}

	logger.Info("order created", zap.String("orderId", order.OrderID))
	_ = utils.WriteJSON(w, http.StatusCreated, dto.FromOrder(*order))
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	id, ok := c.orderID(w, r, traceID)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON", traceID)
		return
	}
	if req.Status == "" {
		utils.WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", "status is required", traceID,
			apperrors.ValidationDetail{Field: "status", Message: "status is required"})
		return
	}

	if err := c.service.SetStatus(r.Context(), id, req.Status); err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "status updated successfully"})
}

func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	id, ok := c.orderID(w, r, traceID)
	if !ok {
		return
	}

	var req dto.UpdateOrderRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON", traceID)
		return
	}

	order, err := c.service.Update(r.Context(), id, req)
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.FromOrder(*order))
}

func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	id, ok := c.orderID(w, r, traceID)
	if !ok {
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "order deleted successfully"})
}

func (c *OrderController) NextID(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	next, err := c.service.NextOrderID(r.Context())
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, next)
}

func (c *OrderController) Stats(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	q := r.URL.Query()
	summary, err := c.service.Stats(r.Context(), q.Get("date"), q.Get("period"))
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, summary)
}

func (c *OrderController) orderID(w http.ResponseWriter, r *http.Request, traceID string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid order id", traceID,
			apperrors.ValidationDetail{Field: "id", Message: "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

func (c *OrderController) handleServiceError(w http.ResponseWriter, traceID string, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		utils.WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message, traceID, ve.Details...)
		return
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		utils.WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), traceID)
		return
	}
	if _, ok := apperrors.IsConflictError(err); ok {
		utils.WriteError(w, http.StatusConflict, "CONFLICT", err.Error(), traceID)
		return
	}

	c.logger.Error("unexpected error", zap.String("traceId", traceID), zap.Error(err))
	utils.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", traceID)
}
