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
	"darzi/internal/utils"
)

type EmployeeService interface {
	Create(ctx context.Context, req dto.CreateEmployeeOrderRequest) (*domain.EmployeeOrder, error)
	Get(ctx context.Context, id int64) (*domain.EmployeeOrder, error)
	ListByCompany(ctx context.Context, companyID int64) ([]domain.EmployeeOrder, error)
	NextOrderID(ctx context.Context, companyID int64) (*dto.NextEmployeeOrderIDResponse, error)
	SetStatus(ctx context.Context, id int64, status string) error
	Update(ctx context.Context, id int64, req dto.UpdateEmployeeOrderRequest) (*domain.EmployeeOrder, error)
	Delete(ctx context.Context, id int64) error
	Positions() []string
}

type EmployeeController struct {
	service EmployeeService
	logger  *zap.Logger
}

func NewEmployeeController(service EmployeeService, logger *zap.Logger) *EmployeeController {
	return &EmployeeController{
		service: service,
		logger:  logger,
	}
}

func (c *EmployeeController) ListByCompany(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	companyID, ok := c.pathID(w, r, "companyId", traceID)
	if !ok {
		return
	}

	orders, err := c.service.ListByCompany(r.Context(), companyID)
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.FromEmployeeOrders(orders))
}

func (c *EmployeeController) Get(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	id, ok := c.pathID(w, r, "id", traceID)
	if !ok {
		return
	}

	order, err := c.service.Get(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.FromEmployeeOrder(*order))
}

func (c *EmployeeController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateEmployeeOrderRequest
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

	logger.Info("employee order created", zap.String("orderId", order.OrderID))
	_ = utils.WriteJSON(w, http.StatusCreated, dto.FromEmployeeOrder(*order))
}

func (c *EmployeeController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	id, ok := c.pathID(w, r, "id", traceID)
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

func (c *EmployeeController) Update(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	id, ok := c.pathID(w, r, "id", traceID)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeOrderRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON", traceID)
		return
	}

	order, err := c.service.Update(r.Context(), id, req)
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.FromEmployeeOrder(*order))
}

func (c *EmployeeController) Delete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	id, ok := c.pathID(w, r, "id", traceID)
	if !ok {
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "employee order deleted successfully"})
}

func (c *EmployeeController) NextID(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	companyID, ok := c.pathID(w, r, "companyId", traceID)
	if !ok {
		return
	}

	next, err := c.service.NextOrderID(r.Context(), companyID)
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, next)
}

func (c *EmployeeController) Positions(w http.ResponseWriter, r *http.Request) {
	_ = utils.WriteJSON(w, http.StatusOK, dto.PositionsResponse{Positions: c.service.Positions()})
}

func (c *EmployeeController) pathID(w http.ResponseWriter, r *http.Request, param, traceID string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid "+param, traceID,
			apperrors.ValidationDetail{Field: param, Message: param + " must be a positive integer"})
		return 0, false
	}
	return id, true
}

func (c *EmployeeController) handleServiceError(w http.ResponseWriter, traceID string, err error) {
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
