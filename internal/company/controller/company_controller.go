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

type CompanyService interface {
	Create(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)
	Get(ctx context.Context, id int64) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, id int64, date, period string) (*stats.Summary, error)
}

type CompanyController struct {
	service CompanyService
	logger  *zap.Logger
}

func NewCompanyController(service CompanyService, logger *zap.Logger) *CompanyController {
	return &CompanyController{
		service: service,
		logger:  logger,
	}
}

func (c *CompanyController) List(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	companies, err := c.service.List(r.Context())
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.FromCompanies(companies))
}

func (c *CompanyController) Get(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	id, ok := c.companyID(w, r, traceID)
	if !ok {
		return
	}

	company, err := c.service.Get(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, dto.FromCompany(*company))
}

func (c *CompanyController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateCompanyRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		utils.WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON", traceID)
		return
	}

	company, err := c.service.Create(r.Context(), req)
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusCreated, dto.FromCompany(*company))
}

func (c *CompanyController) Delete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	id, ok := c.companyID(w, r, traceID)
	if !ok {
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "company deleted successfully"})
}

func (c *CompanyController) Stats(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	id, ok := c.companyID(w, r, traceID)
	if !ok {
		return
	}

	q := r.URL.Query()
	summary, err := c.service.Stats(r.Context(), id, q.Get("date"), q.Get("period"))
	if err != nil {
		c.handleServiceError(w, traceID, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, summary)
}

func (c *CompanyController) companyID(w http.ResponseWriter, r *http.Request, traceID string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "companyId"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid company id", traceID,
			apperrors.ValidationDetail{Field: "companyId", Message: "companyId must be a positive integer"})
		return 0, false
	}
	return id, true
}

func (c *CompanyController) handleServiceError(w http.ResponseWriter, traceID string, err error) {
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
