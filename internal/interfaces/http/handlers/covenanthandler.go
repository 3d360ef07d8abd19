package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"covena/internal/application/covenant/usecases"
	"covena/internal/interfaces/http/middleware"
	"covena/internal/shared/logger"
	"covena/internal/shared/utils"
)

type CovenantHandler struct {
	createUC    usecases.CreateCovenantExecutor
	updateUC    usecases.UpdateCovenantExecutor
	getUC       usecases.GetCovenantExecutor
	listUC      usecases.ListCovenantsExecutor
	recomputeUC usecases.RecomputeHealthExecutor
	logger      logger.Interface
}

func NewCovenantHandler(
	createUC usecases.CreateCovenantExecutor,
	updateUC usecases.UpdateCovenantExecutor,
	getUC usecases.GetCovenantExecutor,
	listUC usecases.ListCovenantsExecutor,
	recomputeUC usecases.RecomputeHealthExecutor,
	logger logger.Interface,
) *CovenantHandler {
	return &CovenantHandler{
		createUC:    createUC,
		updateUC:    updateUC,
		getUC:       getUC,
		listUC:      listUC,
		recomputeUC: recomputeUC,
		logger:      logger,
	}
}

type CreateCovenantRequest struct {
	ContractID    uint    `json:"contract_id" binding:"required"`
	Name          string  `json:"name" binding:"required,max=200"`
	MetricName    string  `json:"metric_name" binding:"required,max=100"`
	Type          string  `json:"type" binding:"required"`
	Operator      string  `json:"operator" binding:"required"`
	Threshold     float64 `json:"threshold" binding:"required"`
	ThresholdUnit string  `json:"threshold_unit" binding:"max=20"`
	Frequency     string  `json:"frequency" binding:"required"`
}

type UpdateCovenantRequest struct {
	Name          string  `json:"name" binding:"required,max=200"`
	Operator      string  `json:"operator" binding:"required"`
	Threshold     float64 `json:"threshold" binding:"required"`
	ThresholdUnit string  `json:"threshold_unit" binding:"max=20"`
	Frequency     string  `json:"frequency" binding:"required"`
}

type RecomputeHealthRequest struct {
	// MetricValues is the metric history oldest first; the last element is
	// the current observation.
	MetricValues []float64 `json:"metric_values" binding:"required,min=1"`
}

func (h *CovenantHandler) Create(c *gin.Context) {
	var req CreateCovenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCovenantCommand{
		Actor:         middleware.AuthUserFromContext(c),
		ContractID:    req.ContractID,
		Name:          req.Name,
		MetricName:    req.MetricName,
		Type:          req.Type,
		Operator:      req.Operator,
		Threshold:     req.Threshold,
		ThresholdUnit: req.ThresholdUnit,
		Frequency:     req.Frequency,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "covenant created successfully")
}

func (h *CovenantHandler) Update(c *gin.Context) {
	covenantID, err := utils.ParseUintParam(c, "id", "covenant")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCovenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateCovenantCommand{
		Actor:         middleware.AuthUserFromContext(c),
		CovenantID:    covenantID,
		Name:          req.Name,
		Operator:      req.Operator,
		Threshold:     req.Threshold,
		ThresholdUnit: req.ThresholdUnit,
		Frequency:     req.Frequency,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "covenant updated successfully", result)
}

func (h *CovenantHandler) Get(c *gin.Context) {
	covenantID, err := utils.ParseUintParam(c, "id", "covenant")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetCovenantQuery{
		Actor:      middleware.AuthUserFromContext(c),
		CovenantID: covenantID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CovenantHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListCovenantsQuery{
		Actor:     middleware.AuthUserFromContext(c),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if contractID, err := utils.ParseUintQuery(c, "contract_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	} else if contractID != nil {
		query.ContractID = contractID
	}

	if covenantType := c.Query("type"); covenantType != "" {
		query.Type = &covenantType
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Covenants, result.Total, result.Page, result.PageSize)
}

// Recompute ingests fresh metric data for a covenant, supersedes its stored
// health and may create an alert on a degrading status transition.
func (h *CovenantHandler) Recompute(c *gin.Context) {
	covenantID, err := utils.ParseUintParam(c, "id", "covenant")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RecomputeHealthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.recomputeUC.Execute(c.Request.Context(), usecases.RecomputeHealthCommand{
		CovenantID:   covenantID,
		MetricValues: req.MetricValues,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "covenant health recomputed", result)
}
