package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"covena/internal/application/alert/usecases"
	"covena/internal/interfaces/http/middleware"
	"covena/internal/shared/logger"
	"covena/internal/shared/utils"
)

type AlertHandler struct {
	ackUC      usecases.AcknowledgeAlertExecutor
	resolveUC  usecases.ResolveAlertExecutor
	escalateUC usecases.EscalateAlertExecutor
	getUC      usecases.GetAlertExecutor
	listUC     usecases.ListAlertsExecutor
	logger     logger.Interface
}

func NewAlertHandler(
	ackUC usecases.AcknowledgeAlertExecutor,
	resolveUC usecases.ResolveAlertExecutor,
	escalateUC usecases.EscalateAlertExecutor,
	getUC usecases.GetAlertExecutor,
	listUC usecases.ListAlertsExecutor,
	logger logger.Interface,
) *AlertHandler {
	return &AlertHandler{
		ackUC:      ackUC,
		resolveUC:  resolveUC,
		escalateUC: escalateUC,
		getUC:      getUC,
		listUC:     listUC,
		logger:     logger,
	}
}

type AcknowledgeAlertRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

type ResolveAlertRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

type EscalateAlertRequest struct {
	Reason string `json:"reason" validate:"required,max=255"`
}

func (h *AlertHandler) Acknowledge(c *gin.Context) {
	alertID, err := utils.ParseUintParam(c, "id", "alert")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AcknowledgeAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ackUC.Execute(c.Request.Context(), usecases.AcknowledgeAlertCommand{
		Actor:   middleware.AuthUserFromContext(c),
		AlertID: alertID,
		Notes:   req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "alert acknowledged", result)
}

func (h *AlertHandler) Resolve(c *gin.Context) {
	alertID, err := utils.ParseUintParam(c, "id", "alert")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.resolveUC.Execute(c.Request.Context(), usecases.ResolveAlertCommand{
		Actor:   middleware.AuthUserFromContext(c),
		AlertID: alertID,
		Notes:   req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "alert resolved", result)
}

func (h *AlertHandler) Escalate(c *gin.Context) {
	alertID, err := utils.ParseUintParam(c, "id", "alert")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EscalateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.escalateUC.Execute(c.Request.Context(), usecases.EscalateAlertCommand{
		Actor:   middleware.AuthUserFromContext(c),
		AlertID: alertID,
		Reason:  req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "alert escalated", result)
}

func (h *AlertHandler) Get(c *gin.Context) {
	alertID, err := utils.ParseUintParam(c, "id", "alert")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	alertDTO, err := h.getUC.Execute(c.Request.Context(), usecases.GetAlertQuery{
		Actor:   middleware.AuthUserFromContext(c),
		AlertID: alertID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", alertDTO)
}

func (h *AlertHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListAlertsQuery{
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

	if covenantID, err := utils.ParseUintQuery(c, "covenant_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	} else if covenantID != nil {
		query.CovenantID = covenantID
	}

	if status := c.Query("status"); status != "" {
		query.Status = &status
	}
	if severity := c.Query("severity"); severity != "" {
		query.Severity = &severity
	}
	if alertType := c.Query("type"); alertType != "" {
		query.Type = &alertType
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Alerts, result.Total, result.Page, result.PageSize)
}
