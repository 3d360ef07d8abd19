package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"covena/internal/application/contract/usecases"
	"covena/internal/interfaces/http/middleware"
	"covena/internal/shared/logger"
	"covena/internal/shared/utils"
)

// ContractHandler serves the read-only contract surface. Contract lifecycle
// (creation, amendment) belongs to the loan origination system; this platform
// consumes contracts as reference data.
type ContractHandler struct {
	getUC  usecases.GetContractExecutor
	listUC usecases.ListContractsExecutor
	logger logger.Interface
}

func NewContractHandler(
	getUC usecases.GetContractExecutor,
	listUC usecases.ListContractsExecutor,
	logger logger.Interface,
) *ContractHandler {
	return &ContractHandler{
		getUC:  getUC,
		listUC: listUC,
		logger: logger,
	}
}

func (h *ContractHandler) Get(c *gin.Context) {
	contractID, err := utils.ParseUintParam(c, "id", "contract")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	contractDTO, err := h.getUC.Execute(c.Request.Context(), usecases.GetContractQuery{
		Actor:      middleware.AuthUserFromContext(c),
		ContractID: contractID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", contractDTO)
}

func (h *ContractHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListContractsQuery{
		Actor: middleware.AuthUserFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Contracts)
}
