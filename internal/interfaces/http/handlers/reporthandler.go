package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"covena/internal/application/report/usecases"
	"covena/internal/interfaces/http/middleware"
	"covena/internal/shared/logger"
	"covena/internal/shared/utils"
)

type ReportHandler struct {
	generateUC usecases.GeneratePortfolioReportExecutor
	logger     logger.Interface
}

func NewReportHandler(
	generateUC usecases.GeneratePortfolioReportExecutor,
	logger logger.Interface,
) *ReportHandler {
	return &ReportHandler{
		generateUC: generateUC,
		logger:     logger,
	}
}

// Portfolio generates the actor's bank-wide compliance summary on demand.
// The narrative section is best effort; its absence is not an error.
func (h *ReportHandler) Portfolio(c *gin.Context) {
	summary, err := h.generateUC.Execute(c.Request.Context(), usecases.GeneratePortfolioReportQuery{
		Actor: middleware.AuthUserFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", summary)
}
