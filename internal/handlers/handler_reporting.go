package handlers

import (
	"net/http"

	portssvc "github.com/schoolfin/school_finance_app/internal/core/ports/services"
	"github.com/schoolfin/school_finance_app/internal/dto"
	"github.com/schoolfin/school_finance_app/internal/utils/academic"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles read-only financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/profit-distribution", h.getProfitDistribution)
	}
}

// getProfitDistribution godoc
// @Summary Profit distribution report
// @Description Computes net profit for a period and each shareholder's slice of it. Omit the year parameter to report on the current period.
// @Tags reports
// @Produce json
// @Param year query string false "Archived fiscal year label, e.g. 2023-2024"
// @Success 200 {object} dto.ProfitDistributionResponse
// @Failure 400 {object} map[string]string "Malformed year label"
// @Failure 500 {object} map[string]string "Failed to compute profit distribution"
// @Security BearerAuth
// @Router /reports/profit-distribution [get]
func (h *reportingHandler) getProfitDistribution(c *gin.Context) {
	year := c.Query("year")
	if year != "" && !academic.ValidYearLabel(year) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year label must be consecutive years in YYYY-YYYY form"})
		return
	}

	distribution, err := h.reportingService.ProfitDistribution(c.Request.Context(), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute profit distribution"})
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitDistributionResponse(distribution))
}
