package handlers

import (
	"net/http"

	"github.com/schoolfin/school_finance_app/internal/core/domain"
	portssvc "github.com/schoolfin/school_finance_app/internal/core/ports/services"
	"github.com/schoolfin/school_finance_app/internal/dto"
	"github.com/schoolfin/school_finance_app/internal/utils/academic"
	"github.com/gin-gonic/gin"
)

// archiveHandler serves read-only views over rows archived by closed fiscal
// years.
type archiveHandler struct {
	ledgerService  portssvc.LedgerSvcFacade
	studentService portssvc.StudentSvcFacade
}

func newArchiveHandler(ls portssvc.LedgerSvcFacade, ss portssvc.StudentSvcFacade) *archiveHandler {
	return &archiveHandler{ledgerService: ls, studentService: ss}
}

// registerArchiveRoutes registers the archived-data routes.
func registerArchiveRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, studentService portssvc.StudentSvcFacade) {
	h := newArchiveHandler(ledgerService, studentService)

	archive := rg.Group("/archive/:year")
	{
		archive.GET("/students", h.listArchivedStudents)
		archive.GET("/:entity", h.listArchivedLedger)
	}
}

// listArchivedStudents godoc
// @Summary List an archived student roster
// @Description Retrieves the student roster as tagged when the given fiscal year was closed
// @Tags archive
// @Produce json
// @Param year path string true "Fiscal year label, e.g. 2023-2024"
// @Success 200 {array} dto.StudentResponse
// @Failure 400 {object} map[string]string "Malformed year label"
// @Failure 500 {object} map[string]string "Failed to list archived students"
// @Security BearerAuth
// @Router /archive/{year}/students [get]
func (h *archiveHandler) listArchivedStudents(c *gin.Context) {
	year := c.Param("year")
	if !academic.ValidYearLabel(year) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year label must be consecutive years in YYYY-YYYY form"})
		return
	}

	students, err := h.studentService.ListStudents(c.Request.Context(), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list archived students"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListStudentResponse(students))
}

// listArchivedLedger godoc
// @Summary List archived ledger rows
// @Description Retrieves one ledger table's rows archived under the given fiscal year
// @Tags archive
// @Produce json
// @Param year path string true "Fiscal year label, e.g. 2023-2024"
// @Param entity path string true "Ledger table" Enums(income, expenses, payments, salary-payments, food-payments)
// @Success 200 {array} object
// @Failure 400 {object} map[string]string "Malformed year label or unknown entity"
// @Failure 500 {object} map[string]string "Failed to list archived rows"
// @Security BearerAuth
// @Router /archive/{year}/{entity} [get]
func (h *archiveHandler) listArchivedLedger(c *gin.Context) {
	year := c.Param("year")
	if !academic.ValidYearLabel(year) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year label must be consecutive years in YYYY-YYYY form"})
		return
	}

	entity := c.Param("entity")
	if !domain.ValidLedgerEntityType(entity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown ledger entity: " + entity})
		return
	}

	rows, err := h.ledgerService.ListArchived(c.Request.Context(), year, domain.LedgerEntityType(entity))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list archived rows"})
		return
	}

	switch typed := rows.(type) {
	case []domain.Income:
		c.JSON(http.StatusOK, dto.ToListIncomeResponse(typed))
	case []domain.Expense:
		c.JSON(http.StatusOK, dto.ToListExpenseResponse(typed))
	case []domain.Payment:
		c.JSON(http.StatusOK, dto.ToListPaymentResponse(typed))
	case []domain.SalaryPayment:
		c.JSON(http.StatusOK, dto.ToListSalaryPaymentResponse(typed))
	case []domain.FoodPayment:
		c.JSON(http.StatusOK, dto.ToListFoodPaymentResponse(typed))
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list archived rows"})
	}
}
