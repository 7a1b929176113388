package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/schoolfin/school_finance_app/internal/apperrors"
	portssvc "github.com/schoolfin/school_finance_app/internal/core/ports/services"
	"github.com/schoolfin/school_finance_app/internal/dto"
	"github.com/schoolfin/school_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fiscalYearHandler handles HTTP requests related to fiscal years.
type fiscalYearHandler struct {
	fiscalYearService portssvc.FiscalYearSvcFacade
}

// newFiscalYearHandler creates a new fiscalYearHandler.
func newFiscalYearHandler(fys portssvc.FiscalYearSvcFacade) *fiscalYearHandler {
	return &fiscalYearHandler{
		fiscalYearService: fys,
	}
}

// registerFiscalYearRoutes registers routes related to fiscal years.
// Mutations are limited to admins; shareholders keep read access.
func registerFiscalYearRoutes(rg *gin.RouterGroup, fiscalYearService portssvc.FiscalYearSvcFacade) {
	h := newFiscalYearHandler(fiscalYearService)

	years := rg.Group("/fiscal-years")
	{
		years.GET("", h.listFiscalYears)
		years.GET("/current", h.getCurrentFiscalYear)
		years.GET("/:id", h.getFiscalYearByID)

		admin := years.Group("", middleware.RequireAdmin())
		{
			admin.POST("", h.createFiscalYear)
			admin.PUT("/:id/set-current", h.setCurrentFiscalYear)
			admin.POST("/:id/close", h.closeFiscalYear)
			admin.POST("/:id/reopen", h.reopenFiscalYear)
			admin.DELETE("/:id", h.deleteFiscalYear)
		}
	}
}

// listFiscalYears godoc
// @Summary List fiscal years
// @Description Retrieves all fiscal years, most recently created first
// @Tags fiscal-years
// @Produce json
// @Success 200 {array} dto.FiscalYearResponse
// @Failure 500 {object} map[string]string "Failed to list fiscal years"
// @Security BearerAuth
// @Router /fiscal-years [get]
func (h *fiscalYearHandler) listFiscalYears(c *gin.Context) {
	years, err := h.fiscalYearService.ListFiscalYears(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list fiscal years"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListFiscalYearResponse(years))
}

// getCurrentFiscalYear godoc
// @Summary Get the current fiscal year
// @Description Retrieves the fiscal year flagged current
// @Tags fiscal-years
// @Produce json
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 404 {object} map[string]string "No current fiscal year"
// @Failure 500 {object} map[string]string "Failed to get current fiscal year"
// @Security BearerAuth
// @Router /fiscal-years/current [get]
func (h *fiscalYearHandler) getCurrentFiscalYear(c *gin.Context) {
	fy, err := h.fiscalYearService.GetCurrentFiscalYear(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get current fiscal year"})
		return
	}
	if fy == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No current fiscal year is set"})
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(fy))
}

// getFiscalYearByID godoc
// @Summary Get a fiscal year
// @Description Retrieves a fiscal year by ID
// @Tags fiscal-years
// @Produce json
// @Param id path string true "Fiscal Year ID"
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 500 {object} map[string]string "Failed to get fiscal year"
// @Security BearerAuth
// @Router /fiscal-years/{id} [get]
func (h *fiscalYearHandler) getFiscalYearByID(c *gin.Context) {
	fy, err := h.fiscalYearService.GetFiscalYearByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fiscal year not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get fiscal year"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(fy))
}

// createFiscalYear godoc
// @Summary Create a fiscal year
// @Description Creates a new fiscal year; optionally makes it current
// @Tags fiscal-years
// @Accept json
// @Produce json
// @Param fiscalYear body dto.CreateFiscalYearRequest true "Fiscal year details"
// @Success 201 {object} dto.FiscalYearResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Fiscal year already exists"
// @Failure 500 {object} map[string]string "Failed to create fiscal year"
// @Security BearerAuth
// @Router /fiscal-years [post]
func (h *fiscalYearHandler) createFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFiscalYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFiscalYear", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.fiscalYearService.CreateFiscalYear(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Fiscal year '%s' already exists", req.Year)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create fiscal year"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToFiscalYearResponse(created))
}

// setCurrentFiscalYear godoc
// @Summary Set the current fiscal year
// @Description Makes the given open fiscal year current, clearing the flag elsewhere
// @Tags fiscal-years
// @Produce json
// @Param id path string true "Fiscal Year ID"
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 400 {object} map[string]string "Year is closed"
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 500 {object} map[string]string "Failed to set current fiscal year"
// @Security BearerAuth
// @Router /fiscal-years/{id}/set-current [put]
func (h *fiscalYearHandler) setCurrentFiscalYear(c *gin.Context) {
	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fy, err := h.fiscalYearService.SetCurrentFiscalYear(c.Request.Context(), c.Param("id"), updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fiscal year not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set current fiscal year"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(fy))
}

// closeFiscalYear godoc
// @Summary Close a fiscal year
// @Description Archives the period, promotes all students and provisions the successor year
// @Tags fiscal-years
// @Produce json
// @Param id path string true "Fiscal Year ID"
// @Success 200 {object} dto.CloseFiscalYearResponse
// @Failure 400 {object} map[string]string "Year is already closed"
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 500 {object} map[string]string "Failed to close fiscal year"
// @Security BearerAuth
// @Router /fiscal-years/{id}/close [post]
func (h *fiscalYearHandler) closeFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fiscalYearID := c.Param("id")
	logger.Info("Received request to close fiscal year", slog.String("fiscal_year_id", fiscalYearID))

	result, err := h.fiscalYearService.CloseFiscalYear(c.Request.Context(), fiscalYearID, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fiscal year not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close fiscal year"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.CloseFiscalYearResponse{
		Success:          true,
		Message:          fmt.Sprintf("Fiscal year closed, %s is now current", result.NewYear),
		PromotedStudents: result.PromotedStudents,
		NewYear:          result.NewYear,
	})
}

// reopenFiscalYear godoc
// @Summary Reopen a closed fiscal year
// @Description Clears the closed flag; archive tags and promotions stay in place
// @Tags fiscal-years
// @Produce json
// @Param id path string true "Fiscal Year ID"
// @Success 200 {object} dto.FiscalYearResponse
// @Failure 400 {object} map[string]string "Year is not closed"
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 500 {object} map[string]string "Failed to reopen fiscal year"
// @Security BearerAuth
// @Router /fiscal-years/{id}/reopen [post]
func (h *fiscalYearHandler) reopenFiscalYear(c *gin.Context) {
	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fy, err := h.fiscalYearService.ReopenFiscalYear(c.Request.Context(), c.Param("id"), updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fiscal year not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reopen fiscal year"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(fy))
}

// deleteFiscalYear godoc
// @Summary Delete an open fiscal year
// @Description Removes an open fiscal year; closed years cannot be deleted
// @Tags fiscal-years
// @Produce json
// @Param id path string true "Fiscal Year ID"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Year is closed"
// @Failure 404 {object} map[string]string "Fiscal year not found"
// @Failure 500 {object} map[string]string "Failed to delete fiscal year"
// @Security BearerAuth
// @Router /fiscal-years/{id} [delete]
func (h *fiscalYearHandler) deleteFiscalYear(c *gin.Context) {
	err := h.fiscalYearService.DeleteFiscalYear(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fiscal year not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fiscal year"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
