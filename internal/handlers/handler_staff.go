package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/schoolfin/school_finance_app/internal/apperrors"
	portssvc "github.com/schoolfin/school_finance_app/internal/core/ports/services"
	"github.com/schoolfin/school_finance_app/internal/dto"
	"github.com/schoolfin/school_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// staffHandler handles HTTP requests related to staff members.
type staffHandler struct {
	staffService portssvc.StaffSvcFacade
}

func newStaffHandler(ss portssvc.StaffSvcFacade) *staffHandler {
	return &staffHandler{staffService: ss}
}

// registerStaffRoutes registers routes related to staff.
func registerStaffRoutes(rg *gin.RouterGroup, staffService portssvc.StaffSvcFacade) {
	h := newStaffHandler(staffService)

	staff := rg.Group("/staff")
	{
		staff.GET("", h.listStaff)
		staff.POST("", middleware.RequireAdmin(), h.createStaff)
	}
}

// listStaff godoc
// @Summary List staff members
// @Description Retrieves all staff members
// @Tags staff
// @Produce json
// @Success 200 {array} dto.StaffResponse
// @Failure 500 {object} map[string]string "Failed to list staff"
// @Security BearerAuth
// @Router /staff [get]
func (h *staffHandler) listStaff(c *gin.Context) {
	staff, err := h.staffService.ListStaff(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list staff"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListStaffResponse(staff))
}

// createStaff godoc
// @Summary Register a staff member
// @Description Registers a new staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body dto.CreateStaffRequest true "Staff details"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to register staff member"
// @Security BearerAuth
// @Router /staff [post]
func (h *staffHandler) createStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStaff", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	staff, err := h.staffService.CreateStaff(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register staff member"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToStaffResponse(staff))
}

// shareholderHandler handles HTTP requests related to shareholders.
type shareholderHandler struct {
	shareholderService portssvc.ShareholderSvcFacade
}

func newShareholderHandler(ss portssvc.ShareholderSvcFacade) *shareholderHandler {
	return &shareholderHandler{shareholderService: ss}
}

// registerShareholderRoutes registers routes related to shareholders.
func registerShareholderRoutes(rg *gin.RouterGroup, shareholderService portssvc.ShareholderSvcFacade) {
	h := newShareholderHandler(shareholderService)

	shareholders := rg.Group("/shareholders")
	{
		shareholders.GET("", h.listShareholders)
		shareholders.POST("", middleware.RequireAdmin(), h.createShareholder)
	}
}

// listShareholders godoc
// @Summary List shareholders
// @Description Retrieves all shareholders
// @Tags shareholders
// @Produce json
// @Success 200 {array} dto.ShareholderResponse
// @Failure 500 {object} map[string]string "Failed to list shareholders"
// @Security BearerAuth
// @Router /shareholders [get]
func (h *shareholderHandler) listShareholders(c *gin.Context) {
	shareholders, err := h.shareholderService.ListShareholders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shareholders"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListShareholderResponse(shareholders))
}

// createShareholder godoc
// @Summary Register a shareholder
// @Description Registers a new shareholder; combined share percent may not exceed 100
// @Tags shareholders
// @Accept json
// @Produce json
// @Param shareholder body dto.CreateShareholderRequest true "Shareholder details"
// @Success 201 {object} dto.ShareholderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to register shareholder"
// @Security BearerAuth
// @Router /shareholders [post]
func (h *shareholderHandler) createShareholder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateShareholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateShareholder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shareholder, err := h.shareholderService.CreateShareholder(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register shareholder"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToShareholderResponse(shareholder))
}
