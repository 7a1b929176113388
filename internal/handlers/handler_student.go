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

// studentHandler handles HTTP requests related to students.
type studentHandler struct {
	studentService portssvc.StudentSvcFacade
}

func newStudentHandler(ss portssvc.StudentSvcFacade) *studentHandler {
	return &studentHandler{studentService: ss}
}

// registerStudentRoutes registers routes related to students.
func registerStudentRoutes(rg *gin.RouterGroup, studentService portssvc.StudentSvcFacade) {
	h := newStudentHandler(studentService)

	students := rg.Group("/students")
	{
		students.GET("", h.listStudents)
		students.GET("/:id", h.getStudentByID)

		admin := students.Group("", middleware.RequireAdmin())
		{
			admin.POST("", h.createStudent)
			admin.POST("/promote-grades", h.promoteGrades)
		}
	}
}

// listStudents godoc
// @Summary List students
// @Description Retrieves the live roster, or an archived roster when the year query parameter is given
// @Tags students
// @Produce json
// @Param year query string false "Archived fiscal year label, e.g. 2023-2024"
// @Success 200 {array} dto.StudentResponse
// @Failure 500 {object} map[string]string "Failed to list students"
// @Security BearerAuth
// @Router /students [get]
func (h *studentHandler) listStudents(c *gin.Context) {
	students, err := h.studentService.ListStudents(c.Request.Context(), c.Query("year"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list students"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListStudentResponse(students))
}

// getStudentByID godoc
// @Summary Get a student
// @Description Retrieves a student by ID
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} map[string]string "Student not found"
// @Failure 500 {object} map[string]string "Failed to get student"
// @Security BearerAuth
// @Router /students/{id} [get]
func (h *studentHandler) getStudentByID(c *gin.Context) {
	student, err := h.studentService.GetStudentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get student"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// createStudent godoc
// @Summary Enroll a student
// @Description Enrolls a new student in the current period with the full tuition due
// @Tags students
// @Accept json
// @Produce json
// @Param student body dto.CreateStudentRequest true "Student details"
// @Success 201 {object} dto.StudentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to enroll student"
// @Security BearerAuth
// @Router /students [post]
func (h *studentHandler) createStudent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStudent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	student, err := h.studentService.CreateStudent(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enroll student"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToStudentResponse(student))
}

// promoteGrades godoc
// @Summary Promote all student grades
// @Description Advances every parsable grade label and rolls unpaid balances into carried-forward debt
// @Tags students
// @Produce json
// @Success 200 {object} dto.PromoteGradesResponse
// @Failure 500 {object} map[string]string "Failed to promote grades"
// @Security BearerAuth
// @Router /students/promote-grades [post]
func (h *studentHandler) promoteGrades(c *gin.Context) {
	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	promoted, err := h.studentService.PromoteGrades(c.Request.Context(), updaterUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to promote grades"})
		return
	}
	c.JSON(http.StatusOK, dto.PromoteGradesResponse{PromotedCount: promoted})
}
