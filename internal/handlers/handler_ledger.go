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

// ledgerHandler handles HTTP requests for the five ledger tables. The list
// endpoints here serve the live period; archived rows are served by the
// archive handler.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes for ledger records.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	incomes := rg.Group("/incomes")
	{
		incomes.GET("", h.listCurrentIncomes)
		incomes.POST("", middleware.RequireAdmin(), h.createIncome)
	}

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listCurrentExpenses)
		expenses.POST("", middleware.RequireAdmin(), h.createExpense)
	}

	payments := rg.Group("/payments")
	{
		payments.GET("", h.listCurrentPayments)
		payments.POST("", middleware.RequireAdmin(), h.createPayment)
	}

	salaryPayments := rg.Group("/salary-payments")
	{
		salaryPayments.GET("", h.listCurrentSalaryPayments)
		salaryPayments.POST("", middleware.RequireAdmin(), h.createSalaryPayment)
	}

	foodPayments := rg.Group("/food-payments")
	{
		foodPayments.GET("", h.listCurrentFoodPayments)
		foodPayments.POST("", middleware.RequireAdmin(), h.createFoodPayment)
	}
}

// listCurrentIncomes godoc
// @Summary List current incomes
// @Description Retrieves income entries of the live period
// @Tags ledger
// @Produce json
// @Success 200 {array} dto.IncomeResponse
// @Failure 500 {object} map[string]string "Failed to list incomes"
// @Security BearerAuth
// @Router /incomes [get]
func (h *ledgerHandler) listCurrentIncomes(c *gin.Context) {
	incomes, err := h.ledgerService.ListCurrentIncomes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list incomes"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListIncomeResponse(incomes))
}

// createIncome godoc
// @Summary Record an income
// @Description Records a standalone income entry in the current period
// @Tags ledger
// @Accept json
// @Produce json
// @Param income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record income"
// @Security BearerAuth
// @Router /incomes [post]
func (h *ledgerHandler) createIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	income, err := h.ledgerService.CreateIncome(c.Request.Context(), req, creatorUserID)
	if err != nil {
		h.writeLedgerError(c, err, "Failed to record income")
		return
	}
	c.JSON(http.StatusCreated, dto.ToIncomeResponse(income))
}

// listCurrentExpenses godoc
// @Summary List current expenses
// @Description Retrieves expense entries of the live period
// @Tags ledger
// @Produce json
// @Success 200 {array} dto.ExpenseResponse
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Security BearerAuth
// @Router /expenses [get]
func (h *ledgerHandler) listCurrentExpenses(c *gin.Context) {
	expenses, err := h.ledgerService.ListCurrentExpenses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// createExpense godoc
// @Summary Record an expense
// @Description Records a standalone expense entry in the current period
// @Tags ledger
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Security BearerAuth
// @Router /expenses [post]
func (h *ledgerHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.ledgerService.CreateExpense(c.Request.Context(), req, creatorUserID)
	if err != nil {
		h.writeLedgerError(c, err, "Failed to record expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listCurrentPayments godoc
// @Summary List current tuition payments
// @Description Retrieves tuition payments of the live period
// @Tags ledger
// @Produce json
// @Success 200 {array} dto.PaymentResponse
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /payments [get]
func (h *ledgerHandler) listCurrentPayments(c *gin.Context) {
	payments, err := h.ledgerService.ListCurrentPayments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}

// createPayment godoc
// @Summary Record a tuition payment
// @Description Records a tuition payment, updates the student balance and mirrors the amount into incomes
// @Tags ledger
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Student not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *ledgerHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.ledgerService.CreatePayment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		h.writeLedgerError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listCurrentSalaryPayments godoc
// @Summary List current salary payments
// @Description Retrieves salary payments of the live period
// @Tags ledger
// @Produce json
// @Success 200 {array} dto.SalaryPaymentResponse
// @Failure 500 {object} map[string]string "Failed to list salary payments"
// @Security BearerAuth
// @Router /salary-payments [get]
func (h *ledgerHandler) listCurrentSalaryPayments(c *gin.Context) {
	salaryPayments, err := h.ledgerService.ListCurrentSalaryPayments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list salary payments"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListSalaryPaymentResponse(salaryPayments))
}

// createSalaryPayment godoc
// @Summary Record a salary payment
// @Description Records a salary payment and mirrors it into expenses
// @Tags ledger
// @Accept json
// @Produce json
// @Param salaryPayment body dto.CreateSalaryPaymentRequest true "Salary payment details"
// @Success 201 {object} dto.SalaryPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Staff member not found"
// @Failure 500 {object} map[string]string "Failed to record salary payment"
// @Security BearerAuth
// @Router /salary-payments [post]
func (h *ledgerHandler) createSalaryPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSalaryPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSalaryPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	salaryPayment, err := h.ledgerService.CreateSalaryPayment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		h.writeLedgerError(c, err, "Failed to record salary payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSalaryPaymentResponse(salaryPayment))
}

// listCurrentFoodPayments godoc
// @Summary List current food payments
// @Description Retrieves food payments of the live period
// @Tags ledger
// @Produce json
// @Success 200 {array} dto.FoodPaymentResponse
// @Failure 500 {object} map[string]string "Failed to list food payments"
// @Security BearerAuth
// @Router /food-payments [get]
func (h *ledgerHandler) listCurrentFoodPayments(c *gin.Context) {
	foodPayments, err := h.ledgerService.ListCurrentFoodPayments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list food payments"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListFoodPaymentResponse(foodPayments))
}

// createFoodPayment godoc
// @Summary Record a food payment
// @Description Records a food payment and mirrors it into incomes; tuition balances are untouched
// @Tags ledger
// @Accept json
// @Produce json
// @Param foodPayment body dto.CreateFoodPaymentRequest true "Food payment details"
// @Success 201 {object} dto.FoodPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Student not found"
// @Failure 500 {object} map[string]string "Failed to record food payment"
// @Security BearerAuth
// @Router /food-payments [post]
func (h *ledgerHandler) createFoodPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFoodPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFoodPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	foodPayment, err := h.ledgerService.CreateFoodPayment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		h.writeLedgerError(c, err, "Failed to record food payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToFoodPaymentResponse(foodPayment))
}

// writeLedgerError maps service errors onto HTTP statuses shared by the
// create endpoints.
func (h *ledgerHandler) writeLedgerError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
