package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/repository"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

type ExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Value       decimal.Decimal `json:"value" binding:"required"`
	ExpenseDate string          `json:"expense_date" binding:"required"`
	Category    *string         `json:"category"`
}

// @Summary List Expenses
// @Description Get a paginated list of expenses, newest first
// @Tags Expenses
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param category query string false "Filter by category"
// @Param search_term query string false "Search by description"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /expenses [get]
func (h *ExpenseHandler) Index(c *gin.Context) {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	query.Search = c.Query("search_term")
	query.Filters["category"] = c.Query("category")

	expenses, total, err := h.expenseService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"expenses": expenses,
		"pagination": gin.H{
			"page":     query.Page,
			"per_page": query.PerPage,
			"total":    total,
		},
	})
}

// @Summary Create Expense
// @Description Register a business expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body ExpenseRequest true "Expense Data"
// @Success 201 {object} models.Expense
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req ExpenseRequest
	if err := BindNestedOrFlat(c, "expense", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data da despesa inválida (use AAAA-MM-DD)"})
		return
	}

	expense := &models.Expense{
		Description: req.Description,
		Value:       req.Value,
		ExpenseDate: expenseDate,
		Category:    req.Category,
	}

	if err := h.expenseService.Create(c.Request.Context(), expense); err != nil {
		if errors.Is(err, services.ErrInvalidExpense) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// @Summary Update Expense
// @Description Update an existing expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param expense_id path int true "Expense ID"
// @Param request body ExpenseRequest true "Expense Data"
// @Success 200 {object} models.Expense
// @Security BearerAuth
// @Router /expenses/{expense_id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("expense_id"), 10, 32)

	var req ExpenseRequest
	if err := BindNestedOrFlat(c, "expense", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data da despesa inválida (use AAAA-MM-DD)"})
		return
	}

	updates := &models.Expense{
		Description: req.Description,
		Value:       req.Value,
		ExpenseDate: expenseDate,
		Category:    req.Category,
	}

	expense, err := h.expenseService.Update(c.Request.Context(), uint(id), updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Despesa não encontrada"})
		case errors.Is(err, services.ErrInvalidExpense):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}
