package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/repository"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SaleHandler struct {
	saleService *services.SaleService
}

func NewSaleHandler(saleService *services.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

type CreateSaleRequest struct {
	ClientID         uint            `json:"client_id" binding:"required"`
	Description      string          `json:"description" binding:"required"`
	TotalValue       decimal.Decimal `json:"total_value" binding:"required"`
	SaleDate         string          `json:"sale_date" binding:"required"`
	InstallmentCount int             `json:"installment_count" binding:"required"`
}

// @Summary List Sales
// @Description Get a paginated list of sales
// @Tags Sales
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by description or client"
// @Param sort query string false "Sort (field-direction)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /sales [get]
func (h *SaleHandler) Index(c *gin.Context) {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	query.Search = c.Query("search_term")

	if sort := c.Query("sort"); sort != "" {
		parts := strings.Split(sort, "-")
		query.SortBy = parts[0]
		if len(parts) > 1 {
			query.SortDir = parts[1]
		}
	}

	sales, total, err := h.saleService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []interface{}
	for _, sale := range sales {
		responses = append(responses, sale.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"sales": responses,
		"pagination": gin.H{
			"page":     query.Page,
			"per_page": query.PerPage,
			"total":    total,
		},
	})
}

// @Summary Get Sale
// @Description Get a sale with its full installment schedule
// @Tags Sales
// @Accept json
// @Produce json
// @Param sale_id path int true "Sale ID"
// @Success 200 {object} models.SaleResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /sales/{sale_id} [get]
func (h *SaleHandler) Show(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("sale_id"), 10, 32)
	sale, err := h.saleService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venda não encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sale": sale.ToResponse()})
}

// @Summary Create Sale
// @Description Register a sale and generate its installment schedule
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body CreateSaleRequest true "Sale Data"
// @Success 201 {object} models.SaleResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	var req CreateSaleRequest
	if err := BindNestedOrFlat(c, "sale", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saleDate, err := time.Parse("2006-01-02", req.SaleDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data da venda inválida (use AAAA-MM-DD)"})
		return
	}

	sale := &models.Sale{
		ClientID:         req.ClientID,
		Description:      req.Description,
		TotalValue:       req.TotalValue,
		SaleDate:         saleDate,
		InstallmentCount: req.InstallmentCount,
	}

	created, err := h.saleService.Create(c.Request.Context(), sale)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
		case errors.Is(err, services.ErrInvalidSale):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sale": created.ToResponse()})
}
