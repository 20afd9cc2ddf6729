package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InstallmentHandler struct {
	installmentService *services.InstallmentService
}

func NewInstallmentHandler(installmentService *services.InstallmentService) *InstallmentHandler {
	return &InstallmentHandler{installmentService: installmentService}
}

// @Summary List Pending Installments
// @Description Get open installments ordered by due date, flagging overdue ones
// @Tags Installments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /installments [get]
func (h *InstallmentHandler) Index(c *gin.Context) {
	installments, err := h.installmentService.FindPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []interface{}
	for _, inst := range installments {
		responses = append(responses, inst.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"installments": responses})
}

// @Summary Pay Installment
// @Description Mark an installment as received, issuing a receipt number
// @Tags Installments
// @Accept json
// @Produce json
// @Param installment_id path int true "Installment ID"
// @Success 200 {object} models.InstallmentResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /installments/{installment_id}/pay [post]
func (h *InstallmentHandler) Pay(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("installment_id"), 10, 32)

	installment, err := h.installmentService.Pay(c.Request.Context(), uint(id))
	if err != nil {
		respondInstallmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"installment": installment.ToResponse()})
}

// @Summary Undo Installment Payment
// @Description Revert a payment registered by mistake
// @Tags Installments
// @Accept json
// @Produce json
// @Param installment_id path int true "Installment ID"
// @Success 200 {object} models.InstallmentResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /installments/{installment_id}/undo [post]
func (h *InstallmentHandler) Undo(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("installment_id"), 10, 32)

	installment, err := h.installmentService.Undo(c.Request.Context(), uint(id))
	if err != nil {
		respondInstallmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"installment": installment.ToResponse()})
}

type UpdateInstallmentRequest struct {
	Value   *decimal.Decimal `json:"value"`
	DueDate *string          `json:"due_date"`
}

// @Summary Update Installment
// @Description Adjust the value or due date of a pending installment
// @Tags Installments
// @Accept json
// @Produce json
// @Param installment_id path int true "Installment ID"
// @Param request body UpdateInstallmentRequest true "Fields to update"
// @Success 200 {object} models.InstallmentResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /installments/{installment_id} [put]
func (h *InstallmentHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("installment_id"), 10, 32)

	var req UpdateInstallmentRequest
	if err := BindNestedOrFlat(c, "installment", &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Data de vencimento inválida (use AAAA-MM-DD)"})
			return
		}
		dueDate = &parsed
	}

	installment, err := h.installmentService.Edit(c.Request.Context(), uint(id), req.Value, dueDate)
	if err != nil {
		respondInstallmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"installment": installment.ToResponse()})
}

func respondInstallmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Parcela não encontrada"})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidValue):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
