package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/services"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// @Summary Client Statement PDF
// @Description Download a client's statement (sales and installment status) as PDF
// @Tags Reports
// @Produce application/pdf
// @Param client_id query int true "Client ID"
// @Success 200 {file} file "statement.pdf"
// @Security BearerAuth
// @Router /reports/client_statement_pdf [get]
func (h *ReportHandler) ClientStatementPDF(c *gin.Context) {
	clientID, _ := strconv.ParseUint(c.Query("client_id"), 10, 32)
	if clientID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_id is required"})
		return
	}

	buf, err := h.reportService.GenerateClientStatementPDF(c.Request.Context(), uint(clientID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=extrato_%d.pdf", clientID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
