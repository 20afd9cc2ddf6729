package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/services"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardSvc *services.DashboardService
	exportSvc    *services.ExportService
}

func NewDashboardHandler(dashboardSvc *services.DashboardService, exportSvc *services.ExportService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc, exportSvc: exportSvc}
}

// @Summary Dashboard Summary
// @Description Aggregated receivables, overdue count, monthly receipts/expenses and net profit
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} models.DashboardSummary
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardSvc.GetSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary Dashboard Series
// @Description Month-by-month receipts and expenses chart data
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param months query int false "Trailing months" default(6)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /dashboard/series [get]
func (h *DashboardHandler) Series(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "6"))
	if months < 1 || months > 36 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Número de meses inválido (1-36)"})
		return
	}

	series := h.dashboardSvc.TrailingMonthlySeries(c.Request.Context(), time.Now(), months)
	c.JSON(http.StatusOK, gin.H{"series": series})
}

// @Summary Export Dashboard
// @Description Export the financial summary as csv, xlsx or pdf
// @Tags Dashboard
// @Produce octet-stream
// @Param format query string true "Format (csv, xlsx, pdf)"
// @Security BearerAuth
// @Router /dashboard/export [get]
func (h *DashboardHandler) Export(c *gin.Context) {
	format := c.Query("format")

	summary, err := h.dashboardSvc.GetSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get summary data"})
		return
	}

	var data []byte
	var filename string

	switch format {
	case "csv":
		data, filename, err = h.exportSvc.ExportCSV(c.Request.Context(), summary)
	case "xlsx":
		data, filename, err = h.exportSvc.ExportXLSX(c.Request.Context(), summary)
	case "pdf":
		data, filename, err = h.exportSvc.ExportPDF(c.Request.Context(), summary)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid format (csv, xlsx, pdf)"})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to generate %s: %v", format, err)})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/octet-stream", data)
}
