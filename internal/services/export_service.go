package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

type ExportService struct {
	dashboardSvc *DashboardService
}

func NewExportService(dashboardSvc *DashboardService) *ExportService {
	return &ExportService{dashboardSvc: dashboardSvc}
}

func (s *ExportService) ExportCSV(ctx context.Context, summary *models.DashboardSummary) ([]byte, string, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	// Header
	_ = writer.Write([]string{"Resumo Financeiro", time.Now().Format("2006-01-02 15:04")})
	_ = writer.Write([]string{""})

	// Summary Section
	_ = writer.Write([]string{"Indicadores"})
	_ = writer.Write([]string{"Métrica", "Valor"})
	_ = writer.Write([]string{"Total a Receber", summary.TotalReceivable.StringFixed(2)})
	_ = writer.Write([]string{"Parcelas Vencidas", fmt.Sprintf("%d", summary.OverdueCount)})
	_ = writer.Write([]string{"Recebido no Mês", summary.ReceivedThisMonth.StringFixed(2)})
	_ = writer.Write([]string{"Despesas no Mês", summary.ExpensesThisMonth.StringFixed(2)})
	_ = writer.Write([]string{"Lucro Líquido", summary.NetProfit.StringFixed(2)})
	_ = writer.Write([]string{""})

	// Series Section
	_ = writer.Write([]string{"Evolução Mensal"})
	_ = writer.Write([]string{"Mês", "Recebimentos", "Despesas"})
	for _, point := range summary.Series {
		_ = writer.Write([]string{point.Label, point.Receipts.StringFixed(2), point.Expenses.StringFixed(2)})
	}

	writer.Flush()

	filename := fmt.Sprintf("resumo_financeiro_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *ExportService) ExportXLSX(ctx context.Context, summary *models.DashboardSummary) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Resumo"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.SetCellValue(sheet, "A1", "Resumo Financeiro")
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	_ = f.SetCellValue(sheet, "A3", "Indicadores")
	_ = f.SetCellValue(sheet, "A4", "Métrica")
	_ = f.SetCellValue(sheet, "B4", "Valor")

	_ = f.SetCellValue(sheet, "A5", "Total a Receber")
	_ = f.SetCellValue(sheet, "B5", summary.TotalReceivable.InexactFloat64())
	_ = f.SetCellValue(sheet, "A6", "Parcelas Vencidas")
	_ = f.SetCellValue(sheet, "B6", summary.OverdueCount)
	_ = f.SetCellValue(sheet, "A7", "Recebido no Mês")
	_ = f.SetCellValue(sheet, "B7", summary.ReceivedThisMonth.InexactFloat64())
	_ = f.SetCellValue(sheet, "A8", "Despesas no Mês")
	_ = f.SetCellValue(sheet, "B8", summary.ExpensesThisMonth.InexactFloat64())
	_ = f.SetCellValue(sheet, "A9", "Lucro Líquido")
	_ = f.SetCellValue(sheet, "B9", summary.NetProfit.InexactFloat64())

	_ = f.SetCellValue(sheet, "A11", "Evolução Mensal")
	_ = f.SetCellValue(sheet, "A12", "Mês")
	_ = f.SetCellValue(sheet, "B12", "Recebimentos")
	_ = f.SetCellValue(sheet, "C12", "Despesas")

	row := 13
	for _, point := range summary.Series {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), point.Label)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), point.Receipts.InexactFloat64())
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), point.Expenses.InexactFloat64())
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("resumo_financeiro_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *ExportService) ExportPDF(ctx context.Context, summary *models.DashboardSummary) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Resumo Financeiro")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Indicadores")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 10, "Total a Receber:")
	pdf.Cell(40, 10, fmt.Sprintf("R$ %s", summary.TotalReceivable.StringFixed(2)))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Parcelas Vencidas:")
	pdf.Cell(40, 10, fmt.Sprintf("%d", summary.OverdueCount))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Recebido no Mes:")
	pdf.Cell(40, 10, fmt.Sprintf("R$ %s", summary.ReceivedThisMonth.StringFixed(2)))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Despesas no Mes:")
	pdf.Cell(40, 10, fmt.Sprintf("R$ %s", summary.ExpensesThisMonth.StringFixed(2)))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Lucro Liquido:")
	pdf.Cell(40, 10, fmt.Sprintf("R$ %s", summary.NetProfit.StringFixed(2)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Evolucao Mensal")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, point := range summary.Series {
		pdf.Cell(30, 10, point.Label)
		pdf.Cell(50, 10, fmt.Sprintf("Recebido: R$ %s", point.Receipts.StringFixed(2)))
		pdf.Cell(50, 10, fmt.Sprintf("Despesas: R$ %s", point.Expenses.StringFixed(2)))
		pdf.Ln(6)
	}

	buf := new(bytes.Buffer)
	err := pdf.Output(buf)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("resumo_financeiro_%s.pdf", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
