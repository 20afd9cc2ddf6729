package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/repository"
	"github.com/shopspring/decimal"
)

type ReportService struct {
	clientRepo      repository.ClientRepository
	saleRepo        repository.SaleRepository
	installmentRepo repository.InstallmentRepository
}

func NewReportService(
	clientRepo repository.ClientRepository,
	saleRepo repository.SaleRepository,
	installmentRepo repository.InstallmentRepository,
) *ReportService {
	return &ReportService{
		clientRepo:      clientRepo,
		saleRepo:        saleRepo,
		installmentRepo: installmentRepo,
	}
}

// ClientStatement is the data behind the statement screen and PDF.
type ClientStatement struct {
	Client       models.ClientResponse  `json:"client"`
	Sales        []ClientStatementSale  `json:"sales"`
	TotalValue   decimal.Decimal        `json:"total_value"`
	TotalPaid    decimal.Decimal        `json:"total_paid"`
	TotalPending decimal.Decimal        `json:"total_pending"`
	GeneratedAt  time.Time              `json:"generated_at"`
}

type ClientStatementSale struct {
	ID           uint                         `json:"id"`
	Description  string                       `json:"description"`
	SaleDate     time.Time                    `json:"sale_date"`
	TotalValue   decimal.Decimal              `json:"total_value"`
	Installments []models.InstallmentResponse `json:"installments"`
}

// BuildClientStatement assembles a client's sales with installment
// status and running totals.
func (s *ReportService) BuildClientStatement(ctx context.Context, clientID uint) (*ClientStatement, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, ErrNotFound
	}

	sales, err := s.saleRepo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	statement := &ClientStatement{
		Client:       client.ToResponse(),
		TotalValue:   decimal.Zero,
		TotalPaid:    decimal.Zero,
		TotalPending: decimal.Zero,
		GeneratedAt:  time.Now(),
	}

	for _, sale := range sales {
		statementSale := ClientStatementSale{
			ID:          sale.ID,
			Description: sale.Description,
			SaleDate:    sale.SaleDate,
			TotalValue:  sale.TotalValue,
		}
		statement.TotalValue = statement.TotalValue.Add(sale.TotalValue)

		for _, inst := range sale.Installments {
			statementSale.Installments = append(statementSale.Installments, inst.ToResponse())
			if inst.Status == models.InstallmentStatusPaid {
				statement.TotalPaid = statement.TotalPaid.Add(inst.Value)
			} else {
				statement.TotalPending = statement.TotalPending.Add(inst.Value)
			}
		}

		statement.Sales = append(statement.Sales, statementSale)
	}

	return statement, nil
}

// GenerateClientStatementPDF renders a client statement as a PDF.
func (s *ReportService) GenerateClientStatementPDF(ctx context.Context, clientID uint) (*bytes.Buffer, error) {
	statement, err := s.BuildClientStatement(ctx, clientID)
	if err != nil {
		return nil, err
	}

	type installmentRow struct {
		Number  int
		DueDate string
		Value   string
		Status  string
		PaidAt  string
	}
	type saleBlock struct {
		Description  string
		SaleDate     string
		TotalValue   string
		Installments []installmentRow
	}
	type reportData struct {
		ClientName   string
		ClientCPF    string
		Date         string
		Sales        []saleBlock
		TotalValue   string
		TotalPaid    string
		TotalPending string
	}

	data := reportData{
		ClientName:   strings.ToUpper(statement.Client.Name),
		ClientCPF:    statement.Client.CPF,
		Date:         statement.GeneratedAt.Format("02/01/2006"),
		TotalValue:   statement.TotalValue.StringFixed(2),
		TotalPaid:    statement.TotalPaid.StringFixed(2),
		TotalPending: statement.TotalPending.StringFixed(2),
	}
	for _, sale := range statement.Sales {
		block := saleBlock{
			Description: sale.Description,
			SaleDate:    sale.SaleDate.Format("02/01/2006"),
			TotalValue:  sale.TotalValue.StringFixed(2),
		}
		for _, inst := range sale.Installments {
			row := installmentRow{
				Number:  inst.Number,
				DueDate: inst.DueDate.Format("02/01/2006"),
				Value:   inst.Value.StringFixed(2),
				Status:  statusLabel(inst.Status),
			}
			if inst.PaidDate != nil {
				row.PaidAt = inst.PaidDate.Format("02/01/2006")
			}
			block.Installments = append(block.Installments, row)
		}
		data.Sales = append(data.Sales, block)
	}

	return s.generatePDF("client_statement.html", data)
}

func statusLabel(status string) string {
	if status == models.InstallmentStatusPaid {
		return "Pago"
	}
	return "Pendente"
}

// generatePDF renders an HTML template and converts it with wkhtmltopdf.
func (s *ReportService) generatePDF(templateName string, data interface{}) (*bytes.Buffer, error) {
	// Path relative to project root (prod), falling back to package-relative (tests)
	tmplPath := fmt.Sprintf("internal/services/templates/reports/%s", templateName)
	if _, err := os.Stat(tmplPath); os.IsNotExist(err) {
		tmplPath = fmt.Sprintf("templates/reports/%s", templateName)
	}

	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s (path: %s): %w", templateName, tmplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(buf.Bytes()))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create pdf: %w", err)
	}

	return pdfg.Buffer(), nil
}
