package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// PDFFilename is the suggested download filename for PDF exports.
const PDFFilename = "expense-report.pdf"

// US-Letter page geometry, in points.
const (
	pageWidth  = 612
	pageHeight = 792
	pageMargin = 72
)

// ExportPDFInput represents the input for a PDF export.
type ExportPDFInput struct {
	CurrencySymbol string
	// Now stamps the generation date; the zero value means time.Now().
	Now time.Time
}

// ExportPDFOutput carries the rendered document.
type ExportPDFOutput struct {
	Data     []byte
	Filename string
}

// ExportPDFUseCase renders a printable report: a title block, an overall
// summary with the net colored by sign, then an Income section followed by
// an Expenses section. Entries flow across pages, breaking at the bottom
// margin.
type ExportPDFUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewExportPDFUseCase creates a new ExportPDFUseCase instance.
func NewExportPDFUseCase(recordRepo adapter.RecordRepository) *ExportPDFUseCase {
	return &ExportPDFUseCase{
		recordRepo: recordRepo,
	}
}

// Execute renders the PDF.
func (uc *ExportPDFUseCase) Execute(ctx context.Context, input ExportPDFInput) (*ExportPDFOutput, error) {
	expenses, err := uc.recordRepo.ListByKind(ctx, entity.RecordKindExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	income, err := uc.recordRepo.ListByKind(ctx, entity.RecordKindIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	totalIncome := sumAmounts(income)
	totalExpenses := sumAmounts(expenses)
	net := totalIncome.Sub(totalExpenses)

	writeTitle(pdf, tr, now)
	writeSummary(pdf, tr, input.CurrencySymbol, totalIncome, totalExpenses, net)
	writeSection(pdf, tr, "Income", income, input.CurrencySymbol)
	writeSection(pdf, tr, "Expenses", expenses, input.CurrencySymbol)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, domainerror.NewExportError(domainerror.ErrCodeExportWriteFailed, "failed to render pdf", err)
	}

	return &ExportPDFOutput{Data: buf.Bytes(), Filename: PDFFilename}, nil
}

func writeTitle(pdf *gofpdf.Fpdf, tr func(string) string, now time.Time) {
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 28, tr("Expense Report"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(142, 142, 147)
	pdf.CellFormat(0, 14, tr("Generated on "+formatDate(now)), "", 1, "L", false, 0, "")
	pdf.Ln(14)
}

func writeSummary(pdf *gofpdf.Fpdf, tr func(string) string, symbol string, totalIncome, totalExpenses, net decimal.Decimal) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 20, tr("Summary"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 16, tr("Total Expenses: "+formatAmount(symbol, totalExpenses)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 16, tr("Total Income: "+formatAmount(symbol, totalIncome)), "", 1, "L", false, 0, "")

	// Net renders green when non-negative, red otherwise.
	if net.Sign() >= 0 {
		pdf.SetTextColor(48, 209, 88)
	} else {
		pdf.SetTextColor(255, 69, 58)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 16, tr("Net: "+formatAmount(symbol, net)), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(14)
}

func writeSection(pdf *gofpdf.Fpdf, tr func(string) string, title string, records []*entity.Record, symbol string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 20, tr(title), "", 1, "L", false, 0, "")

	if len(records) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.SetTextColor(142, 142, 147)
		pdf.CellFormat(0, 15, tr("No entries"), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(10)
		return
	}

	for _, r := range records {
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(0, 0, 0)
		line := "• " + r.CategoryName + ": " + formatAmount(symbol, r.Amount) + " - " + formatDate(r.OccurredAt)
		pdf.CellFormat(0, 16, tr(line), "", 1, "L", false, 0, "")

		if r.Notes != "" {
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(142, 142, 147)
			pdf.SetX(pageMargin + 14)
			pdf.CellFormat(0, 13, tr(r.Notes), "", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}
	}
	pdf.Ln(10)
}
