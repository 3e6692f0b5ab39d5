package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

type fakeRecordRepository struct {
	records map[uuid.UUID]*entity.Record
}

func newFakeRecordRepository(records ...*entity.Record) *fakeRecordRepository {
	repo := &fakeRecordRepository{records: make(map[uuid.UUID]*entity.Record)}
	for _, r := range records {
		repo.records[r.ID] = r
	}
	return repo
}

func (r *fakeRecordRepository) Create(_ context.Context, record *entity.Record) error {
	r.records[record.ID] = record
	return nil
}

func (r *fakeRecordRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Record, error) {
	return r.records[id], nil
}

func (r *fakeRecordRepository) ListByKind(_ context.Context, kind entity.RecordKind) ([]*entity.Record, error) {
	var out []*entity.Record
	for _, record := range r.records {
		if record.Kind == kind {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, nil
}

func (r *fakeRecordRepository) Update(_ context.Context, record *entity.Record) error {
	r.records[record.ID] = record
	return nil
}

func (r *fakeRecordRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.records, id)
	return nil
}

func record(kind entity.RecordKind, amount, category, notes string, occurredAt time.Time) *entity.Record {
	return entity.NewRecord(kind, decimal.RequireFromString(amount), category, occurredAt, notes)
}

func TestExportCSV_Layout(t *testing.T) {
	occurredAt := time.Date(2025, 8, 18, 15, 4, 0, 0, time.Local)
	repo := newFakeRecordRepository(
		record(entity.RecordKindExpense, "25.50", "Food", "lunch", occurredAt),
		record(entity.RecordKindIncome, "5000.00", "Salary", "", occurredAt.Add(-time.Hour)),
	)
	uc := NewExportCSVUseCase(repo)

	out, err := uc.Execute(context.Background(), ExportCSVInput{CurrencySymbol: "₹"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(out.Data)).ReadAll()
	if err != nil {
		t.Fatalf("exported csv does not parse: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus two rows, got %d", len(rows))
	}

	wantHeader := []string{"Type", "Date", "Category", "Amount", "Notes"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("expected header column %q, got %q", col, rows[0][i])
		}
	}

	// Expenses come before income regardless of timestamps.
	wantExpense := []string{"Expense", "8/18/2025, 3:04 PM", "Food", "₹25.50", "lunch"}
	for i, col := range wantExpense {
		if rows[1][i] != col {
			t.Errorf("expected expense column %q, got %q", col, rows[1][i])
		}
	}
	if rows[2][0] != "Income" || rows[2][3] != "₹5000.00" {
		t.Errorf("expected income row, got %v", rows[2])
	}
}

func TestExportCSV_RoundTripsAwkwardNotes(t *testing.T) {
	occurredAt := time.Date(2025, 8, 18, 9, 30, 0, 0, time.Local)
	notes := "dinner, \"pizza\"\nwith friends"
	repo := newFakeRecordRepository(
		record(entity.RecordKindExpense, "42.00", "Food", notes, occurredAt),
	)

	out, err := NewExportCSVUseCase(repo).Execute(context.Background(), ExportCSVInput{CurrencySymbol: "$"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(out.Data)).ReadAll()
	if err != nil {
		t.Fatalf("exported csv does not parse: %v", err)
	}
	if rows[1][4] != notes {
		t.Errorf("expected notes to round trip, got %q", rows[1][4])
	}
}

func TestExportCSV_EmptyDataSet(t *testing.T) {
	out, err := NewExportCSVUseCase(newFakeRecordRepository()).Execute(context.Background(), ExportCSVInput{CurrencySymbol: "₹"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(out.Data)).ReadAll()
	if err != nil {
		t.Fatalf("exported csv does not parse: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected only the header row, got %d rows", len(rows))
	}
}

func TestExportPDF_ProducesDocument(t *testing.T) {
	occurredAt := time.Date(2025, 8, 18, 15, 4, 0, 0, time.Local)
	repo := newFakeRecordRepository(
		record(entity.RecordKindExpense, "25.50", "Food", "lunch", occurredAt),
		record(entity.RecordKindIncome, "5000.00", "Salary", "", occurredAt),
	)

	out, err := NewExportPDFUseCase(repo).Execute(context.Background(), ExportPDFInput{
		CurrencySymbol: "$",
		Now:            occurredAt,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out.Data, []byte("%PDF")) {
		t.Error("expected a PDF document")
	}
	if out.Filename != PDFFilename {
		t.Errorf("expected filename %q, got %q", PDFFilename, out.Filename)
	}
}

// The summary lists Total Expenses first, then Total Income, then the net.
// Rendered with compression off so the content stream is inspectable.
func TestExportPDF_SummaryOrdersExpensesBeforeIncome(t *testing.T) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetCompression(false)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	writeSummary(pdf, tr, "$",
		decimal.RequireFromString("5000.00"),
		decimal.RequireFromString("1200.00"),
		decimal.RequireFromString("3800.00"),
	)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	expensesAt := strings.Index(out, "Total Expenses")
	incomeAt := strings.Index(out, "Total Income")
	if expensesAt < 0 || incomeAt < 0 {
		t.Fatal("expected both summary totals in the document")
	}
	if expensesAt > incomeAt {
		t.Error("expected Total Expenses to precede Total Income")
	}
}

func TestExportPDF_ManyEntriesPaginate(t *testing.T) {
	repo := newFakeRecordRepository()
	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.Local)
	for i := 0; i < 120; i++ {
		r := record(entity.RecordKindExpense, "10.00", "Food", "entry notes", base.Add(time.Duration(i)*time.Hour))
		if err := repo.Create(context.Background(), r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	out, err := NewExportPDFUseCase(repo).Execute(context.Background(), ExportPDFInput{CurrencySymbol: "$", Now: base})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 120 two-line entries cannot fit a single US-Letter page. The page
	// object count excludes the page-tree node sharing the prefix.
	pages := bytes.Count(out.Data, []byte("/Type /Page")) - bytes.Count(out.Data, []byte("/Type /Pages"))
	if pages < 2 {
		t.Errorf("expected multiple pages, got %d", pages)
	}
}
