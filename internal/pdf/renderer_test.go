package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/archemics/salessnap/internal/models"
	"github.com/archemics/salessnap/internal/pricing"
)

var testCatalog = []models.Product{
	{ID: "1", Name: "Industrial Floor Cleaner", Price: 2499.99, Category: "Cleaning"},
	{ID: "2", Name: "Commercial Vacuum", Price: 1299.50, Category: "Cleaning"},
}

func testQuotation(items []models.QuotationItem) models.Quotation {
	return models.Quotation{
		ID:        "42",
		ClientID:  "1",
		CreatedBy: "2",
		Items:     items,
		Status:    models.QuotationSent,
		CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestQuotationPDFProducesDocument(t *testing.T) {
	r := NewRenderer(pricing.StandardRate, nil)
	client := &models.Client{
		ID: "1", Name: "Jane", Surname: "Doe", Company: "Acme Corp",
		Phone: "+1234567890", Email: "jane@acme.example",
	}
	q := testQuotation([]models.QuotationItem{
		{ProductID: "1", Quantity: 2, Price: 100, Discount: 10},
		{ProductID: "2", Quantity: 1, Price: 50},
	})

	out, err := r.QuotationPDF(q, client, testCatalog, "John Smith", false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", out[:8])
	}
}

func TestQuotationPDFMissingClientAndProduct(t *testing.T) {
	r := NewRenderer(pricing.StandardRate, nil)
	q := testQuotation([]models.QuotationItem{
		{ProductID: "missing", Quantity: 1, Price: 25},
	})

	out, err := r.QuotationPDF(q, nil, testCatalog, "John Smith", false)
	if err != nil {
		t.Fatalf("render with dangling references: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty document")
	}
}

func TestQuotationPDFBadImagePathStillRenders(t *testing.T) {
	r := NewRenderer(pricing.StandardRate, nil)
	catalog := []models.Product{
		{ID: "1", Name: "Widget", ImageURL: "/nonexistent/widget.png"},
	}
	q := testQuotation([]models.QuotationItem{{ProductID: "1", Quantity: 1, Price: 10}})

	out, err := r.QuotationPDF(q, nil, catalog, "John Smith", true)
	if err != nil {
		t.Fatalf("render with unreadable image: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty document")
	}
}

func TestQuotationPlanStableAcrossRenders(t *testing.T) {
	items := make([]models.QuotationItem, 40)
	for i := range items {
		items[i] = models.QuotationItem{ProductID: "1", Quantity: 1, Price: 10}
	}
	first := DocumentLayout.Plan(uniformHeights(len(items), RowCompact))
	second := DocumentLayout.Plan(uniformHeights(len(items), RowCompact))

	if first.PageCount() != second.PageCount() {
		t.Fatalf("page counts differ: %d vs %d", first.PageCount(), second.PageCount())
	}
	for i := range first.Pages {
		if len(first.Pages[i]) != len(second.Pages[i]) {
			t.Fatalf("page %d row counts differ", i)
		}
	}
}

func TestDeliveryNotePDF(t *testing.T) {
	r := NewRenderer(0, nil)
	client := &models.Client{ID: "1", Name: "Jane", Surname: "Doe"}
	n := models.DeliveryNote{
		ID:          "7",
		ClientID:    "1",
		RequestedBy: "2",
		Items: []models.DeliveryNoteItem{
			{ProductID: "1", Quantity: 3},
			{ProductID: "missing", Quantity: 1},
		},
		Status:      models.RequestApproved,
		Notes:       "Leave at loading dock",
		RequestedAt: time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC),
	}

	out, err := r.DeliveryNotePDF(n, client, testCatalog, "John Smith")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestSignatureStaysAtFixedOffset(t *testing.T) {
	// 3 rows end well above the signature position; the block pads down to
	// it on the same page.
	plan := DocumentLayout.Plan(uniformHeights(3, RowCompact))
	placed, start := signaturePlacement(plan, false)
	if placed.PageCount() != plan.PageCount() {
		t.Fatalf("short table should not grow the plan: %d pages", placed.PageCount())
	}
	if start != DocumentLayout.HeaderOffset+3*RowCompact {
		t.Fatalf("trailer starts at %.1f", start)
	}
}

func TestSignatureMovesToFreshPageWhenTableIsFull(t *testing.T) {
	// 14 rows fill the first page to the break line, past the signature
	// position; the block must land on a new page, not slide down.
	plan := DocumentLayout.Plan(uniformHeights(14, RowCompact))
	if plan.PageCount() != 1 {
		t.Fatalf("precondition: want 1 page, got %d", plan.PageCount())
	}
	placed, start := signaturePlacement(plan, false)
	if placed.PageCount() != 2 {
		t.Fatalf("got %d pages, want signature pushed to page 2", placed.PageCount())
	}
	if start != DocumentLayout.TopMargin {
		t.Fatalf("trailer starts at %.1f, want top margin", start)
	}
	if start > signatureOffset {
		t.Fatalf("signature start %.1f past fixed offset", start)
	}
}

func TestSignatureAccountsForNotesBlock(t *testing.T) {
	// 10 rows end at 230 exactly; without notes the block still fits, with
	// notes it would overrun and must move to the next page.
	plan := DocumentLayout.Plan(uniformHeights(10, RowCompact))
	placed, _ := signaturePlacement(plan, false)
	if placed.PageCount() != 1 {
		t.Fatalf("without notes: got %d pages", placed.PageCount())
	}
	placed, start := signaturePlacement(plan, true)
	if placed.PageCount() != 2 {
		t.Fatalf("with notes: got %d pages", placed.PageCount())
	}
	if start != DocumentLayout.TopMargin+notesHeight {
		t.Fatalf("with notes: trailer starts at %.1f", start)
	}
}

func TestDeliveryNoteLongTableMultiPage(t *testing.T) {
	r := NewRenderer(0, nil)
	items := make([]models.DeliveryNoteItem, 30)
	for i := range items {
		items[i] = models.DeliveryNoteItem{ProductID: "1", Quantity: 1}
	}
	plan := DocumentLayout.Plan(uniformHeights(len(items), RowCompact))
	if plan.PageCount() < 2 {
		t.Fatalf("expected a multi-page plan, got %d", plan.PageCount())
	}

	n := models.DeliveryNote{ID: "8", Items: items, Status: models.RequestPending, RequestedAt: time.Now()}
	out, err := r.DeliveryNotePDF(n, nil, testCatalog, "John Smith")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty document")
	}
}
