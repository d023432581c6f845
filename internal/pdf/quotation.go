package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/archemics/salessnap/internal/models"
	"github.com/archemics/salessnap/internal/pricing"
)

// QuotationPDF renders a quotation for the given client against the product
// catalog. issuedBy is the display name of the salesperson; the client may
// be nil when it was deleted after the quotation was created. With
// includeImages set, rows grow to fit product thumbnails.
func (r *Renderer) QuotationPDF(q models.Quotation, client *models.Client, catalog []models.Product, issuedBy string, includeImages bool) ([]byte, error) {
	rowHeight := RowCompact
	if includeImages {
		rowHeight = RowWithImage
	}

	header := []core.Row{titleRow("QUOTATION")}
	header = append(header, r.issuerRows(
		"Quotation Number: Q-"+q.ID,
		formatDate(q.CreatedAt),
		string(q.Status),
		issuedBy,
	)...)
	header = append(header, clientRows("Client Information:", client)...)
	header = append(header, row.New(4), r.quotationTableHeader(includeImages))

	table := make([]core.Row, 0, len(q.Items))
	for _, it := range q.Items {
		table = append(table, r.quotationItemRow(it, catalog, rowHeight, includeImages))
	}

	plan := DocumentLayout.Plan(uniformHeights(len(table), rowHeight))

	trailer := r.totalsRows(q.Items)
	trailer = append(trailer, r.footerRows("This quotation is valid for 30 days from the date of issue.")...)

	return emit(header, table, plan, trailer)
}

func (r *Renderer) quotationTableHeader(includeImages bool) core.Row {
	nameSize := 4
	cells := []core.Col{}
	if includeImages {
		cells = append(cells, headerCell(1, "", align.Left))
		nameSize = 3
	}
	cells = append(cells,
		headerCell(nameSize, "Product", align.Left),
		headerCell(1, "Qty", align.Center),
		headerCell(2, "Unit Price", align.Right),
		headerCell(1, "Disc.", align.Center),
		headerCell(2, "VAT/Unit", align.Right),
		headerCell(2, "Total", align.Right),
	)
	rw := row.New(8).Add(cells...)
	rw.WithStyle(&props.Cell{BackgroundColor: headerBg})
	return rw
}

func (r *Renderer) quotationItemRow(it models.QuotationItem, catalog []models.Product, height float64, includeImages bool) core.Row {
	p := productByID(catalog, it.ProductID)
	name := models.UnknownProductLabel
	if p != nil {
		name = p.Name
	}

	nameSize := 4
	cells := []core.Col{}
	if includeImages {
		nameSize = 3
		if img, ok := r.thumbnail(p); ok {
			cells = append(cells, img)
		} else {
			cells = append(cells, col.New(1))
		}
	}
	cells = append(cells,
		bodyCell(nameSize, name, align.Left),
		bodyCell(1, fmt.Sprintf("%d", it.Quantity), align.Center),
		bodyCell(2, pricing.FormatUSD(it.Price), align.Right),
		bodyCell(1, discountLabel(it.Discount), align.Center),
		bodyCell(2, pricing.FormatUSD(it.Price*r.vatRate), align.Right),
		bodyCell(2, pricing.FormatUSD(pricing.NetLine(it)), align.Right),
	)
	return row.New(height).Add(cells...)
}

// totalsRows recomputes the money summary from the items; the stored total
// on the quotation is never trusted for document output.
func (r *Renderer) totalsRows(items []models.QuotationItem) []core.Row {
	t := pricing.Compute(items, r.vatRate)
	line := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		size := 9.0
		if bold {
			style = fontstyle.Bold
			size = 11
		}
		return row.New(6).Add(
			col.New(8).Add(text.New(label, props.Text{Size: size, Style: style, Align: align.Right})),
			col.New(4).Add(text.New(value, props.Text{Size: size, Style: style, Align: align.Right})),
		)
	}
	return []core.Row{
		row.New(4),
		line("Subtotal:", pricing.FormatUSD(t.Subtotal), false),
		line(fmt.Sprintf("VAT (%.0f%%):", r.vatRate*100), pricing.FormatUSD(t.VAT), false),
		line("Grand Total:", pricing.FormatUSD(t.GrandTotal), true),
	}
}
