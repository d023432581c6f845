package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/signature"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/archemics/salessnap/internal/models"
)

// signatureOffset is the fixed vertical position of the signature lines on
// the final page. notesHeight is the space the optional notes block takes
// above them.
const (
	signatureOffset = 230.0
	notesHeight     = 9.0
)

// DeliveryNotePDF renders a delivery note. Quantities only, no money
// columns; the document closes with signature lines for the client and the
// company representative.
func (r *Renderer) DeliveryNotePDF(n models.DeliveryNote, client *models.Client, catalog []models.Product, issuedBy string) ([]byte, error) {
	header := []core.Row{titleRow("DELIVERY NOTE")}
	header = append(header, r.issuerRows(
		"Delivery Note: DN-"+n.ID,
		formatDate(n.RequestedAt),
		string(n.Status),
		issuedBy,
	)...)
	header = append(header, clientRows("Deliver To:", client)...)
	header = append(header, row.New(4), deliveryTableHeader())

	table := make([]core.Row, 0, len(n.Items))
	for _, it := range n.Items {
		table = append(table, deliveryItemRow(it, catalog))
	}

	plan := DocumentLayout.Plan(uniformHeights(len(table), RowCompact))
	plan, sigStart := signaturePlacement(plan, n.Notes != "")

	trailer := []core.Row{}
	if n.Notes != "" {
		trailer = append(trailer,
			row.New(4),
			row.New(notesHeight-4).Add(col.New(12).Add(
				text.New("Notes: "+n.Notes, props.Text{Size: 9, Style: fontstyle.Italic}),
			)),
		)
	}
	if pad := signatureOffset - sigStart; pad > 0 {
		trailer = append(trailer, row.New(pad))
	}
	trailer = append(trailer,
		row.New(14).Add(
			signature.NewCol(5, "Client Signature", props.Signature{FontSize: 8}),
			col.New(2),
			signature.NewCol(5, "Company Representative", props.Signature{FontSize: 8}),
		),
	)
	trailer = append(trailer, r.footerRows("")...)

	return emit(header, table, plan, trailer)
}

// lastPageEnd is the cursor position after the table rows on the plan's
// final page.
func lastPageEnd(plan TablePlan) float64 {
	used := DocumentLayout.TopMargin
	if plan.PageCount() == 1 {
		used = DocumentLayout.HeaderOffset
	}
	return used + float64(len(plan.Pages[plan.PageCount()-1]))*RowCompact
}

// signaturePlacement keeps the signature block at signatureOffset: when the
// table (plus the notes block) would run past it, the block moves to a
// fresh page instead of sliding down. Returns the possibly extended plan
// and the cursor position where the trailer starts.
func signaturePlacement(plan TablePlan, withNotes bool) (TablePlan, float64) {
	extra := 0.0
	if withNotes {
		extra = notesHeight
	}
	end := lastPageEnd(plan)
	if end+extra > signatureOffset {
		plan.Pages = append(plan.Pages, []int{})
		end = DocumentLayout.TopMargin
	}
	return plan, end + extra
}

func deliveryTableHeader() core.Row {
	rw := row.New(8).Add(
		headerCell(9, "Product", align.Left),
		headerCell(3, "Quantity", align.Center),
	)
	rw.WithStyle(&props.Cell{BackgroundColor: headerBg})
	return rw
}

func deliveryItemRow(it models.DeliveryNoteItem, catalog []models.Product) core.Row {
	name := models.UnknownProductLabel
	if p := productByID(catalog, it.ProductID); p != nil {
		name = p.Name
	}
	return row.New(RowCompact).Add(
		bodyCell(9, name, align.Left),
		bodyCell(3, fmt.Sprintf("%d", it.Quantity), align.Center),
	)
}
